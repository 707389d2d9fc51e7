package activities

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rifas-ec/rifas/internal/domain"
	"github.com/rifas-ec/rifas/internal/dto"
	activityservice "github.com/rifas-ec/rifas/internal/service/activityservice"
)

func NewMock(t *testing.T) (*ActivityHandler, *MockService, *MockStatsService) {
	ctrl := gomock.NewController(t)
	mockService := NewMockService(ctrl)
	mockStats := NewMockStatsService(ctrl)
	handler := New(mockService, mockStats)
	return handler, mockService, mockStats
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func sampleActivity() *domain.Activity {
	return &domain.Activity{
		ID:             1,
		Name:           "Rifa iPhone",
		TicketPrice:    2.5,
		TotalTickets:   100,
		TicketsSold:    40,
		ActivityNumber: "7",
		StartDate:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Status:         domain.ActiveActivityStatus,
		SoldPercent:    40,
		LuckyCount:     2,
		LuckyNumbers:   []string{"00007", "00042"},
	}
}

func TestActivityHandler_PublicList(t *testing.T) {
	handler, mockService, _ := NewMock(t)

	mockService.EXPECT().
		PublicActivities(gomock.Any()).
		Return([]domain.Activity{*sampleActivity()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/public/actividades", nil)
	rec := httptest.NewRecorder()

	handler.PublicList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.PublicActivityResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 60, resp[0].Available)
	assert.NotContains(t, rec.Body.String(), "numeros_premiados")
}

func TestActivityHandler_PublicGet(t *testing.T) {
	handler, mockService, _ := NewMock(t)

	tests := []struct {
		name         string
		number       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Success",
			number: "7",
			prepareMock: func() {
				mockService.EXPECT().
					GetByNumber(gomock.Any(), "7").
					Return(sampleActivity(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "NotFound",
			number: "99",
			prepareMock: func() {
				mockService.EXPECT().
					GetByNumber(gomock.Any(), "99").
					Return(nil, activityservice.ErrActivityNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "InternalError",
			number: "7",
			prepareMock: func() {
				mockService.EXPECT().
					GetByNumber(gomock.Any(), "7").
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/api/public/actividades/"+tt.number, nil)
			req = withURLParam(req, "numero", tt.number)
			rec := httptest.NewRecorder()

			handler.PublicGet(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestActivityHandler_List(t *testing.T) {
	handler, mockService, _ := NewMock(t)

	mockService.EXPECT().
		GetActivities(gomock.Any()).
		Return([]domain.Activity{*sampleActivity()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/actividades", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.ActivityResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, []string{"00007", "00042"}, resp[0].LuckyNumbers)
}

func TestActivityHandler_Create(t *testing.T) {
	handler, mockService, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Success",
			body: `{"nombre":"Rifa iPhone","precio_boleto":2.5,"total_boletos":100,"fecha_inicio":"2026-09-01","fecha_fin":"2026-10-01","cantidad_numeros_suerte":2}`,
			prepareMock: func() {
				mockService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, activity *domain.Activity) (*domain.Activity, error) {
						assert.Equal(t, "Rifa iPhone", activity.Name)
						assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), activity.StartDate)
						return sampleActivity(), nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "InvalidBody",
			body:         `{bad json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "BadStartDate",
			body:         `{"nombre":"Rifa iPhone","precio_boleto":2.5,"total_boletos":100,"fecha_inicio":"01/09/2026","fecha_fin":"2026-10-01"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "NumberTaken",
			body: `{"nombre":"Rifa iPhone","precio_boleto":2.5,"total_boletos":100,"actividad_numero":"7","fecha_inicio":"2026-09-01","fecha_fin":"2026-10-01"}`,
			prepareMock: func() {
				mockService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, activityservice.ErrActivityNumberTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "InvalidPrice",
			body: `{"nombre":"Rifa iPhone","precio_boleto":0,"total_boletos":100,"fecha_inicio":"2026-09-01","fecha_fin":"2026-10-01"}`,
			prepareMock: func() {
				mockService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, activityservice.ErrInvalidPrice)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/admin/actividades", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestActivityHandler_Update(t *testing.T) {
	handler, mockService, _ := NewMock(t)

	tests := []struct {
		name         string
		id           string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Success",
			id:   "1",
			body: `{"total_boletos":200,"fecha_fin":"2026-11-01"}`,
			prepareMock: func() {
				mockService.EXPECT().
					Update(gomock.Any(), 1, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, params activityservice.UpdateParams) (*domain.Activity, error) {
						require.NotNil(t, params.TotalTickets)
						assert.Equal(t, 200, *params.TotalTickets)
						require.NotNil(t, params.EndDate)
						assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), *params.EndDate)
						assert.Nil(t, params.Name)
						return sampleActivity(), nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "InvalidID",
			id:           "abc",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "BadEndDate",
			id:           "1",
			body:         `{"fecha_fin":"noviembre"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "LuckyNumbersLocked",
			id:   "1",
			body: `{"cantidad_numeros_suerte":5}`,
			prepareMock: func() {
				mockService.EXPECT().
					Update(gomock.Any(), 1, gomock.Any()).
					Return(nil, activityservice.ErrLuckyNumbersLocked)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPut, "/api/admin/actividades/"+tt.id, bytes.NewBufferString(tt.body))
			req = withURLParam(req, "id", tt.id)
			rec := httptest.NewRecorder()

			handler.Update(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestActivityHandler_Cancel(t *testing.T) {
	handler, mockService, _ := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Success",
			id:   "1",
			prepareMock: func() {
				cancelled := sampleActivity()
				cancelled.Status = domain.CancelledActivityStatus
				mockService.EXPECT().
					Cancel(gomock.Any(), 1).
					Return(cancelled, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "HasOrders",
			id:   "1",
			prepareMock: func() {
				mockService.EXPECT().
					Cancel(gomock.Any(), 1).
					Return(nil, activityservice.ErrActivityHasOrders)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/admin/actividades/"+tt.id+"/cancelar", nil)
			req = withURLParam(req, "id", tt.id)
			rec := httptest.NewRecorder()

			handler.Cancel(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestActivityHandler_Delete(t *testing.T) {
	handler, mockService, _ := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Success",
			id:   "1",
			prepareMock: func() {
				mockService.EXPECT().
					Delete(gomock.Any(), 1).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "NotFound",
			id:   "99",
			prepareMock: func() {
				mockService.EXPECT().
					Delete(gomock.Any(), 99).
					Return(activityservice.ErrActivityNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodDelete, "/api/admin/actividades/"+tt.id, nil)
			req = withURLParam(req, "id", tt.id)
			rec := httptest.NewRecorder()

			handler.Delete(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestActivityHandler_ExecuteRaffle(t *testing.T) {
	handler, mockService, _ := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Success",
			id:   "1",
			prepareMock: func() {
				mockService.EXPECT().
					ExecuteRaffle(gomock.Any(), 1).
					Return(&activityservice.RaffleResult{
						Matches: []activityservice.Match{
							{OrderNumber: "15", Numbers: []string{"00007"}},
						},
						MainWinner: &domain.Winner{ID: 9, WinningNumber: "00042"},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "NoLuckyNumbers",
			id:   "1",
			prepareMock: func() {
				mockService.EXPECT().
					ExecuteRaffle(gomock.Any(), 1).
					Return(nil, activityservice.ErrNoLuckyNumbers)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "NothingToDraw",
			id:   "1",
			prepareMock: func() {
				mockService.EXPECT().
					ExecuteRaffle(gomock.Any(), 1).
					Return(nil, activityservice.ErrNothingToDraw)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/admin/actividades/"+tt.id+"/ejecutar-sorteo", nil)
			req = withURLParam(req, "id", tt.id)
			rec := httptest.NewRecorder()

			handler.ExecuteRaffle(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.RaffleResultResponseDTO
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				require.Len(t, resp.Matches, 1)
				assert.Equal(t, "15", resp.Matches[0].OrderNumber)
				require.NotNil(t, resp.MainWinner)
				assert.Equal(t, "00042", resp.MainWinner.WinningNumber)
			}
		})
	}
}

func TestActivityHandler_Draw(t *testing.T) {
	handler, mockService, _ := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Success",
			id:   "1",
			prepareMock: func() {
				mockService.EXPECT().
					Draw(gomock.Any(), 1).
					Return(&activityservice.RaffleResult{
						MainWinner: &domain.Winner{ID: 9, WinningNumber: "00042"},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "NotFullySold",
			id:   "1",
			prepareMock: func() {
				mockService.EXPECT().
					Draw(gomock.Any(), 1).
					Return(nil, activityservice.ErrNotFullySold)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "NotActive",
			id:   "1",
			prepareMock: func() {
				mockService.EXPECT().
					Draw(gomock.Any(), 1).
					Return(nil, activityservice.ErrActivityNotActive)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/admin/actividades/"+tt.id+"/sorteo", nil)
			req = withURLParam(req, "id", tt.id)
			rec := httptest.NewRecorder()

			handler.Draw(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestActivityHandler_AssignMainWinner(t *testing.T) {
	handler, mockService, _ := NewMock(t)

	mockService.EXPECT().
		AssignMainWinner(gomock.Any(), 1).
		Return(&domain.Winner{ID: 9, ActivityID: 1, OrderID: 3, WinningNumber: "00042"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/actividades/1/ganador-principal", nil)
	req = withURLParam(req, "id", "1")
	rec := httptest.NewRecorder()

	handler.AssignMainWinner(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.WinnerResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "00042", resp.WinningNumber)
}

func TestActivityHandler_Finish(t *testing.T) {
	handler, mockService, _ := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Success",
			id:   "1",
			prepareMock: func() {
				finished := sampleActivity()
				finished.Status = domain.FinishedActivityStatus
				mockService.EXPECT().
					MarkAsFinished(gomock.Any(), 1).
					Return(finished, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "NoMainWinner",
			id:   "1",
			prepareMock: func() {
				mockService.EXPECT().
					MarkAsFinished(gomock.Any(), 1).
					Return(nil, activityservice.ErrNoMainWinner)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/admin/actividades/"+tt.id+"/finalizar", nil)
			req = withURLParam(req, "id", tt.id)
			rec := httptest.NewRecorder()

			handler.Finish(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestActivityHandler_Winners(t *testing.T) {
	handler, mockService, _ := NewMock(t)

	mockService.EXPECT().
		WinnersByNumber(gomock.Any(), 1).
		Return(&activityservice.WinnersReport{
			LuckyNumbers: []activityservice.LuckyNumberStatus{
				{Number: "00007", Winner: &domain.Winner{ID: 9, WinningNumber: "00007", IsLuckyNumber: true}},
				{Number: "00042"},
			},
			MainWinner: &domain.Winner{ID: 10, WinningNumber: "00099"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/actividades/1/ganadores", nil)
	req = withURLParam(req, "id", "1")
	rec := httptest.NewRecorder()

	handler.Winners(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.WinnersReportResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.LuckyNumbers, 2)
	require.NotNil(t, resp.LuckyNumbers[0].Winner)
	assert.Equal(t, "00007", resp.LuckyNumbers[0].Winner.WinningNumber)
	assert.Nil(t, resp.LuckyNumbers[1].Winner)
	require.NotNil(t, resp.MainWinner)
	assert.Equal(t, "00099", resp.MainWinner.WinningNumber)
}

func TestActivityHandler_Dashboard(t *testing.T) {
	handler, _, mockStats := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Success",
			prepareMock: func() {
				mockStats.EXPECT().
					Dashboard(gomock.Any()).
					Return(&domain.DashboardStats{
						TotalActivities: 12,
						TotalOrders:     240,
						PaidOrders:      220,
						TotalRevenue:    2075.5,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "InternalError",
			prepareMock: func() {
				mockStats.EXPECT().
					Dashboard(gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
			rec := httptest.NewRecorder()

			handler.Dashboard(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.DashboardStatsResponseDTO
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, 12, resp.TotalActivities)
				assert.InDelta(t, 2075.5, resp.TotalRevenue, 0.001)
				assert.False(t, resp.GeneratedAt.IsZero())
			}
		})
	}
}

package winners

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rifas-ec/rifas/internal/domain"
	"github.com/rifas-ec/rifas/internal/dto"
	winnerservice "github.com/rifas-ec/rifas/internal/service/winnerservice"
)

func NewMock(t *testing.T) (*WinnerHandler, *MockService) {
	ctrl := gomock.NewController(t)
	mockService := NewMockService(ctrl)
	handler := New(mockService)
	return handler, mockService
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func sampleWinner() *domain.Winner {
	return &domain.Winner{
		ID:            7,
		ActivityID:    1,
		OrderID:       3,
		WinningNumber: "00042",
		IsLuckyNumber: true,
	}
}

func TestWinnerHandler_PublicList(t *testing.T) {
	handler, mockService := NewMock(t)

	mockService.EXPECT().
		PublicWinners(gomock.Any()).
		Return([]domain.Winner{*sampleWinner()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/public/ganadores", nil)
	rec := httptest.NewRecorder()

	handler.PublicList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.WinnerResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "00042", resp[0].WinningNumber)
}

func TestWinnerHandler_List(t *testing.T) {
	handler, mockService := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Success",
			prepareMock: func() {
				mockService.EXPECT().
					GetWinners(gomock.Any()).
					Return([]domain.Winner{*sampleWinner()}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "InternalError",
			prepareMock: func() {
				mockService.EXPECT().
					GetWinners(gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/api/admin/ganadores", nil)
			rec := httptest.NewRecorder()

			handler.List(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestWinnerHandler_Get(t *testing.T) {
	handler, mockService := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Success",
			id:   "7",
			prepareMock: func() {
				mockService.EXPECT().
					GetByID(gomock.Any(), 7).
					Return(sampleWinner(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "InvalidID",
			id:           "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "NotFound",
			id:   "99",
			prepareMock: func() {
				mockService.EXPECT().
					GetByID(gomock.Any(), 99).
					Return(nil, winnerservice.ErrWinnerNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/api/admin/ganadores/"+tt.id, nil)
			req = withURLParam(req, "id", tt.id)
			rec := httptest.NewRecorder()

			handler.Get(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestWinnerHandler_Create(t *testing.T) {
	handler, mockService := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Success",
			body: `{"activity_id":1,"order_id":3,"numero_ganador":"00042","es_numero_premiado":true}`,
			prepareMock: func() {
				mockService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, winner *domain.Winner) (*domain.Winner, error) {
						assert.Equal(t, "00042", winner.WinningNumber)
						assert.True(t, winner.IsLuckyNumber)
						return sampleWinner(), nil
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
			name: "ActivityNotFound",
			body: `{"activity_id":99,"order_id":3,"numero_ganador":"00042"}`,
			prepareMock: func() {
				mockService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, winnerservice.ErrActivityNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "NumberAlreadyWon",
			body: `{"activity_id":1,"order_id":3,"numero_ganador":"00042","es_numero_premiado":true}`,
			prepareMock: func() {
				mockService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, winnerservice.ErrNumberAlreadyWon)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "SecondMainWinner",
			body: `{"activity_id":1,"order_id":3,"numero_ganador":"00020","es_numero_premiado":false}`,
			prepareMock: func() {
				mockService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, winnerservice.ErrMainWinnerExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "NotALuckyNumber",
			body: `{"activity_id":1,"order_id":3,"numero_ganador":"00001","es_numero_premiado":true}`,
			prepareMock: func() {
				mockService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, winnerservice.ErrLuckyNumberUnknown)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "NumberNotInOrder",
			body: `{"activity_id":1,"order_id":3,"numero_ganador":"00042"}`,
			prepareMock: func() {
				mockService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, winnerservice.ErrNumberNotInOrder)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/admin/ganadores", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestWinnerHandler_Update(t *testing.T) {
	handler, mockService := NewMock(t)

	tests := []struct {
		name         string
		id           string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Success",
			id:   "7",
			body: `{"notas":"entregado","anunciado_en_instagram":true}`,
			prepareMock: func() {
				mockService.EXPECT().
					Update(gomock.Any(), 7, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, params winnerservice.UpdateParams) (*domain.Winner, error) {
						require.NotNil(t, params.Notes)
						assert.Equal(t, "entregado", *params.Notes)
						require.NotNil(t, params.Announced)
						assert.True(t, *params.Announced)
						return sampleWinner(), nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "InvalidBody",
			id:           "7",
			body:         `{bad json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "NotFound",
			id:   "99",
			body: `{"notas":"entregado"}`,
			prepareMock: func() {
				mockService.EXPECT().
					Update(gomock.Any(), 99, gomock.Any()).
					Return(nil, winnerservice.ErrWinnerNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPut, "/api/admin/ganadores/"+tt.id, bytes.NewBufferString(tt.body))
			req = withURLParam(req, "id", tt.id)
			rec := httptest.NewRecorder()

			handler.Update(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestWinnerHandler_ToggleAnnounced(t *testing.T) {
	handler, mockService := NewMock(t)

	announced := sampleWinner()
	announced.Announced = true
	mockService.EXPECT().
		ToggleAnnounced(gomock.Any(), 7).
		Return(announced, nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/ganadores/7/anunciado", nil)
	req = withURLParam(req, "id", "7")
	rec := httptest.NewRecorder()

	handler.ToggleAnnounced(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.WinnerResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Announced)
}

func TestWinnerHandler_Delete(t *testing.T) {
	handler, mockService := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Success",
			id:   "7",
			prepareMock: func() {
				mockService.EXPECT().
					Delete(gomock.Any(), 7).
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
					Return(winnerservice.ErrWinnerNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodDelete, "/api/admin/ganadores/"+tt.id, nil)
			req = withURLParam(req, "id", tt.id)
			rec := httptest.NewRecorder()

			handler.Delete(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

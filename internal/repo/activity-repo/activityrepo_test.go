package activityrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/rifas-ec/rifas/internal/domain"
	"github.com/rifas-ec/rifas/internal/pg"
)

var activityRows = []string{"id", "nombre", "descripcion", "imagen_url", "precio_boleto", "total_boletos",
	"boletos_vendidos", "actividad_numero", "fecha_inicio", "fecha_fin", "estado", "porcentaje_vendido",
	"sorteo_automatico", "cantidad_numeros_suerte", "numeros_premiados", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func addActivityRow(rows *pgxmock.Rows, a *domain.Activity) *pgxmock.Rows {
	return rows.AddRow(a.ID, a.Name, a.Description, a.ImageURL, a.TicketPrice, a.TotalTickets,
		a.TicketsSold, a.ActivityNumber, a.StartDate, a.EndDate, a.Status, a.SoldPercent,
		a.AutoDraw, a.LuckyCount, a.LuckyNumbers, a.CreatedAt)
}

func storedActivity(now time.Time) *domain.Activity {
	return &domain.Activity{
		ID:             1,
		Name:           "Rifa iPhone",
		TicketPrice:    2.5,
		TotalTickets:   100,
		TicketsSold:    40,
		ActivityNumber: "7",
		StartDate:      now,
		EndDate:        now.AddDate(0, 1, 0),
		Status:         domain.ActiveActivityStatus,
		SoldPercent:    40,
		LuckyCount:     2,
		LuckyNumbers:   []string{"00007", "00042"},
		CreatedAt:      now,
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Activity
	}{
		{
			name: "Activity exists",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
					WithArgs(1).
					WillReturnRows(addActivityRow(pgxmock.NewRows(activityRows), storedActivity(now)))
			},
			expectErr: false,
			result:    storedActivity(now),
		},
		{
			name: "Activity does not exist",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindByIDForUpdate(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(1).
		WillReturnRows(addActivityRow(pgxmock.NewRows(activityRows), storedActivity(now)))

	result, err := repo.FindByIDForUpdate(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, storedActivity(now), result)
}

func TestRepository_FindByNumber(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name           string
		activityNumber string
		mockSetup      func()
		expectErr      bool
		result         *domain.Activity
	}{
		{
			name:           "Activity exists",
			activityNumber: "7",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE actividad_numero = $1")).
					WithArgs("7").
					WillReturnRows(addActivityRow(pgxmock.NewRows(activityRows), storedActivity(now)))
			},
			expectErr: false,
			result:    storedActivity(now),
		},
		{
			name:           "Activity does not exist",
			activityNumber: "99",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE actividad_numero = $1")).
					WithArgs("99").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByNumber(context.Background(), tt.activityNumber)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		length    int
	}{
		{
			name: "Activities found",
			mockSetup: func() {
				rows := addActivityRow(pgxmock.NewRows(activityRows), storedActivity(now))
				second := storedActivity(now)
				second.ID = 2
				second.ActivityNumber = "8"
				rows = addActivityRow(rows, second)
				mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
					WillReturnRows(rows)
			},
			expectErr: false,
			length:    2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Scan row error",
			mockSetup: func() {
				rows := pgxmock.NewRows(activityRows).
					AddRow(1, "Rifa iPhone", "", "", "invalid_value", 100, 40, "7", now, now,
						"activa", 40.0, false, 2, []string{}, now)
				mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
					WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindAll(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.length)
			}
		})
	}
}

func TestRepository_FindByStatuses(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	statuses := []string{domain.ActiveActivityStatus, domain.DrawingActivityStatus}
	mock.ExpectQuery(regexp.QuoteMeta("WHERE estado = ANY($1)")).
		WithArgs(statuses).
		WillReturnRows(addActivityRow(pgxmock.NewRows(activityRows), storedActivity(now)))

	result, err := repo.FindByStatuses(context.Background(), statuses)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, domain.ActiveActivityStatus, result[0].Status)
}

func TestRepository_NextNumber(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    int
	}{
		{
			name: "Next number returned",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("COALESCE(MAX(id), 0) + 1")).
					WillReturnRows(pgxmock.NewRows([]string{"next"}).AddRow(8))
			},
			expectErr: false,
			result:    8,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("COALESCE(MAX(id), 0) + 1")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.NextNumber(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Save activity successfully",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO activities")).
						WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
					return fn(ctx)
				})
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO activities")).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			activity := storedActivity(now)
			activity.ID = 0
			err := repo.Save(context.Background(), activity)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, activity.ID)
			}
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Update activity successfully",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("UPDATE activities")).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("UPDATE activities")).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Update(context.Background(), storedActivity(now))
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Delete activity successfully",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("DELETE FROM activities")).
						WithArgs(1).
						WillReturnResult(pgxmock.NewResult("DELETE", 1))
					return fn(ctx)
				})
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("DELETE FROM activities")).
						WithArgs(1).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Delete(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

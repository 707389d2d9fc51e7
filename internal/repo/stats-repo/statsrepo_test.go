package statsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/rifas-ec/rifas/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Dashboard(t *testing.T) {
	repo, mock := NewMock(t)

	statsColumns := []string{"total_actividades", "actividades_activas", "total_pedidos",
		"pedidos_pendientes", "pedidos_pagados", "boletos_vendidos", "ingresos_totales",
		"total_ganadores", "ganadores_sin_anunciar"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.DashboardStats
	}{
		{
			name: "Counters loaded",
			mockSetup: func() {
				rows := pgxmock.NewRows(statsColumns).
					AddRow(12, 3, 240, 12, 220, 830, 2075.5, 18, 2)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM activities")).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.DashboardStats{
				TotalActivities:    12,
				ActiveActivities:   3,
				TotalOrders:        240,
				PendingOrders:      12,
				PaidOrders:         220,
				TicketsSold:        830,
				TotalRevenue:       2075.5,
				TotalWinners:       18,
				UnannouncedWinners: 2,
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM activities")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Dashboard(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

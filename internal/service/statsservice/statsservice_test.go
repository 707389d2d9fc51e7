package statsservice

import (
	"context"
	"errors"
	"testing"

	"github.com/rifas-ec/rifas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the counters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		statsRepo := NewMockStatsRepo(ctrl)
		svc := New(statsRepo)

		statsRepo.EXPECT().Dashboard(ctx).Return(&domain.DashboardStats{TotalOrders: 240, PaidOrders: 220}, nil)

		stats, err := svc.Dashboard(ctx)
		require.NoError(t, err)
		assert.Equal(t, 240, stats.TotalOrders)
		assert.Equal(t, 220, stats.PaidOrders)
	})

	t.Run("Propagates repo errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		statsRepo := NewMockStatsRepo(ctrl)
		svc := New(statsRepo)

		statsRepo.EXPECT().Dashboard(ctx).Return(nil, errors.New("db down"))

		_, err := svc.Dashboard(ctx)
		assert.Error(t, err)
	})
}

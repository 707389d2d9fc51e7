package statsservice

import (
	"context"

	"github.com/rifas-ec/rifas/internal/domain"
	"go.uber.org/zap"
)

type StatsRepo interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}

type Service struct {
	statsRepo StatsRepo
}

func New(statsRepo StatsRepo) *Service {
	return &Service{statsRepo: statsRepo}
}

func (s *Service) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	stats, err := s.statsRepo.Dashboard(ctx)
	if err != nil {
		zap.L().Error("failed to get dashboard stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

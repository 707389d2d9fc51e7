package statsrepo

import (
	"context"

	"github.com/rifas-ec/rifas/internal/domain"
	"github.com/rifas-ec/rifas/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Dashboard aggregates the admin panel counters in a single round trip.
func (r *Repository) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	query := `
        SELECT
            (SELECT COUNT(*) FROM activities),
            (SELECT COUNT(*) FROM activities WHERE estado = 'activa'),
            (SELECT COUNT(*) FROM orders),
            (SELECT COUNT(*) FROM orders WHERE estado = 'pendiente'),
            (SELECT COUNT(*) FROM orders WHERE estado = 'pagado'),
            (SELECT COALESCE(SUM(cantidad_boletos), 0) FROM orders WHERE estado = 'pagado'),
            (SELECT COALESCE(SUM(total_pagado), 0) FROM orders WHERE estado = 'pagado'),
            (SELECT COUNT(*) FROM winners),
            (SELECT COUNT(*) FROM winners WHERE anunciado_en_instagram = FALSE)
    `
	var stats domain.DashboardStats
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalActivities, &stats.ActiveActivities,
		&stats.TotalOrders, &stats.PendingOrders, &stats.PaidOrders,
		&stats.TicketsSold, &stats.TotalRevenue,
		&stats.TotalWinners, &stats.UnannouncedWinners,
	)
	if err != nil {
		zap.L().Error("can't load dashboard stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

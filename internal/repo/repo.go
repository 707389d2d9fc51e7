package repo

import (
	"github.com/rifas-ec/rifas/internal/pg"
	activityrepo "github.com/rifas-ec/rifas/internal/repo/activity-repo"
	orderrepo "github.com/rifas-ec/rifas/internal/repo/order-repo"
	statsrepo "github.com/rifas-ec/rifas/internal/repo/stats-repo"
	winnerrepo "github.com/rifas-ec/rifas/internal/repo/winner-repo"
)

type Repositories struct {
	ActivityRepo *activityrepo.Repository
	OrderRepo    *orderrepo.Repository
	WinnerRepo   *winnerrepo.Repository
	StatsRepo    *statsrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	activityRepo := activityrepo.New(conn, txManager)
	orderRepo := orderrepo.New(conn, txManager)
	winnerRepo := winnerrepo.New(conn, txManager)
	statsRepo := statsrepo.New(conn)

	return &Repositories{
		ActivityRepo: activityRepo,
		OrderRepo:    orderRepo,
		WinnerRepo:   winnerRepo,
		StatsRepo:    statsRepo,
	}
}

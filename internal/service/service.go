package service

import (
	"math/rand"
	"time"

	"github.com/rifas-ec/rifas/internal/config"
	"github.com/rifas-ec/rifas/internal/handlers/activities"
	"github.com/rifas-ec/rifas/internal/handlers/orders"
	"github.com/rifas-ec/rifas/internal/handlers/winners"
	"github.com/rifas-ec/rifas/internal/pg"
	"github.com/rifas-ec/rifas/internal/raffle"
	"github.com/rifas-ec/rifas/internal/repo"
	activityservice "github.com/rifas-ec/rifas/internal/service/activityservice"
	orderservice "github.com/rifas-ec/rifas/internal/service/orderservice"
	statsservice "github.com/rifas-ec/rifas/internal/service/statsservice"
	winnerservice "github.com/rifas-ec/rifas/internal/service/winnerservice"
	"github.com/rifas-ec/rifas/pkg/numberpool"
)

type Services struct {
	ActivityService activities.Service
	OrderService    orders.Service
	WinnerService   winners.Service
	StatsService    activities.StatsService
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config, notifier orderservice.Notifier) *Services {
	gen := numberpool.NewSeeded()
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	allocator := raffle.NewAllocator(repo.OrderRepo, gen)
	matcher := raffle.NewMatcher(repo.WinnerRepo)
	drawer := raffle.NewDrawer(repo.ActivityRepo, repo.OrderRepo, repo.WinnerRepo, rnd)

	activityService := activityservice.New(repo.ActivityRepo, repo.OrderRepo, repo.WinnerRepo, matcher, drawer, gen, txManager)
	orderService := orderservice.New(repo.OrderRepo, repo.ActivityRepo, allocator, matcher, drawer, notifier, txManager, cfg.PaymentWindow)
	winnerService := winnerservice.New(repo.WinnerRepo, repo.ActivityRepo, repo.OrderRepo)
	statsService := statsservice.New(repo.StatsRepo)

	return &Services{
		ActivityService: activityService,
		OrderService:    orderService,
		WinnerService:   winnerService,
		StatsService:    statsService,
	}
}

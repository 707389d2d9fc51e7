// Package expiry cancels pending orders whose payment deadline has passed,
// releasing their reserved capacity back to the storefront.
package expiry

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rifas-ec/rifas/internal/config"
	"github.com/rifas-ec/rifas/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const expiredNote = "Cancelado automáticamente por falta de pago"

var sweepingOrders sync.Map

type OrderRepo interface {
	FindExpiredPending(ctx context.Context, deadline time.Time, limit uint32) ([]domain.Order, error)
}

type OrderService interface {
	UpdateStatus(ctx context.Context, id int, newStatus string, adminNotes *string) (*domain.Order, error)
}

type Service struct {
	orderRepo     OrderRepo
	orders        OrderService
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(cfg *config.Config, orderRepo OrderRepo, orders OrderService) *Service {
	return &Service{
		orderRepo:     orderRepo,
		orders:        orders,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		sweepInterval: cfg.ExpiryInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Expiry service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping service")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	orders, err := s.orderRepo.FindExpiredPending(ctx, time.Now(), atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch expired orders", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, order := range orders {
		order := order

		if _, loaded := sweepingOrders.LoadOrStore(order.OrderNumber, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer sweepingOrders.Delete(order.OrderNumber)
				return s.cancelOrder(ctx, order)
			})
			if err != nil {
				sweepingOrders.Delete(order.OrderNumber)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping expired orders", zap.Error(err))
	}
}

func (s *Service) cancelOrder(ctx context.Context, order domain.Order) error {
	note := expiredNote
	if _, err := s.orders.UpdateStatus(ctx, order.ID, domain.CancelledOrderStatus, &note); err != nil {
		return err
	}

	zap.L().Info("Expired order cancelled",
		zap.String("orderNumber", order.OrderNumber),
		zap.Time("deadline", order.PaymentDeadline))
	return nil
}

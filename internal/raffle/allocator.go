package raffle

import (
	"context"

	"github.com/rifas-ec/rifas/internal/domain"
	"github.com/rifas-ec/rifas/pkg/numberpool"
	"go.uber.org/zap"
)

// Allocator assigns ticket numbers to an order on payment confirmation. The
// caller must hold the activity row lock so that two orders of the same
// activity never allocate concurrently.
type Allocator struct {
	orders OrderRepo
	gen    *numberpool.Generator
}

func NewAllocator(orders OrderRepo, gen *numberpool.Generator) *Allocator {
	return &Allocator{
		orders: orders,
		gen:    gen,
	}
}

// Allocate draws order.Quantity numbers from [1, activity.TotalTickets]
// excluding every number already assigned to a paid order of the activity,
// persists them on the order sorted ascending, and returns them. An order
// that already holds numbers keeps them unchanged.
func (a *Allocator) Allocate(ctx context.Context, activity *domain.Activity, order *domain.Order) ([]string, error) {
	if len(order.TicketNumbers) > 0 {
		return order.TicketNumbers, nil
	}

	paidOrders, err := a.orders.FindPaidWithNumbers(ctx, activity.ID)
	if err != nil {
		return nil, err
	}
	taken := numberpool.ExcludeSet()
	for _, paid := range paidOrders {
		if paid.ID == order.ID {
			continue
		}
		for _, n := range paid.TicketNumbers {
			taken[n] = struct{}{}
		}
	}

	numbers, err := a.gen.Generate(order.Quantity, activity.TotalTickets, taken)
	if err != nil {
		zap.L().Error("can't generate ticket numbers",
			zap.Int("activityID", activity.ID),
			zap.Int("orderID", order.ID),
			zap.Error(err))
		return nil, err
	}

	order.TicketNumbers = numbers
	if err := a.orders.Update(ctx, order); err != nil {
		return nil, err
	}

	zap.L().Info("ticket numbers assigned",
		zap.Int("orderID", order.ID),
		zap.Int("count", len(numbers)))
	return numbers, nil
}

package raffle

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/rifas-ec/rifas/internal/domain"
	"go.uber.org/zap"
)

const mainWinnerNotes = "Ganador principal del sorteo - Número seleccionado de todos los boletos vendidos"

// Drawer selects the grand-prize winner: one ticket picked uniformly from
// every number sold across the activity's paid orders. Both the automatic
// 100%-sold trigger and the manual admin action go through Draw, which is
// idempotent; the partial unique index on winners is the storage backstop.
type Drawer struct {
	activities ActivityRepo
	orders     OrderRepo
	winners    WinnerRepo

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewDrawer(activities ActivityRepo, orders OrderRepo, winners WinnerRepo, rnd *rand.Rand) *Drawer {
	return &Drawer{
		activities: activities,
		orders:     orders,
		winners:    winners,
		rnd:        rnd,
	}
}

// Draw returns the existing main winner when one is already recorded, nil
// when there is nothing to draw from, and the freshly created winner
// otherwise. A successful draw moves the activity to its finished state.
func (d *Drawer) Draw(ctx context.Context, activity *domain.Activity) (*domain.Winner, error) {
	existing, err := d.winners.FindMainWinner(ctx, activity.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	paidOrders, err := d.orders.FindPaidWithNumbers(ctx, activity.ID)
	if err != nil {
		return nil, err
	}
	if len(paidOrders) == 0 {
		return nil, nil
	}

	var soldNumbers []string
	for _, order := range paidOrders {
		soldNumbers = append(soldNumbers, order.TicketNumbers...)
	}
	if len(soldNumbers) == 0 {
		return nil, nil
	}

	d.mu.Lock()
	winningNumber := soldNumbers[d.rnd.Intn(len(soldNumbers))]
	d.mu.Unlock()

	var winningOrder *domain.Order
	for i := range paidOrders {
		for _, n := range paidOrders[i].TicketNumbers {
			if n == winningNumber {
				winningOrder = &paidOrders[i]
				break
			}
		}
		if winningOrder != nil {
			break
		}
	}

	winner := &domain.Winner{
		ActivityID:    activity.ID,
		OrderID:       winningOrder.ID,
		WinningNumber: winningNumber,
		IsLuckyNumber: false,
		DrawDate:      time.Now(),
		Announced:     false,
		Notes:         mainWinnerNotes,
		CreatedAt:     time.Now(),
	}
	if err := d.winners.Save(ctx, winner); err != nil {
		return nil, err
	}

	activity.Status = domain.FinishedActivityStatus
	if err := d.activities.Update(ctx, activity); err != nil {
		return nil, err
	}

	zap.L().Info("main winner drawn",
		zap.Int("activityID", activity.ID),
		zap.Int("orderID", winningOrder.ID),
		zap.String("number", winningNumber))
	return winner, nil
}

package raffle

import (
	"context"
	"time"

	"github.com/rifas-ec/rifas/internal/domain"
	"go.uber.org/zap"
)

const luckyWinnerNotes = "Ganador asignado automáticamente al confirmar pago"

// Matcher records a lucky-number winner for every assigned number of an
// order that belongs to the activity's lucky set. Numbers already awarded
// are skipped, so re-running the check for the same order is harmless.
type Matcher struct {
	winners WinnerRepo
}

func NewMatcher(winners WinnerRepo) *Matcher {
	return &Matcher{winners: winners}
}

// CheckAndRecord returns the numbers newly recorded as winners. No match is
// the common case and is not an error.
func (m *Matcher) CheckAndRecord(ctx context.Context, activity *domain.Activity, order *domain.Order) ([]string, error) {
	if order.Status != domain.PaidOrderStatus || len(order.TicketNumbers) == 0 || len(activity.LuckyNumbers) == 0 {
		return nil, nil
	}

	lucky := make(map[string]struct{}, len(activity.LuckyNumbers))
	for _, n := range activity.LuckyNumbers {
		lucky[n] = struct{}{}
	}

	var matched []string
	for _, number := range order.TicketNumbers {
		if _, ok := lucky[number]; !ok {
			continue
		}

		existing, err := m.winners.FindByActivityAndNumber(ctx, activity.ID, number)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			continue
		}

		winner := &domain.Winner{
			ActivityID:    activity.ID,
			OrderID:       order.ID,
			WinningNumber: number,
			IsLuckyNumber: true,
			DrawDate:      time.Now(),
			Announced:     false,
			Notes:         luckyWinnerNotes,
			CreatedAt:     time.Now(),
		}
		if err := m.winners.Save(ctx, winner); err != nil {
			return nil, err
		}
		matched = append(matched, number)

		zap.L().Info("lucky number winner recorded",
			zap.Int("activityID", activity.ID),
			zap.Int("orderID", order.ID),
			zap.String("number", number))
	}

	return matched, nil
}

// Package raffle holds the winner-determination core: ticket allocation on
// payment confirmation, lucky-number matching, and the grand-prize draw.
// The components are composed by the order and activity services and always
// run inside the transaction those services open.
package raffle

import (
	"context"

	"github.com/rifas-ec/rifas/internal/domain"
)

type OrderRepo interface {
	FindPaidWithNumbers(ctx context.Context, activityID int) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
}

type WinnerRepo interface {
	FindMainWinner(ctx context.Context, activityID int) (*domain.Winner, error)
	FindByActivityAndNumber(ctx context.Context, activityID int, number string) (*domain.Winner, error)
	Save(ctx context.Context, winner *domain.Winner) error
}

type ActivityRepo interface {
	Update(ctx context.Context, activity *domain.Activity) error
}

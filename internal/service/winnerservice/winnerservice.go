package winnerservice

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/rifas-ec/rifas/internal/domain"
	"go.uber.org/zap"
)

type WinnerRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Winner, error)
	FindAll(ctx context.Context) ([]domain.Winner, error)
	FindAnnounced(ctx context.Context) ([]domain.Winner, error)
	FindByActivityAndNumber(ctx context.Context, activityID int, number string) (*domain.Winner, error)
	FindMainWinner(ctx context.Context, activityID int) (*domain.Winner, error)
	Save(ctx context.Context, winner *domain.Winner) error
	Update(ctx context.Context, winner *domain.Winner) error
	Delete(ctx context.Context, id int) error
}

type ActivityRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Activity, error)
}

type OrderRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
}

type Service struct {
	winnerRepo   WinnerRepo
	activityRepo ActivityRepo
	orderRepo    OrderRepo
}

func New(winnerRepo WinnerRepo, activityRepo ActivityRepo, orderRepo OrderRepo) *Service {
	return &Service{
		winnerRepo:   winnerRepo,
		activityRepo: activityRepo,
		orderRepo:    orderRepo,
	}
}

var (
	ErrWinnerNotFound     = errors.New("winner not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrLuckyNumberUnknown = errors.New("number is not one of the activity lucky numbers")
	ErrNumberNotInOrder   = errors.New("order does not hold that ticket number")
	ErrNumberAlreadyWon   = errors.New("number already has a recorded winner")
	ErrMainWinnerExists   = errors.New("activity already has a main winner")
)

func (s *Service) GetWinners(ctx context.Context) ([]domain.Winner, error) {
	winners, err := s.winnerRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get winners", zap.Error(err))
		return nil, err
	}
	return winners, nil
}

// PublicWinners lists only winners already announced.
func (s *Service) PublicWinners(ctx context.Context) ([]domain.Winner, error) {
	return s.winnerRepo.FindAnnounced(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Winner, error) {
	winner, err := s.winnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if winner == nil {
		return nil, ErrWinnerNotFound
	}
	return winner, nil
}

// Create records a winner by hand. The number must belong to the order and,
// for lucky-number prizes, to the activity's lucky set. A number wins at
// most once per activity.
func (s *Service) Create(ctx context.Context, winner *domain.Winner) (*domain.Winner, error) {
	activity, err := s.activityRepo.FindByID(ctx, winner.ActivityID)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}

	order, err := s.orderRepo.FindByID(ctx, winner.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if winner.IsLuckyNumber && !slices.Contains(activity.LuckyNumbers, winner.WinningNumber) {
		return nil, ErrLuckyNumberUnknown
	}
	if len(order.TicketNumbers) > 0 && !slices.Contains(order.TicketNumbers, winner.WinningNumber) {
		return nil, ErrNumberNotInOrder
	}
	if !winner.IsLuckyNumber {
		main, err := s.winnerRepo.FindMainWinner(ctx, winner.ActivityID)
		if err != nil {
			return nil, err
		}
		if main != nil {
			return nil, ErrMainWinnerExists
		}
	}

	existing, err := s.winnerRepo.FindByActivityAndNumber(ctx, winner.ActivityID, winner.WinningNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNumberAlreadyWon
	}

	if winner.DrawDate.IsZero() {
		winner.DrawDate = time.Now()
	}
	winner.CreatedAt = time.Now()

	if err := s.winnerRepo.Save(ctx, winner); err != nil {
		zap.L().Error("can't create winner", zap.Error(err))
		return nil, err
	}
	return winner, nil
}

// UpdateParams are the editable winner fields. Nil means unchanged.
type UpdateParams struct {
	Notes     *string
	Announced *bool
}

func (s *Service) Update(ctx context.Context, id int, params UpdateParams) (*domain.Winner, error) {
	winner, err := s.winnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if winner == nil {
		return nil, ErrWinnerNotFound
	}

	if params.Notes != nil {
		winner.Notes = *params.Notes
	}
	if params.Announced != nil {
		winner.Announced = *params.Announced
	}

	if err := s.winnerRepo.Update(ctx, winner); err != nil {
		return nil, err
	}
	return winner, nil
}

func (s *Service) ToggleAnnounced(ctx context.Context, id int) (*domain.Winner, error) {
	winner, err := s.winnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if winner == nil {
		return nil, ErrWinnerNotFound
	}

	winner.Announced = !winner.Announced
	if err := s.winnerRepo.Update(ctx, winner); err != nil {
		return nil, err
	}
	return winner, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	winner, err := s.winnerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if winner == nil {
		return ErrWinnerNotFound
	}
	return s.winnerRepo.Delete(ctx, id)
}

package activityservice

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/rifas-ec/rifas/internal/domain"
	"github.com/rifas-ec/rifas/internal/pg"
	"github.com/rifas-ec/rifas/internal/raffle"
	"github.com/rifas-ec/rifas/pkg/numberpool"
	"go.uber.org/zap"
)

type ActivityRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Activity, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Activity, error)
	FindByNumber(ctx context.Context, activityNumber string) (*domain.Activity, error)
	FindAll(ctx context.Context) ([]domain.Activity, error)
	FindByStatuses(ctx context.Context, statuses []string) ([]domain.Activity, error)
	NextNumber(ctx context.Context) (int, error)
	Save(ctx context.Context, activity *domain.Activity) error
	Update(ctx context.Context, activity *domain.Activity) error
	Delete(ctx context.Context, id int) error
}

type OrderRepo interface {
	FindPaidWithNumbers(ctx context.Context, activityID int) ([]domain.Order, error)
	CountByActivityID(ctx context.Context, activityID int) (int, error)
}

type WinnerRepo interface {
	FindByActivityID(ctx context.Context, activityID int) ([]domain.Winner, error)
	FindMainWinner(ctx context.Context, activityID int) (*domain.Winner, error)
	CountByActivityID(ctx context.Context, activityID int) (int, error)
	Update(ctx context.Context, winner *domain.Winner) error
}

type Matcher interface {
	CheckAndRecord(ctx context.Context, activity *domain.Activity, order *domain.Order) ([]string, error)
}

type Drawer interface {
	Draw(ctx context.Context, activity *domain.Activity) (*domain.Winner, error)
}

type Service struct {
	activityRepo ActivityRepo
	orderRepo    OrderRepo
	winnerRepo   WinnerRepo
	matcher      Matcher
	drawer       Drawer
	gen          *numberpool.Generator
	txManager    pg.TXManager
}

func New(activityRepo ActivityRepo, orderRepo OrderRepo, winnerRepo WinnerRepo, matcher Matcher, drawer Drawer, gen *numberpool.Generator, txManager pg.TXManager) *Service {
	return &Service{
		activityRepo: activityRepo,
		orderRepo:    orderRepo,
		winnerRepo:   winnerRepo,
		matcher:      matcher,
		drawer:       drawer,
		gen:          gen,
		txManager:    txManager,
	}
}

var (
	ErrActivityNotFound    = errors.New("activity not found")
	ErrActivityNumberTaken = errors.New("activity number already in use")
	ErrInvalidName         = errors.New("activity name is required")
	ErrInvalidPrice        = errors.New("ticket price must be positive")
	ErrInvalidTotal        = errors.New("total tickets must cover the tickets already sold")
	ErrInvalidDates        = errors.New("end date must be after start date")
	ErrInvalidLuckyCount   = errors.New("lucky number count must be between 0 and 20")
	ErrInvalidLuckyNumbers = errors.New("lucky numbers must be unique and inside the ticket range")
	ErrLuckyNumbersLocked  = errors.New("lucky numbers can't change once winners exist")
	ErrActivityHasOrders   = errors.New("activity has associated orders")
	ErrNoLuckyNumbers      = errors.New("activity has no lucky numbers configured")
	ErrNotFullySold        = errors.New("activity is not fully sold yet")
	ErrActivityNotActive   = errors.New("activity is not active")
	ErrNothingToDraw       = errors.New("no paid tickets to draw from")
	ErrNoMainWinner        = errors.New("activity has no main winner yet")
)

const maxLuckyCount = 20

// Create registers a new activity. The activity number is taken from the
// request when present, otherwise the next sequential number is used. Lucky
// numbers are generated unless an explicit set was supplied.
func (s *Service) Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	if activity.Name == "" {
		return nil, ErrInvalidName
	}
	if activity.TicketPrice <= 0 {
		return nil, ErrInvalidPrice
	}
	if activity.TotalTickets < 1 {
		return nil, ErrInvalidTotal
	}
	if !activity.EndDate.After(activity.StartDate) {
		return nil, ErrInvalidDates
	}

	if activity.ActivityNumber == "" {
		next, err := s.activityRepo.NextNumber(ctx)
		if err != nil {
			return nil, err
		}
		activity.ActivityNumber = strconv.Itoa(next)
	} else {
		existing, err := s.activityRepo.FindByNumber(ctx, activity.ActivityNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrActivityNumberTaken
		}
	}

	if len(activity.LuckyNumbers) > 0 {
		normalized, err := normalizeLuckyNumbers(activity.LuckyNumbers, activity.TotalTickets)
		if err != nil {
			return nil, err
		}
		activity.LuckyNumbers = normalized
		activity.LuckyCount = len(normalized)
	} else {
		if activity.LuckyCount < 0 || activity.LuckyCount > maxLuckyCount {
			return nil, ErrInvalidLuckyCount
		}
		if activity.LuckyCount > 0 {
			if _, err := raffle.GenerateLuckyNumbers(s.gen, activity); err != nil {
				return nil, err
			}
		}
	}

	activity.Status = domain.ActiveActivityStatus
	activity.TicketsSold = 0
	activity.RecalcPercent()
	activity.CreatedAt = time.Now()

	if err := s.activityRepo.Save(ctx, activity); err != nil {
		zap.L().Error("can't create activity", zap.Error(err))
		return nil, err
	}
	return activity, nil
}

// normalizeLuckyNumbers checks supplied lucky numbers against the ticket
// range and returns them in the same zero-padded format the allocator assigns
// tickets in, so matching is an exact string comparison.
func normalizeLuckyNumbers(numbers []string, totalTickets int) ([]string, error) {
	if len(numbers) > maxLuckyCount {
		return nil, ErrInvalidLuckyCount
	}
	normalized := make([]string, 0, len(numbers))
	seen := make(map[string]struct{}, len(numbers))
	for _, n := range numbers {
		value, err := strconv.Atoi(n)
		if err != nil || value < 1 || value > totalTickets {
			return nil, ErrInvalidLuckyNumbers
		}
		key := numberpool.Format(value)
		if _, dup := seen[key]; dup {
			return nil, ErrInvalidLuckyNumbers
		}
		seen[key] = struct{}{}
		normalized = append(normalized, key)
	}
	return normalized, nil
}

// UpdateParams are the editable activity fields. Nil means unchanged.
type UpdateParams struct {
	Name         *string
	Description  *string
	ImageURL     *string
	TicketPrice  *float64
	TotalTickets *int
	StartDate    *time.Time
	EndDate      *time.Time
	AutoDraw     *bool
	LuckyCount   *int
}

// Update applies a partial edit. Changing the lucky count regenerates the
// lucky numbers, which is refused once the activity has recorded winners.
func (s *Service) Update(ctx context.Context, id int, params UpdateParams) (*domain.Activity, error) {
	activity, err := s.activityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}

	if params.Name != nil {
		if *params.Name == "" {
			return nil, ErrInvalidName
		}
		activity.Name = *params.Name
	}
	if params.Description != nil {
		activity.Description = *params.Description
	}
	if params.ImageURL != nil {
		activity.ImageURL = *params.ImageURL
	}
	if params.TicketPrice != nil {
		if *params.TicketPrice <= 0 {
			return nil, ErrInvalidPrice
		}
		activity.TicketPrice = *params.TicketPrice
	}
	if params.TotalTickets != nil {
		if *params.TotalTickets < 1 || *params.TotalTickets < activity.TicketsSold {
			return nil, ErrInvalidTotal
		}
		activity.TotalTickets = *params.TotalTickets
		activity.RecalcPercent()
	}
	if params.StartDate != nil {
		activity.StartDate = *params.StartDate
	}
	if params.EndDate != nil {
		activity.EndDate = *params.EndDate
	}
	if !activity.EndDate.After(activity.StartDate) {
		return nil, ErrInvalidDates
	}
	if params.AutoDraw != nil {
		activity.AutoDraw = *params.AutoDraw
	}

	if params.LuckyCount != nil && *params.LuckyCount != activity.LuckyCount {
		if *params.LuckyCount < 0 || *params.LuckyCount > maxLuckyCount {
			return nil, ErrInvalidLuckyCount
		}
		winners, err := s.winnerRepo.CountByActivityID(ctx, id)
		if err != nil {
			return nil, err
		}
		if winners > 0 {
			return nil, ErrLuckyNumbersLocked
		}
		activity.LuckyCount = *params.LuckyCount
		activity.LuckyNumbers = nil
		if activity.LuckyCount > 0 {
			if _, err := raffle.GenerateLuckyNumbers(s.gen, activity); err != nil {
				return nil, err
			}
		}
	}

	if err := s.activityRepo.Update(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *Service) GetActivities(ctx context.Context) ([]domain.Activity, error) {
	activities, err := s.activityRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get activities", zap.Error(err))
		return nil, err
	}
	return activities, nil
}

// PublicActivities lists activities visible on the storefront. Cancelled
// activities stay hidden.
func (s *Service) PublicActivities(ctx context.Context) ([]domain.Activity, error) {
	return s.activityRepo.FindByStatuses(ctx, []string{
		domain.ActiveActivityStatus,
		domain.DrawingActivityStatus,
		domain.FinishedActivityStatus,
	})
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Activity, error) {
	activity, err := s.activityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}
	return activity, nil
}

func (s *Service) GetByNumber(ctx context.Context, activityNumber string) (*domain.Activity, error) {
	activity, err := s.activityRepo.FindByNumber(ctx, activityNumber)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}
	return activity, nil
}

// Cancel marks an activity as cancelled. Only activities without orders can
// be cancelled.
func (s *Service) Cancel(ctx context.Context, id int) (*domain.Activity, error) {
	activity, err := s.activityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}

	orders, err := s.orderRepo.CountByActivityID(ctx, id)
	if err != nil {
		return nil, err
	}
	if orders > 0 {
		return nil, ErrActivityHasOrders
	}

	activity.Status = domain.CancelledActivityStatus
	if err := s.activityRepo.Update(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// Delete removes an activity. Activities with orders are never deleted.
func (s *Service) Delete(ctx context.Context, id int) error {
	activity, err := s.activityRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if activity == nil {
		return ErrActivityNotFound
	}

	orders, err := s.orderRepo.CountByActivityID(ctx, id)
	if err != nil {
		return err
	}
	if orders > 0 {
		return ErrActivityHasOrders
	}

	return s.activityRepo.Delete(ctx, id)
}

// Match is one paid order that holds at least one lucky number.
type Match struct {
	OrderNumber string
	Numbers     []string
}

// RaffleResult is the outcome of a full raffle run.
type RaffleResult struct {
	Matches    []Match
	MainWinner *domain.Winner
}

// ExecuteRaffle re-checks every paid order against the lucky numbers and
// assigns the main winner. Safe to repeat: recorded winners are kept and the
// main winner is drawn at most once.
func (s *Service) ExecuteRaffle(ctx context.Context, id int) (*RaffleResult, error) {
	var result *RaffleResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		activity, err := s.activityRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if activity == nil {
			return ErrActivityNotFound
		}
		if len(activity.LuckyNumbers) == 0 {
			return ErrNoLuckyNumbers
		}

		result, err = s.runRaffle(ctx, activity)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Draw is the manual draw trigger. It requires a fully sold active activity
// and moves it through the drawing state before assigning winners.
func (s *Service) Draw(ctx context.Context, id int) (*RaffleResult, error) {
	var result *RaffleResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		activity, err := s.activityRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if activity == nil {
			return ErrActivityNotFound
		}
		if activity.Status != domain.ActiveActivityStatus {
			return ErrActivityNotActive
		}
		activity.RecalcPercent()
		if activity.SoldPercent < 100 {
			return ErrNotFullySold
		}

		activity.Status = domain.DrawingActivityStatus
		if err := s.activityRepo.Update(ctx, activity); err != nil {
			return err
		}

		result, err = s.runRaffle(ctx, activity)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) runRaffle(ctx context.Context, activity *domain.Activity) (*RaffleResult, error) {
	orders, err := s.orderRepo.FindPaidWithNumbers(ctx, activity.ID)
	if err != nil {
		return nil, err
	}

	result := &RaffleResult{}
	for i := range orders {
		matched, err := s.matcher.CheckAndRecord(ctx, activity, &orders[i])
		if err != nil {
			return nil, err
		}
		if len(matched) > 0 {
			result.Matches = append(result.Matches, Match{
				OrderNumber: orders[i].OrderNumber,
				Numbers:     matched,
			})
		}
	}

	winner, err := s.drawer.Draw(ctx, activity)
	if err != nil {
		return nil, err
	}
	if winner == nil {
		return nil, ErrNothingToDraw
	}
	result.MainWinner = winner

	zap.L().Info("raffle executed",
		zap.String("activityNumber", activity.ActivityNumber),
		zap.Int("luckyMatches", len(result.Matches)),
		zap.String("winningNumber", winner.WinningNumber))
	return result, nil
}

// AssignMainWinner draws the grand-prize winner without touching the lucky
// numbers. Repeat calls return the already recorded winner.
func (s *Service) AssignMainWinner(ctx context.Context, id int) (*domain.Winner, error) {
	var winner *domain.Winner
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		activity, err := s.activityRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if activity == nil {
			return ErrActivityNotFound
		}

		winner, err = s.drawer.Draw(ctx, activity)
		if err != nil {
			return err
		}
		if winner == nil {
			return ErrNothingToDraw
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return winner, nil
}

// MarkAsFinished closes an activity that already has a main winner and
// announces the winner.
func (s *Service) MarkAsFinished(ctx context.Context, id int) (*domain.Activity, error) {
	activity, err := s.activityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}

	winner, err := s.winnerRepo.FindMainWinner(ctx, id)
	if err != nil {
		return nil, err
	}
	if winner == nil {
		return nil, ErrNoMainWinner
	}

	activity.Status = domain.FinishedActivityStatus
	if err := s.activityRepo.Update(ctx, activity); err != nil {
		return nil, err
	}

	if !winner.Announced {
		winner.Announced = true
		if err := s.winnerRepo.Update(ctx, winner); err != nil {
			return nil, err
		}
	}
	return activity, nil
}

// LuckyNumberStatus pairs a lucky number with its winner, nil while the
// number is still unclaimed.
type LuckyNumberStatus struct {
	Number string
	Winner *domain.Winner
}

// WinnersReport groups an activity's winners by lucky number plus the main
// winner when drawn.
type WinnersReport struct {
	LuckyNumbers []LuckyNumberStatus
	MainWinner   *domain.Winner
}

func (s *Service) WinnersByNumber(ctx context.Context, id int) (*WinnersReport, error) {
	activity, err := s.activityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}

	winners, err := s.winnerRepo.FindByActivityID(ctx, id)
	if err != nil {
		return nil, err
	}

	byNumber := make(map[string]*domain.Winner, len(winners))
	report := &WinnersReport{}
	for i := range winners {
		if winners[i].IsLuckyNumber {
			byNumber[winners[i].WinningNumber] = &winners[i]
		} else {
			report.MainWinner = &winners[i]
		}
	}

	for _, number := range activity.LuckyNumbers {
		report.LuckyNumbers = append(report.LuckyNumbers, LuckyNumberStatus{
			Number: number,
			Winner: byNumber[number],
		})
	}
	return report, nil
}

package orderservice

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/rifas-ec/rifas/internal/domain"
	"github.com/rifas-ec/rifas/internal/pg"
	"go.uber.org/zap"
)

type OrderRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByEmail(ctx context.Context, email string) ([]domain.Order, error)
	FindPaidWithoutNumbers(ctx context.Context) ([]domain.Order, error)
	NextOrderNumber(ctx context.Context) (int, error)
	Save(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id int) error
}

type ActivityRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Activity, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Activity, error)
	Update(ctx context.Context, activity *domain.Activity) error
}

type Allocator interface {
	Allocate(ctx context.Context, activity *domain.Activity, order *domain.Order) ([]string, error)
}

type Matcher interface {
	CheckAndRecord(ctx context.Context, activity *domain.Activity, order *domain.Order) ([]string, error)
}

type Drawer interface {
	Draw(ctx context.Context, activity *domain.Activity) (*domain.Winner, error)
}

type Notifier interface {
	PaymentInstructions(ctx context.Context, order *domain.Order) error
	PaymentConfirmation(ctx context.Context, order *domain.Order) error
}

type Service struct {
	orderRepo     OrderRepo
	activityRepo  ActivityRepo
	allocator     Allocator
	matcher       Matcher
	drawer        Drawer
	notifier      Notifier
	txManager     pg.TXManager
	paymentWindow time.Duration
}

func New(orderRepo OrderRepo, activityRepo ActivityRepo, allocator Allocator, matcher Matcher, drawer Drawer, notifier Notifier, txManager pg.TXManager, paymentWindow time.Duration) *Service {
	return &Service{
		orderRepo:     orderRepo,
		activityRepo:  activityRepo,
		allocator:     allocator,
		matcher:       matcher,
		drawer:        drawer,
		notifier:      notifier,
		txManager:     txManager,
		paymentWindow: paymentWindow,
	}
}

var (
	ErrActivityNotFound     = errors.New("activity not found")
	ErrActivityNotActive    = errors.New("activity is not available for new orders")
	ErrNotEnoughTickets     = errors.New("not enough tickets available")
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidQuantity      = errors.New("ticket quantity must be positive")
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")
	ErrInvalidStatus        = errors.New("unsupported order status")
	ErrCannotDeletePaid     = errors.New("paid orders can't be deleted")
)

var paymentMethods = map[string]struct{}{
	"transferencia": {},
	"deposito":      {},
}

var orderStatuses = map[string]struct{}{
	domain.PendingOrderStatus:   {},
	domain.PaidOrderStatus:      {},
	domain.CancelledOrderStatus: {},
}

// Create registers a storefront order in pending state with a payment
// deadline. Ticket numbers are not assigned until payment is confirmed.
func (s *Service) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if _, ok := paymentMethods[order.PaymentMethod]; !ok {
		return nil, ErrInvalidPaymentMethod
	}

	activity, err := s.activityRepo.FindByID(ctx, order.ActivityID)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}
	if activity.Status != domain.ActiveActivityStatus {
		return nil, ErrActivityNotActive
	}
	if order.Quantity > activity.AvailableTickets() {
		return nil, ErrNotEnoughTickets
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		next, err := s.orderRepo.NextOrderNumber(ctx)
		if err != nil {
			return err
		}
		order.OrderNumber = strconv.Itoa(next)
		order.TotalPaid = activity.TicketPrice * float64(order.Quantity)
		order.Status = domain.PendingOrderStatus
		order.PaymentDeadline = time.Now().Add(s.paymentWindow)
		order.CreatedAt = time.Now()

		return s.orderRepo.Save(ctx, order)
	})
	if err != nil {
		zap.L().Error("can't create order", zap.Error(err))
		return nil, err
	}

	if err := s.notifier.PaymentInstructions(ctx, order); err != nil {
		zap.L().Warn("can't send payment instructions",
			zap.String("orderNumber", order.OrderNumber),
			zap.Error(err))
	}

	return order, nil
}

func (s *Service) GetOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) GetByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	order, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) SearchByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("failed to search orders by email", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// UpdateParams are the admin-editable contact fields. Nil means unchanged.
type UpdateParams struct {
	CustomerEmail   *string
	CustomerName    *string
	CustomerPhone   *string
	CustomerAddress *string
	TaxID           *string
	AdminNotes      *string
}

func (s *Service) Update(ctx context.Context, id int, params UpdateParams) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if params.CustomerEmail != nil {
		order.CustomerEmail = *params.CustomerEmail
	}
	if params.CustomerName != nil {
		order.CustomerName = *params.CustomerName
	}
	if params.CustomerPhone != nil {
		order.CustomerPhone = *params.CustomerPhone
	}
	if params.CustomerAddress != nil {
		order.CustomerAddress = *params.CustomerAddress
	}
	if params.TaxID != nil {
		order.TaxID = *params.TaxID
	}
	if params.AdminNotes != nil {
		order.AdminNotes = *params.AdminNotes
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus moves an order between pending, paid and cancelled. The
// transition into paid runs allocation, lucky-number matching, counter
// updates and the auto-draw check in one transaction; leaving paid releases
// the assigned numbers and decrements the counters.
func (s *Service) UpdateStatus(ctx context.Context, id int, newStatus string, adminNotes *string) (*domain.Order, error) {
	if _, ok := orderStatuses[newStatus]; !ok {
		return nil, ErrInvalidStatus
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if adminNotes != nil {
		order.AdminNotes = *adminNotes
	}

	oldStatus := order.Status
	becamePaid := oldStatus != domain.PaidOrderStatus && newStatus == domain.PaidOrderStatus
	leftPaid := oldStatus == domain.PaidOrderStatus && newStatus != domain.PaidOrderStatus

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		switch {
		case becamePaid:
			return s.confirmPayment(ctx, order)
		case leftPaid:
			return s.revertPayment(ctx, order, newStatus)
		default:
			order.Status = newStatus
			return s.orderRepo.Update(ctx, order)
		}
	})
	if err != nil {
		return nil, err
	}

	if becamePaid {
		if err := s.notifier.PaymentConfirmation(ctx, order); err != nil {
			zap.L().Warn("can't send payment confirmation",
				zap.String("orderNumber", order.OrderNumber),
				zap.Error(err))
		}
	}

	return order, nil
}

// confirmPayment runs with the activity row locked so allocations for the
// same activity serialize.
func (s *Service) confirmPayment(ctx context.Context, order *domain.Order) error {
	activity, err := s.activityRepo.FindByIDForUpdate(ctx, order.ActivityID)
	if err != nil {
		return err
	}
	if activity == nil {
		return ErrActivityNotFound
	}
	if order.Quantity > activity.AvailableTickets() {
		return ErrNotEnoughTickets
	}

	order.Status = domain.PaidOrderStatus
	if _, err := s.allocator.Allocate(ctx, activity, order); err != nil {
		return err
	}
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return err
	}

	activity.TicketsSold += order.Quantity
	activity.RecalcPercent()

	matched, err := s.matcher.CheckAndRecord(ctx, activity, order)
	if err != nil {
		return err
	}
	if len(matched) > 0 {
		zap.L().Info("automatic winner assigned",
			zap.String("orderNumber", order.OrderNumber),
			zap.Strings("winningNumbers", matched))
	}

	if activity.SoldPercent >= 100 && activity.AutoDraw {
		activity.Status = domain.DrawingActivityStatus
		if err := s.activityRepo.Update(ctx, activity); err != nil {
			return err
		}
		if _, err := s.drawer.Draw(ctx, activity); err != nil {
			return err
		}
		return nil
	}

	return s.activityRepo.Update(ctx, activity)
}

func (s *Service) revertPayment(ctx context.Context, order *domain.Order, newStatus string) error {
	activity, err := s.activityRepo.FindByIDForUpdate(ctx, order.ActivityID)
	if err != nil {
		return err
	}
	if activity == nil {
		return ErrActivityNotFound
	}

	activity.TicketsSold -= order.Quantity
	activity.RecalcPercent()

	order.Status = newStatus
	order.TicketNumbers = nil

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return err
	}
	return s.activityRepo.Update(ctx, activity)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if order.Status == domain.PaidOrderStatus {
		return ErrCannotDeletePaid
	}
	return s.orderRepo.Delete(ctx, id)
}

// Repair allocates ticket numbers for paid orders that are missing them and
// re-runs the lucky-number check. Returns the number of orders fixed.
func (s *Service) Repair(ctx context.Context) (int, error) {
	orders, err := s.orderRepo.FindPaidWithoutNumbers(ctx)
	if err != nil {
		return 0, err
	}

	fixed := 0
	for i := range orders {
		order := &orders[i]
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			activity, err := s.activityRepo.FindByIDForUpdate(ctx, order.ActivityID)
			if err != nil {
				return err
			}
			if activity == nil {
				return ErrActivityNotFound
			}
			if _, err := s.allocator.Allocate(ctx, activity, order); err != nil {
				return err
			}
			_, err = s.matcher.CheckAndRecord(ctx, activity, order)
			return err
		})
		if err != nil {
			zap.L().Error("can't repair order",
				zap.String("orderNumber", order.OrderNumber),
				zap.Error(err))
			continue
		}
		fixed++
	}
	return fixed, nil
}

package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rifas-ec/rifas/internal/domain"
	"github.com/rifas-ec/rifas/internal/dto"
	orderservice "github.com/rifas-ec/rifas/internal/service/orderservice"
	"github.com/rifas-ec/rifas/pkg/numberpool"
	"github.com/rifas-ec/rifas/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrders(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id int) (*domain.Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	SearchByEmail(ctx context.Context, email string) ([]domain.Order, error)
	Update(ctx context.Context, id int, params orderservice.UpdateParams) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int, newStatus string, adminNotes *string) (*domain.Order, error)
	Delete(ctx context.Context, id int) error
	Repair(ctx context.Context) (int, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// Create godoc
//
//	@Summary		Place a storefront order
//	@Description	Reserves tickets in pending state. Numbers are assigned when the payment is confirmed.
//	@Tags			Public
//	@Accept			json
//	@Produce		json
//	@Param			order	body		dto.CreateOrderRequestDTO	true	"New order"
//	@Success		201		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Activity not found"
//	@Failure		409		{object}	utils.Response	"Activity not available"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/public/pedidos [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := mail.ParseAddress(req.CustomerEmail); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid email_cliente")
		return
	}
	if req.CustomerName == "" {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "nombre_cliente is required")
		return
	}

	order, err := h.orderService.Create(r.Context(), &domain.Order{
		ActivityID:      req.ActivityID,
		CustomerEmail:   req.CustomerEmail,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		TaxID:           req.TaxID,
		Quantity:        req.Quantity,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(order))
}

// Track godoc
//
//	@Summary		Track an order by its number
//	@Tags			Public
//	@Produce		json
//	@Param			numeroPedido	path		string	true	"Order number"
//	@Success		200				{object}	dto.OrderResponseDTO
//	@Failure		404				{object}	utils.Response	"Order not found"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/public/pedidos/{numeroPedido} [get]
func (h *OrderHandler) Track(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.GetByOrderNumber(r.Context(), chi.URLParam(r, "numeroPedido"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(order))
}

// Search godoc
//
//	@Summary		Find orders by customer email
//	@Tags			Public
//	@Produce		json
//	@Param			email	query		string	true	"Customer email"
//	@Success		200		{array}		dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Email is required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/public/pedidos/buscar [get]
func (h *OrderHandler) Search(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "email is required")
		return
	}

	orders, err := h.orderService.SearchByEmail(r.Context(), email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for i := range orders {
		response = append(response, toDTO(&orders[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// List godoc
//
//	@Summary		List all orders
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/pedidos [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.GetOrders(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for i := range orders {
		response = append(response, toDTO(&orders[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary		Get an order
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Order ID"
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/pedidos/{id} [get]
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := h.orderService.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(order))
}

// Update godoc
//
//	@Summary		Update order contact details
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int							true	"Order ID"
//	@Param			order	body		dto.UpdateOrderRequestDTO	true	"Fields to change"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/pedidos/{id} [put]
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req dto.UpdateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.Update(r.Context(), id, orderservice.UpdateParams{
		CustomerEmail:   req.CustomerEmail,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		TaxID:           req.TaxID,
		AdminNotes:      req.AdminNotes,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(order))
}

// UpdateStatus godoc
//
//	@Summary		Change an order status
//	@Description	Moving an order into pagado assigns ticket numbers, checks the lucky numbers and may trigger the automatic draw.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int								true	"Order ID"
//	@Param			status	body		dto.UpdateOrderStatusRequestDTO	true	"New status"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		422		{object}	utils.Response	"Transition refused"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/pedidos/{id}/estado [patch]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req dto.UpdateOrderStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(r.Context(), id, req.Status, req.AdminNotes)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(order))
}

// Delete godoc
//
//	@Summary		Delete an unpaid order
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Order ID"
//	@Success		200	{object}	utils.Response	"Order deleted"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Paid orders can't be deleted"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/pedidos/{id} [delete]
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	if err := h.orderService.Delete(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Order deleted"})
}

// Repair godoc
//
//	@Summary		Assign numbers to paid orders that are missing them
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RepairResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/pedidos/reparar [post]
func (h *OrderHandler) Repair(w http.ResponseWriter, r *http.Request) {
	fixed, err := h.orderService.Repair(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RepairResponseDTO{Fixed: fixed})
}

func (h *OrderHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orderservice.ErrOrderNotFound),
		errors.Is(err, orderservice.ErrActivityNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, orderservice.ErrActivityNotActive),
		errors.Is(err, orderservice.ErrCannotDeletePaid):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, orderservice.ErrNotEnoughTickets),
		errors.Is(err, orderservice.ErrInvalidQuantity),
		errors.Is(err, orderservice.ErrInvalidPaymentMethod),
		errors.Is(err, orderservice.ErrInvalidStatus),
		errors.Is(err, numberpool.ErrCapacityExceeded):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func parseID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func toDTO(order *domain.Order) dto.OrderResponseDTO {
	return dto.OrderResponseDTO{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		ActivityID:      order.ActivityID,
		CustomerEmail:   order.CustomerEmail,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerAddress: order.CustomerAddress,
		TaxID:           order.TaxID,
		Quantity:        order.Quantity,
		TotalPaid:       order.TotalPaid,
		PaymentMethod:   order.PaymentMethod,
		Status:          order.Status,
		PaymentDeadline: order.PaymentDeadline,
		TicketNumbers:   order.TicketNumbers,
		AdminNotes:      order.AdminNotes,
		CreatedAt:       order.CreatedAt,
	}
}

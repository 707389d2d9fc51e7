// Package notification delivers customer-facing notices (payment
// instructions, payment confirmation) to an external delivery service over a
// webhook. Delivery is best effort: callers log failures and keep going, a
// lost notice never rolls back a confirmed payment.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rifas-ec/rifas/internal/config"
	"github.com/rifas-ec/rifas/internal/domain"
	"github.com/rifas-ec/rifas/pkg/clients"
)

const (
	EventPaymentInstructions = "payment_instructions"
	EventPaymentConfirmation = "payment_confirmation"
)

type Event struct {
	Type          string    `json:"type"`
	OrderNumber   string    `json:"numero_pedido"`
	CustomerEmail string    `json:"email_cliente"`
	CustomerName  string    `json:"nombre_cliente"`
	TotalPaid     float64   `json:"total_pagado"`
	Deadline      time.Time `json:"fecha_limite_pago"`
	TicketNumbers []string  `json:"numeros_boletos,omitempty"`
}

type Webhook struct {
	url    string
	client clients.HTTPClientI
}

func NewWebhook(cfg *config.Config, client clients.HTTPClientI) *Webhook {
	return &Webhook{
		url:    cfg.NotifyURL,
		client: client,
	}
}

func (w *Webhook) PaymentInstructions(ctx context.Context, order *domain.Order) error {
	return w.send(ctx, Event{
		Type:          EventPaymentInstructions,
		OrderNumber:   order.OrderNumber,
		CustomerEmail: order.CustomerEmail,
		CustomerName:  order.CustomerName,
		TotalPaid:     order.TotalPaid,
		Deadline:      order.PaymentDeadline,
	})
}

func (w *Webhook) PaymentConfirmation(ctx context.Context, order *domain.Order) error {
	return w.send(ctx, Event{
		Type:          EventPaymentConfirmation,
		OrderNumber:   order.OrderNumber,
		CustomerEmail: order.CustomerEmail,
		CustomerName:  order.CustomerName,
		TotalPaid:     order.TotalPaid,
		Deadline:      order.PaymentDeadline,
		TicketNumbers: order.TicketNumbers,
	})
}

func (w *Webhook) send(ctx context.Context, event Event) error {
	if w.url == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("can't marshal %s event: %w", event.Type, err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	statusCode, _, err := w.client.Post(w.url, headers, body)
	if err != nil {
		return fmt.Errorf("can't deliver %s event: %w", event.Type, err)
	}
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notification endpoint returned status %d for %s event", statusCode, event.Type)
	}
	return nil
}

package notification

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/rifas-ec/rifas/internal/config"
	"github.com/rifas-ec/rifas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	statusCode int
	err        error

	gotURL  string
	gotBody []byte
}

func (f *fakeClient) Do(req *http.Request) (*http.Response, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeClient) Get(url string, headers http.Header) (int, []byte, http.Header, error) {
	return 0, nil, nil, errors.New("not implemented")
}

func (f *fakeClient) Post(url string, headers http.Header, body []byte) (int, []byte, error) {
	f.gotURL = url
	f.gotBody = body
	return f.statusCode, nil, f.err
}

func TestPaymentConfirmation(t *testing.T) {
	client := &fakeClient{statusCode: http.StatusOK}
	webhook := NewWebhook(&config.Config{NotifyURL: "http://localhost:9100/hooks"}, client)

	order := &domain.Order{
		OrderNumber:     "15",
		CustomerEmail:   "cliente@example.com",
		CustomerName:    "Maria Lopez",
		TotalPaid:       30,
		PaymentDeadline: time.Now().Add(time.Hour),
		TicketNumbers:   []string{"00003", "00007"},
	}

	err := webhook.PaymentConfirmation(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9100/hooks", client.gotURL)

	var event Event
	require.NoError(t, json.Unmarshal(client.gotBody, &event))
	assert.Equal(t, EventPaymentConfirmation, event.Type)
	assert.Equal(t, "15", event.OrderNumber)
	assert.Equal(t, []string{"00003", "00007"}, event.TicketNumbers)
}

func TestPaymentInstructions(t *testing.T) {
	client := &fakeClient{statusCode: http.StatusOK}
	webhook := NewWebhook(&config.Config{NotifyURL: "http://localhost:9100/hooks"}, client)

	err := webhook.PaymentInstructions(context.Background(), &domain.Order{OrderNumber: "16"})
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(client.gotBody, &event))
	assert.Equal(t, EventPaymentInstructions, event.Type)
	assert.Empty(t, event.TicketNumbers)
}

func TestSendFailures(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeClient
	}{
		{
			name:   "Transport error",
			client: &fakeClient{err: errors.New("connection refused")},
		},
		{
			name:   "Non-2xx status",
			client: &fakeClient{statusCode: http.StatusBadGateway},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			webhook := NewWebhook(&config.Config{NotifyURL: "http://localhost:9100/hooks"}, tt.client)
			err := webhook.PaymentInstructions(context.Background(), &domain.Order{OrderNumber: "17"})
			assert.Error(t, err)
		})
	}
}

func TestSendDisabledWithoutURL(t *testing.T) {
	client := &fakeClient{}
	webhook := NewWebhook(&config.Config{}, client)

	err := webhook.PaymentConfirmation(context.Background(), &domain.Order{OrderNumber: "18"})
	require.NoError(t, err)
	assert.Empty(t, client.gotURL)
}

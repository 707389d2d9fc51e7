package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/rifas-ec/rifas/docs"
	"github.com/rifas-ec/rifas/internal/handlers/activities"
	"github.com/rifas-ec/rifas/internal/handlers/orders"
	"github.com/rifas-ec/rifas/internal/handlers/winners"
	"github.com/rifas-ec/rifas/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		ActivityService: activities.NewMockService(ctrl),
		OrderService:    orders.NewMockService(ctrl),
		WinnerService:   winners.NewMockService(ctrl),
		StatsService:    activities.NewMockStatsService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockActivityHandler := NewMockActivityHandler(ctrl)
	mockOrderHandler := NewMockOrderHandler(ctrl)
	mockWinnerHandler := NewMockWinnerHandler(ctrl)

	mockActivityHandler.EXPECT().PublicList(gomock.Any(), gomock.Any()).AnyTimes()
	mockActivityHandler.EXPECT().PublicGet(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().Search(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().Track(gomock.Any(), gomock.Any()).AnyTimes()
	mockWinnerHandler.EXPECT().PublicList(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		ActivityHandler: mockActivityHandler,
		OrderHandler:    mockOrderHandler,
		WinnerHandler:   mockWinnerHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/api/public/actividades", http.StatusOK},
		{"GET", "/api/public/actividades/7", http.StatusOK},
		{"GET", "/api/public/ganadores", http.StatusOK},
		{"POST", "/api/public/pedidos/", http.StatusOK},
		{"GET", "/api/public/pedidos/buscar", http.StatusOK},
		{"GET", "/api/public/pedidos/15", http.StatusOK},
		{"GET", "/api/admin/dashboard", http.StatusUnauthorized},
		{"GET", "/api/admin/actividades/", http.StatusUnauthorized},
		{"POST", "/api/admin/actividades/1/sorteo", http.StatusUnauthorized},
		{"GET", "/api/admin/pedidos/", http.StatusUnauthorized},
		{"PATCH", "/api/admin/pedidos/3/estado", http.StatusUnauthorized},
		{"GET", "/api/admin/ganadores/", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

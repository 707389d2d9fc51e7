package handlers

import (
	"net/http"

	_ "github.com/rifas-ec/rifas/docs"
	activitieshandlers "github.com/rifas-ec/rifas/internal/handlers/activities"
	ordershandlers "github.com/rifas-ec/rifas/internal/handlers/orders"
	winnershandlers "github.com/rifas-ec/rifas/internal/handlers/winners"
	"github.com/rifas-ec/rifas/internal/service"
	"github.com/rifas-ec/rifas/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ActivityHandler interface {
	PublicList(w http.ResponseWriter, r *http.Request)
	PublicGet(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ExecuteRaffle(w http.ResponseWriter, r *http.Request)
	Draw(w http.ResponseWriter, r *http.Request)
	AssignMainWinner(w http.ResponseWriter, r *http.Request)
	Finish(w http.ResponseWriter, r *http.Request)
	Winners(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Track(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Repair(w http.ResponseWriter, r *http.Request)
}

type WinnerHandler interface {
	PublicList(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	ToggleAnnounced(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	ActivityHandler ActivityHandler
	OrderHandler    OrderHandler
	WinnerHandler   WinnerHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		ActivityHandler: activitieshandlers.New(s.ActivityService, s.StatsService),
		OrderHandler:    ordershandlers.New(s.OrderService),
		WinnerHandler:   winnershandlers.New(s.WinnerService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/public", func(r chi.Router) {
		r.Get("/actividades", h.ActivityHandler.PublicList)
		r.Get("/actividades/{numero}", h.ActivityHandler.PublicGet)
		r.Get("/ganadores", h.WinnerHandler.PublicList)
		r.Route("/pedidos", func(r chi.Router) {
			r.Post("/", h.OrderHandler.Create)
			r.Get("/buscar", h.OrderHandler.Search)
			r.Get("/{numeroPedido}", h.OrderHandler.Track)
		})
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Get("/dashboard", h.ActivityHandler.Dashboard)
		r.Route("/actividades", func(r chi.Router) {
			r.Get("/", h.ActivityHandler.List)
			r.Post("/", h.ActivityHandler.Create)
			r.Get("/{id}", h.ActivityHandler.Get)
			r.Put("/{id}", h.ActivityHandler.Update)
			r.Delete("/{id}", h.ActivityHandler.Delete)
			r.Post("/{id}/cancelar", h.ActivityHandler.Cancel)
			r.Post("/{id}/sorteo", h.ActivityHandler.Draw)
			r.Post("/{id}/ejecutar-sorteo", h.ActivityHandler.ExecuteRaffle)
			r.Post("/{id}/ganador-principal", h.ActivityHandler.AssignMainWinner)
			r.Post("/{id}/finalizar", h.ActivityHandler.Finish)
			r.Get("/{id}/ganadores", h.ActivityHandler.Winners)
		})
		r.Route("/pedidos", func(r chi.Router) {
			r.Get("/", h.OrderHandler.List)
			r.Post("/reparar", h.OrderHandler.Repair)
			r.Get("/{id}", h.OrderHandler.Get)
			r.Put("/{id}", h.OrderHandler.Update)
			r.Patch("/{id}/estado", h.OrderHandler.UpdateStatus)
			r.Delete("/{id}", h.OrderHandler.Delete)
		})
		r.Route("/ganadores", func(r chi.Router) {
			r.Get("/", h.WinnerHandler.List)
			r.Post("/", h.WinnerHandler.Create)
			r.Get("/{id}", h.WinnerHandler.Get)
			r.Put("/{id}", h.WinnerHandler.Update)
			r.Patch("/{id}/anunciado", h.WinnerHandler.ToggleAnnounced)
			r.Delete("/{id}", h.WinnerHandler.Delete)
		})
	})

	return r
}

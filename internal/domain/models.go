package domain

import "time"

const (
	// ActiveActivityStatus venta de boletos abierta;
	ActiveActivityStatus string = "activa"
	// DrawingActivityStatus todos los boletos vendidos, sorteo en curso;
	DrawingActivityStatus string = "sorteo_en_curso"
	// FinishedActivityStatus ganador principal asignado;
	FinishedActivityStatus string = "finalizada"
	// CancelledActivityStatus actividad cancelada sin ordenes;
	CancelledActivityStatus string = "cancelada"
)

const (
	PendingOrderStatus   string = "pendiente"
	PaidOrderStatus      string = "pagado"
	CancelledOrderStatus string = "cancelado"
)

type Activity struct {
	ID             int       `db:"id"`
	Name           string    `db:"nombre"`
	Description    string    `db:"descripcion"`
	ImageURL       string    `db:"imagen_url"`
	TicketPrice    float64   `db:"precio_boleto"`
	TotalTickets   int       `db:"total_boletos"`
	TicketsSold    int       `db:"boletos_vendidos"`
	ActivityNumber string    `db:"actividad_numero"`
	StartDate      time.Time `db:"fecha_inicio"`
	EndDate        time.Time `db:"fecha_fin"`
	Status         string    `db:"estado"`
	SoldPercent    float64   `db:"porcentaje_vendido"`
	AutoDraw       bool      `db:"sorteo_automatico"`
	LuckyCount     int       `db:"cantidad_numeros_suerte"`
	LuckyNumbers   []string  `db:"numeros_premiados"`
	CreatedAt      time.Time `db:"created_at"`
}

// AvailableTickets is the number of tickets still open for sale.
func (a *Activity) AvailableTickets() int {
	return a.TotalTickets - a.TicketsSold
}

// RecalcPercent recomputes the sold percentage from the counters. The stored
// value is a cache of this derivation, never an input.
func (a *Activity) RecalcPercent() {
	if a.TotalTickets == 0 {
		a.SoldPercent = 0
		return
	}
	a.SoldPercent = float64(a.TicketsSold) / float64(a.TotalTickets) * 100
}

type Order struct {
	ID              int       `db:"id"`
	OrderNumber     string    `db:"numero_pedido"`
	ActivityID      int       `db:"activity_id"`
	CustomerEmail   string    `db:"email_cliente"`
	CustomerName    string    `db:"nombre_cliente"`
	CustomerPhone   string    `db:"telefono_cliente"`
	CustomerAddress string    `db:"direccion_cliente"`
	TaxID           string    `db:"cedula_ruc"`
	Quantity        int       `db:"cantidad_boletos"`
	TotalPaid       float64   `db:"total_pagado"`
	PaymentMethod   string    `db:"metodo_pago"`
	Status          string    `db:"estado"`
	PaymentDeadline time.Time `db:"fecha_limite_pago"`
	TicketNumbers   []string  `db:"numeros_boletos"`
	AdminNotes      string    `db:"notas_admin"`
	CreatedAt       time.Time `db:"created_at"`
}

// DashboardStats son los contadores del panel de administracion.
type DashboardStats struct {
	TotalActivities    int     `db:"total_actividades"`
	ActiveActivities   int     `db:"actividades_activas"`
	TotalOrders        int     `db:"total_pedidos"`
	PendingOrders      int     `db:"pedidos_pendientes"`
	PaidOrders         int     `db:"pedidos_pagados"`
	TicketsSold        int     `db:"boletos_vendidos"`
	TotalRevenue       float64 `db:"ingresos_totales"`
	TotalWinners       int     `db:"total_ganadores"`
	UnannouncedWinners int     `db:"ganadores_sin_anunciar"`
}

type Winner struct {
	ID            int       `db:"id"`
	ActivityID    int       `db:"activity_id"`
	OrderID       int       `db:"order_id"`
	WinningNumber string    `db:"numero_ganador"`
	IsLuckyNumber bool      `db:"es_numero_premiado"`
	DrawDate      time.Time `db:"fecha_sorteo"`
	Announced     bool      `db:"anunciado_en_instagram"`
	Notes         string    `db:"notas"`
	CreatedAt     time.Time `db:"created_at"`
}

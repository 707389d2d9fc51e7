package dto

import "time"

type CreateActivityRequestDTO struct {
	Name           string   `json:"nombre" validate:"required,max=255"`
	Description    string   `json:"descripcion"`
	ImageURL       string   `json:"imagen_url"`
	TicketPrice    float64  `json:"precio_boleto" validate:"required,gt=0" example:"2.5"`
	TotalTickets   int      `json:"total_boletos" validate:"required,min=1" example:"100"`
	ActivityNumber string   `json:"actividad_numero,omitempty" example:"7"`
	StartDate      string   `json:"fecha_inicio" example:"2026-09-01"`
	EndDate        string   `json:"fecha_fin" example:"2026-10-01"`
	AutoDraw       bool     `json:"sorteo_automatico"`
	LuckyCount     int      `json:"cantidad_numeros_suerte" validate:"min=0,max=20" example:"5"`
	LuckyNumbers   []string `json:"numeros_premiados,omitempty" example:"00007,00042"`
}

type UpdateActivityRequestDTO struct {
	Name         *string  `json:"nombre,omitempty"`
	Description  *string  `json:"descripcion,omitempty"`
	ImageURL     *string  `json:"imagen_url,omitempty"`
	TicketPrice  *float64 `json:"precio_boleto,omitempty" example:"2.5"`
	TotalTickets *int     `json:"total_boletos,omitempty" example:"200"`
	StartDate    *string  `json:"fecha_inicio,omitempty" example:"2026-09-01"`
	EndDate      *string  `json:"fecha_fin,omitempty" example:"2026-10-01"`
	AutoDraw     *bool    `json:"sorteo_automatico,omitempty"`
	LuckyCount   *int     `json:"cantidad_numeros_suerte,omitempty" example:"5"`
}

type ActivityResponseDTO struct {
	ID             int      `json:"id" example:"1"`
	Name           string   `json:"nombre"`
	Description    string   `json:"descripcion,omitempty"`
	ImageURL       string   `json:"imagen_url,omitempty"`
	TicketPrice    float64  `json:"precio_boleto" example:"2.5"`
	TotalTickets   int      `json:"total_boletos" example:"100"`
	TicketsSold    int      `json:"boletos_vendidos" example:"42"`
	Available      int      `json:"boletos_disponibles" example:"58"`
	ActivityNumber string   `json:"actividad_numero" example:"7"`
	StartDate      string   `json:"fecha_inicio" example:"2026-09-01"`
	EndDate        string   `json:"fecha_fin" example:"2026-10-01"`
	Status         string   `json:"estado" example:"activa"`
	SoldPercent    float64  `json:"porcentaje_vendido" example:"42"`
	AutoDraw       bool     `json:"sorteo_automatico"`
	LuckyCount     int      `json:"cantidad_numeros_suerte" example:"5"`
	LuckyNumbers   []string `json:"numeros_premiados,omitempty" example:"00007,00042"`
}

// PublicActivityResponseDTO hides the lucky numbers from the storefront.
type PublicActivityResponseDTO struct {
	ID             int     `json:"id" example:"1"`
	Name           string  `json:"nombre"`
	Description    string  `json:"descripcion,omitempty"`
	ImageURL       string  `json:"imagen_url,omitempty"`
	TicketPrice    float64 `json:"precio_boleto" example:"2.5"`
	TotalTickets   int     `json:"total_boletos" example:"100"`
	TicketsSold    int     `json:"boletos_vendidos" example:"42"`
	Available      int     `json:"boletos_disponibles" example:"58"`
	ActivityNumber string  `json:"actividad_numero" example:"7"`
	StartDate      string  `json:"fecha_inicio" example:"2026-09-01"`
	EndDate        string  `json:"fecha_fin" example:"2026-10-01"`
	Status         string  `json:"estado" example:"activa"`
	SoldPercent    float64 `json:"porcentaje_vendido" example:"42"`
	LuckyCount     int     `json:"cantidad_numeros_suerte" example:"5"`
}

type RaffleResultResponseDTO struct {
	Matches    []RaffleMatchDTO   `json:"ganadores_suerte"`
	MainWinner *WinnerResponseDTO `json:"ganador_principal,omitempty"`
}

type RaffleMatchDTO struct {
	OrderNumber string   `json:"numero_pedido" example:"15"`
	Numbers     []string `json:"numeros" example:"00007"`
}

type LuckyNumberStatusDTO struct {
	Number string             `json:"numero" example:"00007"`
	Winner *WinnerResponseDTO `json:"ganador,omitempty"`
}

type WinnersReportResponseDTO struct {
	LuckyNumbers []LuckyNumberStatusDTO `json:"numeros_premiados"`
	MainWinner   *WinnerResponseDTO     `json:"ganador_principal,omitempty"`
}

type DashboardStatsResponseDTO struct {
	TotalActivities    int       `json:"total_actividades" example:"12"`
	ActiveActivities   int       `json:"actividades_activas" example:"3"`
	TotalOrders        int       `json:"total_pedidos" example:"240"`
	PendingOrders      int       `json:"pedidos_pendientes" example:"12"`
	PaidOrders         int       `json:"pedidos_pagados" example:"220"`
	TicketsSold        int       `json:"boletos_vendidos" example:"830"`
	TotalRevenue       float64   `json:"ingresos_totales" example:"2075.5"`
	TotalWinners       int       `json:"total_ganadores" example:"18"`
	UnannouncedWinners int       `json:"ganadores_sin_anunciar" example:"2"`
	GeneratedAt        time.Time `json:"generado_en"`
}

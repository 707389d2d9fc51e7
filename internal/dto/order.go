package dto

import "time"

type CreateOrderRequestDTO struct {
	ActivityID      int    `json:"activity_id" validate:"required" example:"1"`
	CustomerEmail   string `json:"email_cliente" validate:"required,email" example:"cliente@example.com"`
	CustomerName    string `json:"nombre_cliente" validate:"required,max=255"`
	CustomerPhone   string `json:"telefono_cliente,omitempty" example:"+593991234567"`
	CustomerAddress string `json:"direccion_cliente,omitempty"`
	TaxID           string `json:"cedula_ruc,omitempty" example:"1712345678"`
	Quantity        int    `json:"cantidad_boletos" validate:"required,min=1" example:"4"`
	PaymentMethod   string `json:"metodo_pago" validate:"required,oneof=transferencia deposito" example:"transferencia"`
}

type UpdateOrderRequestDTO struct {
	CustomerEmail   *string `json:"email_cliente,omitempty"`
	CustomerName    *string `json:"nombre_cliente,omitempty"`
	CustomerPhone   *string `json:"telefono_cliente,omitempty"`
	CustomerAddress *string `json:"direccion_cliente,omitempty"`
	TaxID           *string `json:"cedula_ruc,omitempty"`
	AdminNotes      *string `json:"notas_admin,omitempty"`
}

type UpdateOrderStatusRequestDTO struct {
	Status     string  `json:"estado" validate:"required,oneof=pendiente pagado cancelado" example:"pagado"`
	AdminNotes *string `json:"notas_admin,omitempty"`
}

type OrderResponseDTO struct {
	ID              int       `json:"id" example:"3"`
	OrderNumber     string    `json:"numero_pedido" example:"15"`
	ActivityID      int       `json:"activity_id" example:"1"`
	CustomerEmail   string    `json:"email_cliente" example:"cliente@example.com"`
	CustomerName    string    `json:"nombre_cliente"`
	CustomerPhone   string    `json:"telefono_cliente,omitempty"`
	CustomerAddress string    `json:"direccion_cliente,omitempty"`
	TaxID           string    `json:"cedula_ruc,omitempty"`
	Quantity        int       `json:"cantidad_boletos" example:"4"`
	TotalPaid       float64   `json:"total_pagado" example:"10"`
	PaymentMethod   string    `json:"metodo_pago" example:"transferencia"`
	Status          string    `json:"estado" example:"pendiente"`
	PaymentDeadline time.Time `json:"fecha_limite_pago"`
	TicketNumbers   []string  `json:"numeros_boletos,omitempty" example:"00011,00012"`
	AdminNotes      string    `json:"notas_admin,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type RepairResponseDTO struct {
	Fixed int `json:"pedidos_reparados" example:"2"`
}

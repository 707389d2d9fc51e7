package dto

import "time"

type CreateWinnerRequestDTO struct {
	ActivityID    int    `json:"activity_id" validate:"required" example:"1"`
	OrderID       int    `json:"order_id" validate:"required" example:"3"`
	WinningNumber string `json:"numero_ganador" validate:"required" example:"00007"`
	IsLuckyNumber bool   `json:"es_numero_premiado" example:"true"`
	Notes         string `json:"notas,omitempty"`
}

type UpdateWinnerRequestDTO struct {
	Notes     *string `json:"notas,omitempty"`
	Announced *bool   `json:"anunciado_en_instagram,omitempty"`
}

type WinnerResponseDTO struct {
	ID            int       `json:"id" example:"9"`
	ActivityID    int       `json:"activity_id" example:"1"`
	OrderID       int       `json:"order_id" example:"3"`
	WinningNumber string    `json:"numero_ganador" example:"00007"`
	IsLuckyNumber bool      `json:"es_numero_premiado" example:"true"`
	DrawDate      time.Time `json:"fecha_sorteo"`
	Announced     bool      `json:"anunciado_en_instagram"`
	Notes         string    `json:"notas,omitempty"`
}

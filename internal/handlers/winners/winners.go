package winners

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rifas-ec/rifas/internal/domain"
	"github.com/rifas-ec/rifas/internal/dto"
	winnerservice "github.com/rifas-ec/rifas/internal/service/winnerservice"
	"github.com/rifas-ec/rifas/pkg/utils"
)

type Service interface {
	GetWinners(ctx context.Context) ([]domain.Winner, error)
	PublicWinners(ctx context.Context) ([]domain.Winner, error)
	GetByID(ctx context.Context, id int) (*domain.Winner, error)
	Create(ctx context.Context, winner *domain.Winner) (*domain.Winner, error)
	Update(ctx context.Context, id int, params winnerservice.UpdateParams) (*domain.Winner, error)
	ToggleAnnounced(ctx context.Context, id int) (*domain.Winner, error)
	Delete(ctx context.Context, id int) error
}

type WinnerHandler struct {
	winnerService Service
}

func New(winnerService Service) *WinnerHandler {
	return &WinnerHandler{
		winnerService: winnerService,
	}
}

// PublicList godoc
//
//	@Summary		List announced winners
//	@Tags			Public
//	@Produce		json
//	@Success		200	{array}		dto.WinnerResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/public/ganadores [get]
func (h *WinnerHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	winners, err := h.winnerService.PublicWinners(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTOs(winners))
}

// List godoc
//
//	@Summary		List all winners
//	@Tags			Winners
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.WinnerResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/ganadores [get]
func (h *WinnerHandler) List(w http.ResponseWriter, r *http.Request) {
	winners, err := h.winnerService.GetWinners(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTOs(winners))
}

// Get godoc
//
//	@Summary		Get a winner
//	@Tags			Winners
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Winner ID"
//	@Success		200	{object}	dto.WinnerResponseDTO
//	@Failure		404	{object}	utils.Response	"Winner not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/ganadores/{id} [get]
func (h *WinnerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid winner id")
		return
	}

	winner, err := h.winnerService.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(winner))
}

// Create godoc
//
//	@Summary		Record a winner by hand
//	@Tags			Winners
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			winner	body		dto.CreateWinnerRequestDTO	true	"New winner"
//	@Success		201		{object}	dto.WinnerResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Activity or order not found"
//	@Failure		409		{object}	utils.Response	"Number already has a winner"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/ganadores [post]
func (h *WinnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWinnerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	winner, err := h.winnerService.Create(r.Context(), &domain.Winner{
		ActivityID:    req.ActivityID,
		OrderID:       req.OrderID,
		WinningNumber: req.WinningNumber,
		IsLuckyNumber: req.IsLuckyNumber,
		Notes:         req.Notes,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(winner))
}

// Update godoc
//
//	@Summary		Update winner notes or announcement
//	@Tags			Winners
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int							true	"Winner ID"
//	@Param			winner	body		dto.UpdateWinnerRequestDTO	true	"Fields to change"
//	@Success		200		{object}	dto.WinnerResponseDTO
//	@Failure		404		{object}	utils.Response	"Winner not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/ganadores/{id} [put]
func (h *WinnerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid winner id")
		return
	}

	var req dto.UpdateWinnerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	winner, err := h.winnerService.Update(r.Context(), id, winnerservice.UpdateParams{
		Notes:     req.Notes,
		Announced: req.Announced,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(winner))
}

// ToggleAnnounced godoc
//
//	@Summary		Toggle the Instagram announcement flag
//	@Tags			Winners
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Winner ID"
//	@Success		200	{object}	dto.WinnerResponseDTO
//	@Failure		404	{object}	utils.Response	"Winner not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/ganadores/{id}/anunciado [patch]
func (h *WinnerHandler) ToggleAnnounced(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid winner id")
		return
	}

	winner, err := h.winnerService.ToggleAnnounced(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(winner))
}

// Delete godoc
//
//	@Summary		Delete a winner record
//	@Tags			Winners
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Winner ID"
//	@Success		200	{object}	utils.Response	"Winner deleted"
//	@Failure		404	{object}	utils.Response	"Winner not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/ganadores/{id} [delete]
func (h *WinnerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid winner id")
		return
	}

	if err := h.winnerService.Delete(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Winner deleted"})
}

func (h *WinnerHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, winnerservice.ErrWinnerNotFound),
		errors.Is(err, winnerservice.ErrActivityNotFound),
		errors.Is(err, winnerservice.ErrOrderNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, winnerservice.ErrNumberAlreadyWon),
		errors.Is(err, winnerservice.ErrMainWinnerExists):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, winnerservice.ErrLuckyNumberUnknown),
		errors.Is(err, winnerservice.ErrNumberNotInOrder):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func parseID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func toDTO(winner *domain.Winner) dto.WinnerResponseDTO {
	return dto.WinnerResponseDTO{
		ID:            winner.ID,
		ActivityID:    winner.ActivityID,
		OrderID:       winner.OrderID,
		WinningNumber: winner.WinningNumber,
		IsLuckyNumber: winner.IsLuckyNumber,
		DrawDate:      winner.DrawDate,
		Announced:     winner.Announced,
		Notes:         winner.Notes,
	}
}

func toDTOs(winners []domain.Winner) []dto.WinnerResponseDTO {
	response := make([]dto.WinnerResponseDTO, 0, len(winners))
	for i := range winners {
		response = append(response, toDTO(&winners[i]))
	}
	return response
}

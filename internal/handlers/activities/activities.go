package activities

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rifas-ec/rifas/internal/domain"
	"github.com/rifas-ec/rifas/internal/dto"
	activityservice "github.com/rifas-ec/rifas/internal/service/activityservice"
	"github.com/rifas-ec/rifas/pkg/utils"
)

const dateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	Update(ctx context.Context, id int, params activityservice.UpdateParams) (*domain.Activity, error)
	GetActivities(ctx context.Context) ([]domain.Activity, error)
	PublicActivities(ctx context.Context) ([]domain.Activity, error)
	GetByID(ctx context.Context, id int) (*domain.Activity, error)
	GetByNumber(ctx context.Context, activityNumber string) (*domain.Activity, error)
	Cancel(ctx context.Context, id int) (*domain.Activity, error)
	Delete(ctx context.Context, id int) error
	ExecuteRaffle(ctx context.Context, id int) (*activityservice.RaffleResult, error)
	Draw(ctx context.Context, id int) (*activityservice.RaffleResult, error)
	AssignMainWinner(ctx context.Context, id int) (*domain.Winner, error)
	MarkAsFinished(ctx context.Context, id int) (*domain.Activity, error)
	WinnersByNumber(ctx context.Context, id int) (*activityservice.WinnersReport, error)
}

type StatsService interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}

type ActivityHandler struct {
	activityService Service
	statsService    StatsService
}

func New(activityService Service, statsService StatsService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		statsService:    statsService,
	}
}

// PublicList godoc
//
//	@Summary		List storefront activities
//	@Description	Activities visible to buyers. Lucky numbers are not exposed.
//	@Tags			Public
//	@Produce		json
//	@Success		200	{array}		dto.PublicActivityResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/public/actividades [get]
func (h *ActivityHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activityService.PublicActivities(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PublicActivityResponseDTO, 0, len(activities))
	for i := range activities {
		response = append(response, toPublicDTO(&activities[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// PublicGet godoc
//
//	@Summary		Get one storefront activity
//	@Tags			Public
//	@Produce		json
//	@Param			numero	path		string	true	"Activity number"
//	@Success		200		{object}	dto.PublicActivityResponseDTO
//	@Failure		404		{object}	utils.Response	"Activity not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/public/actividades/{numero} [get]
func (h *ActivityHandler) PublicGet(w http.ResponseWriter, r *http.Request) {
	activity, err := h.activityService.GetByNumber(r.Context(), chi.URLParam(r, "numero"))
	if err != nil {
		if errors.Is(err, activityservice.ErrActivityNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPublicDTO(activity))
}

// List godoc
//
//	@Summary		List all activities
//	@Tags			Activities
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ActivityResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/actividades [get]
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activityService.GetActivities(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ActivityResponseDTO, 0, len(activities))
	for i := range activities {
		response = append(response, toDTO(&activities[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary		Get an activity
//	@Tags			Activities
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Activity ID"
//	@Success		200	{object}	dto.ActivityResponseDTO
//	@Failure		404	{object}	utils.Response	"Activity not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/actividades/{id} [get]
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid activity id")
		return
	}

	activity, err := h.activityService.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(activity))
}

// Create godoc
//
//	@Summary		Create an activity
//	@Tags			Activities
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			activity	body		dto.CreateActivityRequestDTO	true	"New activity"
//	@Success		201			{object}	dto.ActivityResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		409			{object}	utils.Response	"Activity number already in use"
//	@Failure		422			{object}	utils.Response	"Validation failed"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/actividades [post]
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateActivityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid fecha_inicio")
		return
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid fecha_fin")
		return
	}

	activity, err := h.activityService.Create(r.Context(), &domain.Activity{
		Name:           req.Name,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		TicketPrice:    req.TicketPrice,
		TotalTickets:   req.TotalTickets,
		ActivityNumber: req.ActivityNumber,
		StartDate:      startDate,
		EndDate:        endDate,
		AutoDraw:       req.AutoDraw,
		LuckyCount:     req.LuckyCount,
		LuckyNumbers:   req.LuckyNumbers,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(activity))
}

// Update godoc
//
//	@Summary		Update an activity
//	@Tags			Activities
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id			path		int								true	"Activity ID"
//	@Param			activity	body		dto.UpdateActivityRequestDTO	true	"Fields to change"
//	@Success		200			{object}	dto.ActivityResponseDTO
//	@Failure		404			{object}	utils.Response	"Activity not found"
//	@Failure		409			{object}	utils.Response	"Lucky numbers locked"
//	@Failure		422			{object}	utils.Response	"Validation failed"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/actividades/{id} [put]
func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid activity id")
		return
	}

	var req dto.UpdateActivityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := activityservice.UpdateParams{
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		TicketPrice:  req.TicketPrice,
		TotalTickets: req.TotalTickets,
		AutoDraw:     req.AutoDraw,
		LuckyCount:   req.LuckyCount,
	}
	if req.StartDate != nil {
		startDate, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid fecha_inicio")
			return
		}
		params.StartDate = &startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid fecha_fin")
			return
		}
		params.EndDate = &endDate
	}

	activity, err := h.activityService.Update(r.Context(), id, params)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(activity))
}

// Cancel godoc
//
//	@Summary		Cancel an activity without orders
//	@Tags			Activities
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Activity ID"
//	@Success		200	{object}	dto.ActivityResponseDTO
//	@Failure		404	{object}	utils.Response	"Activity not found"
//	@Failure		409	{object}	utils.Response	"Activity has orders"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/actividades/{id}/cancelar [post]
func (h *ActivityHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid activity id")
		return
	}

	activity, err := h.activityService.Cancel(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(activity))
}

// Delete godoc
//
//	@Summary		Delete an activity without orders
//	@Tags			Activities
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Activity ID"
//	@Success		200	{object}	utils.Response	"Activity deleted"
//	@Failure		404	{object}	utils.Response	"Activity not found"
//	@Failure		409	{object}	utils.Response	"Activity has orders"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/actividades/{id} [delete]
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid activity id")
		return
	}

	if err := h.activityService.Delete(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Activity deleted"})
}

// ExecuteRaffle godoc
//
//	@Summary		Run the raffle for an activity
//	@Description	Re-checks paid orders against the lucky numbers and assigns the main winner.
//	@Tags			Activities
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Activity ID"
//	@Success		200	{object}	dto.RaffleResultResponseDTO
//	@Failure		404	{object}	utils.Response	"Activity not found"
//	@Failure		422	{object}	utils.Response	"Nothing to draw"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/actividades/{id}/ejecutar-sorteo [post]
func (h *ActivityHandler) ExecuteRaffle(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid activity id")
		return
	}

	result, err := h.activityService.ExecuteRaffle(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRaffleResultDTO(result))
}

// Draw godoc
//
//	@Summary		Draw a fully sold activity
//	@Tags			Activities
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Activity ID"
//	@Success		200	{object}	dto.RaffleResultResponseDTO
//	@Failure		404	{object}	utils.Response	"Activity not found"
//	@Failure		409	{object}	utils.Response	"Activity not active"
//	@Failure		422	{object}	utils.Response	"Not fully sold"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/actividades/{id}/sorteo [post]
func (h *ActivityHandler) Draw(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid activity id")
		return
	}

	result, err := h.activityService.Draw(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRaffleResultDTO(result))
}

// AssignMainWinner godoc
//
//	@Summary		Draw only the grand-prize winner
//	@Tags			Activities
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Activity ID"
//	@Success		200	{object}	dto.WinnerResponseDTO
//	@Failure		404	{object}	utils.Response	"Activity not found"
//	@Failure		422	{object}	utils.Response	"Nothing to draw"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/actividades/{id}/ganador-principal [post]
func (h *ActivityHandler) AssignMainWinner(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid activity id")
		return
	}

	winner, err := h.activityService.AssignMainWinner(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWinnerDTO(winner))
}

// Finish godoc
//
//	@Summary		Finish an activity with a main winner
//	@Tags			Activities
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Activity ID"
//	@Success		200	{object}	dto.ActivityResponseDTO
//	@Failure		404	{object}	utils.Response	"Activity not found"
//	@Failure		422	{object}	utils.Response	"No main winner yet"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/actividades/{id}/finalizar [post]
func (h *ActivityHandler) Finish(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid activity id")
		return
	}

	activity, err := h.activityService.MarkAsFinished(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(activity))
}

// Winners godoc
//
//	@Summary		Winners of an activity grouped by lucky number
//	@Tags			Activities
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Activity ID"
//	@Success		200	{object}	dto.WinnersReportResponseDTO
//	@Failure		404	{object}	utils.Response	"Activity not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/actividades/{id}/ganadores [get]
func (h *ActivityHandler) Winners(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid activity id")
		return
	}

	report, err := h.activityService.WinnersByNumber(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	response := dto.WinnersReportResponseDTO{LuckyNumbers: make([]dto.LuckyNumberStatusDTO, 0, len(report.LuckyNumbers))}
	for _, status := range report.LuckyNumbers {
		item := dto.LuckyNumberStatusDTO{Number: status.Number}
		if status.Winner != nil {
			winner := toWinnerDTO(status.Winner)
			item.Winner = &winner
		}
		response.LuckyNumbers = append(response.LuckyNumbers, item)
	}
	if report.MainWinner != nil {
		winner := toWinnerDTO(report.MainWinner)
		response.MainWinner = &winner
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Dashboard godoc
//
//	@Summary		Admin dashboard counters
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DashboardStatsResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/dashboard [get]
func (h *ActivityHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Dashboard(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DashboardStatsResponseDTO{
		TotalActivities:    stats.TotalActivities,
		ActiveActivities:   stats.ActiveActivities,
		TotalOrders:        stats.TotalOrders,
		PendingOrders:      stats.PendingOrders,
		PaidOrders:         stats.PaidOrders,
		TicketsSold:        stats.TicketsSold,
		TotalRevenue:       stats.TotalRevenue,
		TotalWinners:       stats.TotalWinners,
		UnannouncedWinners: stats.UnannouncedWinners,
		GeneratedAt:        time.Now(),
	})
}

func (h *ActivityHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, activityservice.ErrActivityNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, activityservice.ErrActivityNumberTaken),
		errors.Is(err, activityservice.ErrActivityHasOrders),
		errors.Is(err, activityservice.ErrLuckyNumbersLocked),
		errors.Is(err, activityservice.ErrActivityNotActive):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, activityservice.ErrInvalidName),
		errors.Is(err, activityservice.ErrInvalidPrice),
		errors.Is(err, activityservice.ErrInvalidTotal),
		errors.Is(err, activityservice.ErrInvalidDates),
		errors.Is(err, activityservice.ErrInvalidLuckyCount),
		errors.Is(err, activityservice.ErrInvalidLuckyNumbers),
		errors.Is(err, activityservice.ErrNoLuckyNumbers),
		errors.Is(err, activityservice.ErrNotFullySold),
		errors.Is(err, activityservice.ErrNothingToDraw),
		errors.Is(err, activityservice.ErrNoMainWinner):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func parseID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func toDTO(activity *domain.Activity) dto.ActivityResponseDTO {
	return dto.ActivityResponseDTO{
		ID:             activity.ID,
		Name:           activity.Name,
		Description:    activity.Description,
		ImageURL:       activity.ImageURL,
		TicketPrice:    activity.TicketPrice,
		TotalTickets:   activity.TotalTickets,
		TicketsSold:    activity.TicketsSold,
		Available:      activity.AvailableTickets(),
		ActivityNumber: activity.ActivityNumber,
		StartDate:      activity.StartDate.Format(dateLayout),
		EndDate:        activity.EndDate.Format(dateLayout),
		Status:         activity.Status,
		SoldPercent:    activity.SoldPercent,
		AutoDraw:       activity.AutoDraw,
		LuckyCount:     activity.LuckyCount,
		LuckyNumbers:   activity.LuckyNumbers,
	}
}

func toPublicDTO(activity *domain.Activity) dto.PublicActivityResponseDTO {
	return dto.PublicActivityResponseDTO{
		ID:             activity.ID,
		Name:           activity.Name,
		Description:    activity.Description,
		ImageURL:       activity.ImageURL,
		TicketPrice:    activity.TicketPrice,
		TotalTickets:   activity.TotalTickets,
		TicketsSold:    activity.TicketsSold,
		Available:      activity.AvailableTickets(),
		ActivityNumber: activity.ActivityNumber,
		StartDate:      activity.StartDate.Format(dateLayout),
		EndDate:        activity.EndDate.Format(dateLayout),
		Status:         activity.Status,
		SoldPercent:    activity.SoldPercent,
		LuckyCount:     activity.LuckyCount,
	}
}

func toWinnerDTO(winner *domain.Winner) dto.WinnerResponseDTO {
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

func toRaffleResultDTO(result *activityservice.RaffleResult) dto.RaffleResultResponseDTO {
	response := dto.RaffleResultResponseDTO{Matches: make([]dto.RaffleMatchDTO, 0, len(result.Matches))}
	for _, match := range result.Matches {
		response.Matches = append(response.Matches, dto.RaffleMatchDTO{
			OrderNumber: match.OrderNumber,
			Numbers:     match.Numbers,
		})
	}
	if result.MainWinner != nil {
		winner := toWinnerDTO(result.MainWinner)
		response.MainWinner = &winner
	}
	return response
}

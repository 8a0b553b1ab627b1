package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pause-manager/internal/httperr"
	"github.com/BruksfildServices01/pause-manager/internal/httpresp"
	"github.com/BruksfildServices01/pause-manager/internal/idempotency"
	"github.com/BruksfildServices01/pause-manager/internal/middleware"
	ucReservation "github.com/BruksfildServices01/pause-manager/internal/usecase/reservation"
)

const (
	// HeaderReplayed marca respostas servidas do cache de idempotência.
	HeaderReplayed = "Idempotent-Replayed"

	msgReservationCreated = "Réservation créée avec succès"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	checkAvailability *ucReservation.CheckAvailability
	create            *ucReservation.CreateReservation
	update            *ucReservation.UpdateReservation
	delete            *ucReservation.DeleteReservation
	list              *ucReservation.ListReservations
	get               *ucReservation.GetReservation
	upcoming          *ucReservation.ListUpcoming
	weeklyStats       *ucReservation.WeeklyStats

	// idem é opcional; nil desliga o Idempotency-Key.
	idem idempotency.Store
}

func NewReservationHandler(
	checkAvailability *ucReservation.CheckAvailability,
	create *ucReservation.CreateReservation,
	update *ucReservation.UpdateReservation,
	delete *ucReservation.DeleteReservation,
	list *ucReservation.ListReservations,
	get *ucReservation.GetReservation,
	upcoming *ucReservation.ListUpcoming,
	weeklyStats *ucReservation.WeeklyStats,
	idem idempotency.Store,
) *ReservationHandler {
	return &ReservationHandler{
		checkAvailability: checkAvailability,
		create:            create,
		update:            update,
		delete:            delete,
		list:              list,
		get:               get,
		upcoming:          upcoming,
		weeklyStats:       weeklyStats,
		idem:              idem,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	Room         string   `json:"room" binding:"required,notblank,max=50"`
	Date         string   `json:"date" binding:"required"`
	StartTime    string   `json:"startTime" binding:"required,hhmm"`
	EndTime      string   `json:"endTime" binding:"required,hhmm"`
	ClientID     uint     `json:"clientId" binding:"required"`
	EventID      *uint    `json:"eventId"`
	Purpose      string   `json:"purpose" binding:"required,notblank,max=200"`
	Status       string   `json:"status" binding:"omitempty,oneof=pending confirmed in-use completed cancelled"`
	Participants int      `json:"participants" binding:"omitempty,min=1"`
	Equipment    []string `json:"equipment"`
	Notes        string   `json:"notes" binding:"max=500"`
}

type UpdateReservationRequest struct {
	Room         *string   `json:"room" binding:"omitempty,notblank,max=50"`
	Date         *string   `json:"date"`
	StartTime    *string   `json:"startTime" binding:"omitempty,hhmm"`
	EndTime      *string   `json:"endTime" binding:"omitempty,hhmm"`
	ClientID     *uint     `json:"clientId" binding:"omitempty,min=1"`
	EventID      *uint     `json:"eventId"`
	Purpose      *string   `json:"purpose" binding:"omitempty,notblank,max=200"`
	Status       *string   `json:"status" binding:"omitempty,oneof=pending confirmed in-use completed cancelled"`
	Participants *int      `json:"participants" binding:"omitempty,min=1"`
	Equipment    *[]string `json:"equipment"`
	Notes        *string   `json:"notes" binding:"omitempty,max=500"`
}

type AvailabilityResponse struct {
	Success   bool `json:"success"`
	Available bool `json:"available"`
}

// ======================================================
// AVAILABILITY
// ======================================================

// CheckAvailability godoc
// @Summary  Check whether a room is free
// @Tags     reservations
// @Produce  json
// @Param    room       query  string  true   "Room"
// @Param    date       query  string  true   "YYYY-MM-DD"
// @Param    startTime  query  string  true   "HH:MM"
// @Param    endTime    query  string  true   "HH:MM"
// @Param    excludeId  query  int     false  "Reservation ignored by the check"
// @Success  200  {object}  AvailabilityResponse
// @Failure  400  {object}  httperr.HTTPError
// @Router   /reservations/availability [get]
func (h *ReservationHandler) CheckAvailability(c *gin.Context) {
	room := strings.TrimSpace(c.Query("room"))
	dateStr := strings.TrimSpace(c.Query("date"))
	start := strings.TrimSpace(c.Query("startTime"))
	end := strings.TrimSpace(c.Query("endTime"))

	if room == "" || dateStr == "" || start == "" || end == "" {
		httperr.BadRequest(c, "missing_parameters", "Les paramètres room, date, startTime et endTime sont requis")
		return
	}

	date, err := parseCivilDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "La date doit être au format YYYY-MM-DD")
		return
	}

	var excludeID *uint
	if s := c.Query("excludeId"); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil || n == 0 {
			httperr.BadRequest(c, "invalid_exclude_id", "Identifiant invalide")
			return
		}
		id := uint(n)
		excludeID = &id
	}

	available, err := h.checkAvailability.Execute(c.Request.Context(), ucReservation.CheckAvailabilityInput{
		Room:      room,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		ExcludeID: excludeID,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_check_availability", "Erreur serveur lors de la vérification de disponibilité")
		return
	}

	c.JSON(http.StatusOK, AvailabilityResponse{Success: true, Available: available})
}

// ======================================================
// CREATE
// ======================================================

// Create godoc
// @Summary  Create reservation
// @Tags     reservations
// @Accept   json
// @Produce  json
// @Param    Idempotency-Key  header  string                    false  "Makes the request safely repeatable"
// @Param    reservation      body    CreateReservationRequest  true   "Reservation"
// @Success  201  {object}  httpresp.Envelope{data=models.Reservation}
// @Failure  400  {object}  httperr.HTTPError
// @Router   /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err), "invalid_request", "Données invalides")
		return
	}

	date, err := parseCivilDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "La date doit être au format YYYY-MM-DD")
		return
	}

	// --------------------------------------------------
	// Idempotency-Key
	// --------------------------------------------------
	key := strings.TrimSpace(c.GetHeader(idempotency.HeaderKey))
	claimed := false
	fingerprint := ""

	if key != "" && h.idem != nil {
		fingerprint, err = idempotency.Fingerprint(req)
		if err != nil {
			httperr.Internal(c, "failed_to_create_reservation", "Erreur serveur lors de la création de la réservation")
			return
		}

		rec, err := h.idem.Begin(c.Request.Context(), key)
		switch {
		case errors.Is(err, idempotency.ErrInFlight):
			httperr.BadRequest(c, "request_in_flight", "Une requête avec cette clé est déjà en cours")
			return
		case err != nil:
			// redis fora: segue sem idempotência
			slog.Warn("idempotency unavailable", "error", err)
		case rec != nil && !rec.Matches(fingerprint):
			httperr.BadRequest(c, "idempotency_key_reused", "Cette clé a déjà été utilisée pour une autre requête")
			return
		case rec != nil:
			c.Header(HeaderReplayed, "true")
			c.Data(rec.Status, "application/json; charset=utf-8", rec.Body)
			return
		default:
			claimed = true
		}
	}

	res, err := h.create.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		Actor:        middleware.Actor(c),
		Room:         req.Room,
		Date:         date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		ClientID:     req.ClientID,
		EventID:      req.EventID,
		Purpose:      req.Purpose,
		Status:       req.Status,
		Participants: req.Participants,
		Equipment:    req.Equipment,
		Notes:        req.Notes,
	})
	if err != nil {
		if claimed {
			h.release(c, key)
		}
		httperr.Respond(c, err, "failed_to_create_reservation", "Erreur serveur lors de la création de la réservation")
		return
	}

	if !claimed {
		httpresp.Created(c, res, msgReservationCreated)
		return
	}

	body, err := json.Marshal(httpresp.Envelope{Success: true, Data: res, Message: msgReservationCreated})
	if err != nil {
		h.release(c, key)
		httperr.Internal(c, "failed_to_encode_reservation", "Erreur serveur lors de la création de la réservation")
		return
	}

	rec := idempotency.Record{Status: http.StatusCreated, Body: body, Fingerprint: fingerprint}
	if err := h.idem.Complete(c.Request.Context(), key, rec); err != nil {
		slog.Warn("idempotency complete failed", "error", err)
	}

	c.Data(http.StatusCreated, "application/json; charset=utf-8", body)
}

func (h *ReservationHandler) release(c *gin.Context, key string) {
	if err := h.idem.Abort(c.Request.Context(), key); err != nil {
		slog.Warn("idempotency abort failed", "error", err)
	}
}

// ======================================================
// READ
// ======================================================

// List godoc
// @Summary  List reservations
// @Tags     reservations
// @Produce  json
// @Success  200  {object}  httpresp.ListResponse[models.Reservation]
// @Router   /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	list, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_reservations", "Erreur serveur lors de la récupération des réservations")
		return
	}
	httpresp.List(c, list)
}

// Get godoc
// @Summary  Get reservation
// @Tags     reservations
// @Produce  json
// @Param    id  path  int  true  "Reservation ID"
// @Success  200  {object}  httpresp.Envelope{data=models.Reservation}
// @Failure  404  {object}  httperr.HTTPError
// @Router   /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_reservation", "Erreur serveur lors de la récupération de la réservation")
		return
	}
	httpresp.OK(c, res)
}

// Upcoming godoc
// @Summary  Upcoming pending/confirmed reservations
// @Tags     reservations
// @Produce  json
// @Param    limit  query  int  false  "Default 10"
// @Success  200  {object}  httpresp.ListResponse[models.Reservation]
// @Router   /reservations/upcoming [get]
func (h *ReservationHandler) Upcoming(c *gin.Context) {
	limit := queryLimit(c, ucReservation.DefaultUpcomingLimit, ucReservation.MaxUpcomingLimit)

	list, err := h.upcoming.Execute(c.Request.Context(), limit)
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_upcoming_reservations", "Erreur serveur lors de la récupération des réservations à venir")
		return
	}
	httpresp.List(c, list)
}

// WeeklyStats godoc
// @Summary  Reservations of the last 7 days by weekday and room
// @Tags     reservations
// @Produce  json
// @Success  200  {object}  httpresp.ListResponse[reservation.WeeklyStat]
// @Router   /reservations/stats/weekly [get]
func (h *ReservationHandler) WeeklyStats(c *gin.Context) {
	stats, err := h.weeklyStats.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_weekly_stats", "Erreur serveur lors de la récupération des statistiques")
		return
	}
	httpresp.List(c, stats)
}

// ======================================================
// UPDATE / DELETE
// ======================================================

// Update godoc
// @Summary  Update reservation (partial)
// @Tags     reservations
// @Accept   json
// @Produce  json
// @Param    id           path  int                       true  "Reservation ID"
// @Param    reservation  body  UpdateReservationRequest  true  "Fields to change"
// @Success  200  {object}  httpresp.Envelope{data=models.Reservation}
// @Failure  400  {object}  httperr.HTTPError
// @Failure  404  {object}  httperr.HTTPError
// @Router   /reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err), "invalid_request", "Données invalides")
		return
	}

	in := ucReservation.UpdateReservationInput{
		Actor:        middleware.Actor(c),
		Room:         req.Room,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		ClientID:     req.ClientID,
		EventID:      req.EventID,
		Purpose:      req.Purpose,
		Status:       req.Status,
		Participants: req.Participants,
		Equipment:    req.Equipment,
		Notes:        req.Notes,
	}
	if req.Date != nil {
		d, err := parseCivilDate(*req.Date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "La date doit être au format YYYY-MM-DD")
			return
		}
		in.Date = &d
	}

	res, err := h.update.Execute(c.Request.Context(), id, in)
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_reservation", "Erreur serveur lors de la mise à jour de la réservation")
		return
	}
	httpresp.Updated(c, res, "Réservation mise à jour avec succès")
}

// Delete godoc
// @Summary  Delete reservation
// @Tags     reservations
// @Param    id  path  int  true  "Reservation ID"
// @Success  200  {object}  httpresp.Envelope
// @Failure  404  {object}  httperr.HTTPError
// @Router   /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.Actor(c), id); err != nil {
		httperr.Respond(c, err, "failed_to_delete_reservation", "Erreur serveur lors de la suppression de la réservation")
		return
	}
	httpresp.Message(c, "Réservation supprimée avec succès")
}

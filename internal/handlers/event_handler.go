package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pause-manager/internal/audit"
	"github.com/BruksfildServices01/pause-manager/internal/domain/dashboard"
	"github.com/BruksfildServices01/pause-manager/internal/httperr"
	"github.com/BruksfildServices01/pause-manager/internal/httpresp"
	"github.com/BruksfildServices01/pause-manager/internal/models"
	"github.com/BruksfildServices01/pause-manager/internal/timezone"
)

const (
	defaultUpcomingEvents = 10
	maxUpcomingEvents     = 100
)

var (
	errEventNotFound = httperr.ErrNotFound("event_not_found", "Événement non trouvé")
	errEventTimes    = httperr.ErrValidation("invalid_event_times", "Données invalides", "L'heure de fin doit être après l'heure de début")
)

// ======================================================
// HANDLER
// ======================================================

type EventHandler struct {
	db     *gorm.DB
	audit  *audit.Dispatcher
	events dashboard.Repository
	clock  timezone.Clock
}

func NewEventHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	events dashboard.Repository,
	clock timezone.Clock,
) *EventHandler {
	return &EventHandler{db: db, audit: audit, events: events, clock: clock}
}

// ======================================================
// REQUESTS
// ======================================================

// Cliente e serviço chegam achatados (clientName, serviceType...) e são
// copiados para os structs embutidos.
type CreateEventRequest struct {
	Name          string `json:"name" binding:"required,notblank,max=100"`
	Date          string `json:"date" binding:"required"`
	StartTime     string `json:"startTime" binding:"required,hhmm"`
	EndTime       string `json:"endTime" binding:"required,hhmm"`
	Type          string `json:"type" binding:"required,oneof=coffee lunch cocktail meeting training other"`
	ClientName    string `json:"clientName" binding:"max=100"`
	ClientContact string `json:"clientContact" binding:"max=100"`
	ServiceTitle  string `json:"serviceTitle" binding:"max=100"`
	ServiceType   string `json:"serviceType" binding:"max=30"`
	Participants  int    `json:"participants" binding:"omitempty,min=1"`
	Location      string `json:"location" binding:"required,notblank,max=200"`
	Notes         string `json:"notes" binding:"max=500"`
	Status        string `json:"status" binding:"omitempty,oneof=scheduled confirmed in-progress completed cancelled"`
}

type UpdateEventRequest struct {
	Name          *string `json:"name" binding:"omitempty,notblank,max=100"`
	Date          *string `json:"date"`
	StartTime     *string `json:"startTime" binding:"omitempty,hhmm"`
	EndTime       *string `json:"endTime" binding:"omitempty,hhmm"`
	Type          *string `json:"type" binding:"omitempty,oneof=coffee lunch cocktail meeting training other"`
	ClientName    *string `json:"clientName" binding:"omitempty,max=100"`
	ClientContact *string `json:"clientContact" binding:"omitempty,max=100"`
	ServiceTitle  *string `json:"serviceTitle" binding:"omitempty,max=100"`
	ServiceType   *string `json:"serviceType" binding:"omitempty,max=30"`
	Participants  *int    `json:"participants" binding:"omitempty,min=1"`
	Location      *string `json:"location" binding:"omitempty,notblank,max=200"`
	Notes         *string `json:"notes" binding:"omitempty,max=500"`
	Status        *string `json:"status" binding:"omitempty,oneof=scheduled confirmed in-progress completed cancelled"`
}

type EventStats struct {
	Total    int64         `json:"total"`
	Upcoming int64         `json:"upcoming"`
	ByStatus []statusCount `json:"byStatus"`
}

// ======================================================
// LIST
// ======================================================

// List godoc
// @Summary  List events
// @Tags     events
// @Produce  json
// @Param    type    query  string  false  "Event type"
// @Param    status  query  string  false  "Event status"
// @Param    date    query  string  false  "YYYY-MM-DD"
// @Param    search  query  string  false  "Search over name, client name, location"
// @Success  200  {object}  httpresp.ListResponse[models.Event]
// @Router   /events [get]
func (h *EventHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context())

	if t := strings.TrimSpace(c.Query("type")); t != "" {
		q = q.Where("type = ?", t)
	}
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		q = q.Where("status = ?", s)
	}
	if d := strings.TrimSpace(c.Query("date")); d != "" {
		day, err := normalizeEventDate(d)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "La date doit être au format YYYY-MM-DD")
			return
		}
		q = q.Where("date = ?", day)
	}
	if s := strings.ToLower(strings.TrimSpace(c.Query("search"))); s != "" {
		like := "%" + s + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(client_name) LIKE ? OR LOWER(location) LIKE ?", like, like, like)
	}

	var events []models.Event
	if err := q.Order("date ASC, start_time ASC").Find(&events).Error; err != nil {
		httperr.Respond(c, err, "failed_to_list_events", "Erreur serveur lors de la récupération des événements")
		return
	}

	httpresp.List(c, events)
}

// Upcoming godoc
// @Summary  Upcoming scheduled/confirmed events
// @Tags     events
// @Produce  json
// @Param    limit  query  int  false  "Default 10"
// @Success  200  {object}  httpresp.ListResponse[models.Event]
// @Router   /events/upcoming [get]
func (h *EventHandler) Upcoming(c *gin.Context) {
	limit := queryLimit(c, defaultUpcomingEvents, maxUpcomingEvents)
	w := dashboard.NewWindows(h.clock())

	events, err := h.events.FindEvents(c.Request.Context(), dashboard.EventQuery{
		FromDay:  w.TodayKey(),
		Statuses: dashboard.ActiveEventStatuses,
	}, limit)
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_upcoming_events", "Erreur serveur lors de la récupération des événements à venir")
		return
	}

	httpresp.List(c, events)
}

// Stats godoc
// @Summary  Event totals
// @Tags     events
// @Produce  json
// @Success  200  {object}  httpresp.Envelope{data=EventStats}
// @Router   /events/stats [get]
func (h *EventHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	w := dashboard.NewWindows(h.clock())

	var stats EventStats
	var err error

	if stats.Total, err = h.events.CountEvents(ctx, dashboard.EventQuery{}); err != nil {
		httperr.Respond(c, err, "failed_to_get_event_stats", "Erreur serveur lors de la récupération des statistiques")
		return
	}
	if stats.Upcoming, err = h.events.CountEvents(ctx, dashboard.EventQuery{
		FromDay:  w.TodayKey(),
		Statuses: dashboard.ActiveEventStatuses,
	}); err != nil {
		httperr.Respond(c, err, "failed_to_get_event_stats", "Erreur serveur lors de la récupération des statistiques")
		return
	}

	if err := h.db.WithContext(ctx).
		Model(&models.Event{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status").
		Scan(&stats.ByStatus).Error; err != nil {
		httperr.Respond(c, err, "failed_to_get_event_stats", "Erreur serveur lors de la récupération des statistiques")
		return
	}
	if stats.ByStatus == nil {
		stats.ByStatus = []statusCount{}
	}

	httpresp.OK(c, stats)
}

// ======================================================
// CRUD
// ======================================================

// Get godoc
// @Summary  Get event
// @Tags     events
// @Produce  json
// @Param    id  path  int  true  "Event ID"
// @Success  200  {object}  httpresp.Envelope{data=models.Event}
// @Failure  404  {object}  httperr.HTTPError
// @Router   /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	e, err := h.find(c, id)
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_event", "Erreur serveur lors de la récupération de l'événement")
		return
	}

	httpresp.OK(c, e)
}

// Create godoc
// @Summary  Create event
// @Tags     events
// @Accept   json
// @Produce  json
// @Param    event  body  CreateEventRequest  true  "Event"
// @Success  201  {object}  httpresp.Envelope{data=models.Event}
// @Failure  400  {object}  httperr.HTTPError
// @Router   /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err), "invalid_request", "Données invalides")
		return
	}

	day, err := normalizeEventDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "La date doit être au format YYYY-MM-DD")
		return
	}

	e := models.Event{
		Name:      strings.TrimSpace(req.Name),
		Date:      day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Type:      req.Type,
		Client: models.EventClient{
			Name:    strings.TrimSpace(req.ClientName),
			Contact: strings.TrimSpace(req.ClientContact),
		},
		Service: models.EventService{
			Title: strings.TrimSpace(req.ServiceTitle),
			Type:  strings.TrimSpace(req.ServiceType),
		},
		Participants: req.Participants,
		Location:     strings.TrimSpace(req.Location),
		Notes:        strings.TrimSpace(req.Notes),
		Status:       req.Status,
	}
	if e.Participants == 0 {
		e.Participants = 1
	}
	if e.Status == "" {
		e.Status = "scheduled"
	}
	if e.EndTime <= e.StartTime {
		httperr.Respond(c, errEventTimes, "", "")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&e).Error; err != nil {
		httperr.Respond(c, err, "failed_to_create_event", "Erreur serveur lors de la création de l'événement")
		return
	}

	writeAudit(h.audit, c, audit.EntityEvent, audit.VerbCreated, e.ID, nil)
	httpresp.Created(c, e, "Événement créé avec succès")
}

// Update godoc
// @Summary  Update event (partial)
// @Tags     events
// @Accept   json
// @Produce  json
// @Param    id     path  int                 true  "Event ID"
// @Param    event  body  UpdateEventRequest  true  "Fields to change"
// @Success  200  {object}  httpresp.Envelope{data=models.Event}
// @Failure  400  {object}  httperr.HTTPError
// @Failure  404  {object}  httperr.HTTPError
// @Router   /events/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err), "invalid_request", "Données invalides")
		return
	}

	e, err := h.find(c, id)
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_event", "Erreur serveur lors de la mise à jour de l'événement")
		return
	}

	var columns []string
	if req.Date != nil {
		day, err := normalizeEventDate(*req.Date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "La date doit être au format YYYY-MM-DD")
			return
		}
		e.Date = day
		columns = append(columns, "date")
	}

	for _, p := range []*string{req.Name, req.ClientName, req.ClientContact, req.ServiceTitle, req.ServiceType, req.Location, req.Notes} {
		trimPtr(p)
	}
	if req.Name != nil {
		e.Name = *req.Name
		columns = append(columns, "name")
	}
	if req.StartTime != nil {
		e.StartTime = *req.StartTime
		columns = append(columns, "start_time")
	}
	if req.EndTime != nil {
		e.EndTime = *req.EndTime
		columns = append(columns, "end_time")
	}
	if req.Type != nil {
		e.Type = *req.Type
		columns = append(columns, "type")
	}
	if req.ClientName != nil {
		e.Client.Name = *req.ClientName
		columns = append(columns, "client_name")
	}
	if req.ClientContact != nil {
		e.Client.Contact = *req.ClientContact
		columns = append(columns, "client_contact")
	}
	if req.ServiceTitle != nil {
		e.Service.Title = *req.ServiceTitle
		columns = append(columns, "service_title")
	}
	if req.ServiceType != nil {
		e.Service.Type = *req.ServiceType
		columns = append(columns, "service_type")
	}
	if req.Participants != nil {
		e.Participants = *req.Participants
		columns = append(columns, "participants")
	}
	if req.Location != nil {
		e.Location = *req.Location
		columns = append(columns, "location")
	}
	if req.Notes != nil {
		e.Notes = *req.Notes
		columns = append(columns, "notes")
	}
	if req.Status != nil {
		e.Status = *req.Status
		columns = append(columns, "status")
	}
	if e.EndTime <= e.StartTime {
		httperr.Respond(c, errEventTimes, "", "")
		return
	}

	if err := updateColumns(c, h.db, e, columns, errEventNotFound); err != nil {
		httperr.Respond(c, err, "failed_to_update_event", "Erreur serveur lors de la mise à jour de l'événement")
		return
	}

	writeAudit(h.audit, c, audit.EntityEvent, audit.VerbUpdated, e.ID, nil)
	httpresp.Updated(c, e, "Événement mis à jour avec succès")
}

// Delete godoc
// @Summary  Delete event
// @Tags     events
// @Param    id  path  int  true  "Event ID"
// @Success  200  {object}  httpresp.Envelope
// @Failure  404  {object}  httperr.HTTPError
// @Router   /events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Event{}, id)
	if res.Error != nil {
		httperr.Respond(c, res.Error, "failed_to_delete_event", "Erreur serveur lors de la suppression de l'événement")
		return
	}
	if res.RowsAffected == 0 {
		httperr.Respond(c, errEventNotFound, "", "")
		return
	}

	writeAudit(h.audit, c, audit.EntityEvent, audit.VerbDeleted, id, nil)
	httpresp.Message(c, "Événement supprimé avec succès")
}

// ======================================================
// HELPERS
// ======================================================

func (h *EventHandler) find(c *gin.Context, id uint) (*models.Event, error) {
	var e models.Event
	if err := h.db.WithContext(c.Request.Context()).First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errEventNotFound
		}
		return nil, err
	}
	return &e, nil
}

// normalizeEventDate guarda eventos sempre como "YYYY-MM-DD".
func normalizeEventDate(s string) (string, error) {
	d, err := parseCivilDate(s)
	if err != nil {
		return "", err
	}
	return d.Format(timezone.DateLayout), nil
}

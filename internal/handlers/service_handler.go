package handlers

import (
	"errors"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pause-manager/internal/audit"
	"github.com/BruksfildServices01/pause-manager/internal/httperr"
	"github.com/BruksfildServices01/pause-manager/internal/httpresp"
	"github.com/BruksfildServices01/pause-manager/internal/models"
)

var serviceTypes = []string{"coffee", "lunch", "cocktail", "room_rental", "enhanced_coffee", "reservation"}

var errServiceNotFound = httperr.ErrNotFound("service_not_found", "Service non trouvé")

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit}
}

// --------- Requests / Responses ---------

type CreateServiceRequest struct {
	Title       string `json:"title" binding:"required,notblank,max=100"`
	Description string `json:"description" binding:"required,notblank,max=500"`
	Price       string `json:"price" binding:"required,price"`
	Status      string `json:"status" binding:"omitempty,oneof=active new limited"`
	Type        string `json:"type" binding:"required,oneof=coffee lunch cocktail room_rental enhanced_coffee reservation"`
}

type UpdateServiceRequest struct {
	Title       *string `json:"title" binding:"omitempty,notblank,max=100"`
	Description *string `json:"description" binding:"omitempty,notblank,max=500"`
	Price       *string `json:"price" binding:"omitempty,price"`
	Status      *string `json:"status" binding:"omitempty,oneof=active new limited"`
	Type        *string `json:"type" binding:"omitempty,oneof=coffee lunch cocktail room_rental enhanced_coffee reservation"`
}

// ServiceView acrescenta o preço formatado ao registro.
type ServiceView struct {
	models.Service
	FormattedPrice string `json:"formattedPrice"`
}

func viewOf(s models.Service) ServiceView {
	return ServiceView{Service: s, FormattedPrice: s.FormattedPrice()}
}

func viewsOf(list []models.Service) []ServiceView {
	out := make([]ServiceView, 0, len(list))
	for _, s := range list {
		out = append(out, viewOf(s))
	}
	return out
}

// --------- Handlers ---------

// List godoc
// @Summary  List services
// @Tags     services
// @Produce  json
// @Param    type    query  string  false  "Service type"
// @Param    status  query  string  false  "active | new | limited"
// @Success  200  {object}  httpresp.ListResponse[ServiceView]
// @Router   /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context())

	if t := strings.TrimSpace(c.Query("type")); t != "" {
		q = q.Where("type = ?", t)
	}
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		q = q.Where("status = ?", s)
	}

	var services []models.Service
	if err := q.Order("created_at DESC").Find(&services).Error; err != nil {
		httperr.Respond(c, err, "failed_to_list_services", "Erreur serveur lors de la récupération des services")
		return
	}

	httpresp.List(c, viewsOf(services))
}

// ByType godoc
// @Summary  List active services of one type
// @Tags     services
// @Produce  json
// @Param    type  path  string  true  "Service type"
// @Success  200  {object}  httpresp.ListResponse[ServiceView]
// @Failure  400  {object}  httperr.HTTPError
// @Router   /services/type/{type} [get]
func (h *ServiceHandler) ByType(c *gin.Context) {
	t := c.Param("type")
	if !slices.Contains(serviceTypes, t) {
		httperr.BadRequest(c, "invalid_service_type", "Type de service invalide")
		return
	}

	var services []models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Where("type = ? AND status = ?", t, models.ServiceStatusActive).
		Order("title ASC").
		Find(&services).Error; err != nil {
		httperr.Respond(c, err, "failed_to_list_services", "Erreur serveur lors de la récupération des services")
		return
	}

	httpresp.List(c, viewsOf(services))
}

// Get godoc
// @Summary  Get service
// @Tags     services
// @Produce  json
// @Param    id  path  int  true  "Service ID"
// @Success  200  {object}  httpresp.Envelope{data=ServiceView}
// @Failure  404  {object}  httperr.HTTPError
// @Router   /services/{id} [get]
func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	s, err := h.find(c, id)
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_service", "Erreur serveur lors de la récupération du service")
		return
	}

	httpresp.OK(c, viewOf(*s))
}

// Create godoc
// @Summary  Create service
// @Tags     services
// @Accept   json
// @Produce  json
// @Param    service  body  CreateServiceRequest  true  "Service"
// @Success  201  {object}  httpresp.Envelope{data=ServiceView}
// @Failure  400  {object}  httperr.HTTPError
// @Router   /services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err), "invalid_request", "Données invalides")
		return
	}

	s := models.Service{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Price:       strings.TrimSpace(req.Price),
		Status:      req.Status,
		Type:        req.Type,
	}
	if s.Status == "" {
		s.Status = models.ServiceStatusActive
	}
	if s.Title == "" || s.Description == "" {
		httperr.BadRequest(c, "missing_fields", "Tous les champs sont obligatoires: titre, description, prix, type")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&s).Error; err != nil {
		httperr.Respond(c, err, "failed_to_create_service", "Erreur serveur lors de la création du service")
		return
	}

	writeAudit(h.audit, c, audit.EntityService, audit.VerbCreated, s.ID, nil)
	httpresp.Created(c, viewOf(s), "Service créé avec succès")
}

// Update godoc
// @Summary  Update service (partial)
// @Tags     services
// @Accept   json
// @Produce  json
// @Param    id       path  int                   true  "Service ID"
// @Param    service  body  UpdateServiceRequest  true  "Fields to change"
// @Success  200  {object}  httpresp.Envelope{data=ServiceView}
// @Failure  400  {object}  httperr.HTTPError
// @Failure  404  {object}  httperr.HTTPError
// @Router   /services/{id} [put]
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err), "invalid_request", "Données invalides")
		return
	}

	s, err := h.find(c, id)
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_service", "Erreur serveur lors de la mise à jour du service")
		return
	}

	for _, p := range []*string{req.Title, req.Description, req.Price} {
		trimPtr(p)
	}
	var columns []string
	if req.Title != nil {
		s.Title = *req.Title
		columns = append(columns, "title")
	}
	if req.Description != nil {
		s.Description = *req.Description
		columns = append(columns, "description")
	}
	if req.Price != nil {
		s.Price = *req.Price
		columns = append(columns, "price")
	}
	if req.Status != nil {
		s.Status = *req.Status
		columns = append(columns, "status")
	}
	if req.Type != nil {
		s.Type = *req.Type
		columns = append(columns, "type")
	}

	if err := updateColumns(c, h.db, s, columns, errServiceNotFound); err != nil {
		httperr.Respond(c, err, "failed_to_update_service", "Erreur serveur lors de la mise à jour du service")
		return
	}

	writeAudit(h.audit, c, audit.EntityService, audit.VerbUpdated, s.ID, nil)
	httpresp.Updated(c, viewOf(*s), "Service mis à jour avec succès")
}

// Delete godoc
// @Summary  Delete service
// @Tags     services
// @Param    id  path  int  true  "Service ID"
// @Success  200  {object}  httpresp.Envelope
// @Failure  404  {object}  httperr.HTTPError
// @Router   /services/{id} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Service{}, id)
	if res.Error != nil {
		httperr.Respond(c, res.Error, "failed_to_delete_service", "Erreur serveur lors de la suppression du service")
		return
	}
	if res.RowsAffected == 0 {
		httperr.Respond(c, errServiceNotFound, "", "")
		return
	}

	writeAudit(h.audit, c, audit.EntityService, audit.VerbDeleted, id, nil)
	httpresp.Message(c, "Service supprimé avec succès")
}

func (h *ServiceHandler) find(c *gin.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := h.db.WithContext(c.Request.Context()).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errServiceNotFound
		}
		return nil, err
	}
	return &s, nil
}

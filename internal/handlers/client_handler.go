package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pause-manager/internal/audit"
	"github.com/BruksfildServices01/pause-manager/internal/httperr"
	"github.com/BruksfildServices01/pause-manager/internal/httpresp"
	"github.com/BruksfildServices01/pause-manager/internal/models"
)

const (
	clientSearchMinLen = 2
	clientSearchLimit  = 50
)

var (
	errClientNotFound      = httperr.ErrNotFound("client_not_found", "Client non trouvé")
	errDuplicateContract   = httperr.ErrDuplicateKey("duplicate_contract_number", "Un client avec ce numéro de contrat existe déjà")
	errContractTakenByPeer = httperr.ErrDuplicateKey("duplicate_contract_number", "Un autre client utilise déjà ce numéro de contrat")
)

type ClientHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClientHandler(db *gorm.DB, audit *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name           string `json:"name" binding:"required,notblank,max=100"`
	Contact        string `json:"contact" binding:"required,notblank,max=100"`
	Email          string `json:"email" binding:"required,mail"`
	Phone          string `json:"phone" binding:"max=20"`
	Address        string `json:"address" binding:"max=200"`
	ContractNumber string `json:"contractNumber" binding:"required,notblank,max=50"`
	Status         string `json:"status" binding:"omitempty,oneof=active inactive"`
	Notes          string `json:"notes" binding:"max=500"`
}

type UpdateClientRequest struct {
	Name           *string `json:"name" binding:"omitempty,notblank,max=100"`
	Contact        *string `json:"contact" binding:"omitempty,notblank,max=100"`
	Email          *string `json:"email" binding:"omitempty,mail"`
	Phone          *string `json:"phone" binding:"omitempty,max=20"`
	Address        *string `json:"address" binding:"omitempty,max=200"`
	ContractNumber *string `json:"contractNumber" binding:"omitempty,notblank,max=50"`
	Status         *string `json:"status" binding:"omitempty,oneof=active inactive"`
	Notes          *string `json:"notes" binding:"omitempty,max=500"`
}

// statusCount é a linha de um GROUP BY status.
type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// --------- Handlers ---------

// List godoc
// @Summary  List clients
// @Tags     clients
// @Produce  json
// @Param    search  query  string  false  "Search over name, contact, email, contract number"
// @Param    status  query  string  false  "active | inactive"
// @Success  200  {object}  httpresp.ListResponse[models.Client]
// @Router   /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	status := strings.TrimSpace(c.Query("status"))

	q := h.db.WithContext(c.Request.Context())

	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(contact) LIKE ? OR LOWER(email) LIKE ? OR LOWER(contract_number) LIKE ?",
			like, like, like, like,
		)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var clients []models.Client
	if err := q.Order("created_at DESC").Find(&clients).Error; err != nil {
		httperr.Respond(c, err, "failed_to_list_clients", "Erreur serveur lors de la récupération des clients")
		return
	}

	httpresp.List(c, clients)
}

// Get godoc
// @Summary  Get client
// @Tags     clients
// @Produce  json
// @Param    id   path  int  true  "Client ID"
// @Success  200  {object}  httpresp.Envelope{data=models.Client}
// @Failure  404  {object}  httperr.HTTPError
// @Router   /clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	client, err := h.find(c, id)
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_client", "Erreur serveur lors de la récupération du client")
		return
	}

	httpresp.OK(c, client)
}

// Create godoc
// @Summary  Create client
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    client  body  CreateClientRequest  true  "Client"
// @Success  201  {object}  httpresp.Envelope{data=models.Client}
// @Failure  400  {object}  httperr.HTTPError
// @Router   /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err), "invalid_request", "Données invalides")
		return
	}

	client := models.Client{
		Name:           strings.TrimSpace(req.Name),
		Contact:        strings.TrimSpace(req.Contact),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:          strings.TrimSpace(req.Phone),
		Address:        strings.TrimSpace(req.Address),
		ContractNumber: strings.TrimSpace(req.ContractNumber),
		Status:         req.Status,
		Notes:          strings.TrimSpace(req.Notes),
	}
	if client.Status == "" {
		client.Status = models.ClientStatusActive
	}
	if client.Name == "" || client.Contact == "" || client.ContractNumber == "" {
		httperr.BadRequest(c, "missing_fields", "Les champs obligatoires sont: nom, contact, email, numéro de contrat")
		return
	}

	taken, err := h.contractTaken(c, client.ContractNumber, 0)
	if err != nil {
		httperr.Respond(c, err, "failed_to_create_client", "Erreur serveur lors de la création du client")
		return
	}
	if taken {
		httperr.Respond(c, errDuplicateContract, "", "")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&client).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			err = errDuplicateContract
		}
		httperr.Respond(c, err, "failed_to_create_client", "Erreur serveur lors de la création du client")
		return
	}

	writeAudit(h.audit, c, audit.EntityClient, audit.VerbCreated, client.ID, nil)
	httpresp.Created(c, client, "Client créé avec succès")
}

// Update godoc
// @Summary  Update client (partial)
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    id      path  int                  true  "Client ID"
// @Param    client  body  UpdateClientRequest  true  "Fields to change"
// @Success  200  {object}  httpresp.Envelope{data=models.Client}
// @Failure  400  {object}  httperr.HTTPError
// @Failure  404  {object}  httperr.HTTPError
// @Router   /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err), "invalid_request", "Données invalides")
		return
	}

	client, err := h.find(c, id)
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_client", "Erreur serveur lors de la mise à jour du client")
		return
	}

	for _, s := range []*string{req.Name, req.Contact, req.Phone, req.Address, req.ContractNumber, req.Notes} {
		trimPtr(s)
	}

	var columns []string
	if req.Name != nil {
		client.Name = *req.Name
		columns = append(columns, "name")
	}
	if req.Contact != nil {
		client.Contact = *req.Contact
		columns = append(columns, "contact")
	}
	if req.Email != nil {
		client.Email = strings.ToLower(strings.TrimSpace(*req.Email))
		columns = append(columns, "email")
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
		columns = append(columns, "phone")
	}
	if req.Address != nil {
		client.Address = *req.Address
		columns = append(columns, "address")
	}
	if req.Status != nil {
		client.Status = *req.Status
		columns = append(columns, "status")
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
		columns = append(columns, "notes")
	}
	if req.ContractNumber != nil && *req.ContractNumber != client.ContractNumber {
		taken, err := h.contractTaken(c, *req.ContractNumber, id)
		if err != nil {
			httperr.Respond(c, err, "failed_to_update_client", "Erreur serveur lors de la mise à jour du client")
			return
		}
		if taken {
			httperr.Respond(c, errContractTakenByPeer, "", "")
			return
		}
		client.ContractNumber = *req.ContractNumber
		columns = append(columns, "contract_number")
	}

	if err := updateColumns(c, h.db, client, columns, errClientNotFound); err != nil {
		if httperr.IsUniqueViolation(err) {
			err = errContractTakenByPeer
		}
		httperr.Respond(c, err, "failed_to_update_client", "Erreur serveur lors de la mise à jour du client")
		return
	}

	writeAudit(h.audit, c, audit.EntityClient, audit.VerbUpdated, client.ID, nil)
	httpresp.Updated(c, client, "Client mis à jour avec succès")
}

// Delete godoc
// @Summary  Delete client
// @Tags     clients
// @Param    id  path  int  true  "Client ID"
// @Success  200  {object}  httpresp.Envelope
// @Failure  404  {object}  httperr.HTTPError
// @Router   /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Client{}, id)
	if res.Error != nil {
		httperr.Respond(c, res.Error, "failed_to_delete_client", "Erreur serveur lors de la suppression du client")
		return
	}
	if res.RowsAffected == 0 {
		httperr.Respond(c, errClientNotFound, "", "")
		return
	}

	writeAudit(h.audit, c, audit.EntityClient, audit.VerbDeleted, id, nil)
	httpresp.Message(c, "Client supprimé avec succès")
}

// Search godoc
// @Summary  Search clients by term
// @Tags     clients
// @Produce  json
// @Param    term  path  string  true  "At least 2 characters"
// @Success  200  {object}  httpresp.ListResponse[models.Client]
// @Failure  400  {object}  httperr.HTTPError
// @Router   /clients/search/{term} [get]
func (h *ClientHandler) Search(c *gin.Context) {
	term := strings.TrimSpace(c.Param("term"))
	if len([]rune(term)) < clientSearchMinLen {
		httperr.BadRequest(c, "search_term_too_short", "Le terme de recherche doit contenir au moins 2 caractères")
		return
	}

	like := "%" + strings.ToLower(term) + "%"

	var clients []models.Client
	if err := h.db.WithContext(c.Request.Context()).
		Where(
			"LOWER(name) LIKE ? OR LOWER(contact) LIKE ? OR LOWER(email) LIKE ? OR LOWER(contract_number) LIKE ? OR phone LIKE ?",
			like, like, like, like, like,
		).
		Order("name ASC").
		Limit(clientSearchLimit).
		Find(&clients).Error; err != nil {
		httperr.Respond(c, err, "failed_to_search_clients", "Erreur serveur lors de la recherche des clients")
		return
	}

	httpresp.List(c, clients)
}

// Stats godoc
// @Summary  Client count by status
// @Tags     clients
// @Produce  json
// @Success  200  {object}  httpresp.ListResponse[statusCount]
// @Router   /clients/stats [get]
func (h *ClientHandler) Stats(c *gin.Context) {
	var rows []statusCount
	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.Client{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status").
		Scan(&rows).Error; err != nil {
		httperr.Respond(c, err, "failed_to_get_client_stats", "Erreur serveur lors de la récupération des statistiques")
		return
	}
	httpresp.List(c, rows)
}

// --------- Helpers ---------

func (h *ClientHandler) find(c *gin.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := h.db.WithContext(c.Request.Context()).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

// contractTaken verifica unicidade antes da escrita; o índice único é a garantia final.
func (h *ClientHandler) contractTaken(c *gin.Context, number string, exceptID uint) (bool, error) {
	q := h.db.WithContext(c.Request.Context()).
		Model(&models.Client{}).
		Where("contract_number = ?", number)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

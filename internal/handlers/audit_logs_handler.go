package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pause-manager/internal/httperr"
	"github.com/BruksfildServices01/pause-manager/internal/models"
	"github.com/BruksfildServices01/pause-manager/internal/timezone"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

type AuditLogPage struct {
	Success bool              `json:"success"`
	Page    int               `json:"page"`
	Limit   int               `json:"limit"`
	Total   int64             `json:"total"`
	Data    []models.AuditLog `json:"data"`
}

// List godoc
// @Summary  Audit trail
// @Tags     audit
// @Produce  json
// @Param    action  query  string  false  "e.g. reservation_created"
// @Param    entity  query  string  false  "reservation, client, service, event"
// @Param    from    query  string  false  "YYYY-MM-DD"
// @Param    to      query  string  false  "YYYY-MM-DD (inclusive)"
// @Param    page    query  int     false  "Default 1"
// @Param    limit   query  int     false  "Default 50, max 200"
// @Success  200  {object}  AuditLogPage
// @Router   /audit-logs [get]
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	limit := queryLimit(c, defaultAuditLimit, maxAuditLimit)
	offset := (page - 1) * limit

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if s := c.Query("from"); s != "" {
		from, err := time.Parse(timezone.DateLayout, s)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "La date doit être au format YYYY-MM-DD")
			return
		}
		q = q.Where("created_at >= ?", from)
	}
	if s := c.Query("to"); s != "" {
		to, err := time.Parse(timezone.DateLayout, s)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "La date doit être au format YYYY-MM-DD")
			return
		}
		q = q.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	// --------------------------------------------------
	// Total + página
	// --------------------------------------------------

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Respond(c, err, "audit_count_failed", "Erreur lors du comptage des journaux")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		httperr.Respond(c, err, "audit_list_failed", "Erreur lors de la récupération des journaux")
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	c.JSON(200, AuditLogPage{
		Success: true,
		Page:    page,
		Limit:   limit,
		Total:   total,
		Data:    logs,
	})
}

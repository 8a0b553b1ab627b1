package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var healthServices = []string{"clients", "services", "events", "reservations", "dashboard", "audit"}

type HealthResponse struct {
	Message   string   `json:"message"`
	Timestamp string   `json:"timestamp"`
	Services  []string `json:"services"`
}

// Health godoc
// @Summary  Liveness check
// @Tags     health
// @Produce  json
// @Success  200  {object}  HealthResponse
// @Router   /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Message:   "Server OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Services:  healthServices,
	})
}

// NotFound responde rotas desconhecidas.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error":   "Route introuvable",
	})
}

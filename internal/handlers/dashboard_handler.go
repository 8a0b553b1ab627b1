package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pause-manager/internal/httperr"
	"github.com/BruksfildServices01/pause-manager/internal/httpresp"
	ucDashboard "github.com/BruksfildServices01/pause-manager/internal/usecase/dashboard"
)

type DashboardHandler struct {
	stats    *ucDashboard.GetStats
	overview *ucDashboard.GetOverview
}

func NewDashboardHandler(
	stats *ucDashboard.GetStats,
	overview *ucDashboard.GetOverview,
) *DashboardHandler {
	return &DashboardHandler{stats: stats, overview: overview}
}

// Stats godoc
// @Summary  Dashboard counters and next occurrences
// @Tags     dashboard
// @Produce  json
// @Success  200  {object}  httpresp.Envelope{data=dashboard.Stats}
// @Failure  500  {object}  httperr.HTTPError
// @Router   /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_dashboard_stats", "Erreur serveur lors de la récupération des statistiques")
		return
	}
	httpresp.OK(c, stats)
}

// Overview godoc
// @Summary  Dashboard overview
// @Tags     dashboard
// @Produce  json
// @Success  200  {object}  httpresp.Envelope{data=dashboard.Overview}
// @Failure  500  {object}  httperr.HTTPError
// @Router   /dashboard/overview [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	ov, err := h.overview.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_dashboard_overview", "Erreur serveur lors de la récupération de l'aperçu")
		return
	}
	httpresp.OK(c, ov)
}

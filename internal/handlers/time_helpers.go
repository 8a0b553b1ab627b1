package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pause-manager/internal/httperr"
	"github.com/BruksfildServices01/pause-manager/internal/timezone"
)

// --------------------------------------------------
// Datas civis
// --------------------------------------------------

// parseCivilDate aceita "YYYY-MM-DD" ou RFC3339 e devolve a meia-noite UTC
// do dia civil. Colunas DATE são gravadas assim para não depender do fuso
// da sessão do Postgres.
func parseCivilDate(s string) (time.Time, error) {
	return timezone.ParseDateLoose(strings.TrimSpace(s), time.UTC)
}

// --------------------------------------------------
// Parâmetros
// --------------------------------------------------

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide")
		return 0, false
	}
	return uint(id), true
}

// queryLimit lê ?limit=, com default e teto.
func queryLimit(c *gin.Context, def, max int) int {
	n, err := strconv.Atoi(c.Query("limit"))
	if err != nil || n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

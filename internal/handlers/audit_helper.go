package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pause-manager/internal/audit"
	"github.com/BruksfildServices01/pause-manager/internal/middleware"
)

// writeAudit enfileira o evento; nunca bloqueia nem falha a requisição.
func writeAudit(
	d *audit.Dispatcher,
	c *gin.Context,
	entity string,
	verb string,
	entityID uint,
	meta any,
) {
	if d == nil {
		return
	}

	id := entityID
	d.Dispatch(audit.Event{
		Actor:    middleware.Actor(c),
		Action:   audit.ActionFor(entity, verb),
		Entity:   entity,
		EntityID: &id,
		Metadata: meta,
	})
}

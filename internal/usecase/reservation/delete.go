package reservation

import (
	"context"

	"github.com/BruksfildServices01/pause-manager/internal/audit"
	domain "github.com/BruksfildServices01/pause-manager/internal/domain/reservation"
)

type DeleteReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteReservation {
	return &DeleteReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteReservation) Execute(ctx context.Context, actor string, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return mapNotFound(err)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   audit.ActionReservationDeleted,
		Entity:   audit.EntityReservation,
		EntityID: &id,
	})
	return nil
}

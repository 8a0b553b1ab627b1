package reservation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/pause-manager/internal/audit"
	domain "github.com/BruksfildServices01/pause-manager/internal/domain/reservation"
	"github.com/BruksfildServices01/pause-manager/internal/httperr"
	"github.com/BruksfildServices01/pause-manager/internal/metrics"
	"github.com/BruksfildServices01/pause-manager/internal/models"
)

// UpdateReservationInput é um patch: campos nil ficam como estão.
type UpdateReservationInput struct {
	Actor string

	Room      *string
	Date      *time.Time
	StartTime *string
	EndTime   *string

	ClientID *uint
	EventID  *uint

	Purpose      *string
	Status       *string
	Participants *int
	Equipment    *[]string
	Notes        *string
}

func (in UpdateReservationInput) touchesSlot() bool {
	return in.Room != nil || in.Date != nil || in.StartTime != nil || in.EndTime != nil
}

type UpdateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateReservation {
	return &UpdateReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateReservation) Execute(
	ctx context.Context,
	id uint,
	in UpdateReservationInput,
) (*models.Reservation, error) {

	current, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	next := *current
	next.Client = nil
	next.Event = nil
	columns := applyPatch(&next, in)

	// --------------------------------------------------
	// Validação do estado resultante
	// --------------------------------------------------
	slot := domain.Slot{
		Room:      next.Room,
		Date:      next.Date,
		StartTime: next.StartTime,
		EndTime:   next.EndTime,
	}

	status := domain.Status(next.Status)
	if in.touchesSlot() {
		if err := slot.Validate(); err != nil {
			return nil, err
		}
	}
	if err := validateFields(next.ClientID, next.Purpose, status, next.Participants); err != nil {
		return nil, err
	}

	if in.ClientID != nil || in.EventID != nil {
		if err := assertReferences(ctx, uc.repo, next.ClientID, next.EventID); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// Re-verificação: slot alterado ou passagem para status que ocupa a sala
	// --------------------------------------------------
	becomesBlocking := in.Status != nil &&
		status.Blocking() &&
		!domain.Status(current.Status).Blocking()
	needsCheck := in.touchesSlot() || becomesBlocking

	save := func(tx domain.Repository) error {
		if needsCheck {
			if err := ensureAvailable(ctx, tx, slot, &id); err != nil {
				return err
			}
		}
		return tx.Update(ctx, &next, columns)
	}

	if needsCheck {
		err = uc.repo.WithinSlotLock(ctx, slot, save)
	} else {
		err = save(uc.repo)
	}
	if err != nil {
		if isConflict(err) {
			metrics.ReservationConflicts.Inc()
			uc.audit.Dispatch(audit.Event{
				Actor:    in.Actor,
				Action:   audit.ActionReservationConflict,
				Entity:   audit.EntityReservation,
				EntityID: &id,
				Metadata: map[string]any{
					"room":  slot.Room,
					"date":  slot.Day(),
					"start": slot.StartTime,
					"end":   slot.EndTime,
				},
			})
			return nil, domain.ErrUnavailable
		}
		return nil, mapNotFound(err)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Action:   audit.ActionReservationUpdated,
		Entity:   audit.EntityReservation,
		EntityID: &id,
		Metadata: map[string]any{
			"from_status": current.Status,
			"to_status":   next.Status,
		},
	})

	return uc.repo.Get(ctx, id)
}

// applyPatch aplica os campos presentes e devolve as colunas alteradas.
func applyPatch(r *models.Reservation, in UpdateReservationInput) []string {
	var cols []string
	set := func(col string) { cols = append(cols, col) }

	if in.Room != nil {
		r.Room = strings.TrimSpace(*in.Room)
		set("room")
	}
	if in.Date != nil {
		r.Date = *in.Date
		set("date")
	}
	if in.StartTime != nil {
		r.StartTime = *in.StartTime
		set("start_time")
		set("start_minute")
	}
	if in.EndTime != nil {
		r.EndTime = *in.EndTime
		set("end_time")
		set("end_minute")
	}
	if in.ClientID != nil {
		r.ClientID = *in.ClientID
		set("client_id")
	}
	if in.EventID != nil {
		r.EventID = in.EventID
		set("event_id")
	}
	if in.Purpose != nil {
		r.Purpose = strings.TrimSpace(*in.Purpose)
		set("purpose")
	}
	if in.Status != nil {
		r.Status = *in.Status
		set("status")
	}
	if in.Participants != nil {
		r.Participants = *in.Participants
		set("participants")
	}
	if in.Equipment != nil {
		r.Equipment = *in.Equipment
		set("equipment")
	}
	if in.Notes != nil {
		r.Notes = strings.TrimSpace(*in.Notes)
		set("notes")
	}
	return cols
}

func mapNotFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return ErrReservationNotFound
	}
	return err
}

var ErrReservationNotFound = httperr.ErrNotFound(
	"reservation_not_found",
	"Réservation non trouvée",
)

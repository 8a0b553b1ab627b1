package reservation

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/pause-manager/internal/audit"
	domain "github.com/BruksfildServices01/pause-manager/internal/domain/reservation"
	"github.com/BruksfildServices01/pause-manager/internal/httperr"
	"github.com/BruksfildServices01/pause-manager/internal/metrics"
	"github.com/BruksfildServices01/pause-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	Actor string

	Room      string
	Date      time.Time
	StartTime string
	EndTime   string

	ClientID uint
	EventID  *uint

	Purpose      string
	Status       string
	Participants int
	Equipment    []string
	Notes        string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1️⃣ Slot + campos obrigatórios
	// --------------------------------------------------
	slot := domain.Slot{
		Room:      strings.TrimSpace(in.Room),
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}
	if err := slot.Validate(); err != nil {
		return nil, err
	}

	status := domain.InitialStatus()
	if in.Status != "" {
		status = domain.Status(in.Status)
	}

	participants := in.Participants
	if participants == 0 {
		participants = 1
	}

	if err := validateFields(in.ClientID, in.Purpose, status, participants); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Referências
	// --------------------------------------------------
	if err := assertReferences(ctx, uc.repo, in.ClientID, in.EventID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Verificação + escrita sob lock da sala/dia
	// --------------------------------------------------
	r := &models.Reservation{
		Room:         slot.Room,
		Date:         slot.Date,
		StartTime:    slot.StartTime,
		EndTime:      slot.EndTime,
		ClientID:     in.ClientID,
		EventID:      in.EventID,
		Purpose:      strings.TrimSpace(in.Purpose),
		Status:       string(status),
		Participants: participants,
		Equipment:    in.Equipment,
		Notes:        strings.TrimSpace(in.Notes),
	}

	err := uc.repo.WithinSlotLock(ctx, slot, func(tx domain.Repository) error {
		if err := ensureAvailable(ctx, tx, slot, nil); err != nil {
			return err
		}
		return tx.Create(ctx, r)
	})
	if err != nil {
		if isConflict(err) {
			metrics.ReservationConflicts.Inc()
			uc.audit.Dispatch(audit.Event{
				Actor:  in.Actor,
				Action: audit.ActionReservationConflict,
				Entity: audit.EntityReservation,
				Metadata: map[string]any{
					"room":  slot.Room,
					"date":  slot.Day(),
					"start": slot.StartTime,
					"end":   slot.EndTime,
				},
			})
			return nil, domain.ErrUnavailable
		}
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Auditoria + releitura com client/event resolvidos
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Action:   audit.ActionReservationCreated,
		Entity:   audit.EntityReservation,
		EntityID: &r.ID,
	})

	return uc.repo.Get(ctx, r.ID)
}

// ======================================================
// HELPERS
// ======================================================

func validateFields(clientID uint, purpose string, status domain.Status, participants int) error {
	var details []string
	if clientID == 0 {
		details = append(details, "Le client est obligatoire")
	}
	if strings.TrimSpace(purpose) == "" {
		details = append(details, "L'objet de la réservation est obligatoire")
	}
	if len(purpose) > 200 {
		details = append(details, "L'objet ne peut pas dépasser 200 caractères")
	}
	if !status.Valid() {
		details = append(details, "Le statut doit être: pending, confirmed, in-use, completed ou cancelled")
	}
	if participants < 1 {
		details = append(details, "Le nombre de participants doit être au moins 1")
	}
	if len(details) > 0 {
		return httperr.ErrValidation("invalid_reservation", "Données invalides", details...)
	}
	return nil
}

func assertReferences(ctx context.Context, repo domain.Repository, clientID uint, eventID *uint) error {
	ok, err := repo.ClientExists(ctx, clientID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrValidation("client_not_found", "Client non trouvé")
	}

	if eventID != nil {
		ok, err := repo.EventExists(ctx, *eventID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.ErrValidation("event_not_found", "Événement non trouvé")
		}
	}
	return nil
}

// isConflict cobre a verificação em código e a constraint EXCLUDE do banco.
func isConflict(err error) bool {
	return httperr.IsBusiness(err, "room_unavailable") || httperr.IsExclusionConflict(err)
}

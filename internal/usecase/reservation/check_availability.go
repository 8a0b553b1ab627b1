package reservation

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/pause-manager/internal/domain/reservation"
	"github.com/BruksfildServices01/pause-manager/internal/metrics"
)

type CheckAvailabilityInput struct {
	Room      string
	Date      time.Time
	StartTime string
	EndTime   string
	ExcludeID *uint
}

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

// Execute é somente leitura: true quando nenhuma reserva confirmada/em uso
// da mesma sala e dia cruza [StartTime, EndTime).
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	in CheckAvailabilityInput,
) (bool, error) {

	slot := domain.Slot{
		Room:      in.Room,
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}
	if err := slot.Validate(); err != nil {
		return false, err
	}

	conflict, err := uc.repo.HasConflict(ctx, slot, in.ExcludeID)
	if err != nil {
		return false, err
	}

	metrics.ObserveAvailability(!conflict)
	return !conflict, nil
}

// ensureAvailable é o passo de verificação usado antes de qualquer escrita.
func ensureAvailable(
	ctx context.Context,
	repo domain.Repository,
	slot domain.Slot,
	excludeID *uint,
) error {
	conflict, err := repo.HasConflict(ctx, slot, excludeID)
	if err != nil {
		return err
	}
	metrics.ObserveAvailability(!conflict)
	if conflict {
		return domain.ErrUnavailable
	}
	return nil
}

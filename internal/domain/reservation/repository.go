package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/pause-manager/internal/models"
)

var ErrNotFound = errors.New("reservation not found")

// WeeklyStat agrega reservas por dia da semana (1 = domingo) e sala.
type WeeklyStat struct {
	Day               int    `json:"day"`
	Room              string `json:"room"`
	Count             int64  `json:"count"`
	TotalParticipants int64  `json:"totalParticipants"`
}

type Repository interface {
	// -------- Availability --------
	HasConflict(
		ctx context.Context,
		slot Slot,
		excludeID *uint,
	) (bool, error)

	// WithinSlotLock executa fn numa transação que serializa as escritas
	// para a mesma sala+dia. O repo passado para fn é o transacional.
	WithinSlotLock(
		ctx context.Context,
		slot Slot,
		fn func(tx Repository) error,
	) error

	// -------- Reservation --------
	Create(
		ctx context.Context,
		r *models.Reservation,
	) error

	// Update grava só as colunas listadas (nomes de coluna do banco);
	// devolve ErrNotFound quando a linha não existe mais.
	Update(
		ctx context.Context,
		r *models.Reservation,
		columns []string,
	) error

	// Get devolve a reserva com Client e Event resolvidos.
	Get(
		ctx context.Context,
		id uint,
	) (*models.Reservation, error)

	Delete(
		ctx context.Context,
		id uint,
	) error

	List(ctx context.Context) ([]models.Reservation, error)

	ListUpcoming(
		ctx context.Context,
		from time.Time,
		limit int,
	) ([]models.Reservation, error)

	WeeklyStats(
		ctx context.Context,
		since time.Time,
	) ([]WeeklyStat, error)

	// -------- Referências --------
	ClientExists(ctx context.Context, id uint) (bool, error)
	EventExists(ctx context.Context, id uint) (bool, error)
}

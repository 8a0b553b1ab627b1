package reservation

import (
	"context"

	domain "github.com/BruksfildServices01/pause-manager/internal/domain/reservation"
	"github.com/BruksfildServices01/pause-manager/internal/models"
	"github.com/BruksfildServices01/pause-manager/internal/timezone"
)

const (
	DefaultUpcomingLimit = 10
	MaxUpcomingLimit     = 100
	weeklyStatsDays      = 7
)

type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

func (uc *ListReservations) Execute(ctx context.Context) ([]models.Reservation, error) {
	return uc.repo.List(ctx)
}

type GetReservation struct {
	repo domain.Repository
}

func NewGetReservation(repo domain.Repository) *GetReservation {
	return &GetReservation{repo: repo}
}

func (uc *GetReservation) Execute(ctx context.Context, id uint) (*models.Reservation, error) {
	r, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return r, nil
}

// ListUpcoming devolve reservas pendentes/confirmadas a partir de hoje.
type ListUpcoming struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewListUpcoming(repo domain.Repository, clock timezone.Clock) *ListUpcoming {
	return &ListUpcoming{repo: repo, clock: clock}
}

func (uc *ListUpcoming) Execute(ctx context.Context, limit int) ([]models.Reservation, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	if limit > MaxUpcomingLimit {
		limit = MaxUpcomingLimit
	}
	return uc.repo.ListUpcoming(ctx, timezone.StartOfDay(uc.clock()), limit)
}

// WeeklyStats agrega os últimos 7 dias por dia da semana e sala.
type WeeklyStats struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewWeeklyStats(repo domain.Repository, clock timezone.Clock) *WeeklyStats {
	return &WeeklyStats{repo: repo, clock: clock}
}

func (uc *WeeklyStats) Execute(ctx context.Context) ([]domain.WeeklyStat, error) {
	since := timezone.StartOfDay(uc.clock()).AddDate(0, 0, -weeklyStatsDays)
	return uc.repo.WeeklyStats(ctx, since)
}

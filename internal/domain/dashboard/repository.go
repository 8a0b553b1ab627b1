package dashboard

import (
	"context"

	"github.com/BruksfildServices01/pause-manager/internal/models"
)

// Repository é o recorte somente-leitura do store usado pelo painel.
// Os métodos First* devolvem (nil, nil) quando nada casa.
type Repository interface {
	FindEvents(ctx context.Context, q EventQuery, limit int) ([]models.Event, error)
	CountEvents(ctx context.Context, q EventQuery) (int64, error)
	FirstEvent(ctx context.Context, q EventQuery) (*models.Event, error)

	CountReservations(ctx context.Context, q ReservationQuery) (int64, error)
	FirstReservation(ctx context.Context, q ReservationQuery) (*models.Reservation, error)

	ListActiveClients(ctx context.Context, limit int) ([]models.Client, error)
	CountActiveClients(ctx context.Context) (int64, error)
	CountActiveServices(ctx context.Context) (int64, error)
}

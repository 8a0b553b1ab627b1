package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	domain "github.com/BruksfildServices01/pause-manager/internal/domain/dashboard"
	reservation "github.com/BruksfildServices01/pause-manager/internal/domain/reservation"
	"github.com/BruksfildServices01/pause-manager/internal/metrics"
	"github.com/BruksfildServices01/pause-manager/internal/models"
	"github.com/BruksfildServices01/pause-manager/internal/timezone"
)

const (
	overviewEventsLimit  = 5
	overviewClientsLimit = 5

	// clientes não têm serviço associado no modelo
	activeClientServiceLabel = "Services variés"
)

type GetOverview struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewGetOverview(repo domain.Repository, clock timezone.Clock) *GetOverview {
	return &GetOverview{repo: repo, clock: clock}
}

func (uc *GetOverview) Execute(ctx context.Context) (*domain.Overview, error) {
	start := time.Now()
	defer func() {
		metrics.DashboardQueryDuration.WithLabelValues("overview").Observe(time.Since(start).Seconds())
	}()

	w := domain.NewWindows(uc.clock())

	var (
		events  []models.Event
		clients []models.Client
		quick   domain.QuickStats
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		events, err = uc.repo.FindEvents(gctx, domain.EventQuery{
			FromDay:  w.TodayKey(),
			Statuses: domain.ActiveEventStatuses,
		}, overviewEventsLimit)
		return err
	})

	g.Go(func() (err error) {
		clients, err = uc.repo.ListActiveClients(gctx, overviewClientsLimit)
		return err
	})

	g.Go(func() (err error) {
		quick.EventsToday, err = uc.repo.CountEvents(gctx, domain.EventQuery{
			Day:      w.TodayKey(),
			Statuses: domain.ActiveEventStatuses,
		})
		return err
	})

	g.Go(func() (err error) {
		quick.ReservationsToday, err = uc.repo.CountReservations(gctx, domain.ReservationQuery{
			Day:      w.TodayKey(),
			Statuses: reservation.BlockingStatuses,
		})
		return err
	})

	g.Go(func() (err error) {
		quick.ActiveClients, err = uc.repo.CountActiveClients(gctx)
		return err
	})

	g.Go(func() (err error) {
		quick.TotalServices, err = uc.repo.CountActiveServices(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &domain.Overview{
		UpcomingEvents: make([]domain.UpcomingEvent, 0, len(events)),
		ActiveClients:  make([]domain.ActiveClient, 0, len(clients)),
		QuickStats:     quick,
	}

	for _, e := range events {
		out.UpcomingEvents = append(out.UpcomingEvents, domain.UpcomingEvent{
			ID:        e.ID,
			Name:      e.Name,
			Date:      e.Date,
			StartTime: e.StartTime,
			Status:    e.Status,
			Client:    e.Client.Name,
			Service:   e.Service.Title,
			Type:      e.Type,
		})
	}

	for _, c := range clients {
		out.ActiveClients = append(out.ActiveClients, domain.ActiveClient{
			ID:      c.ID,
			Name:    c.Name,
			Service: activeClientServiceLabel,
			Status:  c.Status,
		})
	}

	return out, nil
}

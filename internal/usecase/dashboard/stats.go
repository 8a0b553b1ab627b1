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

type GetStats struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewGetStats(repo domain.Repository, clock timezone.Clock) *GetStats {
	return &GetStats{repo: repo, clock: clock}
}

// Execute monta o painel de estatísticas. As consultas são independentes
// e rodam em paralelo; a primeira falha cancela as demais.
func (uc *GetStats) Execute(ctx context.Context) (*domain.Stats, error) {
	start := time.Now()
	defer func() {
		metrics.DashboardQueryDuration.WithLabelValues("stats").Observe(time.Since(start).Seconds())
	}()

	w := domain.NewWindows(uc.clock())
	loc := w.Now.Location()

	var (
		weekEvents      []models.Event
		cocktails       int64
		resToday        int64
		resWeek         int64
		nextCoffee      *models.Event
		nextLunch       *models.Event
		nextCocktail    *models.Event
		nextReservation *models.Reservation
	)

	g, gctx := errgroup.WithContext(ctx)

	// eventos da semana: a fatia "hoje" sai do mesmo resultado
	g.Go(func() (err error) {
		weekEvents, err = uc.repo.FindEvents(gctx, domain.EventQuery{
			FromDay:  w.WeekKey(),
			Statuses: domain.ActiveEventStatuses,
		}, 0)
		return err
	})

	g.Go(func() (err error) {
		cocktails, err = uc.repo.CountEvents(gctx, domain.EventQuery{
			FromDay:  w.MonthKey(),
			Types:    []string{domain.TypeCocktail},
			Statuses: domain.ActiveEventStatuses,
		})
		return err
	})

	g.Go(func() (err error) {
		resToday, err = uc.repo.CountReservations(gctx, domain.ReservationQuery{
			Day:      w.TodayKey(),
			Statuses: reservation.BlockingStatuses,
		})
		return err
	})

	g.Go(func() (err error) {
		resWeek, err = uc.repo.CountReservations(gctx, domain.ReservationQuery{
			FromDay:  w.WeekKey(),
			Statuses: reservation.BlockingStatuses,
		})
		return err
	})

	g.Go(func() (err error) {
		nextCoffee, err = uc.repo.FirstEvent(gctx, domain.EventQuery{
			FromDay:          w.TodayKey(),
			Types:            []string{domain.TypeCoffee},
			MatchServiceType: true,
			Statuses:         domain.ActiveEventStatuses,
		})
		return err
	})

	g.Go(func() (err error) {
		nextLunch, err = uc.repo.FirstEvent(gctx, domain.EventQuery{
			FromDay:          w.TodayKey(),
			Types:            []string{domain.TypeLunch},
			MatchServiceType: true,
			Statuses:         domain.ActiveEventStatuses,
		})
		return err
	})

	g.Go(func() (err error) {
		nextCocktail, err = uc.repo.FirstEvent(gctx, domain.EventQuery{
			FromDay:  w.TodayKey(),
			Types:    []string{domain.TypeCocktail},
			Statuses: domain.ActiveEventStatuses,
		})
		return err
	})

	// "próxima reserva" considera só confirmadas
	g.Go(func() (err error) {
		nextReservation, err = uc.repo.FirstReservation(gctx, domain.ReservationQuery{
			FromDay:  w.TodayKey(),
			Statuses: []string{string(reservation.StatusConfirmed)},
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var todayEvents []models.Event
	for _, e := range weekEvents {
		if e.Date == w.TodayKey() {
			todayEvents = append(todayEvents, e)
		}
	}
	today := domain.TallyEvents(todayEvents)
	week := domain.TallyEvents(weekEvents)

	coffeeNext := domain.FormatNext(eventOccurrence(nextCoffee, loc), w.Now)
	reservationNext := domain.FormatNext(reservationOccurrence(nextReservation, loc), w.Now)

	return &domain.Stats{
		CoffeePauses: domain.CoffeePauses{
			Today:    today.Coffee,
			ThisWeek: week.Coffee,
			Next:     coffeeNext,
		},
		Lunches: domain.Lunches{
			Today:          today.Lunch,
			ReservedPlaces: today.LunchPlaces,
			Next:           domain.FormatNext(eventOccurrence(nextLunch, loc), w.Now),
		},
		Reservations: domain.ReservationStats{
			Ongoing:  resToday,
			ThisWeek: resWeek,
			Next:     reservationNext,
		},
		EnhancedCoffee: domain.EnhancedCoffee{
			Today:    today.EnhancedCoffee,
			ThisWeek: week.EnhancedCoffee,
			Next:     coffeeNext,
		},
		Cocktails: domain.Cocktails{
			Scheduled: cocktails,
			ThisMonth: cocktails,
			Next:      domain.FormatNext(eventOccurrence(nextCocktail, loc), w.Now),
		},
		RoomRentals: domain.RoomRentals{
			Today:    resToday,
			ThisWeek: resWeek,
			Next:     reservationNext,
		},
	}, nil
}

func eventOccurrence(e *models.Event, loc *time.Location) *domain.Occurrence {
	if e == nil {
		return nil
	}
	d, err := timezone.ParseDate(e.Date, loc)
	if err != nil {
		return nil
	}
	return &domain.Occurrence{Date: d, StartTime: e.StartTime}
}

func reservationOccurrence(r *models.Reservation, loc *time.Location) *domain.Occurrence {
	if r == nil {
		return nil
	}
	return &domain.Occurrence{Date: timezone.DateOf(r.Date, loc), StartTime: r.StartTime}
}

package dashboard

import (
	"time"

	"github.com/BruksfildServices01/pause-manager/internal/timezone"
)

// Windows são os recortes de tempo do painel, todos relativos a Now.
// A semana começa no domingo.
type Windows struct {
	Now          time.Time
	Today        time.Time
	Tomorrow     time.Time
	StartOfWeek  time.Time
	StartOfMonth time.Time
}

func NewWindows(now time.Time) Windows {
	today := timezone.StartOfDay(now)
	return Windows{
		Now:          now,
		Today:        today,
		Tomorrow:     today.AddDate(0, 0, 1),
		StartOfWeek:  today.AddDate(0, 0, -int(today.Weekday())),
		StartOfMonth: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()),
	}
}

func (w Windows) TodayKey() string {
	return w.Today.Format(timezone.DateLayout)
}

func (w Windows) WeekKey() string {
	return w.StartOfWeek.Format(timezone.DateLayout)
}

func (w Windows) MonthKey() string {
	return w.StartOfMonth.Format(timezone.DateLayout)
}

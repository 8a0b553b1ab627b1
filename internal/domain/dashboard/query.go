package dashboard

import (
	"slices"

	"github.com/BruksfildServices01/pause-manager/internal/models"
)

// EventQuery descreve o filtro que o repositório traduz para SQL.
// Campos vazios não filtram.
type EventQuery struct {
	Day     string // date = Day
	FromDay string // date >= FromDay

	Types            []string
	MatchServiceType bool // Types também casa com service.type

	Statuses []string
}

func (q EventQuery) Matches(e models.Event) bool {
	if q.Day != "" && e.Date != q.Day {
		return false
	}
	if q.FromDay != "" && e.Date < q.FromDay {
		return false
	}
	if len(q.Types) > 0 {
		typed := slices.Contains(q.Types, e.Type)
		if !typed && q.MatchServiceType {
			typed = slices.Contains(q.Types, e.Service.Type)
		}
		if !typed {
			return false
		}
	}
	if len(q.Statuses) > 0 && !slices.Contains(q.Statuses, e.Status) {
		return false
	}
	return true
}

type ReservationQuery struct {
	Day      string
	FromDay  string
	Statuses []string
}

// Matches recebe a data já formatada (YYYY-MM-DD) da reserva.
func (q ReservationQuery) Matches(day string, r models.Reservation) bool {
	if q.Day != "" && day != q.Day {
		return false
	}
	if q.FromDay != "" && day < q.FromDay {
		return false
	}
	if len(q.Statuses) > 0 && !slices.Contains(q.Statuses, r.Status) {
		return false
	}
	return true
}

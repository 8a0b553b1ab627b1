package dashboard

import (
	"time"

	"github.com/BruksfildServices01/pause-manager/internal/timezone"
)

// NotAvailable é o texto exibido quando não há próxima ocorrência.
const NotAvailable = "N/A"

const displayDateLayout = "02/01/2006"

// Occurrence é a projeção mínima de um evento ou reserva para o "próximo".
type Occurrence struct {
	Date      time.Time
	StartTime string
}

// FormatNext rende "Aujourd'hui, HH:MM", "Demain, HH:MM" ou "dd/mm/aaaa, HH:MM".
func FormatNext(next *Occurrence, now time.Time) string {
	if next == nil {
		return NotAvailable
	}

	tomorrow := timezone.StartOfDay(now).AddDate(0, 0, 1)

	switch {
	case timezone.SameDay(next.Date, now):
		return "Aujourd'hui, " + next.StartTime
	case timezone.SameDay(next.Date, tomorrow):
		return "Demain, " + next.StartTime
	default:
		return next.Date.Format(displayDateLayout) + ", " + next.StartTime
	}
}

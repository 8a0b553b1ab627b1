package reservation

import (
	"time"

	"github.com/BruksfildServices01/pause-manager/internal/httperr"
	"github.com/BruksfildServices01/pause-manager/internal/timezone"
	"github.com/BruksfildServices01/pause-manager/internal/validators"
)

// Slot é o pedido de ocupação de uma sala num dia, em [StartTime, EndTime).
type Slot struct {
	Room      string
	Date      time.Time
	StartTime string
	EndTime   string
}

// Day é a chave civil do slot (YYYY-MM-DD), usada em consultas e locks.
func (s Slot) Day() string {
	return s.Date.Format(timezone.DateLayout)
}

// LockKey identifica a sala+dia serializados durante check-then-write.
func (s Slot) LockKey() string {
	return s.Room + "|" + s.Day()
}

func (s Slot) Validate() error {
	var details []string
	if s.Room == "" {
		details = append(details, "Le nom de la salle est obligatoire")
	}
	if s.Date.IsZero() {
		details = append(details, "La date de réservation est obligatoire")
	}
	if !validators.IsHHMM(s.StartTime) {
		details = append(details, "L'heure de début doit être au format HH:MM")
	}
	if !validators.IsHHMM(s.EndTime) {
		details = append(details, "L'heure de fin doit être au format HH:MM")
	}
	if len(details) == 0 && s.EndTime <= s.StartTime {
		details = append(details, "L'heure de fin doit être après l'heure de début")
	}
	if len(details) > 0 {
		return httperr.ErrValidation("invalid_slot", "Données invalides", details...)
	}
	return nil
}

// Overlaps aplica a regra de intervalo semiaberto: [s,e) e [s2,e2) conflitam
// sse s2 < e && e2 > s. Horários encostados não conflitam.
func Overlaps(start, end, otherStart, otherEnd string) bool {
	return otherStart < end && otherEnd > start
}

// ErrUnavailable é devolvido quando o slot colide com uma reserva confirmada/em uso.
var ErrUnavailable = httperr.ErrConflict(
	"room_unavailable",
	"La salle n'est pas disponible pour cette plage horaire",
)

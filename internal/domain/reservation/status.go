package reservation

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusInUse     Status = "in-use"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// BlockingStatuses são os únicos status que ocupam a sala.
var BlockingStatuses = []string{string(StatusConfirmed), string(StatusInUse)}

// UpcomingStatuses alimentam a listagem de próximas reservas.
var UpcomingStatuses = []string{string(StatusPending), string(StatusConfirmed)}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInUse, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s Status) Blocking() bool {
	return s == StatusConfirmed || s == StatusInUse
}

func InitialStatus() Status {
	return StatusPending
}

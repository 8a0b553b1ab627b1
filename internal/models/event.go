package models

import "time"

// EventClient e EventService são cópias embutidas, sem identidade própria.
type EventClient struct {
	Name    string `gorm:"size:100" json:"name"`
	Contact string `gorm:"size:100" json:"contact"`
}

type EventService struct {
	Title string `gorm:"size:100" json:"title"`
	Type  string `gorm:"size:30" json:"type"`
}

type Event struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:100;not null" json:"name"`

	// Date fica como texto YYYY-MM-DD; a ordem lexicográfica é a cronológica.
	Date      string `gorm:"size:10;not null;index;index:idx_events_date_status,priority:1" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"startTime"`
	EndTime   string `gorm:"size:5;not null" json:"endTime"`

	Type    string       `gorm:"size:20;not null;index" json:"type"`
	Client  EventClient  `gorm:"embedded;embeddedPrefix:client_" json:"client"`
	Service EventService `gorm:"embedded;embeddedPrefix:service_" json:"service"`

	Status       string `gorm:"size:20;default:'scheduled';index;index:idx_events_date_status,priority:2" json:"status"`
	Participants int    `gorm:"default:1" json:"participants"`
	Location     string `gorm:"size:200;not null" json:"location"`
	Notes        string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DurationMinutes devolve 0 quando os horários são inválidos.
func (e *Event) DurationMinutes() int {
	start, err1 := time.Parse("15:04", e.StartTime)
	end, err2 := time.Parse("15:04", e.EndTime)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(end.Sub(start).Minutes())
}

package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/pause-manager/internal/timezone"
)

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Room string    `gorm:"size:50;not null;index;index:idx_reservations_date_room,priority:2" json:"room"`
	Date time.Time `gorm:"type:date;not null;index;index:idx_reservations_date_room,priority:1" json:"date"`

	StartTime string `gorm:"size:5;not null" json:"startTime"`
	EndTime   string `gorm:"size:5;not null" json:"endTime"`

	// Colunas derivadas usadas pela constraint EXCLUDE (int4range).
	StartMinute int `gorm:"not null;default:0" json:"-"`
	EndMinute   int `gorm:"not null;default:0" json:"-"`

	// Referências sem FK: apagar um cliente não mexe nas reservas.
	ClientID uint    `gorm:"not null;index" json:"clientId"`
	Client   *Client `json:"client,omitempty"`

	EventID *uint  `gorm:"index" json:"eventId,omitempty"`
	Event   *Event `json:"event,omitempty"`

	Purpose      string   `gorm:"size:200;not null" json:"purpose"`
	Status       string   `gorm:"size:20;default:'pending';index" json:"status"`
	Participants int      `gorm:"default:1" json:"participants"`
	Equipment    []string `gorm:"serializer:json" json:"equipment"`
	Notes        string   `gorm:"size:500" json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeSave mantém StartMinute/EndMinute em sincronia com os horários.
func (r *Reservation) BeforeSave(tx *gorm.DB) error {
	r.SyncMinutes()
	return nil
}

func (r *Reservation) SyncMinutes() {
	if m, err := timezone.MinutesOf(r.StartTime); err == nil {
		r.StartMinute = m
	}
	if m, err := timezone.MinutesOf(r.EndTime); err == nil {
		r.EndMinute = m
	}
	if r.Equipment == nil {
		r.Equipment = []string{}
	}
}

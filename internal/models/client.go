package models

import "time"

// Client de contrato do serviço de pausas e salas. Events e Reservations
// apontam para ele sem cascata na exclusão.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name           string `gorm:"size:100;not null;index" json:"name"`
	Contact        string `gorm:"size:100;not null" json:"contact"`
	Email          string `gorm:"size:100;not null;index" json:"email"`
	Phone          string `gorm:"size:20" json:"phone,omitempty"`
	Address        string `gorm:"size:200" json:"address,omitempty"`
	ContractNumber string `gorm:"size:50;not null;uniqueIndex" json:"contractNumber"`
	Status         string `gorm:"size:20;default:'active';index" json:"status"`
	Notes          string `gorm:"size:500" json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
)

func (c *Client) IsActive() bool {
	return c.Status == ClientStatusActive
}

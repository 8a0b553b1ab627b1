package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"size:500;not null" json:"description"`
	Price       string `gorm:"size:50;not null" json:"price"`
	Status      string `gorm:"size:20;default:'active';index" json:"status"`
	Type        string `gorm:"size:30;not null;index" json:"type"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const (
	ServiceStatusActive  = "active"
	ServiceStatusNew     = "new"
	ServiceStatusLimited = "limited"
)

// FormattedPrice acrescenta a unidade de cobrança de acordo com o tipo.
func (s *Service) FormattedPrice() string {
	switch s.Type {
	case "coffee", "enhanced_coffee":
		return s.Price + " €/personne"
	case "lunch":
		return s.Price + " €/repas"
	case "cocktail":
		return s.Price + " €/événement"
	case "room_rental":
		return s.Price + " €/salle"
	case "reservation":
		return s.Price + " €/réservation"
	default:
		return s.Price + " €"
	}
}

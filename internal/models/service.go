package models

import "time"

// Serviço oferecido pela barbearia. Nunca é apagado:
// desativa com Active=false para preservar histórico.
type Service struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index" json:"barbershop_id"`

	CreatedByBarberID uint `json:"created_by_barber_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	ImageURL    string `gorm:"size:512" json:"image_url"`

	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Registro canônico do agendamento. Snapshots capturam o serviço,
// o barbeiro e o cliente no momento da reserva: edições posteriores
// não alteram o histórico.
type Appointment struct {
	ID       uint      `gorm:"primaryKey" json:"-"`
	PublicID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"id"`

	BarbershopID uint `gorm:"index" json:"barbershop_id"`
	BarberID     uint `gorm:"index" json:"barber_id"`
	UserID       uint `gorm:"index" json:"user_id"`
	ServiceID    uint `json:"service_id"`

	ServiceName        string  `gorm:"size:100" json:"service_name"`
	ServiceDescription string  `gorm:"size:255" json:"service_description"`
	ServiceDurationMin int     `json:"service_duration_min"`
	ServicePrice       float64 `json:"service_price"`
	ServiceImageURL    string  `gorm:"size:512" json:"service_image_url"`

	BarberName     string `gorm:"size:100" json:"barber_name"`
	BarberImageURL string `gorm:"size:512" json:"barber_image_url"`

	UserName    string `gorm:"size:100" json:"user_name"`
	UserSurname string `gorm:"size:100" json:"user_surname"`
	UserPhone   string `gorm:"size:20" json:"user_phone"`

	StartAt time.Time `gorm:"index" json:"start_at"`
	EndAt   time.Time `json:"end_at"`

	// PENDING | CONFIRMED | CANCELED
	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	CanceledAt *time.Time `json:"canceled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

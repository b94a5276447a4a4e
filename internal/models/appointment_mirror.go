package models

import (
	"time"

	"github.com/google/uuid"
)

// ======================================================
// Espelhos (projeções de leitura)
// ======================================================
//
// O registro canônico vive em appointments. As duas tabelas abaixo
// são cópias desnormalizadas para listagem rápida por cliente e por
// barbeiro, sempre gravadas na MESMA transação do canônico.
// O canônico é a fonte da verdade; espelho quebrado se reconstrói
// a partir dele (RebuildMirrors).

type UserAppointment struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	AppointmentID uuid.UUID `gorm:"type:uuid;index:idx_user_ap,unique,composite:ap" json:"appointment_id"`
	UserID        uint      `gorm:"index:idx_user_ap,unique,composite:ap" json:"user_id"`

	BarbershopID uint `json:"barbershop_id"`
	BarberID     uint `json:"barber_id"`
	ServiceID    uint `json:"service_id"`

	ServiceName        string  `gorm:"size:100" json:"service_name"`
	ServiceDurationMin int     `json:"service_duration_min"`
	ServicePrice       float64 `json:"service_price"`
	ServiceImageURL    string  `gorm:"size:512" json:"service_image_url"`
	BarberName         string  `gorm:"size:100" json:"barber_name"`

	StartAt time.Time `gorm:"index" json:"start_at"`
	EndAt   time.Time `json:"end_at"`
	Status  string    `gorm:"size:20" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BarberAppointment struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	AppointmentID uuid.UUID `gorm:"type:uuid;index:idx_barber_ap,unique,composite:ap" json:"appointment_id"`
	BarberID      uint      `gorm:"index:idx_barber_ap,unique,composite:ap" json:"barber_id"`

	BarbershopID uint `json:"barbershop_id"`
	UserID       uint `json:"user_id"`
	ServiceID    uint `json:"service_id"`

	ServiceName        string  `gorm:"size:100" json:"service_name"`
	ServiceDurationMin int     `json:"service_duration_min"`
	ServicePrice       float64 `json:"service_price"`
	UserName           string  `gorm:"size:100" json:"user_name"`
	UserSurname        string  `gorm:"size:100" json:"user_surname"`
	UserPhone          string  `gorm:"size:20" json:"user_phone"`

	StartAt time.Time `gorm:"index" json:"start_at"`
	EndAt   time.Time `json:"end_at"`
	Status  string    `gorm:"size:20" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

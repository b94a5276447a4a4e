package models

import "time"

type BreakWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Expediente de um dia da semana. Uma linha por (barbeiro, weekday);
// weekday sem linha = nunca configurado, Active=false = fechado.
type WorkingHours struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index:idx_wh_barber_weekday,unique" json:"barber_id"`

	Weekday int `gorm:"index:idx_wh_barber_weekday,unique" json:"weekday"`

	Active    bool   `json:"active"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	SlotStepMin int `gorm:"default:30" json:"slot_step_min"`

	Breaks []BreakWindow `gorm:"serializer:json" json:"breaks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

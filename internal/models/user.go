package models

import "time"

const (
	RoleOwner  = "owner"
	RoleBarber = "barber"
	RoleClient = "client"
)

type User struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	BarbershopID *uint       `json:"barbershop_id"`
	Barbershop   *Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barbershop,omitempty"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Surname      string `gorm:"size:100" json:"surname"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	ImageURL     string `gorm:"size:512" json:"image_url"`

	// owner | barber | client
	Role string `gorm:"size:20;default:'client'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

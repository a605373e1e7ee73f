package models

import "time"

// User is either a customer booking services or the owner of a
// barbershop. Owners carry a barbershop reference, customers don't.
type User struct {
	ID           uint  `gorm:"primaryKey" json:"id"`
	BarbershopID *uint `json:"barbershop_id,omitempty"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'customer'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

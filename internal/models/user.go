package models

import (
	"time"
)

// User is keyed by an opaque string: a generated UUID for phone logins or the
// SSO provider's subject UID for Google sign-in. Phone and email are optional
// but unique when present.
type User struct {
	ID            string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	PhoneNumber   *string   `gorm:"size:15;uniqueIndex" json:"phoneNumber,omitempty"`
	Email         *string   `gorm:"size:100;uniqueIndex" json:"email,omitempty"`
	Name          string    `gorm:"size:100" json:"name"`
	Currency      string    `gorm:"size:10;default:'INR'" json:"currency"`
	Address       string    `gorm:"size:200" json:"address"`
	IsActive      bool      `gorm:"default:true" json:"isActive"`
	EmailVerified bool      `gorm:"default:false" json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// DefaultCurrency is assigned to every newly created user.
const DefaultCurrency = "INR"

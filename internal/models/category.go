package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is global, visible to every user and immutable through the
// user-facing endpoints. Seeded at first run.
type DefaultCategory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserCategory is owned by exactly one user. Its name must be unique within
// the union of default categories and the owner's other active categories,
// compared case-insensitively.
type UserCategory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(64);not null;index" json:"userId"`
	Name      string    `gorm:"size:100;not null;index" json:"name"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Currency is immutable reference data seeded at first run.
type Currency struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code      string    `gorm:"size:10;not null;uniqueIndex" json:"code"`
	Symbol    string    `gorm:"size:10;not null" json:"symbol"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Meeting is a scheduled team meeting. Overlapping meetings are allowed.
type Meeting struct {
	gorm.Model
	TeamID uint `gorm:"not null;index" json:"team_id"`

	Title    string    `gorm:"size:255;not null" json:"title"`
	Notes    *string   `json:"notes,omitempty"`
	StartsAt time.Time `gorm:"not null" json:"starts_at"`
	EndsAt   time.Time `gorm:"not null" json:"ends_at"`
}

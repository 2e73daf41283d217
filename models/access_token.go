package models

import "time"

// AccessToken is an opaque login credential. The token value itself is the
// primary key, there is no surrogate id.
type AccessToken struct {
	Token     string    `gorm:"primaryKey;size:64" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

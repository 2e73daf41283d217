package models

import (
	"gorm.io/gorm"
)

// User represents a user account in the system
type User struct {
	gorm.Model

	// Authentication fields
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Profile information
	Name *string `json:"name,omitempty"`

	// Account status. IsSuperuser is the global authorization flag and is
	// checked independently of any Worker role.
	IsActive    bool `gorm:"default:true" json:"is_active"`
	IsVerified  bool `gorm:"default:false" json:"is_verified"`
	IsSuperuser bool `gorm:"default:false" json:"is_superuser"`

	// Relations
	Worker        *Worker `gorm:"foreignKey:UserID" json:"worker,omitempty"`
	AuthoredTasks []Task  `gorm:"foreignKey:AuthorID" json:"-"`
	AssignedTasks []Task  `gorm:"foreignKey:AssigneeID" json:"-"`
}

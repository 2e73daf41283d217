package models

import "time"

// TeamRole is the role a worker holds inside their team
type TeamRole string

const (
	RoleAdmin    TeamRole = "admin"
	RoleManager  TeamRole = "manager"
	RoleEmployee TeamRole = "employee"
)

// Team represents a company team. Teams are hard-deleted so a deleted
// team's code can be reused.
type Team struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name    string `gorm:"size:200;not null" json:"name"`
	Code    string `gorm:"size:64;uniqueIndex;not null" json:"code"`
	OwnerID *uint  `json:"owner_id,omitempty"`

	// Relations
	Members  []Worker  `gorm:"foreignKey:TeamID" json:"members,omitempty"`
	Tasks    []Task    `gorm:"foreignKey:TeamID" json:"-"`
	Meetings []Meeting `gorm:"foreignKey:TeamID" json:"-"`
}

// Worker is the membership record binding a user to at most one team.
// UserID is unique: a user has exactly one worker row once created.
// A nil TeamID means the worker is unaffiliated; role admin with a nil
// TeamID is a global admin who may create teams without belonging to one.
type Worker struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID     uint     `gorm:"uniqueIndex;not null" json:"user_id"`
	TeamID     *uint    `gorm:"index" json:"team_id"`
	RoleInTeam TeamRole `gorm:"size:16;not null;default:'employee'" json:"role_in_team"`

	// Relations
	User User  `json:"-"`
	Team *Team `json:"-"`
}

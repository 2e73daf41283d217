package models

import (
	"time"

	"gorm.io/gorm"
)

// TaskStatus is the lifecycle state of a task
type TaskStatus string

const (
	TaskOpen       TaskStatus = "open"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// Task belongs to exactly one team and one author; the assignee is optional
type Task struct {
	gorm.Model
	TeamID     uint  `gorm:"not null;index" json:"team_id"`
	AuthorID   uint  `gorm:"not null;index" json:"author_id"`
	AssigneeID *uint `gorm:"index" json:"assignee_id,omitempty"`

	Title       string     `gorm:"size:255;not null" json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      TaskStatus `gorm:"size:16;not null;default:'open';index" json:"status"`
	Deadline    *time.Time `json:"deadline,omitempty"`

	// Relations
	Team     Team          `json:"-"`
	Comments []TaskComment `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
}

// TaskComment is a single comment on a task, removed together with it
type TaskComment struct {
	gorm.Model
	TaskID   uint   `gorm:"not null;index" json:"task_id"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Body     string `gorm:"not null" json:"body"`
}

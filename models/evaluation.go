package models

import (
	"time"

	"gorm.io/gorm"
)

// Evaluation scores a task. One evaluation per evaluator per task.
type Evaluation struct {
	gorm.Model
	TaskID      uint `gorm:"not null;uniqueIndex:uq_evaluation_task_evaluator" json:"task_id"`
	EvaluatorID uint `gorm:"not null;uniqueIndex:uq_evaluation_task_evaluator;index" json:"evaluator_id"`

	Score       int        `gorm:"not null" json:"score"`
	Comment     *string    `json:"comment,omitempty"`
	PeriodStart *time.Time `json:"period_start,omitempty"`
	PeriodEnd   *time.Time `json:"period_end,omitempty"`
}

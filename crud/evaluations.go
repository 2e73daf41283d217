package crud

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"crewdesk/models"
	"crewdesk/utils"
)

// CreateEvaluation inserts a score for a task. The unique
// (task_id, evaluator_id) index keeps each evaluator to one evaluation.
func CreateEvaluation(db *gorm.DB, taskID, evaluatorID uint, score int, comment *string, periodStart, periodEnd *time.Time) (*models.Evaluation, error) {
	eval := models.Evaluation{
		TaskID:      taskID,
		EvaluatorID: evaluatorID,
		Score:       score,
		Comment:     comment,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}
	if err := db.Create(&eval).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.Conflict("Task already evaluated by this user")
		}
		return nil, err
	}
	return &eval, nil
}

func ListEvaluationsByTask(db *gorm.DB, taskID uint) ([]models.Evaluation, error) {
	var evals []models.Evaluation
	if err := db.Where("task_id = ?", taskID).Find(&evals).Error; err != nil {
		return nil, err
	}
	return evals, nil
}

package services

import (
	"time"

	"gorm.io/gorm"

	"crewdesk/crud"
	"crewdesk/models"
	"crewdesk/utils"
)

// Task access rules: members of the task's team read, create, comment and
// evaluate; the author, a team admin, or a superuser may update and delete.

func CreateTask(db *gorm.DB, actor *models.User, teamID uint, title string, description *string, assigneeID *uint, deadline *time.Time) (*models.Task, error) {
	var task *models.Task
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := crud.GetTeamOr404(tx, teamID); err != nil {
			return err
		}
		if !utils.IsSuperuser(actor) {
			if _, err := utils.RequireMember(tx, actor.ID, teamID); err != nil {
				return err
			}
		}
		if assigneeID != nil {
			if _, err := utils.RequireMember(tx, *assigneeID, teamID); err != nil {
				return err
			}
		}
		var err error
		task, err = crud.CreateTask(tx, teamID, actor.ID, title, description, assigneeID, deadline)
		return err
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func GetTask(db *gorm.DB, actor *models.User, taskID uint) (*models.Task, error) {
	task, err := crud.GetTaskOr404(db, taskID)
	if err != nil {
		return nil, err
	}
	if !utils.IsSuperuser(actor) {
		if _, err := utils.RequireMember(db, actor.ID, task.TeamID); err != nil {
			return nil, err
		}
	}
	return task, nil
}

func ListTeamTasks(db *gorm.DB, actor *models.User, teamID uint) ([]models.Task, error) {
	if _, err := crud.GetTeamOr404(db, teamID); err != nil {
		return nil, err
	}
	if !utils.IsSuperuser(actor) {
		if _, err := utils.RequireMember(db, actor.ID, teamID); err != nil {
			return nil, err
		}
	}
	return crud.ListTasksByTeam(db, teamID)
}

func canEditTask(tx *gorm.DB, actor *models.User, task *models.Task) error {
	if utils.IsSuperuser(actor) || task.AuthorID == actor.ID {
		return nil
	}
	admin, err := utils.IsTeamAdmin(tx, actor.ID, task.TeamID)
	if err != nil {
		return err
	}
	if admin {
		return nil
	}
	return utils.Forbidden("Only the author or a team admin can edit this task")
}

func UpdateTask(db *gorm.DB, actor *models.User, taskID uint, upd crud.TaskUpdate) (*models.Task, error) {
	var task *models.Task
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		task, err = crud.GetTaskOr404(tx, taskID)
		if err != nil {
			return err
		}
		if err := canEditTask(tx, actor, task); err != nil {
			return err
		}
		if upd.AssigneeID != nil {
			if _, err := utils.RequireMember(tx, *upd.AssigneeID, task.TeamID); err != nil {
				return err
			}
		}
		task, err = crud.UpdateTask(tx, task, upd)
		return err
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func DeleteTask(db *gorm.DB, actor *models.User, taskID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		task, err := crud.GetTaskOr404(tx, taskID)
		if err != nil {
			return err
		}
		if err := canEditTask(tx, actor, task); err != nil {
			return err
		}
		return crud.DeleteTask(tx, task)
	})
}

func AddTaskComment(db *gorm.DB, actor *models.User, taskID uint, body string) (*models.TaskComment, error) {
	var comment *models.TaskComment
	err := db.Transaction(func(tx *gorm.DB) error {
		task, err := crud.GetTaskOr404(tx, taskID)
		if err != nil {
			return err
		}
		if !utils.IsSuperuser(actor) {
			if _, err := utils.RequireMember(tx, actor.ID, task.TeamID); err != nil {
				return err
			}
		}
		comment, err = crud.AddTaskComment(tx, taskID, actor.ID, body)
		return err
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func ListTaskComments(db *gorm.DB, actor *models.User, taskID uint) ([]models.TaskComment, error) {
	task, err := crud.GetTaskOr404(db, taskID)
	if err != nil {
		return nil, err
	}
	if !utils.IsSuperuser(actor) {
		if _, err := utils.RequireMember(db, actor.ID, task.TeamID); err != nil {
			return nil, err
		}
	}
	return crud.ListTaskComments(db, taskID)
}

// EvaluateTask records the actor's score for a task. A second evaluation
// by the same evaluator fails with Conflict.
func EvaluateTask(db *gorm.DB, actor *models.User, taskID uint, score int, comment *string, periodStart, periodEnd *time.Time) (*models.Evaluation, error) {
	var eval *models.Evaluation
	err := db.Transaction(func(tx *gorm.DB) error {
		task, err := crud.GetTaskOr404(tx, taskID)
		if err != nil {
			return err
		}
		if !utils.IsSuperuser(actor) {
			if _, err := utils.RequireMember(tx, actor.ID, task.TeamID); err != nil {
				return err
			}
		}
		eval, err = crud.CreateEvaluation(tx, taskID, actor.ID, score, comment, periodStart, periodEnd)
		return err
	})
	if err != nil {
		return nil, err
	}
	return eval, nil
}

func ListTaskEvaluations(db *gorm.DB, actor *models.User, taskID uint) ([]models.Evaluation, error) {
	task, err := crud.GetTaskOr404(db, taskID)
	if err != nil {
		return nil, err
	}
	if !utils.IsSuperuser(actor) {
		if _, err := utils.RequireMember(db, actor.ID, task.TeamID); err != nil {
			return nil, err
		}
	}
	return crud.ListEvaluationsByTask(db, taskID)
}

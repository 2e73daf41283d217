package crud

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"crewdesk/models"
	"crewdesk/utils"
)

type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *models.TaskStatus
	AssigneeID  *uint
	Deadline    *time.Time
}

func CreateTask(db *gorm.DB, teamID, authorID uint, title string, description *string, assigneeID *uint, deadline *time.Time) (*models.Task, error) {
	task := models.Task{
		TeamID:      teamID,
		AuthorID:    authorID,
		AssigneeID:  assigneeID,
		Title:       title,
		Description: description,
		Status:      models.TaskOpen,
		Deadline:    deadline,
	}
	if err := db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func GetTaskOr404(db *gorm.DB, taskID uint) (*models.Task, error) {
	var task models.Task
	err := db.First(&task, taskID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFound("Task not found")
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func ListTasksByTeam(db *gorm.DB, teamID uint) ([]models.Task, error) {
	var tasks []models.Task
	if err := db.Where("team_id = ?", teamID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func UpdateTask(db *gorm.DB, task *models.Task, upd TaskUpdate) (*models.Task, error) {
	if upd.Title != nil {
		task.Title = *upd.Title
	}
	if upd.Description != nil {
		task.Description = upd.Description
	}
	if upd.Status != nil {
		task.Status = *upd.Status
	}
	if upd.AssigneeID != nil {
		task.AssigneeID = upd.AssigneeID
	}
	if upd.Deadline != nil {
		task.Deadline = upd.Deadline
	}
	if err := db.Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes the task together with its comments
func DeleteTask(db *gorm.DB, task *models.Task) error {
	if err := db.Where("task_id = ?", task.ID).Delete(&models.TaskComment{}).Error; err != nil {
		return err
	}
	return db.Delete(task).Error
}

func AddTaskComment(db *gorm.DB, taskID, authorID uint, body string) (*models.TaskComment, error) {
	comment := models.TaskComment{TaskID: taskID, AuthorID: authorID, Body: body}
	if err := db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListTaskComments returns a task's comments oldest first
func ListTaskComments(db *gorm.DB, taskID uint) ([]models.TaskComment, error) {
	var comments []models.TaskComment
	if err := db.Where("task_id = ?", taskID).Order("created_at").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

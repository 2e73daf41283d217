package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"crewdesk/crud"
	"crewdesk/middleware"
	"crewdesk/models"
	"crewdesk/services"
	"crewdesk/utils"
)

type TaskController struct {
	db  *gorm.DB
	log *logrus.Entry
}

func NewTaskController(db *gorm.DB, log *logrus.Logger) *TaskController {
	return &TaskController{db: db, log: log.WithField("component", "tasks")}
}

type TaskCreateRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description *string    `json:"description"`
	AssigneeID  *uint      `json:"assignee_id"`
	Deadline    *time.Time `json:"deadline"`
}

type TaskUpdateRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=255"`
	Description *string    `json:"description"`
	Status      *string    `json:"status" validate:"omitempty,oneof=open in_progress done"`
	AssigneeID  *uint      `json:"assignee_id"`
	Deadline    *time.Time `json:"deadline"`
}

type TaskCommentRequest struct {
	Body string `json:"body" validate:"required"`
}

type EvaluationRequest struct {
	Score       int        `json:"score" validate:"required,min=1,max=10"`
	Comment     *string    `json:"comment"`
	PeriodStart *time.Time `json:"period_start"`
	PeriodEnd   *time.Time `json:"period_end"`
}

func parseTaskID(c *fiber.Ctx) (uint, error) {
	taskID, err := c.ParamsInt("taskID")
	if err != nil || taskID <= 0 {
		return 0, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid task id",
		})
	}
	return uint(taskID), nil
}

func (tc *TaskController) CreateTask(c *fiber.Ctx) error {
	teamID, err := parseTeamID(c)
	if err != nil || teamID == 0 {
		return err
	}

	var req TaskCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	actor := middleware.CurrentUser(c)
	task, err := services.CreateTask(tc.db, actor, teamID, req.Title, req.Description, req.AssigneeID, req.Deadline)
	if err != nil {
		return err
	}

	tc.log.WithFields(logrus.Fields{"task_id": task.ID, "team_id": teamID, "actor_id": actor.ID}).Info("task created")
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (tc *TaskController) ListTeamTasks(c *fiber.Ctx) error {
	teamID, err := parseTeamID(c)
	if err != nil || teamID == 0 {
		return err
	}

	tasks, err := services.ListTeamTasks(tc.db, middleware.CurrentUser(c), teamID)
	if err != nil {
		return err
	}
	return c.JSON(tasks)
}

func (tc *TaskController) GetTask(c *fiber.Ctx) error {
	taskID, err := parseTaskID(c)
	if err != nil || taskID == 0 {
		return err
	}

	task, err := services.GetTask(tc.db, middleware.CurrentUser(c), taskID)
	if err != nil {
		return err
	}
	return c.JSON(task)
}

func (tc *TaskController) UpdateTask(c *fiber.Ctx) error {
	taskID, err := parseTaskID(c)
	if err != nil || taskID == 0 {
		return err
	}

	var req TaskUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	upd := crud.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		Deadline:    req.Deadline,
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		upd.Status = &status
	}

	task, err := services.UpdateTask(tc.db, middleware.CurrentUser(c), taskID, upd)
	if err != nil {
		return err
	}
	return c.JSON(task)
}

func (tc *TaskController) DeleteTask(c *fiber.Ctx) error {
	taskID, err := parseTaskID(c)
	if err != nil || taskID == 0 {
		return err
	}

	if err := services.DeleteTask(tc.db, middleware.CurrentUser(c), taskID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (tc *TaskController) AddComment(c *fiber.Ctx) error {
	taskID, err := parseTaskID(c)
	if err != nil || taskID == 0 {
		return err
	}

	var req TaskCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	comment, err := services.AddTaskComment(tc.db, middleware.CurrentUser(c), taskID, req.Body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (tc *TaskController) ListComments(c *fiber.Ctx) error {
	taskID, err := parseTaskID(c)
	if err != nil || taskID == 0 {
		return err
	}

	comments, err := services.ListTaskComments(tc.db, middleware.CurrentUser(c), taskID)
	if err != nil {
		return err
	}
	return c.JSON(comments)
}

func (tc *TaskController) EvaluateTask(c *fiber.Ctx) error {
	taskID, err := parseTaskID(c)
	if err != nil || taskID == 0 {
		return err
	}

	var req EvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	eval, err := services.EvaluateTask(tc.db, middleware.CurrentUser(c), taskID, req.Score, req.Comment, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(eval)
}

func (tc *TaskController) ListEvaluations(c *fiber.Ctx) error {
	taskID, err := parseTaskID(c)
	if err != nil || taskID == 0 {
		return err
	}

	evals, err := services.ListTaskEvaluations(tc.db, middleware.CurrentUser(c), taskID)
	if err != nil {
		return err
	}
	return c.JSON(evals)
}

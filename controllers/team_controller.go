package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"crewdesk/middleware"
	"crewdesk/services"
	"crewdesk/utils"
)

type TeamController struct {
	db  *gorm.DB
	log *logrus.Entry
}

func NewTeamController(db *gorm.DB, log *logrus.Logger) *TeamController {
	return &TeamController{db: db, log: log.WithField("component", "teams")}
}

type TeamCreateRequest struct {
	Name string `json:"name" validate:"required,max=200"`
	Code string `json:"code" validate:"required,max=64"`
}

type TeamUpdateRequest struct {
	Name *string `json:"name" validate:"omitempty,max=200"`
	Code *string `json:"code" validate:"omitempty,max=64"`
}

func (tc *TeamController) CreateTeam(c *fiber.Ctx) error {
	var req TeamCreateRequest
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
	team, err := services.CreateTeam(tc.db, actor, req.Name, req.Code)
	if err != nil {
		return err
	}

	tc.log.WithFields(logrus.Fields{"team_id": team.ID, "actor_id": actor.ID}).Info("team created")
	return c.Status(fiber.StatusCreated).JSON(team)
}

func (tc *TeamController) ListTeams(c *fiber.Ctx) error {
	teams, err := services.ListTeamsForUser(tc.db, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(teams)
}

func (tc *TeamController) GetTeam(c *fiber.Ctx) error {
	teamID, err := c.ParamsInt("teamID")
	if err != nil || teamID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid team id",
		})
	}

	team, err := services.GetTeamForUser(tc.db, middleware.CurrentUser(c), uint(teamID))
	if err != nil {
		return err
	}
	return c.JSON(team)
}

func (tc *TeamController) UpdateTeam(c *fiber.Ctx) error {
	teamID, err := c.ParamsInt("teamID")
	if err != nil || teamID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid team id",
		})
	}

	var req TeamUpdateRequest
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

	team, err := services.UpdateTeam(tc.db, middleware.CurrentUser(c), uint(teamID), req.Name, req.Code)
	if err != nil {
		return err
	}
	return c.JSON(team)
}

func (tc *TeamController) DeleteTeam(c *fiber.Ctx) error {
	teamID, err := c.ParamsInt("teamID")
	if err != nil || teamID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid team id",
		})
	}

	actor := middleware.CurrentUser(c)
	if err := services.DeleteTeam(tc.db, actor, uint(teamID)); err != nil {
		return err
	}

	tc.log.WithFields(logrus.Fields{"team_id": teamID, "actor_id": actor.ID}).Info("team deleted")
	return c.SendStatus(fiber.StatusNoContent)
}

package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"crewdesk/middleware"
	"crewdesk/models"
	"crewdesk/services"
	"crewdesk/utils"
)

type MemberController struct {
	db  *gorm.DB
	log *logrus.Entry
}

func NewMemberController(db *gorm.DB, log *logrus.Logger) *MemberController {
	return &MemberController{db: db, log: log.WithField("component", "members")}
}

type MemberAddRequest struct {
	UserID uint   `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"omitempty,oneof=admin manager employee"`
}

type MemberUpdateRequest struct {
	Role string `json:"role" validate:"required,oneof=admin manager employee"`
}

func parseTeamID(c *fiber.Ctx) (uint, error) {
	teamID, err := c.ParamsInt("teamID")
	if err != nil || teamID <= 0 {
		return 0, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid team id",
		})
	}
	return uint(teamID), nil
}

func parseUserID(c *fiber.Ctx) (uint, error) {
	userID, err := c.ParamsInt("userID")
	if err != nil || userID <= 0 {
		return 0, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
	}
	return uint(userID), nil
}

func (mc *MemberController) ListMembers(c *fiber.Ctx) error {
	teamID, err := parseTeamID(c)
	if err != nil || teamID == 0 {
		return err
	}

	members, err := services.ListMembers(mc.db, middleware.CurrentUser(c), teamID)
	if err != nil {
		return err
	}
	return c.JSON(members)
}

func (mc *MemberController) AddMember(c *fiber.Ctx) error {
	teamID, err := parseTeamID(c)
	if err != nil || teamID == 0 {
		return err
	}

	var req MemberAddRequest
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

	role := models.TeamRole(req.Role)
	if role == "" {
		role = models.RoleEmployee
	}

	actor := middleware.CurrentUser(c)
	worker, err := services.AddMember(mc.db, actor, teamID, req.UserID, role)
	if err != nil {
		return err
	}

	mc.log.WithFields(logrus.Fields{
		"team_id":  teamID,
		"user_id":  req.UserID,
		"role":     role,
		"actor_id": actor.ID,
	}).Info("member added")
	return c.Status(fiber.StatusCreated).JSON(worker)
}

func (mc *MemberController) ChangeMemberRole(c *fiber.Ctx) error {
	teamID, err := parseTeamID(c)
	if err != nil || teamID == 0 {
		return err
	}
	userID, err := parseUserID(c)
	if err != nil || userID == 0 {
		return err
	}

	var req MemberUpdateRequest
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

	worker, err := services.ChangeMemberRole(mc.db, middleware.CurrentUser(c), teamID, userID, models.TeamRole(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(worker)
}

func (mc *MemberController) RemoveMember(c *fiber.Ctx) error {
	teamID, err := parseTeamID(c)
	if err != nil || teamID == 0 {
		return err
	}
	userID, err := parseUserID(c)
	if err != nil || userID == 0 {
		return err
	}

	if err := services.RemoveMember(mc.db, middleware.CurrentUser(c), teamID, userID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

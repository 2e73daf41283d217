package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"crewdesk/middleware"
	"crewdesk/services"
	"crewdesk/utils"
)

type MeetingController struct {
	db  *gorm.DB
	log *logrus.Entry
}

func NewMeetingController(db *gorm.DB, log *logrus.Logger) *MeetingController {
	return &MeetingController{db: db, log: log.WithField("component", "meetings")}
}

type MeetingCreateRequest struct {
	Title    string    `json:"title" validate:"required,max=255"`
	Notes    *string   `json:"notes"`
	StartsAt time.Time `json:"starts_at" validate:"required"`
	EndsAt   time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
}

type MeetingUpdateRequest struct {
	Title    *string    `json:"title" validate:"omitempty,max=255"`
	Notes    *string    `json:"notes"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}

func parseMeetingID(c *fiber.Ctx) (uint, error) {
	meetingID, err := c.ParamsInt("meetingID")
	if err != nil || meetingID <= 0 {
		return 0, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid meeting id",
		})
	}
	return uint(meetingID), nil
}

func (mc *MeetingController) CreateMeeting(c *fiber.Ctx) error {
	teamID, err := parseTeamID(c)
	if err != nil || teamID == 0 {
		return err
	}

	var req MeetingCreateRequest
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

	meeting, err := services.CreateMeeting(mc.db, middleware.CurrentUser(c), teamID, req.Title, req.Notes, req.StartsAt, req.EndsAt)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(meeting)
}

func (mc *MeetingController) ListTeamMeetings(c *fiber.Ctx) error {
	teamID, err := parseTeamID(c)
	if err != nil || teamID == 0 {
		return err
	}

	meetings, err := services.ListTeamMeetings(mc.db, middleware.CurrentUser(c), teamID)
	if err != nil {
		return err
	}
	return c.JSON(meetings)
}

func (mc *MeetingController) GetMeeting(c *fiber.Ctx) error {
	meetingID, err := parseMeetingID(c)
	if err != nil || meetingID == 0 {
		return err
	}

	meeting, err := services.GetMeeting(mc.db, middleware.CurrentUser(c), meetingID)
	if err != nil {
		return err
	}
	return c.JSON(meeting)
}

func (mc *MeetingController) UpdateMeeting(c *fiber.Ctx) error {
	meetingID, err := parseMeetingID(c)
	if err != nil || meetingID == 0 {
		return err
	}

	var req MeetingUpdateRequest
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

	meeting, err := services.UpdateMeeting(mc.db, middleware.CurrentUser(c), meetingID, req.Title, req.Notes, req.StartsAt, req.EndsAt)
	if err != nil {
		return err
	}
	return c.JSON(meeting)
}

func (mc *MeetingController) DeleteMeeting(c *fiber.Ctx) error {
	meetingID, err := parseMeetingID(c)
	if err != nil || meetingID == 0 {
		return err
	}

	if err := services.DeleteMeeting(mc.db, middleware.CurrentUser(c), meetingID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

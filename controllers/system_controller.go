package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"crewdesk/middleware"
	"crewdesk/services"
)

type SystemController struct {
	db  *gorm.DB
	log *logrus.Entry
}

func NewSystemController(db *gorm.DB, log *logrus.Logger) *SystemController {
	return &SystemController{db: db, log: log.WithField("component", "system")}
}

// GrantGlobalAdmin promotes a user's worker row to role admin, superuser only
func (sc *SystemController) GrantGlobalAdmin(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil || userID == 0 {
		return err
	}

	actor := middleware.CurrentUser(c)
	if err := services.GrantGlobalAdmin(sc.db, actor, userID); err != nil {
		return err
	}

	sc.log.WithFields(logrus.Fields{"user_id": userID, "actor_id": actor.ID}).Info("global admin granted")
	return c.SendStatus(fiber.StatusNoContent)
}

package services

import (
	"gorm.io/gorm"

	"crewdesk/models"
	"crewdesk/utils"
)

// GrantGlobalAdmin promotes the target's worker row to role admin
// regardless of team binding. A worker promoted while unaffiliated is a
// global admin and can create a team without belonging to one yet.
func GrantGlobalAdmin(db *gorm.DB, actor *models.User, targetUserID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if !utils.IsSuperuser(actor) {
			return utils.Forbidden("Superuser only")
		}
		worker, err := utils.EnsureWorkerExists(tx, targetUserID)
		if err != nil {
			return err
		}
		worker.RoleInTeam = models.RoleAdmin
		return tx.Save(worker).Error
	})
}

package crud

import (
	"errors"

	"gorm.io/gorm"

	"crewdesk/models"
	"crewdesk/utils"
)

// GetWorkerByUserID returns nil without error when the user has no worker row
func GetWorkerByUserID(db *gorm.DB, userID uint) (*models.Worker, error) {
	var worker models.Worker
	err := db.Where("user_id = ?", userID).First(&worker).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func GetWorkerByUserAndTeam(db *gorm.DB, userID, teamID uint) (*models.Worker, error) {
	var worker models.Worker
	err := db.Where("user_id = ? AND team_id = ?", userID, teamID).First(&worker).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func GetWorkerByUserIDOr404(db *gorm.DB, userID uint) (*models.Worker, error) {
	worker, err := GetWorkerByUserID(db, userID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, utils.NotFound("Worker not found for given user")
	}
	return worker, nil
}

// CreateMembership inserts a worker row already bound to a team
func CreateMembership(db *gorm.DB, userID, teamID uint, role models.TeamRole) (*models.Worker, error) {
	worker := models.Worker{UserID: userID, TeamID: &teamID, RoleInTeam: role}
	if err := db.Create(&worker).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.Conflict("Membership already exists")
		}
		return nil, err
	}
	return &worker, nil
}

// EnsureWorkerExists mirrors utils.EnsureWorkerExists for callers already
// inside the crud layer
func EnsureWorkerExists(db *gorm.DB, userID uint) (*models.Worker, error) {
	return utils.EnsureWorkerExists(db, userID)
}

func ListWorkersByTeam(db *gorm.DB, teamID uint) ([]models.Worker, error) {
	var workers []models.Worker
	if err := db.Where("team_id = ?", teamID).Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

func DeleteWorkerByUserID(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&models.Worker{}).Error
}

// DeleteWorkersByTeam bulk-removes a team's memberships, used before the
// team row itself is deleted
func DeleteWorkersByTeam(db *gorm.DB, teamID uint) error {
	return db.Where("team_id = ?", teamID).Delete(&models.Worker{}).Error
}

func SaveWorker(db *gorm.DB, worker *models.Worker) error {
	return db.Save(worker).Error
}

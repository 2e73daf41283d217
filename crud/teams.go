// Package crud holds the repository primitives. Every function takes the
// *gorm.DB it should run on, so services can pass a transaction handle and
// a unique-constraint Conflict aborts the whole unit of work.
package crud

import (
	"errors"

	"gorm.io/gorm"

	"crewdesk/models"
	"crewdesk/utils"
)

// GetTeam returns nil without error when the team does not exist
func GetTeam(db *gorm.DB, teamID uint) (*models.Team, error) {
	var team models.Team
	err := db.First(&team, teamID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func GetTeamOr404(db *gorm.DB, teamID uint) (*models.Team, error) {
	team, err := GetTeam(db, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, utils.NotFound("Team not found")
	}
	return team, nil
}

func ListTeams(db *gorm.DB) ([]models.Team, error) {
	var teams []models.Team
	if err := db.Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func ListTeamsByIDs(db *gorm.DB, ids []uint) ([]models.Team, error) {
	var teams []models.Team
	if err := db.Where("id IN ?", ids).Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func CreateTeam(db *gorm.DB, name, code string, ownerID *uint) (*models.Team, error) {
	team := models.Team{Name: name, Code: code, OwnerID: ownerID}
	if err := db.Create(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.Conflict("Team code already exists")
		}
		return nil, err
	}
	return &team, nil
}

// UpdateTeam applies a partial update: nil fields are left unchanged
func UpdateTeam(db *gorm.DB, team *models.Team, name, code *string) (*models.Team, error) {
	if name != nil {
		team.Name = *name
	}
	if code != nil {
		team.Code = *code
	}
	if err := db.Save(team).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.Conflict("Team code already exists")
		}
		return nil, err
	}
	return team, nil
}

func DeleteTeam(db *gorm.DB, team *models.Team) error {
	return db.Delete(team).Error
}

// Package services orchestrates crud calls and authorization guards into
// atomic business operations. Every mutating operation runs as a single
// transaction; a returned error rolls the whole unit of work back.
package services

import (
	"gorm.io/gorm"

	"crewdesk/crud"
	"crewdesk/models"
	"crewdesk/utils"
)

// CreateTeam creates a team and enrolls the actor as its admin member.
// This is the only path that auto-enrolls a user, so every team has at
// least one admin from inception. An actor whose worker row is already
// bound to another team cannot create a team.
func CreateTeam(db *gorm.DB, actor *models.User, name, code string) (*models.Team, error) {
	var team *models.Team
	err := db.Transaction(func(tx *gorm.DB) error {
		ok, err := utils.CanCreateTeam(tx, actor)
		if err != nil {
			return err
		}
		if !ok {
			return utils.Forbidden("Only global admin or local admin can create teams")
		}

		team, err = crud.CreateTeam(tx, name, code, &actor.ID)
		if err != nil {
			return err
		}

		// Bind the actor to the new team. A floating global admin already
		// has a worker row, so bind that row instead of inserting a second
		// one into the unique user_id index.
		worker, err := crud.GetWorkerByUserID(tx, actor.ID)
		if err != nil {
			return err
		}
		if worker == nil {
			_, err = crud.CreateMembership(tx, actor.ID, team.ID, models.RoleAdmin)
			return err
		}
		if worker.TeamID != nil && *worker.TeamID != team.ID {
			return utils.Conflict("User already belongs to another team")
		}
		worker.TeamID = &team.ID
		worker.RoleInTeam = models.RoleAdmin
		return crud.SaveWorker(tx, worker)
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

func UpdateTeam(db *gorm.DB, actor *models.User, teamID uint, name, code *string) (*models.Team, error) {
	var team *models.Team
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		team, err = crud.GetTeamOr404(tx, teamID)
		if err != nil {
			return err
		}
		if err := utils.RequireSuperuserOrTeamAdmin(tx, actor, teamID); err != nil {
			return err
		}
		team, err = crud.UpdateTeam(tx, team, name, code)
		return err
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

// DeleteTeam removes the team's worker rows before the team row itself,
// then commits both deletes together
func DeleteTeam(db *gorm.DB, actor *models.User, teamID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		team, err := crud.GetTeamOr404(tx, teamID)
		if err != nil {
			return err
		}
		if err := utils.RequireSuperuserOrTeamAdmin(tx, actor, teamID); err != nil {
			return err
		}
		if err := crud.DeleteWorkersByTeam(tx, teamID); err != nil {
			return err
		}
		return crud.DeleteTeam(tx, team)
	})
}

// ListTeamsForUser returns all teams for a superuser, otherwise the at
// most one team the actor's worker is bound to
func ListTeamsForUser(db *gorm.DB, actor *models.User) ([]models.Team, error) {
	if utils.IsSuperuser(actor) {
		return crud.ListTeams(db)
	}
	worker, err := crud.GetWorkerByUserID(db, actor.ID)
	if err != nil {
		return nil, err
	}
	if worker == nil || worker.TeamID == nil {
		return []models.Team{}, nil
	}
	team, err := crud.GetTeam(db, *worker.TeamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return []models.Team{}, nil
	}
	return []models.Team{*team}, nil
}

func GetTeamForUser(db *gorm.DB, actor *models.User, teamID uint) (*models.Team, error) {
	team, err := crud.GetTeamOr404(db, teamID)
	if err != nil {
		return nil, err
	}
	if !utils.IsSuperuser(actor) {
		if _, err := utils.RequireMember(db, actor.ID, teamID); err != nil {
			return nil, err
		}
	}
	return team, nil
}

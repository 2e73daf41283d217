package services

import (
	"gorm.io/gorm"

	"crewdesk/crud"
	"crewdesk/models"
	"crewdesk/utils"
)

// AddMember binds a user's worker row to the team. A worker already bound
// to a different team is never transferred; the call fails with Conflict.
// Ordering is a strict contract: team existence, then actor permission,
// then the mutation.
func AddMember(db *gorm.DB, actor *models.User, teamID, userID uint, role models.TeamRole) (*models.Worker, error) {
	var worker *models.Worker
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := crud.GetTeamOr404(tx, teamID); err != nil {
			return err
		}
		if err := utils.RequireSuperuserOrTeamAdmin(tx, actor, teamID); err != nil {
			return err
		}

		var err error
		worker, err = crud.EnsureWorkerExists(tx, userID)
		if err != nil {
			return err
		}
		if worker.TeamID != nil && *worker.TeamID != teamID {
			return utils.Conflict("User already belongs to another team")
		}

		worker.TeamID = &teamID
		worker.RoleInTeam = role
		return crud.SaveWorker(tx, worker)
	})
	if err != nil {
		return nil, err
	}
	return worker, nil
}

// ChangeMemberRole overwrites the role of a worker currently bound to the
// team. Unlike RemoveMember, a missing membership is an error here.
func ChangeMemberRole(db *gorm.DB, actor *models.User, teamID, userID uint, role models.TeamRole) (*models.Worker, error) {
	var worker *models.Worker
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := crud.GetTeamOr404(tx, teamID); err != nil {
			return err
		}
		if err := utils.RequireSuperuserOrTeamAdmin(tx, actor, teamID); err != nil {
			return err
		}

		var err error
		worker, err = crud.GetWorkerByUserID(tx, userID)
		if err != nil {
			return err
		}
		if worker == nil || worker.TeamID == nil || *worker.TeamID != teamID {
			return utils.NotFound("Member not in this team")
		}

		worker.RoleInTeam = role
		return crud.SaveWorker(tx, worker)
	})
	if err != nil {
		return nil, err
	}
	return worker, nil
}

// RemoveMember deletes the worker row. Removing a user who is not a member
// of the team is a silent no-op, so the operation is idempotent.
func RemoveMember(db *gorm.DB, actor *models.User, teamID, userID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := crud.GetTeamOr404(tx, teamID); err != nil {
			return err
		}
		if err := utils.RequireSuperuserOrTeamAdmin(tx, actor, teamID); err != nil {
			return err
		}

		worker, err := crud.GetWorkerByUserID(tx, userID)
		if err != nil {
			return err
		}
		if worker == nil || worker.TeamID == nil || *worker.TeamID != teamID {
			return nil
		}

		return crud.DeleteWorkerByUserID(tx, userID)
	})
}

// ListMembers returns the team's worker rows; superusers may list any team,
// other actors must be members
func ListMembers(db *gorm.DB, actor *models.User, teamID uint) ([]models.Worker, error) {
	if !utils.IsSuperuser(actor) {
		if _, err := utils.RequireMember(db, actor.ID, teamID); err != nil {
			return nil, err
		}
	}
	return crud.ListWorkersByTeam(db, teamID)
}

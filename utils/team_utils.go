package utils

import (
	"errors"

	"gorm.io/gorm"

	"crewdesk/models"
)

// Authorization predicates. Every decision is re-derived from the current
// rows at call time, so role changes take effect on the next request.
// The superuser flag and the worker role are two independent signals and
// are always checked separately.

// IsSuperuser reads the user's global flag
func IsSuperuser(user *models.User) bool {
	return user != nil && user.IsSuperuser
}

// IsTeamAdmin reports whether the user's worker row is bound to the given
// team with role admin. A superuser with no membership is NOT a team admin;
// callers that want the superuser bypass use RequireSuperuserOrTeamAdmin.
func IsTeamAdmin(db *gorm.DB, userID, teamID uint) (bool, error) {
	var worker models.Worker
	err := db.Where("user_id = ?", userID).First(&worker).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return worker.TeamID != nil && *worker.TeamID == teamID && worker.RoleInTeam == models.RoleAdmin, nil
}

// CanCreateTeam is true for superusers and for workers with role admin,
// including global admins whose TeamID is nil
func CanCreateTeam(db *gorm.DB, user *models.User) (bool, error) {
	if IsSuperuser(user) {
		return true, nil
	}
	var worker models.Worker
	err := db.Where("user_id = ?", user.ID).First(&worker).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return worker.RoleInTeam == models.RoleAdmin, nil
}

// RequireMember returns the worker row binding the user to exactly this
// team, or Forbidden
func RequireMember(db *gorm.DB, userID, teamID uint) (*models.Worker, error) {
	var worker models.Worker
	err := db.Where("user_id = ?", userID).First(&worker).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Forbidden("Not a member of this team")
	}
	if err != nil {
		return nil, err
	}
	if worker.TeamID == nil || *worker.TeamID != teamID {
		return nil, Forbidden("Not a member of this team")
	}
	return &worker, nil
}

// RequireSuperuserOrTeamAdmin fails with Forbidden unless the actor is a
// superuser or an admin of the given team
func RequireSuperuserOrTeamAdmin(db *gorm.DB, user *models.User, teamID uint) error {
	if IsSuperuser(user) {
		return nil
	}
	admin, err := IsTeamAdmin(db, user.ID, teamID)
	if err != nil {
		return err
	}
	if admin {
		return nil
	}
	return Forbidden("Not enough permissions")
}

// EnsureWorkerExists is the idempotent get-or-create used wherever a worker
// row is a precondition for a role mutation. The insert is guarded by the
// unique user_id index, so concurrent first calls degrade to one winner and
// one reader.
func EnsureWorkerExists(db *gorm.DB, userID uint) (*models.Worker, error) {
	var worker models.Worker
	err := db.Where("user_id = ?", userID).First(&worker).Error
	if err == nil {
		return &worker, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	worker = models.Worker{UserID: userID, TeamID: nil, RoleInTeam: models.RoleEmployee}
	if err := db.Create(&worker).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost the race, read the winner's row
			if err := db.Where("user_id = ?", userID).First(&worker).Error; err != nil {
				return nil, err
			}
			return &worker, nil
		}
		return nil, err
	}
	return &worker, nil
}

package services

import (
	"time"

	"gorm.io/gorm"

	"crewdesk/crud"
	"crewdesk/models"
	"crewdesk/utils"
)

// Meeting access rules: members read, superuser or team admin mutate.

func CreateMeeting(db *gorm.DB, actor *models.User, teamID uint, title string, notes *string, startsAt, endsAt time.Time) (*models.Meeting, error) {
	var meeting *models.Meeting
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := crud.GetTeamOr404(tx, teamID); err != nil {
			return err
		}
		if err := utils.RequireSuperuserOrTeamAdmin(tx, actor, teamID); err != nil {
			return err
		}
		var err error
		meeting, err = crud.CreateMeeting(tx, teamID, title, notes, startsAt, endsAt)
		return err
	})
	if err != nil {
		return nil, err
	}
	return meeting, nil
}

func GetMeeting(db *gorm.DB, actor *models.User, meetingID uint) (*models.Meeting, error) {
	meeting, err := crud.GetMeetingOr404(db, meetingID)
	if err != nil {
		return nil, err
	}
	if !utils.IsSuperuser(actor) {
		if _, err := utils.RequireMember(db, actor.ID, meeting.TeamID); err != nil {
			return nil, err
		}
	}
	return meeting, nil
}

func ListTeamMeetings(db *gorm.DB, actor *models.User, teamID uint) ([]models.Meeting, error) {
	if _, err := crud.GetTeamOr404(db, teamID); err != nil {
		return nil, err
	}
	if !utils.IsSuperuser(actor) {
		if _, err := utils.RequireMember(db, actor.ID, teamID); err != nil {
			return nil, err
		}
	}
	return crud.ListMeetingsByTeam(db, teamID)
}

func UpdateMeeting(db *gorm.DB, actor *models.User, meetingID uint, title, notes *string, startsAt, endsAt *time.Time) (*models.Meeting, error) {
	var meeting *models.Meeting
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		meeting, err = crud.GetMeetingOr404(tx, meetingID)
		if err != nil {
			return err
		}
		if err := utils.RequireSuperuserOrTeamAdmin(tx, actor, meeting.TeamID); err != nil {
			return err
		}
		meeting, err = crud.UpdateMeeting(tx, meeting, title, notes, startsAt, endsAt)
		return err
	})
	if err != nil {
		return nil, err
	}
	return meeting, nil
}

func DeleteMeeting(db *gorm.DB, actor *models.User, meetingID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		meeting, err := crud.GetMeetingOr404(tx, meetingID)
		if err != nil {
			return err
		}
		if err := utils.RequireSuperuserOrTeamAdmin(tx, actor, meeting.TeamID); err != nil {
			return err
		}
		return crud.DeleteMeeting(tx, meeting)
	})
}

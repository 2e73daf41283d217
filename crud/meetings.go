package crud

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"crewdesk/models"
	"crewdesk/utils"
)

func CreateMeeting(db *gorm.DB, teamID uint, title string, notes *string, startsAt, endsAt time.Time) (*models.Meeting, error) {
	meeting := models.Meeting{
		TeamID:   teamID,
		Title:    title,
		Notes:    notes,
		StartsAt: startsAt,
		EndsAt:   endsAt,
	}
	if err := db.Create(&meeting).Error; err != nil {
		return nil, err
	}
	return &meeting, nil
}

func GetMeetingOr404(db *gorm.DB, meetingID uint) (*models.Meeting, error) {
	var meeting models.Meeting
	err := db.First(&meeting, meetingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFound("Meeting not found")
	}
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

func ListMeetingsByTeam(db *gorm.DB, teamID uint) ([]models.Meeting, error) {
	var meetings []models.Meeting
	if err := db.Where("team_id = ?", teamID).Order("starts_at").Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

func UpdateMeeting(db *gorm.DB, meeting *models.Meeting, title, notes *string, startsAt, endsAt *time.Time) (*models.Meeting, error) {
	if title != nil {
		meeting.Title = *title
	}
	if notes != nil {
		meeting.Notes = notes
	}
	if startsAt != nil {
		meeting.StartsAt = *startsAt
	}
	if endsAt != nil {
		meeting.EndsAt = *endsAt
	}
	if err := db.Save(meeting).Error; err != nil {
		return nil, err
	}
	return meeting, nil
}

func DeleteMeeting(db *gorm.DB, meeting *models.Meeting) error {
	return db.Delete(meeting).Error
}

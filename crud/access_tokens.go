package crud

import (
	"errors"

	"gorm.io/gorm"

	"crewdesk/models"
)

func CreateAccessToken(db *gorm.DB, token string, userID uint) (*models.AccessToken, error) {
	at := models.AccessToken{Token: token, UserID: userID}
	if err := db.Create(&at).Error; err != nil {
		return nil, err
	}
	return &at, nil
}

// GetAccessToken returns nil without error when the token is unknown
func GetAccessToken(db *gorm.DB, token string) (*models.AccessToken, error) {
	var at models.AccessToken
	err := db.Where("token = ?", token).First(&at).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &at, nil
}

func DeleteAccessToken(db *gorm.DB, token string) error {
	return db.Where("token = ?", token).Delete(&models.AccessToken{}).Error
}

// DeleteAccessTokensByUser revokes every login of a user, used after
// password changes
func DeleteAccessTokensByUser(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&models.AccessToken{}).Error
}

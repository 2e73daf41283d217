package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"crewdesk/config"
)

const (
	PurposeVerify        = "verify"
	PurposePasswordReset = "password_reset"

	mailTokenExpiry = 1 * time.Hour
)

type MailTokenClaims struct {
	UserID  uint   `json:"user_id"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// GenerateMailToken signs a short-lived token for email verification or
// password reset links. The purpose claim keeps the two flows from
// accepting each other's tokens.
func GenerateMailToken(userID uint, purpose string) (string, error) {
	claims := &MailTokenClaims{
		UserID:  userID,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(mailTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.SecretKey))
}

func ParseMailToken(tokenString, purpose string) (*MailTokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &MailTokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*MailTokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Purpose != purpose {
		return nil, errors.New("token purpose mismatch")
	}
	return claims, nil
}

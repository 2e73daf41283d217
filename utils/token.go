package utils

import (
	"crypto/rand"
	"encoding/hex"
)

const accessTokenBytes = 32

// GenerateAccessToken returns a new opaque login token
func GenerateAccessToken() (string, error) {
	buf := make([]byte, accessTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

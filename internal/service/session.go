package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateSessionID generates a cryptographically secure session ID:
// 32 random bytes as a URL-safe base64 string.
func GenerateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return base64.URLEncoding.EncodeToString(b), nil
}

package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// GenerateSecureRandomString generates a cryptographically secure random string of the specified byte length,
// then hex encodes it. For example, lengthInBytes=32 will result in a 64-character hex string.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateTitleCode builds a human-readable title code of the form TIT-YYYYMMDD-XXXXXX
// from the title date and six random hex digits.
func GenerateTitleCode(date time.Time) (string, error) {
	suffix, err := GenerateSecureRandomString(3)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("TIT-%s-%s", date.Format("20060102"), strings.ToUpper(suffix)), nil
}

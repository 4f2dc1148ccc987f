package utils

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const DateLayout = "2006-01-02"

// ParseInt converts string to a positive int, falling back to defaultValue
func ParseInt(value string, defaultValue int) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || result < 1 {
		return defaultValue
	}
	return result
}

// ParseDate parses a YYYY-MM-DD string. Empty input yields nil.
func ParseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

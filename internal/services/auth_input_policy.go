package services

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")
	ErrInvalidUsername        = errors.New("invalid username")
)

var usernameFormatRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]{3,32}$`)

func NormalizeUsername(raw string) string {
	return strings.TrimSpace(raw)
}

func NormalizeCredentialsInput(usernameRaw string, passwordRaw string) (string, string, error) {
	username := NormalizeUsername(usernameRaw)
	password := strings.TrimSpace(passwordRaw)
	if username == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return username, password, nil
}

func ValidateUsername(username string) error {
	if !usernameFormatRegex.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

package services

import (
	"errors"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{name: "letters and digits", username: "farmer42", valid: true},
		{name: "dots dashes underscores", username: "a.b-c_d", valid: true},
		{name: "too short", username: "ab", valid: false},
		{name: "too long", username: "abcdefghijklmnopqrstuvwxyz0123456", valid: false},
		{name: "inner space", username: "john doe", valid: false},
		{name: "symbols", username: "root;drop", valid: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := ValidateUsername(testCase.username)
			if testCase.valid && err != nil {
				t.Fatalf("ValidateUsername(%q) unexpected error: %v", testCase.username, err)
			}
			if !testCase.valid && !errors.Is(err, ErrInvalidUsername) {
				t.Fatalf("ValidateUsername(%q) expected ErrInvalidUsername, got %v", testCase.username, err)
			}
		})
	}
}

func TestNormalizeCredentialsInput(t *testing.T) {
	username, password, err := NormalizeCredentialsInput("  farmer42 ", "  greenleaf7  ")
	if err != nil {
		t.Fatalf("expected valid credentials input, got %v", err)
	}
	if username != "farmer42" {
		t.Fatalf("expected trimmed username, got %q", username)
	}
	if password != "greenleaf7" {
		t.Fatalf("expected trimmed password, got %q", password)
	}

	_, _, err = NormalizeCredentialsInput("   ", "greenleaf7")
	if !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for empty username, got %v", err)
	}

	_, _, err = NormalizeCredentialsInput("farmer42", " ")
	if !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for empty password, got %v", err)
	}
}

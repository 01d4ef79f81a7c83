package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/terraincognita07/plantdoc/internal/security"
)

type PasswordResetter interface {
	ResetPassword(username string, newPassword string) error
}

var readPassword = readPasswordNoEcho

// RunResetPasswordCommand sets a new password for username. On a terminal the
// operator may type one; otherwise, or when the prompt is left empty, a
// temporary password is generated and printed.
func RunResetPasswordCommand(accounts PasswordResetter, username string, stdin *os.File, stdout io.Writer) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("username is required")
	}

	fmt.Fprint(stdout, "New password (leave empty to generate): ")
	typed, promptErr := readPassword(stdin)
	fmt.Fprintln(stdout)

	password := strings.TrimSpace(string(typed))
	generated := false
	if promptErr != nil || password == "" {
		temporary, err := generateTemporaryPassword(12)
		if err != nil {
			return fmt.Errorf("generate temporary password: %w", err)
		}
		password = temporary
		generated = true
	}

	if err := accounts.ResetPassword(username, password); err != nil {
		return fmt.Errorf("reset password for %s: %w", username, err)
	}

	fmt.Fprintln(stdout, "✅ Password reset successful")
	if generated {
		fmt.Fprintf(stdout, "Temporary password: %s\n", password)
	}
	return nil
}

func generateTemporaryPassword(length int) (string, error) {
	return security.TemporaryPassword(length)
}

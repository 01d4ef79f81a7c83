package cli

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/terraincognita07/plantdoc/internal/security"
)

type stubResetter struct {
	username string
	password string
	err      error
}

func (stub *stubResetter) ResetPassword(username string, newPassword string) error {
	stub.username = username
	stub.password = newPassword
	return stub.err
}

func stubPrompt(t *testing.T, typed string, err error) {
	t.Helper()
	original := readPassword
	readPassword = func(*os.File) ([]byte, error) { return []byte(typed), err }
	t.Cleanup(func() { readPassword = original })
}

func TestGenerateTemporaryPasswordMinimumLength(t *testing.T) {
	password, err := generateTemporaryPassword(4)
	if err != nil {
		t.Fatalf("generateTemporaryPassword returned error: %v", err)
	}
	if len(password) != 8 {
		t.Fatalf("generateTemporaryPassword minimum len = %d, want 8", len(password))
	}
	for _, char := range password {
		if !strings.ContainsRune(security.TemporaryPasswordAlphabet, char) {
			t.Fatalf("password %q contains char %q outside alphabet", password, char)
		}
	}
}

func TestRunResetPasswordCommandUsesTypedPassword(t *testing.T) {
	stubPrompt(t, "  freshleaf8 ", nil)
	resetter := &stubResetter{}
	var output bytes.Buffer

	if err := RunResetPasswordCommand(resetter, " farmer42 ", nil, &output); err != nil {
		t.Fatalf("RunResetPasswordCommand() unexpected error: %v", err)
	}
	if resetter.username != "farmer42" || resetter.password != "freshleaf8" {
		t.Fatalf("unexpected reset call %#v", resetter)
	}
	if strings.Contains(output.String(), "Temporary password") {
		t.Fatalf("did not expect a temporary password, got %q", output.String())
	}
}

func TestRunResetPasswordCommandGeneratesWithoutTerminal(t *testing.T) {
	stubPrompt(t, "", errors.New("not a terminal"))
	resetter := &stubResetter{}
	var output bytes.Buffer

	if err := RunResetPasswordCommand(resetter, "farmer42", nil, &output); err != nil {
		t.Fatalf("RunResetPasswordCommand() unexpected error: %v", err)
	}
	if len(resetter.password) != 12 {
		t.Fatalf("expected 12 character temporary password, got %q", resetter.password)
	}
	if !strings.Contains(output.String(), "Temporary password: "+resetter.password) {
		t.Fatalf("expected temporary password in output, got %q", output.String())
	}
}

func TestRunResetPasswordCommandReportsFailures(t *testing.T) {
	stubPrompt(t, "freshleaf8", nil)

	if err := RunResetPasswordCommand(&stubResetter{}, "   ", nil, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for empty username")
	}

	failure := errors.New("user not found")
	err := RunResetPasswordCommand(&stubResetter{err: failure}, "ghost", nil, &bytes.Buffer{})
	if !errors.Is(err, failure) {
		t.Fatalf("expected wrapped failure, got %v", err)
	}
}

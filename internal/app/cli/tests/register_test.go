package tests

import (
	"errors"
	"strings"
	"testing"

	"github.com/Sayceee/LoanSync1/internal/app/cli"
	serr "github.com/Sayceee/LoanSync1/internal/shared/errors"
)

func TestNewRegisterCmd_Success_PrintsMessage(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, cli.NewRegisterCmd(app),
		"--first-name", "Ivan",
		"--last-name", "Petrov",
		"--email", "test@example.com",
		"--phone", "0712345678",
		"--password", "StrongPass123",
	)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if !strings.Contains(out, "Registration successful!") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestNewRegisterCmd_MissingRequiredFlags_ReturnsError(t *testing.T) {
	app := newTestApp(t)

	cmd := cli.NewRegisterCmd(app)

	// не передаём --phone
	_, err := execute(t, cmd,
		"--first-name", "Ivan",
		"--last-name", "Petrov",
		"--email", "test@example.com",
		"--password", "StrongPass123",
	)
	if err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}

	// Cobra обычно пишет "required flag(s) \"phone\" not set"
	if !strings.Contains(err.Error(), "required") {
		t.Fatalf("%s: %v", serr.ErrUnexpectedError.Error(), err)
	}
}

func TestNewRegisterCmd_DuplicateEmail_ReturnsError(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app)

	_, err := execute(t, cli.NewRegisterCmd(app),
		"--first-name", "Petr",
		"--last-name", "Ivanov",
		"--email", "test@example.com",
		"--phone", "0798765432",
		"--password", "AnotherPass123",
	)
	if !errors.Is(err, serr.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestNewRegisterCmd_PasswordMismatch_ReturnsError(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, cli.NewRegisterCmd(app),
		"--first-name", "Ivan",
		"--last-name", "Petrov",
		"--email", "test@example.com",
		"--phone", "0712345678",
		"--password", "StrongPass123",
		"--confirm-password", "Different123",
	)
	if !errors.Is(err, serr.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestNewRegisterCmd_ShortPassword_ReturnsError(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, cli.NewRegisterCmd(app),
		"--first-name", "Ivan",
		"--last-name", "Petrov",
		"--email", "test@example.com",
		"--phone", "0712345678",
		"--password", "12345",
	)
	if !errors.Is(err, serr.ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestNewRegisterCmd_PasswordFromStdin(t *testing.T) {
	app := newTestApp(t)

	cmd := cli.NewRegisterCmd(app)
	cmd.SetIn(strings.NewReader("StrongPass123\n"))

	out, err := execute(t, cmd,
		"--first-name", "Ivan",
		"--last-name", "Petrov",
		"--email", "test@example.com",
		"--phone", "0712345678",
		"--password-stdin",
	)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, "Registration successful!") {
		t.Fatalf("unexpected output: %q", out)
	}

	// пароль из stdin реально работает при входе
	loginUser(t, app)
}

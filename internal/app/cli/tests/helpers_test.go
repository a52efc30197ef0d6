package tests

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sayceee/LoanSync1/internal/app/cli"
	"github.com/Sayceee/LoanSync1/internal/app/config"
	"github.com/Sayceee/LoanSync1/internal/app/service"
	"github.com/Sayceee/LoanSync1/internal/app/storage"
)

// newTestApp собирает App поверх file-хранилища во временном каталоге.
// PersistentPreRunE инициализацию при заполненном Services пропускает,
// поэтому команды можно выполнять напрямую.
func newTestApp(t *testing.T) *cli.App {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		Env: "dev",
		Storage: config.StorageConfig{
			Backend: "file",
			Dir:     dir,
		},
		Auth: config.AuthConfig{
			Issuer:     "loansync",
			Audience:   "loansync-cli",
			SessionTTL: 5 * time.Minute,
			JWT: config.JWTConfig{
				Algorithm:  "HS256",
				SigningKey: "supersecretkeysupersecretkey123456",
			},
		},
		Password: config.PasswordConfig{
			Hasher: "argon2id",
			Argon2: config.Argon2Config{
				Time:      1,
				MemoryKiB: 32 * 1024,
				Threads:   1,
				KeyLen:    32,
				SaltLen:   16,
			},
		},
		Alerts:  config.AlertsConfig{WindowDays: 7},
		Display: config.DisplayConfig{CurrencyPrefix: "Ksh"},
	}

	st := storage.NewFileStorage(dir)

	return &cli.App{
		Cfg:      cfg,
		Services: service.NewServices(st, cfg),
	}
}

// execute прогоняет команду с аргументами и возвращает вывод
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// registerUser регистрирует тестового пользователя
func registerUser(t *testing.T, app *cli.App) {
	t.Helper()

	_, err := execute(t, cli.NewRegisterCmd(app),
		"--first-name", "Ivan",
		"--last-name", "Petrov",
		"--email", "test@example.com",
		"--phone", "0712345678",
		"--password", "StrongPass123",
	)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
}

// loginUser входит тестовым пользователем (создаёт сессию)
func loginUser(t *testing.T, app *cli.App) {
	t.Helper()

	_, err := execute(t, cli.NewLoginCmd(app),
		"--email", "test@example.com",
		"--password", "StrongPass123",
	)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
}

// addLoan добавляет займ и возвращает вывод команды
func addLoan(t *testing.T, app *cli.App, due string) string {
	t.Helper()

	out, err := execute(t, cli.NewLoanCmd(app),
		"add",
		"--provider", "M-Shwari",
		"--principal", "10000",
		"--rate", "12",
		"--term", "6",
		"--term-unit", "months",
		"--due", due,
	)
	if err != nil {
		t.Fatalf("loan add: %v", err)
	}
	return out
}

package tests

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/Sayceee/LoanSync1/internal/app/config"
	"github.com/Sayceee/LoanSync1/internal/app/crypto"
	"github.com/Sayceee/LoanSync1/internal/app/models"
	"github.com/Sayceee/LoanSync1/internal/app/service"
	"github.com/Sayceee/LoanSync1/internal/app/service/mocks"
)

// конфиг для тестов: лёгкий argon2, короткий TTL
func testConfig() *config.Config {
	return &config.Config{
		Env: "dev",
		Storage: config.StorageConfig{
			Backend: "file",
			Dir:     "/tmp/loansync-test",
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
}

func testArgon2Params() crypto.Argon2Params {
	cfg := testConfig()
	return crypto.Argon2Params{
		Time:      cfg.Password.Argon2.Time,
		MemoryKiB: cfg.Password.Argon2.MemoryKiB,
		Threads:   cfg.Password.Argon2.Threads,
		KeyLen:    cfg.Password.Argon2.KeyLen,
		SaltLen:   cfg.Password.Argon2.SaltLen,
	}
}

func testTokenConfig() crypto.TokenConfig {
	cfg := testConfig()
	return crypto.TokenConfig{
		Issuer:     cfg.Auth.Issuer,
		Audience:   cfg.Auth.Audience,
		SigningKey: cfg.Auth.JWT.SigningKey,
		TTL:        cfg.Auth.SessionTTL,
	}
}

// создаём сервисы поверх mock-хранилища
func newServices(t *testing.T) (*service.Services, *mocks.MockStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)

	return service.NewServices(store, testConfig()), store
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		FirstName:       "Ivan",
		LastName:        "Petrov",
		Email:           "test@example.com",
		Phone:           "0712345678",
		Password:        "StrongPass123",
		ConfirmPassword: "StrongPass123",
	}
}

func sessionFor(user models.User) *models.Session {
	tok, _ := crypto.NewSessionToken(user.ID, testTokenConfig())
	return &models.Session{
		User:        user,
		AccessToken: tok,
		IssuedAt:    time.Now(),
	}
}

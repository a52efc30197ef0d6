// Package service содержит бизнес-логику приложения LoanSync.
// Это прослойка между CLI-командами и хранилищем данных (storage).
package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/Sayceee/LoanSync1/internal/app/config"
	"github.com/Sayceee/LoanSync1/internal/app/crypto"
	"github.com/Sayceee/LoanSync1/internal/app/models"
)

//go:generate mockgen -source=service.go -destination=mocks/store_mock.go -package=mocks Store

// Store — интерфейс key-value хранилища, который сервисный слой ожидает
// от слоя storage (удовлетворяется любым storage-бэкендом).
type Store interface {
	LoadUsers(ctx context.Context) ([]models.User, error)
	SaveUsers(ctx context.Context, users []models.User) error
	LoadSession(ctx context.Context) (*models.Session, error)
	SaveSession(ctx context.Context, s *models.Session) error
	ClearSession(ctx context.Context) error
	SaveUserState(ctx context.Context, users []models.User, s *models.Session) error
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Accounts *AccountService
	Ledger   *LedgerService
	Session  *SessionService
}

// NewServices собирает все сервисы приложения.
// cfg нужен для параметров хэширования пароля, токена сессии и окна напоминаний.
func NewServices(store Store, cfg *config.Config) *Services {
	validate := validator.New()

	pass := crypto.Argon2Params{
		Time:      cfg.Password.Argon2.Time,
		MemoryKiB: cfg.Password.Argon2.MemoryKiB,
		Threads:   cfg.Password.Argon2.Threads,
		KeyLen:    cfg.Password.Argon2.KeyLen,
		SaltLen:   cfg.Password.Argon2.SaltLen,
	}
	token := crypto.TokenConfig{
		Issuer:     cfg.Auth.Issuer,
		Audience:   cfg.Auth.Audience,
		SigningKey: cfg.Auth.JWT.SigningKey,
		TTL:        cfg.Auth.SessionTTL,
	}

	return &Services{
		Accounts: NewAccountService(store, validate, pass, token),
		Ledger:   NewLedgerService(store, validate, cfg.Alerts.WindowDays),
		Session:  NewSessionService(store, token),
	}
}

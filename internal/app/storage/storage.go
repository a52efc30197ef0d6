// Package storage реализует адаптер персистентного key-value хранилища.
//
// Всё состояние приложения живёт под двумя логическими ключами:
//   - "users"       — упорядоченная коллекция пользователей;
//   - "currentUser" — активная сессия (или null, если её нет).
//
// Бэкенды:
//   - file  — JSON-файлы в каталоге пользователя (по умолчанию ~/.loansync);
//   - redis — ключи в Redis с version-штампом и optimistic locking,
//     на случай когда хранилище разделяют несколько процессов.
//
// Повреждённое состояние (битый JSON) — это ошибка, а не пустая коллекция:
// адаптер падает с диагностикой, чтобы не потерять данные молча.
package storage

import (
	"context"
	"fmt"

	"github.com/Sayceee/LoanSync1/internal/app/config"
	"github.com/Sayceee/LoanSync1/internal/app/models"
)

// Storage — адаптер key-value хранилища.
//
// SaveUserState записывает коллекцию и сессию в рамках одной логической
// записи: после мутации займов последующее чтение не должно увидеть
// обновлённую коллекцию без обновлённой сессии (и наоборот).
type Storage interface {
	LoadUsers(ctx context.Context) ([]models.User, error)
	SaveUsers(ctx context.Context, users []models.User) error
	LoadSession(ctx context.Context) (*models.Session, error)
	SaveSession(ctx context.Context, s *models.Session) error
	ClearSession(ctx context.Context) error
	SaveUserState(ctx context.Context, users []models.User, s *models.Session) error
}

// New создаёт адаптер хранилища по конфигурации.
func New(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch cfg.Backend {
	case "file":
		return NewFileStorage(cfg.Dir), nil
	case "redis":
		return NewRedisStorage(ctx, cfg.RedisURL)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

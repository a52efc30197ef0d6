package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sayceee/LoanSync1/internal/app/models"
	serr "github.com/Sayceee/LoanSync1/internal/shared/errors"
)

// Ключи redis-бэкенда.
const (
	usersKey        = "users"
	usersVersionKey = "users:version"
	sessionKey      = "currentUser"
)

// RedisStorage хранит состояние в Redis.
//
// В отличие от file-бэкенда, Redis могут разделять несколько процессов,
// поэтому полная перезапись коллекции защищена version-штампом:
// запись выполняется под WATCH users:version и откатывается с ErrConflict,
// если кто-то успел записать коллекцию раньше.
type RedisStorage struct {
	client *redis.Client
}

// NewRedisStorage создаёт redis-бэкенд и проверяет соединение.
func NewRedisStorage(ctx context.Context, redisURL string) (*RedisStorage, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.PoolTimeout = 4 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &RedisStorage{client: client}, nil
}

// Close закрывает соединение с Redis.
func (r *RedisStorage) Close() error {
	return r.client.Close()
}

// LoadUsers загружает коллекцию пользователей из ключа "users".
//
// Отсутствующий ключ означает пустую коллекцию, битый JSON — ошибку.
func (r *RedisStorage) LoadUsers(ctx context.Context) ([]models.User, error) {
	b, err := r.client.Get(ctx, usersKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []models.User{}, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", usersKey, err)
	}

	var users []models.User
	if err := json.Unmarshal(b, &users); err != nil {
		return nil, fmt.Errorf("ключ %q повреждён: %w", usersKey, err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// SaveUsers записывает коллекцию под version-штампом (без сессии).
func (r *RedisStorage) SaveUsers(ctx context.Context, users []models.User) error {
	return r.saveState(ctx, users, nil, false)
}

// LoadSession загружает активную сессию из ключа "currentUser".
//
// Возвращает nil, если ключа нет или записан null.
func (r *RedisStorage) LoadSession(ctx context.Context) (*models.Session, error) {
	b, err := r.client.Get(ctx, sessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", sessionKey, err)
	}

	var s *models.Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("ключ %q повреждён: %w", sessionKey, err)
	}
	return s, nil
}

// SaveSession записывает активную сессию.
func (r *RedisStorage) SaveSession(ctx context.Context, s *models.Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey, b, 0).Err()
}

// ClearSession сбрасывает активную сессию (записывает null).
func (r *RedisStorage) ClearSession(ctx context.Context) error {
	return r.client.Set(ctx, sessionKey, []byte("null"), 0).Err()
}

// SaveUserState записывает коллекцию и сессию одной транзакцией MULTI/EXEC.
func (r *RedisStorage) SaveUserState(ctx context.Context, users []models.User, s *models.Session) error {
	return r.saveState(ctx, users, s, true)
}

// saveState выполняет полную перезапись состояния под optimistic lock.
//
// Алгоритм:
//  1. WATCH users:version;
//  2. читаем текущий штамп;
//  3. в MULTI/EXEC пишем коллекцию, новый штамп и (опционально) сессию.
//
// Если другой процесс успел записать раньше — EXEC откатывается,
// возвращаем ErrConflict, вызывающий может перечитать и повторить.
func (r *RedisStorage) saveState(ctx context.Context, users []models.User, s *models.Session, withSession bool) error {
	usersJSON, err := json.Marshal(users)
	if err != nil {
		return err
	}
	var sessJSON []byte
	if withSession {
		if sessJSON, err = json.Marshal(s); err != nil {
			return err
		}
	}

	txf := func(tx *redis.Tx) error {
		ver, err := tx.Get(ctx, usersVersionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, usersKey, usersJSON, 0)
			pipe.Set(ctx, usersVersionKey, ver+1, 0)
			if withSession {
				pipe.Set(ctx, sessionKey, sessJSON, 0)
			}
			return nil
		})
		return err
	}

	if err := r.client.Watch(ctx, txf, usersVersionKey); err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return serr.ErrConflict
		}
		return err
	}
	return nil
}

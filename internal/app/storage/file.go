package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sayceee/LoanSync1/internal/app/models"
)

// Имена файлов file-бэкенда (по одному на логический ключ).
const (
	usersFile   = "users.json"
	sessionFile = "session.json"
)

// UsersDump — формат файла коллекции пользователей.
//
// Файл содержит объект вида:
//
//	{ "users": [ ... ] }
type UsersDump struct {
	Users []models.User `json:"users"`
}

// SessionDump — формат файла активной сессии.
//
// Файл содержит объект вида:
//
//	{ "session": { ... } }
//
// либо { "session": null }, если сессии нет.
type SessionDump struct {
	Session *models.Session `json:"session"`
}

// FileStorage хранит состояние в JSON-файлах внутри dir.
//
// Каталог создаётся с правами 0700, файлы — 0600.
// Отсутствующий файл означает пустое состояние (первый запуск).
type FileStorage struct {
	dir string
}

// NewFileStorage создаёт file-бэкенд поверх каталога dir.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

// LoadUsers загружает коллекцию пользователей из users.json.
//
// Поведение:
//   - если файл не существует — возвращает пустую коллекцию (это нормальная
//     ситуация при первом запуске);
//   - если JSON некорректный — возвращает ошибку с диагностикой
//     (молча продолжать с пустой коллекцией нельзя, это потеря данных).
func (f *FileStorage) LoadUsers(ctx context.Context) ([]models.User, error) {
	b, err := os.ReadFile(filepath.Join(f.dir, usersFile))
	if err != nil {
		if os.IsNotExist(err) {
			return []models.User{}, nil
		}
		return nil, err
	}

	var dump UsersDump
	if err := json.Unmarshal(b, &dump); err != nil {
		return nil, fmt.Errorf("users.json повреждён (%s): %w", filepath.Join(f.dir, usersFile), err)
	}
	if dump.Users == nil {
		dump.Users = []models.User{}
	}
	return dump.Users, nil
}

// SaveUsers сериализует коллекцию в JSON и сохраняет в users.json.
//
// Поведение:
//   - создаёт каталог (MkdirAll) с правами 0700;
//   - сохраняет файл с правами 0600;
//   - формат JSON: UsersDump{Users:[...]} с отступами (MarshalIndent).
func (f *FileStorage) SaveUsers(ctx context.Context, users []models.User) error {
	return f.writeJSON(usersFile, UsersDump{Users: users})
}

// LoadSession загружает активную сессию из session.json.
//
// Возвращает nil, если файла нет или сессия записана как null.
// Битый JSON — ошибка с диагностикой.
func (f *FileStorage) LoadSession(ctx context.Context) (*models.Session, error) {
	b, err := os.ReadFile(filepath.Join(f.dir, sessionFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var dump SessionDump
	if err := json.Unmarshal(b, &dump); err != nil {
		return nil, fmt.Errorf("session.json повреждён (%s): %w", filepath.Join(f.dir, sessionFile), err)
	}
	return dump.Session, nil
}

// SaveSession сохраняет активную сессию в session.json.
func (f *FileStorage) SaveSession(ctx context.Context, s *models.Session) error {
	return f.writeJSON(sessionFile, SessionDump{Session: s})
}

// ClearSession сбрасывает активную сессию (записывает null).
//
// Ключ не удаляется, а перезаписывается значением null — как и в
// остальных операциях, последующее чтение видит согласованное состояние.
func (f *FileStorage) ClearSession(ctx context.Context) error {
	return f.writeJSON(sessionFile, SessionDump{Session: nil})
}

// SaveUserState записывает коллекцию и сессию в рамках одной логической записи.
//
// Исполнение однопоточное (одна операция за раз), поэтому последовательной
// записи двух файлов достаточно: промежуточное состояние некому наблюдать.
func (f *FileStorage) SaveUserState(ctx context.Context, users []models.User, s *models.Session) error {
	if err := f.SaveUsers(ctx, users); err != nil {
		return err
	}
	return f.SaveSession(ctx, s)
}

// writeJSON сериализует значение с отступами и пишет файл с правами 0600.
func (f *FileStorage) writeJSON(name string, v any) error {
	if err := os.MkdirAll(f.dir, 0o700); err != nil {
		return err
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(f.dir, name), b, 0o600)
}

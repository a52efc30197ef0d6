// Package config отвечает за:
// - чтение loansync.yaml
// - подстановку переменных окружения вида ${LOANSYNC_SIGNING_KEY}
// - проставление дефолтов
// - валидацию (чтобы приложение не стартовало с дырявыми настройками)
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/stretchr/testify/assert/yaml"
)

// Config — корневая структура всего конфига приложения.
type Config struct {
	Env      string         `yaml:"env"` // dev|prod
	Storage  StorageConfig  `yaml:"storage"`
	Auth     AuthConfig     `yaml:"auth"`
	Password PasswordConfig `yaml:"password"`
	Alerts   AlertsConfig   `yaml:"alerts"`
	Display  DisplayConfig  `yaml:"display"`
	Log      LogConfig      `yaml:"log"`
}

// StorageConfig — настройки персистентного key-value хранилища.
type StorageConfig struct {
	Backend  string `yaml:"backend"`   // file|redis
	Dir      string `yaml:"dir"`       // каталог для file-бэкенда (по умолчанию ~/.loansync)
	RedisURL string `yaml:"redis_url"` // обязателен при backend=redis
}

// AuthConfig — настройки сессии.
type AuthConfig struct {
	Issuer     string        `yaml:"issuer"`
	Audience   string        `yaml:"audience"`
	SessionTTL time.Duration `yaml:"session_ttl"`
	JWT        JWTConfig     `yaml:"jwt"`
}

// JWTConfig — как подписываем токен сессии.
type JWTConfig struct {
	Algorithm  string `yaml:"algorithm"`   // сейчас поддерживаем только HS256
	SigningKey string `yaml:"signing_key"` // может содержать ${LOANSYNC_SIGNING_KEY}
}

// PasswordConfig — настройки хэширования паролей пользователей.
type PasswordConfig struct {
	Hasher string       `yaml:"hasher"` // argon2id
	Argon2 Argon2Config `yaml:"argon2"`
}

// Argon2Config — параметры argon2id.
type Argon2Config struct {
	Time      uint32 `yaml:"time"`
	MemoryKiB uint32 `yaml:"memory_kib"`
	Threads   uint8  `yaml:"threads"`
	KeyLen    uint32 `yaml:"key_len"`
	SaltLen   uint32 `yaml:"salt_len"`
}

// AlertsConfig — окно напоминаний о скорых платежах.
type AlertsConfig struct {
	WindowDays int `yaml:"window_days"`
}

// DisplayConfig — отображение сумм.
type DisplayConfig struct {
	CurrencyPrefix string `yaml:"currency_prefix"`
}

// LogConfig — настройки логирования (zap).
type LogConfig struct {
	Level string `yaml:"level"` // debug|info|warn|error
	Dir   string `yaml:"dir"`   // каталог для файлов логов
}

// DefaultPath возвращает путь к конфигурационному файлу в домашней директории.
//
// Формат пути:
//
//	<home>/.loansync/loansync.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".loansync", "loansync.yaml"), nil
}

// Load читает YAML, подставляет переменные окружения вида ${VAR},
// затем парсит в структуру, проставляет дефолты и валидирует.
//
// Отсутствующий файл конфигурации — нормальная ситуация для CLI:
// в этом случае используются только дефолты.
func Load(path string) (*Config, error) {
	var cfg Config

	raw, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("не удалось прочитать конфиг: %w", err)
	}

	if err == nil {
		// Подставляем переменные окружения в текст YAML:
		// signing_key: "${LOANSYNC_SIGNING_KEY}" -> signing_key: "реальное_значение"
		expanded := ExpandEnvStrict(string(raw))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("не удалось распарсить yaml: %w", err)
		}
	}

	if err := ApplyDefaults(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ExpandEnvStrict заменяет ${VAR} на значение из окружения.
// Если переменная не задана — оставляем ${VAR} как есть,
// а потом Validate() упадёт с понятной ошибкой.
func ExpandEnvStrict(s string) string {
	re := regexp.MustCompile(`\$\{([A-Z0-9_]+)\}`)
	return re.ReplaceAllStringFunc(s, func(m string) string {
		sub := re.FindStringSubmatch(m)
		if len(sub) != 2 {
			return m
		}
		if val, ok := os.LookupEnv(sub[1]); ok {
			return val
		}
		return m
	})
}

// devSigningKey — ключ подписи по умолчанию для локального запуска.
// Для чего-то кроме локальной машины ключ задаётся через
// ${LOANSYNC_SIGNING_KEY} в конфиге.
const devSigningKey = "loansync-local-dev-signing-key-0123456789"

// ApplyDefaults — дефолтные значения, если в yaml поле не задано.
func ApplyDefaults(cfg *Config) error {
	if cfg.Env == "" {
		cfg.Env = "dev"
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "file"
	}
	if cfg.Storage.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("не удалось определить домашнюю директорию: %w", err)
		}
		cfg.Storage.Dir = filepath.Join(home, ".loansync")
	}
	if cfg.Auth.Issuer == "" {
		cfg.Auth.Issuer = "loansync"
	}
	if cfg.Auth.Audience == "" {
		cfg.Auth.Audience = "loansync-cli"
	}
	if cfg.Auth.SessionTTL == 0 {
		cfg.Auth.SessionTTL = 24 * time.Hour
	}
	if cfg.Auth.JWT.Algorithm == "" {
		cfg.Auth.JWT.Algorithm = "HS256"
	}
	if cfg.Auth.JWT.SigningKey == "" {
		cfg.Auth.JWT.SigningKey = devSigningKey
	}
	if cfg.Password.Hasher == "" {
		cfg.Password.Hasher = "argon2id"
	}
	if cfg.Password.Argon2.Time == 0 {
		cfg.Password.Argon2.Time = 3
	}
	if cfg.Password.Argon2.MemoryKiB == 0 {
		cfg.Password.Argon2.MemoryKiB = 64 * 1024
	}
	if cfg.Password.Argon2.Threads == 0 {
		cfg.Password.Argon2.Threads = 2
	}
	if cfg.Password.Argon2.KeyLen == 0 {
		cfg.Password.Argon2.KeyLen = 32
	}
	if cfg.Password.Argon2.SaltLen == 0 {
		cfg.Password.Argon2.SaltLen = 16
	}
	if cfg.Alerts.WindowDays == 0 {
		cfg.Alerts.WindowDays = 7
	}
	if cfg.Display.CurrencyPrefix == "" {
		cfg.Display.CurrencyPrefix = "Ksh"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Dir == "" {
		cfg.Log.Dir = filepath.Join(cfg.Storage.Dir, "logs")
	}
	return nil
}

// Validate проверяет, что конфиг заполнен корректно и безопасно.
// Если что-то не так — возвращаем ошибку и приложение НЕ стартует.
func (c *Config) Validate() error {
	// Хранилище
	switch c.Storage.Backend {
	case "file":
		if c.Storage.Dir == "" {
			return errors.New("storage.dir обязателен при backend=file")
		}
	case "redis":
		if c.Storage.RedisURL == "" {
			return errors.New("storage.redis_url обязателен при backend=redis")
		}
	default:
		return fmt.Errorf("storage.backend должен быть file|redis (сейчас %q)", c.Storage.Backend)
	}

	// Сессия
	if c.Auth.SessionTTL <= 0 {
		return errors.New("auth.session_ttl должен быть > 0")
	}

	// JWT
	alg := strings.ToUpper(strings.TrimSpace(c.Auth.JWT.Algorithm))
	if alg != "HS256" {
		return fmt.Errorf("auth.jwt.algorithm должен быть HS256 (сейчас %q)", c.Auth.JWT.Algorithm)
	}

	key := strings.TrimSpace(c.Auth.JWT.SigningKey)
	if key == "" {
		return errors.New("auth.jwt.signing_key обязателен")
	}
	// Если ${LOANSYNC_SIGNING_KEY} не подставился — значит переменная окружения не задана
	if strings.Contains(key, "${") && strings.Contains(key, "}") {
		return fmt.Errorf("auth.jwt.signing_key содержит неподставленную переменную: %q (нужно задать LOANSYNC_SIGNING_KEY)", key)
	}
	// Для HS256 ключ должен быть длинным и случайным
	if len(key) < 32 {
		return fmt.Errorf("auth.jwt.signing_key слишком короткий (%d символов); нужно >= 32", len(key))
	}

	// Хэширование паролей
	if strings.ToLower(c.Password.Hasher) != "argon2id" {
		return fmt.Errorf("password.hasher должен быть argon2id (сейчас %q)", c.Password.Hasher)
	}
	if c.Password.Argon2.Time == 0 || c.Password.Argon2.MemoryKiB == 0 || c.Password.Argon2.Threads == 0 {
		return errors.New("password.argon2 должен быть настроен для argon2id")
	}

	// Напоминания
	if c.Alerts.WindowDays <= 0 {
		return errors.New("alerts.window_days должен быть > 0")
	}

	return nil
}

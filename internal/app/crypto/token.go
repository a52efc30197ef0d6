// Package crypto содержит криптографические примитивы приложения LoanSync.
//
// Пакет отвечает за:
//   - хэширование и проверку паролей пользователей (argon2id);
//   - генерацию и проверку JWT-токена сессии (issuer, audience, TTL);
//   - соблюдение требований безопасности (HS256, срок жизни).
package crypto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	serr "github.com/Sayceee/LoanSync1/internal/shared/errors"
)

// TokenConfig описывает параметры токена сессии.
type TokenConfig struct {
	// Issuer — значение поля iss (кто выдал токен).
	Issuer string
	// Audience — значение поля aud (для кого предназначен токен).
	Audience string
	// SigningKey — секретный ключ для подписи токена (HS256).
	// Должен быть достаточно длинным и случайным.
	SigningKey string
	// TTL — срок жизни сессии.
	TTL time.Duration
}

// NewSessionToken создаёт и подписывает JWT-токен сессии для пользователя.
//
// Токен содержит стандартные RegisteredClaims:
//   - iss (Issuer)
//   - aud (Audience)
//   - sub (userID)
//   - iat (IssuedAt)
//   - exp (ExpiresAt)
//
// Используется алгоритм подписи HS256.
// В случае ошибки подписи возвращается непустая ошибка.
func NewSessionToken(userID string, cfg TokenConfig) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Issuer:    cfg.Issuer,
		Audience:  []string{cfg.Audience},
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}

// VerifySessionToken проверяет подпись и claims токена сессии.
//
// Проверяются:
//   - алгоритм подписи (только HS256)
//   - issuer и audience
//   - срок жизни (exp)
//
// Возвращает userID из claims.Subject или ErrUnauthorized,
// если токен невалиден/протух.
func VerifySessionToken(tokenStr string, cfg TokenConfig) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.SigningKey), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", serr.ErrUnauthorized
	}
	return claims.Subject, nil
}

package service

import (
	"context"

	"github.com/Sayceee/LoanSync1/internal/app/crypto"
	"github.com/Sayceee/LoanSync1/internal/app/models"
	serr "github.com/Sayceee/LoanSync1/internal/shared/errors"
)

// SessionService — «шлюз сессии»: решает, есть ли активная сессия,
// и не пускает неаутентифицированные операции к защищённым данным.
//
// Сессия передаётся дальше явным аргументом (ledger-операции принимают
// её параметром), глобального синглтона «текущий пользователь» нет.
type SessionService struct {
	store Store
	token crypto.TokenConfig
}

// NewSessionService создаёт SessionService с зависимостями.
func NewSessionService(store Store, token crypto.TokenConfig) *SessionService {
	return &SessionService{store: store, token: token}
}

// Require возвращает активную сессию или ErrUnauthorized.
//
// Проверяется:
//   - сессия существует в хранилище;
//   - токен сессии подписан нашим ключом и не протух;
//   - subject токена совпадает с id пользователя из снимка.
//
// CLI на ErrUnauthorized отправляет пользователя на login —
// это аналог редиректа защищённой страницы.
func (s *SessionService) Require(ctx context.Context) (*models.Session, error) {
	sess, err := s.store.LoadSession(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil || sess.AccessToken == "" {
		return nil, serr.ErrUnauthorized
	}

	userID, err := crypto.VerifySessionToken(sess.AccessToken, s.token)
	if err != nil {
		return nil, serr.ErrUnauthorized
	}
	if userID != sess.User.ID {
		return nil, serr.ErrUnauthorized
	}
	return sess, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Sayceee/LoanSync1/internal/app/crypto"
	"github.com/Sayceee/LoanSync1/internal/app/models"
	serr "github.com/Sayceee/LoanSync1/internal/shared/errors"
)

// AccountService реализует операции над коллекцией пользователей.
//
// Ответственность:
//   - регистрация (валидация + проверка уникальности email + добавление)
//   - аутентификация (поиск по email + проверка пароля + выпуск сессии)
//   - выход (сброс сессии)
//   - чтение активной сессии
//
// Мутации выполняются как полный цикл read-modify-write над ключом
// "users": читаем коллекцию, меняем копию в памяти, пишем обратно.
// Масштаб данных маленький (ручной ввод), этого достаточно.
type AccountService struct {
	store    Store
	validate *validator.Validate

	pass  crypto.Argon2Params
	token crypto.TokenConfig
}

// NewAccountService создаёт AccountService с зависимостями.
func NewAccountService(store Store, validate *validator.Validate, pass crypto.Argon2Params, token crypto.TokenConfig) *AccountService {
	return &AccountService{
		store:    store,
		validate: validate,
		pass:     pass,
		token:    token,
	}
}

// Register регистрирует нового пользователя.
//
// Валидация:
//   - все поля обязательны
//   - email должен быть валидным
//   - пароль длиной >= 6 символов и совпадает с подтверждением
//
// Ошибки:
//   - ErrFieldsRequired / ErrPasswordTooShort / ErrPasswordMismatch / ErrInvalidInput
//   - ErrEmailTaken, если email уже есть в коллекции
//     (сравнение точное, с учётом регистра; коллекция при этом не меняется)
//
// При успехе пользователь с пустым списком займов добавляется в конец
// коллекции и коллекция сохраняется. Навигация после успеха — забота
// вызывающего (cli).
func (s *AccountService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.User{}, mapRegisterValidation(err)
	}
	if req.Password != req.ConfirmPassword {
		return models.User{}, serr.ErrPasswordMismatch
	}

	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return models.User{}, err
	}

	// email уникален по точному совпадению
	for i := range users {
		if users[i].Email == req.Email {
			return models.User{}, serr.ErrEmailTaken
		}
	}

	hash, err := crypto.HashPassword(req.Password, s.pass)
	if err != nil {
		return models.User{}, serr.ErrInternal
	}

	user := models.User{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Loans:        []models.Loan{},
		CreatedAt:    time.Now(),
	}

	users = append(users, user)
	if err := s.store.SaveUsers(ctx, users); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate аутентифицирует пользователя и назначает активную сессию.
//
// Поведение:
//   - не раскрывает факт существования email (и «нет такого email»,
//     и «неверный пароль» дают одну и ту же ошибку)
//   - при успехе снимок пользователя + токен сессии сохраняются
//     под ключом "currentUser"
//
// Ошибки:
//   - ErrFieldsRequired
//   - ErrInvalidCredentials
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*models.Session, error) {
	if email == "" || password == "" {
		return nil, serr.ErrFieldsRequired
	}

	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}

	// ищем юзера по email (точное совпадение)
	var user *models.User
	for i := range users {
		if users[i].Email == email {
			user = &users[i]
			break
		}
	}
	if user == nil {
		// не палим существование email
		return nil, serr.ErrInvalidCredentials
	}

	// проверяем пароль
	ok, err := crypto.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, serr.ErrInternal
	}
	if !ok {
		return nil, serr.ErrInvalidCredentials
	}

	// выпускаем токен сессии
	tok, err := crypto.NewSessionToken(user.ID, s.token)
	if err != nil {
		return nil, serr.ErrInternal
	}

	sess := &models.Session{
		User:        *user,
		AccessToken: tok,
		IssuedAt:    time.Now(),
	}
	if err := s.store.SaveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Logout сбрасывает активную сессию безусловно.
func (s *AccountService) Logout(ctx context.Context) error {
	return s.store.ClearSession(ctx)
}

// CurrentSession возвращает активную сессию или nil, если её нет.
//
// Валидность токена здесь не проверяется — этим занимается SessionService.
func (s *AccountService) CurrentSession(ctx context.Context) (*models.Session, error) {
	return s.store.LoadSession(ctx)
}

// mapRegisterValidation переводит ошибки validator в доменные сентинелы:
// required -> ErrFieldsRequired, min на пароле -> ErrPasswordTooShort,
// остальное (формат email) -> ErrInvalidInput.
func mapRegisterValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return serr.ErrInvalidInput
	}
	for _, fe := range verrs {
		switch {
		case fe.Tag() == "required":
			return serr.ErrFieldsRequired
		case fe.Field() == "Password" && fe.Tag() == "min":
			return serr.ErrPasswordTooShort
		}
	}
	return serr.ErrInvalidInput
}

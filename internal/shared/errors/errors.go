// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service и storage слоях
// и маппятся на сообщения пользователю в cli слое.
package errors

import "errors"

var (
	// Входные данные невалидны (неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Не заполнено обязательное поле
	ErrFieldsRequired = errors.New("all fields are required")
	// Неверные учётные данные (email или пароль)
	ErrInvalidCredentials = errors.New("invalid email or password")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Нет активной сессии или токен сессии невалиден
	ErrUnauthorized = errors.New("unauthorized")
	// Ресурс не найден (например займ по id)
	ErrNotFound = errors.New("not found")
	// конфликт версий (проигранная гонка записи в redis)
	ErrConflict = errors.New("conflict")
	// ожидаемая ошибка
	ErrExpectedError = errors.New("expected error")
	// неожидаемая ошибка
	ErrUnexpectedError = errors.New("unexpected error")
)

// только для регистрации
var (
	// Email уже зарегистрирован
	ErrEmailTaken = errors.New("email already registered")
	// Пароль и подтверждение не совпадают
	ErrPasswordMismatch = errors.New("passwords do not match")
	// Пароль короче 6 символов
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)

// только для займов
var (
	// Сумма/ставка/срок вне допустимого диапазона
	ErrInvalidAmount = errors.New("please enter valid amounts")
)

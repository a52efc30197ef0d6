package models

import "time"

// RegisterRequest — входные данные формы регистрации.
//
// Теги validate обрабатываются go-playground/validator в service слое:
//   - required маппится на ErrFieldsRequired ("all fields are required")
//   - min=6 на пароле маппится на ErrPasswordTooShort
//   - email маппится на ErrInvalidInput
//
// Совпадение Password/ConfirmPassword проверяется отдельно в service
// (нужно своё сообщение об ошибке).
type RegisterRequest struct {
	FirstName       string `validate:"required"`
	LastName        string `validate:"required"`
	Email           string `validate:"required,email"`
	Phone           string `validate:"required"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required"`
}

// AddLoanRequest — входные данные формы добавления займа.
//
// Теги validate:
//   - required маппится на ErrFieldsRequired
//   - gt/gte маппятся на ErrInvalidAmount ("please enter valid amounts")
type AddLoanRequest struct {
	Provider    string    `validate:"required"`
	Principal   float64   `validate:"required,gt=0"`
	RatePercent float64   `validate:"gte=0"`
	TermValue   float64   `validate:"required,gt=0"`
	TermUnit    string    `validate:"required,oneof=months years"`
	DueDate     time.Time `validate:"required"`
}

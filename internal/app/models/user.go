// Package models содержит модели данных приложения LoanSync.
//
// Модели сериализуются в JSON и хранятся в key-value хранилище
// под двумя логическими ключами: "users" (коллекция пользователей)
// и "currentUser" (активная сессия).
package models

import "time"

// User — запись пользователя в коллекции.
//
// Поля:
//   - ID: уникальный идентификатор пользователя (UUID в виде строки)
//   - FirstName/LastName: имя и фамилия
//   - Email: уникален в пределах всей коллекции (сравнение регистрозависимое)
//   - Phone: телефон (хранится как есть, без нормализации)
//   - PasswordHash: пароль в виде argon2id-хэша с солью;
//     исходный пароль нигде не хранится
//   - Loans: упорядоченная последовательность займов (порядок добавления)
//   - CreatedAt: время регистрации
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"password_hash"`
	Loans        []Loan    `json:"loans"`
	CreatedAt    time.Time `json:"created_at"`
}

// FindLoan возвращает индекс займа с данным id в последовательности Loans.
//
// Возвращает -1, если займа нет.
func (u *User) FindLoan(loanID string) int {
	for i := range u.Loans {
		if u.Loans[i].ID == loanID {
			return i
		}
	}
	return -1
}

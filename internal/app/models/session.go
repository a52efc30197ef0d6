package models

import "time"

// Session — активная сессия пользователя, хранимая под ключом "currentUser".
//
// User — снимок записи пользователя на момент последней мутации.
// После каждой операции над займами и коллекция, и снимок сессии
// записываются в хранилище в рамках одной логической записи,
// чтобы последующее чтение не увидело частичное состояние.
//
// AccessToken — подписанный JWT (HS256) с userID в subject и сроком
// жизни из конфигурации. Протухший или невалидный токен означает,
// что сессии нет.
type Session struct {
	User        User      `json:"user"`
	AccessToken string    `json:"access_token"`
	IssuedAt    time.Time `json:"issued_at"`
}

// Package shared содержит ошибки предметной области, общие для сервисов,
// хранилища и HTTP-слоя. HTTP-слой сопоставляет их со статусами ответа.
package shared

import "errors"

// Ошибки аутентификации.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrIncorrectPassword  = errors.New("current password is incorrect")
	ErrTokenMissing       = errors.New("missing or invalid authorization header")
	ErrTokenMalformed     = errors.New("malformed token")
	ErrTokenSignature     = errors.New("invalid token signature")
	ErrTokenExpired       = errors.New("token expired")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountDisabled    = errors.New("account is disabled")
)

// Ошибки авторизации и данных.
var (
	ErrForbidden     = errors.New("forbidden")
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
)

// IsTokenError сообщает, относится ли ошибка к проверке самого токена
// (подпись, формат, срок действия).
func IsTokenError(err error) bool {
	return errors.Is(err, ErrTokenMalformed) ||
		errors.Is(err, ErrTokenSignature) ||
		errors.Is(err, ErrTokenExpired)
}

// Package models содержит доменные модели сервиса: аккаунт пользователя,
// пост блога и комментарий. Структуры используются в бизнес‑логике,
// хранилище и HTTP-ответах.
package models

import "time"

// Role — роль аккаунта.
type Role string

const (
	// RoleUser — обычный пользователь.
	RoleUser Role = "user"
	// RoleAdmin — администратор.
	RoleAdmin Role = "admin"
)

// Account представляет зарегистрированного пользователя системы.
type Account struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FullName     *string    `json:"full_name"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsAdmin сообщает, является ли аккаунт администратором.
func (a *Account) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}

// NewAccount — данные для создания аккаунта.
type NewAccount struct {
	Username     string
	Email        string
	PasswordHash string
	FullName     *string
	Role         Role
}

// Profile — публичное представление аккаунта в ответах API.
type Profile struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	Role     Role    `json:"role"`
}

// ProfileOf строит Profile по аккаунту.
func ProfileOf(a *Account) Profile {
	return Profile{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		FullName: a.FullName,
		Role:     a.Role,
	}
}

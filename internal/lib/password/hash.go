// Package password реализует функции для безопасного хеширования и проверки паролей.
//
// Hash создает bcrypt-хеш пароля для безопасного хранения.
// Verify сравнивает bcrypt-хеш с введённым паролем, проверяя их соответствие.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost — стоимость bcrypt для хранимых паролей (12 раундов).
const DefaultCost = 12

// Hasher хеширует и проверяет пароли с заданной стоимостью bcrypt.
type Hasher struct {
	cost int
}

// New создаёт Hasher. Стоимость вне допустимого диапазона bcrypt заменяется на DefaultCost.
func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash принимает пароль пользователя и возвращает его bcrypt‑хэш.
//
// Соль случайная, поэтому два вызова с одним паролем дают разные хэши.
func (h *Hasher) Hash(password string) (string, error) {
	const op = "password.Hash"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashed), nil
}

// Verify сравнивает bcrypt‑хэш с введённым паролем.
//
// Некорректный хэш считается несовпадением, ошибка наружу не возвращается.
func (h *Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

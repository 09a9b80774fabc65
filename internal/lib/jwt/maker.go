// Package jwt реализует генерацию и парсинг JWT токенов с пользовательскими claim полями.
//
// Maker определяет интерфейс для создания и проверки токенов доступа.
// MakerImpl — конкретная реализация с использованием секретного ключа и срока жизни.
package jwt

import (
	"errors"
	"time"
)

// TokenTTL — фиксированное время жизни токена доступа.
const TokenTTL = 7 * 24 * time.Hour

// ErrEmptySecret возвращается при попытке создать Maker без секретного ключа.
var ErrEmptySecret = errors.New("jwt secret key is empty")

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken подписывает токен для аккаунта с указанным ID и именем.
	GenerateToken(accountID int64, username string) (string, error)
	// ParseToken проверяет подпись и срок действия и возвращает claims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey []byte           // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration    // Время жизни токена.
	now       func() time.Time // Источник текущего времени.
}

// Option настраивает MakerImpl.
type Option func(*MakerImpl)

// WithClock подменяет источник времени для выпуска и проверки токенов.
func WithClock(now func() time.Time) Option {
	return func(m *MakerImpl) {
		m.now = now
	}
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration, opts ...Option) (*MakerImpl, error) {
	if secretKey == "" {
		return nil, ErrEmptySecret
	}
	m := &MakerImpl{
		secretKey: []byte(secretKey),
		tokenTTL:  ttl,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

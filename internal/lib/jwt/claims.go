package jwt

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/weather-blog/internal/shared"
)

// CustomClaims описывает пользовательские данные, хранящиеся в JWT.
// Subject содержит ID аккаунта в десятичной записи.
type CustomClaims struct {
	Username             string `json:"username"` // Имя пользователя, только для отображения
	jwt.RegisteredClaims                          // Стандартные claims (sub, iat, exp, jti)
}

// AccountID возвращает ID аккаунта из поля sub.
func (c *CustomClaims) AccountID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("jwt.AccountID: %w", shared.ErrTokenMalformed)
	}
	return id, nil
}

// GenerateToken создает JWT токен для аккаунта, подписывая его секретным ключом.
//
// Время жизни токена определяется полем tokenTTL. Каждый токен получает
// собственный jti, поэтому два токена, выпущенные в одну секунду, различаются.
func (j *MakerImpl) GenerateToken(accountID int64, username string) (string, error) {
	const op = "jwt.GenerateToken"
	now := j.now()
	claims := CustomClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(accountID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// ParseToken парсит JWT токен, проверяет его подпись и срок действия,
// возвращает CustomClaims, если токен корректен.
//
// Ошибки приводятся к shared.ErrTokenExpired, shared.ErrTokenSignature
// или shared.ErrTokenMalformed.
func (j *MakerImpl) ParseToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, shared.ErrTokenMalformed)
	}
	if _, err := claims.AccountID(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return claims, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return shared.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return shared.ErrTokenSignature
	default:
		return shared.ErrTokenMalformed
	}
}

package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/weather-blog/internal/shared"
)

const testSecret = "test_secret_key_1234567890"

func newTestMaker(t *testing.T, secret string, ttl time.Duration, opts ...Option) *MakerImpl {
	t.Helper()
	maker, err := NewJWTMaker(secret, ttl, opts...)
	require.NoError(t, err)
	return maker
}

func TestNewJWTMaker_EmptySecret(t *testing.T) {
	maker, err := NewJWTMaker("", TokenTTL)
	assert.ErrorIs(t, err, ErrEmptySecret)
	assert.Nil(t, maker)
}

func TestJWTMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	maker := newTestMaker(t, testSecret, TokenTTL)

	tests := []struct {
		name      string
		accountID int64
		username  string
	}{
		{name: "regular account", accountID: 1, username: "alice"},
		{name: "large id", accountID: 9_000_000_000, username: "bob"},
		{name: "username with underscore", accountID: 42, username: "user_123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.accountID, tt.username)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			id, err := claims.AccountID()
			require.NoError(t, err)
			assert.Equal(t, tt.accountID, id)
			assert.Equal(t, tt.username, claims.Username)
			assert.NotEmpty(t, claims.ID)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestJWTMaker_TokensAreDistinct(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	maker := newTestMaker(t, testSecret, TokenTTL, WithClock(func() time.Time { return now }))

	first, err := maker.GenerateToken(7, "alice")
	require.NoError(t, err)
	second, err := maker.GenerateToken(7, "alice")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	_, err = maker.ParseToken(first)
	assert.NoError(t, err)
	_, err = maker.ParseToken(second)
	assert.NoError(t, err)
}

func TestJWTMaker_ValidityWindow(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := newTestMaker(t, testSecret, TokenTTL, WithClock(func() time.Time { return issuedAt }))

	token, err := issuer.GenerateToken(5, "alice")
	require.NoError(t, err)

	tests := []struct {
		name    string
		checkAt time.Time
		wantErr error
	}{
		{name: "at issuance", checkAt: issuedAt},
		{name: "one day later", checkAt: issuedAt.Add(24 * time.Hour)},
		{name: "one second before expiry", checkAt: issuedAt.Add(TokenTTL - time.Second)},
		{name: "exactly at expiry", checkAt: issuedAt.Add(TokenTTL), wantErr: shared.ErrTokenExpired},
		{name: "after expiry", checkAt: issuedAt.Add(TokenTTL + time.Hour), wantErr: shared.ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkAt := tt.checkAt
			verifier := newTestMaker(t, testSecret, TokenTTL, WithClock(func() time.Time { return checkAt }))

			claims, err := verifier.ParseToken(token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "5", claims.Subject)
		})
	}
}

func TestJWTMaker_ParseToken_InvalidTokens(t *testing.T) {
	maker := newTestMaker(t, testSecret, TokenTTL)

	validToken, err := maker.GenerateToken(1, "testuser")
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "empty token", token: "", wantErr: shared.ErrTokenMalformed},
		{name: "malformed token", token: "invalid.token.here", wantErr: shared.ErrTokenMalformed},
		{name: "expired token", token: createExpiredToken(t), wantErr: shared.ErrTokenExpired},
		{name: "wrong secret key", token: createTokenWithWrongSecret(t), wantErr: shared.ErrTokenSignature},
		{name: "tampered signature", token: validToken + "tampered", wantErr: shared.ErrTokenSignature},
		{name: "alg none", token: createUnsignedToken(t), wantErr: shared.ErrTokenSignature},
		{name: "non numeric subject", token: createTokenWithSubject(t, "alice"), wantErr: shared.ErrTokenMalformed},
		{name: "missing expiry", token: createTokenWithoutExpiry(t), wantErr: shared.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTMaker_DifferentSecretKeys(t *testing.T) {
	maker1 := newTestMaker(t, "first_secret_key", TokenTTL)
	maker2 := newTestMaker(t, "different_secret_key", TokenTTL)

	token, err := maker1.GenerateToken(3, "admin")
	require.NoError(t, err)

	claims, err := maker2.ParseToken(token)
	assert.ErrorIs(t, err, shared.ErrTokenSignature)
	assert.Nil(t, claims)

	claims, err = maker1.ParseToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
}

func TestJWTMaker_ErrorsDoNotLeakSecret(t *testing.T) {
	maker := newTestMaker(t, testSecret, TokenTTL)

	_, err := maker.ParseToken(createTokenWithWrongSecret(t))
	require.Error(t, err)
	assert.False(t, strings.Contains(err.Error(), testSecret))
}

func createExpiredToken(t *testing.T) string {
	maker := newTestMaker(t, testSecret, -time.Hour)
	token, err := maker.GenerateToken(1, "testuser")
	require.NoError(t, err)
	return token
}

func createTokenWithWrongSecret(t *testing.T) string {
	wrongMaker := newTestMaker(t, "wrong_secret_key", TokenTTL)
	token, err := wrongMaker.GenerateToken(1, "testuser")
	require.NoError(t, err)
	return token
}

func createUnsignedToken(t *testing.T) string {
	claims := CustomClaims{
		Username: "testuser",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return token
}

func createTokenWithSubject(t *testing.T, subject string) string {
	claims := CustomClaims{
		Username: "testuser",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func createTokenWithoutExpiry(t *testing.T) string {
	claims := CustomClaims{
		Username:         "testuser",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "1"},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

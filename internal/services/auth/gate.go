package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/weather-blog/internal/lib/jwt"
	"github.com/magabrotheeeer/weather-blog/internal/models"
	"github.com/magabrotheeeer/weather-blog/internal/shared"
)

// Directory — поиск аккаунта по ID. Отсутствие аккаунта возвращается как (nil, nil).
type Directory interface {
	FindAccountByID(ctx context.Context, id int64) (*models.Account, error)
}

// TokenParser проверяет подпись и срок действия токена.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwt.CustomClaims, error)
}

// Outcome — итог проверки запроса.
type Outcome int

const (
	// Anonymous — токен не передан или заголовок не в формате Bearer.
	Anonymous Outcome = iota
	// Authenticated — токен валиден, аккаунт существует и активен.
	Authenticated
	// Rejected — токен передан, но проверка не пройдена.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Result — результат проверки: аккаунт при Authenticated, причина при Anonymous и Rejected.
type Result struct {
	Outcome Outcome
	Account *models.Account
	Reason  error
}

// Gate проверяет bearer-токен и заново загружает аккаунт при каждом запросе.
type Gate struct {
	tokens   TokenParser
	accounts Directory
}

// NewGate создает Gate.
func NewGate(tokens TokenParser, accounts Directory) *Gate {
	return &Gate{
		tokens:   tokens,
		accounts: accounts,
	}
}

// Resolve проверяет значение заголовка Authorization. Выполняет не больше
// одного обращения к Directory.
func (g *Gate) Resolve(ctx context.Context, authorization string) Result {
	const op = "auth.Gate.Resolve"

	tokenStr, ok := BearerToken(authorization)
	if !ok {
		return Result{Outcome: Anonymous, Reason: shared.ErrTokenMissing}
	}

	claims, err := g.tokens.ParseToken(tokenStr)
	if err != nil {
		return Result{Outcome: Rejected, Reason: err}
	}
	accountID, err := claims.AccountID()
	if err != nil {
		return Result{Outcome: Rejected, Reason: err}
	}

	account, err := g.accounts.FindAccountByID(ctx, accountID)
	if err != nil {
		return Result{Outcome: Rejected, Reason: fmt.Errorf("%s: %w", op, err)}
	}
	if account == nil {
		return Result{Outcome: Rejected, Reason: shared.ErrAccountNotFound}
	}
	if !account.IsActive {
		return Result{Outcome: Rejected, Reason: shared.ErrAccountDisabled}
	}
	return Result{Outcome: Authenticated, Account: account}
}

// BearerToken извлекает токен из заголовка вида "Bearer <token>".
// Схема сравнивается без учета регистра.
func BearerToken(authorization string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorization), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

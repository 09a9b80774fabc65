// Package middlewarectx содержит HTTP middleware аутентификации.
//
// RequireAuth пропускает запрос только с действительным токеном активного аккаунта,
// OptionalAuth пропускает любой запрос и добавляет аккаунт в контекст, если токен
// действителен. Оба режима используют одну функцию проверки auth.Gate.Resolve.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/weather-blog/internal/http/response"
	"github.com/magabrotheeeer/weather-blog/internal/lib/sl"
	"github.com/magabrotheeeer/weather-blog/internal/models"
	"github.com/magabrotheeeer/weather-blog/internal/services/auth"
	"github.com/magabrotheeeer/weather-blog/internal/shared"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// AccountKey ключ аутентифицированного аккаунта в контексте.
const AccountKey Key = "account"

// WithAccount возвращает контекст с аккаунтом.
func WithAccount(ctx context.Context, account *models.Account) context.Context {
	return context.WithValue(ctx, AccountKey, account)
}

// AccountFrom возвращает аккаунт из контекста или nil для анонимного запроса.
func AccountFrom(ctx context.Context) *models.Account {
	account, _ := ctx.Value(AccountKey).(*models.Account)
	return account
}

// RequireAuth возвращает middleware, отклоняющий запросы без действительного токена.
//
// Отсутствующий заголовок дает 401, недействительный или просроченный токен 403,
// удаленный или отключенный аккаунт 401, сбой хранилища 500.
func RequireAuth(gate Resolver, log *slog.Logger, obs Observer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequireAuth"

			res := gate.Resolve(r.Context(), r.Header.Get("Authorization"))
			observe(obs, res)

			if res.Outcome != auth.Authenticated {
				log.With(
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				).Warn("request rejected", slog.String("outcome", res.Outcome.String()), sl.Err(res.Reason))
				response.Fail(w, r, res.Reason)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithAccount(r.Context(), res.Account)))
		})
	}
}

// OptionalAuth возвращает middleware, который никогда не отклоняет запрос.
// При действительном токене аккаунт добавляется в контекст.
func OptionalAuth(gate Resolver, log *slog.Logger, obs Observer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.OptionalAuth"

			res := gate.Resolve(r.Context(), r.Header.Get("Authorization"))
			observe(obs, res)

			if res.Outcome == auth.Authenticated {
				r = r.WithContext(WithAccount(r.Context(), res.Account))
			} else if res.Outcome == auth.Rejected {
				log.With(
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				).Debug("continuing anonymously", sl.Err(res.Reason))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func observe(obs Observer, res auth.Result) {
	if obs == nil {
		return
	}
	obs.ObserveGate(res.Outcome.String(), reasonLabel(res.Reason))
}

func reasonLabel(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, shared.ErrTokenMissing):
		return "token_missing"
	case errors.Is(err, shared.ErrTokenMalformed):
		return "token_malformed"
	case errors.Is(err, shared.ErrTokenSignature):
		return "token_signature"
	case errors.Is(err, shared.ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, shared.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, shared.ErrAccountDisabled):
		return "account_disabled"
	default:
		return "storage"
	}
}

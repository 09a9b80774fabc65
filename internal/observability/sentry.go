// Package observability подключает Sentry для учета паник в HTTP-обработчиках.
package observability

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/weather-blog/internal/http/response"
)

// InitSentry инициализирует клиент Sentry. Пустой dsn отключает отправку.
func InitSentry(dsn, environment string) error {
	if dsn == "" {
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		AttachStacktrace: true,
	}); err != nil {
		return fmt.Errorf("observability.InitSentry: %w", err)
	}
	return nil
}

// FlushSentry дожидается отправки накопленных событий.
func FlushSentry() {
	sentry.Flush(2 * time.Second)
}

// CaptureError отправляет ошибку в Sentry. Без инициализации ничего не делает.
func CaptureError(err error) {
	if err == nil {
		return
	}
	sentry.CaptureException(err)
}

// Recoverer перехватывает панику обработчика, отправляет ее в Sentry
// и отвечает 500 в стандартном конверте.
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				reqID := middleware.GetReqID(r.Context())
				sentry.WithScope(func(scope *sentry.Scope) {
					scope.SetTag("request_id", reqID)
					scope.SetExtra("path", r.URL.Path)
					scope.SetExtra("stack", string(debug.Stack()))
					sentry.CurrentHub().Recover(rec)
				})

				log.Error("panic recovered",
					slog.String("request_id", reqID),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("panic", rec),
				)

				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(response.MsgInternal))
			}()

			next.ServeHTTP(w, r)
		})
	}
}

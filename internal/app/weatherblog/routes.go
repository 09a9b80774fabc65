// Package weatherblog собирает HTTP-маршруты и зависимости приложения.
package weatherblog

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/weather-blog/internal/http/handlers/accounts/status"
	"github.com/magabrotheeeer/weather-blog/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/weather-blog/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/weather-blog/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/weather-blog/internal/http/handlers/auth/password"
	"github.com/magabrotheeeer/weather-blog/internal/http/handlers/auth/profile"
	"github.com/magabrotheeeer/weather-blog/internal/http/handlers/auth/register"
	commentcreate "github.com/magabrotheeeer/weather-blog/internal/http/handlers/comments/create"
	commentlist "github.com/magabrotheeeer/weather-blog/internal/http/handlers/comments/list"
	commentremove "github.com/magabrotheeeer/weather-blog/internal/http/handlers/comments/remove"
	commentupdate "github.com/magabrotheeeer/weather-blog/internal/http/handlers/comments/update"
	"github.com/magabrotheeeer/weather-blog/internal/http/handlers/health"
	"github.com/magabrotheeeer/weather-blog/internal/http/handlers/posts/adminlist"
	postcreate "github.com/magabrotheeeer/weather-blog/internal/http/handlers/posts/create"
	postlist "github.com/magabrotheeeer/weather-blog/internal/http/handlers/posts/list"
	postread "github.com/magabrotheeeer/weather-blog/internal/http/handlers/posts/read"
	postremove "github.com/magabrotheeeer/weather-blog/internal/http/handlers/posts/remove"
	postupdate "github.com/magabrotheeeer/weather-blog/internal/http/handlers/posts/update"
	"github.com/magabrotheeeer/weather-blog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/weather-blog/internal/metrics"
	"github.com/magabrotheeeer/weather-blog/internal/observability"
	authservice "github.com/magabrotheeeer/weather-blog/internal/services/auth"
	blogservice "github.com/magabrotheeeer/weather-blog/internal/services/blog"
)

// Deps зависимости маршрутов.
type Deps struct {
	Auth     *authservice.Service
	Blog     *blogservice.Service
	Gate     *authservice.Gate
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	DB       health.Pinger
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, d Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		observability.Recoverer(logger),
		d.Metrics.Middleware,
	)

	requireAuth := middlewarectx.RequireAuth(d.Gate, logger, d.Metrics)
	optionalAuth := middlewarectx.OptionalAuth(d.Gate, logger, d.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", register.New(logger, d.Auth).ServeHTTP)
			r.Post("/login", login.New(logger, d.Auth).ServeHTTP)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/me", me.New().ServeHTTP)
				r.Put("/change-password", password.New(logger, d.Auth).ServeHTTP)
				r.Put("/profile", profile.New(logger, d.Auth).ServeHTTP)
				r.Post("/logout", logout.New(logger).ServeHTTP)
			})
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", postlist.New(logger, d.Blog).ServeHTTP)
			r.Get("/{id}/comments", commentlist.New(logger, d.Blog).ServeHTTP)

			// Токен необязателен: администратор видит неопубликованные посты
			r.With(optionalAuth).Get("/{id}", postread.New(logger, d.Blog).ServeHTTP)

			// Группа с JWT аутентификацией
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/admin", adminlist.New(logger, d.Blog).ServeHTTP)
				r.Post("/", postcreate.New(logger, d.Blog).ServeHTTP)
				r.Put("/{id}", postupdate.New(logger, d.Blog).ServeHTTP)
				r.Delete("/{id}", postremove.New(logger, d.Blog).ServeHTTP)
				r.Post("/{id}/comments", commentcreate.New(logger, d.Blog).ServeHTTP)
				r.Put("/{id}/comments/{commentID}", commentupdate.New(logger, d.Blog).ServeHTTP)
				r.Delete("/{id}/comments/{commentID}", commentremove.New(logger, d.Blog).ServeHTTP)
			})
		})

		r.With(requireAuth).Patch("/accounts/{id}/status", status.New(logger, d.Auth).ServeHTTP)
	})

	r.Get("/health", health.New(logger, d.DB).ServeHTTP)
	r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

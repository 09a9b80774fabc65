// Package main Weather Blog API
//
// @title           Weather Blog API
// @version         1.0
// @description     API блога о погоде: аккаунты, посты и комментарии
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	_ "github.com/magabrotheeeer/weather-blog/docs"
	"github.com/magabrotheeeer/weather-blog/internal/app/weatherblog"
	"github.com/magabrotheeeer/weather-blog/internal/config"
	"github.com/magabrotheeeer/weather-blog/internal/lib/sl"
	"github.com/magabrotheeeer/weather-blog/internal/observability"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run запускает сервис. os.Exit вызывается только в main, после отложенных вызовов run.
func run() error {
	// .env необязателен, переменные окружения имеют приоритет
	_ = godotenv.Load()

	cfg := config.MustLoad()
	logger := sl.New(cfg.Env, os.Stdout)

	logger.Info("starting weather-blog", slog.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	if err := observability.InitSentry(cfg.SentryDSN, cfg.Env); err != nil {
		logger.Error("failed to init sentry", sl.Err(err))
	}
	defer observability.FlushSentry()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := weatherblog.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", sl.Err(err))
		observability.CaptureError(err)
		return err
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("app stopped with error", sl.Err(err))
		observability.CaptureError(err)
		return err
	}

	logger.Info("weather-blog stopped gracefully")
	return nil
}

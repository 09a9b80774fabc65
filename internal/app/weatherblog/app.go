package weatherblog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/weather-blog/internal/cache"
	"github.com/magabrotheeeer/weather-blog/internal/config"
	grpcserver "github.com/magabrotheeeer/weather-blog/internal/grpc/server"
	"github.com/magabrotheeeer/weather-blog/internal/lib/jwt"
	"github.com/magabrotheeeer/weather-blog/internal/lib/password"
	"github.com/magabrotheeeer/weather-blog/internal/lib/sl"
	"github.com/magabrotheeeer/weather-blog/internal/metrics"
	"github.com/magabrotheeeer/weather-blog/internal/migrations"
	"github.com/magabrotheeeer/weather-blog/internal/rabbitmq"
	authservice "github.com/magabrotheeeer/weather-blog/internal/services/auth"
	blogservice "github.com/magabrotheeeer/weather-blog/internal/services/blog"
	"github.com/magabrotheeeer/weather-blog/internal/storage"
)

const (
	shutdownTimeout     = 15 * time.Second
	healthCheckInterval = 5 * time.Second
	rabbitRetries       = 5
	rabbitRetryDelay    = 2 * time.Second
)

// App приложение: HTTP API, gRPC health и их зависимости.
type App struct {
	server    *http.Server
	health    *grpcserver.HealthServer
	healthLis net.Listener
	logger    *slog.Logger
	db        *storage.Storage
	cache     *cache.Cache
	amqpConn  *amqp.Connection
	amqpCh    *amqp.Channel
}

// New подключает хранилище, применяет миграции, поднимает необязательные
// Redis и RabbitMQ и собирает маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "weatherblog.New"

	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	app := &App{logger: logger, db: db}

	if err = migrations.Run(db.DB, cfg.MigrationsPath, logger); err != nil {
		app.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tokens, err := jwt.NewJWTMaker(cfg.JWTSecretKey, jwt.TokenTTL)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Кэш необязателен: без адреса Redis посты читаются только из базы.
	var postCache blogservice.Cache
	if cfg.AddressRedis != "" {
		app.cache, err = cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		postCache = app.cache
	} else {
		logger.Info("redis address is empty, post cache disabled")
	}

	var events blogservice.Publisher = rabbitmq.NoopPublisher{}
	if cfg.RabbitMQ.URL != "" {
		app.amqpConn, err = rabbitmq.Connect(cfg.RabbitMQ.URL, rabbitRetries, rabbitRetryDelay)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		app.amqpCh, err = rabbitmq.SetupChannel(app.amqpConn, cfg.Exchange)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		events = rabbitmq.NewPublisher(app.amqpCh, cfg.Exchange)
	} else {
		logger.Info("rabbitmq url is empty, blog events disabled")
	}
	events = rabbitmq.NewObservedPublisher(events, m)

	authService := authservice.NewService(db, password.New(password.DefaultCost), tokens)
	if cfg.Admin.Enabled() {
		created, err := authService.EnsureAdmin(ctx, authservice.RegisterInput{
			Username: cfg.Admin.Username,
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
		})
		if err != nil {
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if created {
			logger.Info("admin account created", slog.String("username", cfg.Admin.Username))
		}
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, Deps{
		Auth:     authService,
		Blog:     blogservice.NewService(db, postCache, events, logger),
		Gate:     authservice.NewGate(tokens, db),
		Metrics:  m,
		Gatherer: reg,
		DB:       db,
	})

	app.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	if cfg.GRPCHealthAddress != "" {
		app.healthLis, err = net.Listen("tcp", cfg.GRPCHealthAddress)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		app.health = grpcserver.NewHealthServer(db, healthCheckInterval, logger)
	}

	return app, nil
}

// Run обслуживает запросы до отмены ctx, затем корректно останавливается.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	if a.health != nil {
		go a.health.Watch(ctx)
		go func() {
			if err := a.health.Serve(a.healthLis); err != nil {
				errCh <- err
			}
		}()
	}

	var runErr error
	select {
	case runErr = <-errCh:
	case <-ctx.Done():
	}

	timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	a.logger.Info("shutting down HTTP server gracefully")
	if err := a.server.Shutdown(timeoutCtx); err != nil {
		a.logger.Error("http shutdown failed", sl.Err(err))
		runErr = errors.Join(runErr, err)
	}
	if a.health != nil {
		a.health.Stop()
	}
	a.close()
	return runErr
}

func (a *App) close() {
	if a.amqpCh != nil {
		_ = a.amqpCh.Close()
	}
	if a.amqpConn != nil {
		_ = a.amqpConn.Close()
	}
	if a.cache != nil {
		_ = a.cache.Close()
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close storage", sl.Err(err))
	}
}

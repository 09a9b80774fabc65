// Package server реализует gRPC-сервер здоровья сервиса.
//
// HealthServer публикует стандартный grpc.health.v1 и периодически
// проверяет базу данных, переключая статус между SERVING и NOT_SERVING.
package server

import (
	"context"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/magabrotheeeer/weather-blog/internal/lib/sl"
)

// ServiceName имя сервиса в протоколе health.
const ServiceName = "weatherblog"

// Pinger проверяет доступность базы данных.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthServer gRPC-сервер со службой health.
type HealthServer struct {
	grpc     *grpc.Server
	health   *health.Server
	db       Pinger
	log      *slog.Logger
	interval time.Duration
}

// NewHealthServer создает сервер. interval задает период проверки базы.
func NewHealthServer(db Pinger, interval time.Duration, log *slog.Logger) *HealthServer {
	s := &HealthServer{
		grpc:     grpc.NewServer(),
		health:   health.NewServer(),
		db:       db,
		log:      log,
		interval: interval,
	}
	healthpb.RegisterHealthServer(s.grpc, s.health)
	s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return s
}

// Check один раз проверяет базу и обновляет статус.
func (s *HealthServer) Check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		s.log.Warn("database ping failed", slog.String("op", "grpc.HealthServer.Check"), sl.Err(err))
		s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	s.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// Watch проверяет базу каждые interval до отмены ctx.
func (s *HealthServer) Watch(ctx context.Context) {
	s.Check(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Check(ctx)
		}
	}
}

// Serve принимает соединения на lis до остановки сервера.
func (s *HealthServer) Serve(lis net.Listener) error {
	s.log.Info("gRPC health server starting", slog.String("address", lis.Addr().String()))
	return s.grpc.Serve(lis)
}

// Stop переводит статус в NOT_SERVING и корректно останавливает сервер.
func (s *HealthServer) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}

func (s *HealthServer) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

package grpchealth

import (
	"context"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"orders/pkg/logger"
)

// ServiceName имя сервиса в grpc.health.v1, пустое имя отвечает за весь сервер.
const ServiceName = "orders"

const (
	KeepaliveTime    = 5 * time.Minute
	KeepaliveTimeout = 3 * time.Second

	probeInterval = 5 * time.Second
	probeTimeout  = time.Second
)

// Server gRPC сервер только с grpc.health.v1. Статус обновляется фоновой задачей по пингу базы.
type Server struct {
	log      logger.Logger
	db       pinger
	grpc     *grpc.Server
	health   *health.Server
	interval time.Duration
}

func New(log logger.Logger, db pinger) *Server {
	grpcServer := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    KeepaliveTime,
			Timeout: KeepaliveTimeout,
		}),
	)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Server{
		log: log.With(
			logger.NewField("component", "grpc-health"),
		),
		db:       db,
		grpc:     grpcServer,
		health:   healthServer,
		interval: probeInterval,
	}
}

// Serve блокируется до Shutdown или ошибки листенера.
func (s *Server) Serve(lis net.Listener) error {
	s.log.Info("grpc health server starting",
		logger.NewField("addr", lis.Addr().String()),
	)
	if err := s.grpc.Serve(lis); err != nil && err != grpc.ErrServerStopped {
		return fmt.Errorf("grpc health serve: %w", err)
	}
	return nil
}

// Shutdown переводит все сервисы в NOT_SERVING и дожидается активных вызовов.
func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}

func (s *Server) TTL() time.Duration {
	return s.interval
}

func (s *Server) Info() string {
	return "grpc health probe"
}

// Do недоступная база не ошибка задачи, а смена статуса.
func (s *Server) Do(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := s.db.Ping(ctx); err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		s.log.Warn("database ping failed",
			logger.NewField("error", err),
		)
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
	return nil
}

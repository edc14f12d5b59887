// Package grpc предоставляет gRPC сервер проверки состояния сервиса заметок.
package grpc

import (
	"context"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"notely/internal/gateway/config"
	"notely/pkg/logger"
)

// Константы для логирования.
const (
	LogServerStarting = "Starting gRPC server"
	LogServerStarted  = "gRPC server started"
	LogServerStopping = "Stopping gRPC server"
	LogServerStopped  = "gRPC server stopped"
	ErrServerStart    = "failed to start gRPC server"
	ErrServerServe    = "gRPC server stopped serving"
)

// ServiceName - имя сервиса в протоколе grpc.health.v1.
const ServiceName = "notely"

// Server представляет gRPC сервер.
type Server struct {
	cfg      *config.GRPCServerConfig
	server   *grpc.Server
	health   *health.Server
	listener net.Listener
}

// New создает новый экземпляр gRPC сервера с сервисом health и reflection.
func New(cfg *config.GRPCServerConfig) *Server {
	server := grpc.NewServer()
	healthServer := health.NewServer()

	healthpb.RegisterHealthServer(server, healthServer)
	reflection.Register(server)

	return &Server{
		cfg:    cfg,
		server: server,
		health: healthServer,
	}
}

// Start запускает gRPC сервер и помечает сервис как обслуживающий запросы.
func (s *Server) Start(ctx context.Context) error {
	log := logger.Log(ctx)
	address := s.cfg.GetAddress()

	log.Info(ctx, LogServerStarting, zap.String("address", address))

	listener, err := net.Listen("tcp", address)
	if err != nil {
		log.Error(ctx, ErrServerStart, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrServerStart, err)
	}
	s.listener = listener

	s.SetServing(true)

	go func() {
		if err := s.server.Serve(listener); err != nil {
			log.Error(ctx, ErrServerServe, zap.Error(err))
		}
	}()

	log.Info(ctx, LogServerStarted, zap.String("address", listener.Addr().String()))
	return nil
}

// SetServing переключает статус проверки состояния.
func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Addr возвращает фактический адрес, на котором слушает сервер.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop переводит сервис в NOT_SERVING и останавливает сервер.
func (s *Server) Stop(ctx context.Context) {
	log := logger.Log(ctx)

	log.Info(ctx, LogServerStopping)
	s.health.Shutdown()
	s.server.GracefulStop()
	log.Info(ctx, LogServerStopped)
}

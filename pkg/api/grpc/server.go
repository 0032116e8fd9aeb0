package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Server exposes the standard gRPC health service for orchestrator probes
type Server struct {
	server *grpc.Server
	health *health.Server
	addr   string
	logger *zap.Logger
}

// Config holds gRPC probe server configuration
type Config struct {
	Addr    string
	AppName string
	Logger  *zap.Logger
}

// NewServer creates a probe server reporting SERVING for the overall
// service ("") and for the application name.
func NewServer(cfg *Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	if cfg.AppName != "" {
		healthServer.SetServingStatus(cfg.AppName, healthpb.HealthCheckResponse_SERVING)
	}

	return &Server{
		server: grpcServer,
		health: healthServer,
		addr:   cfg.Addr,
		logger: logger,
	}
}

// Start listens on the configured address and serves until stopped
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}

	return s.Serve(listener)
}

// Serve serves on an existing listener. A server already shut down
// returns nil.
func (s *Server) Serve(listener net.Listener) error {
	s.logger.Info("starting gRPC probe server", zap.String("addr", listener.Addr().String()))

	if err := s.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("failed to serve gRPC: %w", err)
	}

	return nil
}

// Shutdown reports NOT_SERVING to watchers, then stops gracefully.
// If ctx expires first the server is stopped hard.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down gRPC probe server")

	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.server.Stop()
		return fmt.Errorf("failed to shutdown gRPC server: %w", ctx.Err())
	}

	s.logger.Info("gRPC probe server shut down complete")
	return nil
}

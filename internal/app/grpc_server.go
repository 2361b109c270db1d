package app

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

// ReferralServiceName - имя сервиса в ответах grpc.health.v1.Health
const ReferralServiceName = "referrals.v1.Referrals"

// grpcServer отдает только стандартный health-сервис
type grpcServer struct {
	server *grpc.Server
	health *health.Server
	logger *zap.Logger
}

func newGRPCServer(logger *zap.Logger) *grpcServer {
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ReferralServiceName, healthpb.HealthCheckResponse_SERVING)

	server := grpc.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)

	return &grpcServer{
		server: server,
		health: healthServer,
		logger: logger,
	}
}

// ListenAndServe блокируется до Stop
func (s *grpcServer) ListenAndServe(address string) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	return s.Serve(listener)
}

func (s *grpcServer) Serve(listener net.Listener) error {
	s.logger.Info("Starting gRPC health server", zap.String("address", listener.Addr().String()))

	if err := s.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc server failed: %w", err)
	}
	return nil
}

// Stop переводит сервисы в NOT_SERVING и дожидается текущих вызовов,
// но не дольше ctx
func (s *grpcServer) Stop(ctx context.Context) {
	s.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		s.logger.Warn("gRPC graceful stop timed out, forcing")
		s.server.Stop()
	}
}

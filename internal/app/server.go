package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const readHeaderTimeout = 5 * time.Second

// Serve запускает HTTP сервер (и gRPC health, если задан адрес) и
// останавливает их после отмены ctx в пределах SHUTDOWN_TIMEOUT
func (a *App) Serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", a.config.ServerAddress.String())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.config.ServerAddress, err)
	}

	return a.serve(ctx, listener)
}

func (a *App) serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           a.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	var health *grpcServer
	if a.config.GRPCAddress != "" {
		health = newGRPCServer(a.logger)
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		a.logger.Info("Starting server", zap.String("address", listener.Addr().String()))
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	if health != nil {
		group.Go(func() error {
			return health.ListenAndServe(a.config.GRPCAddress)
		})
	}

	group.Go(func() error {
		<-groupCtx.Done()
		a.logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
		defer cancel()

		if health != nil {
			health.Stop(shutdownCtx)
		}

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown http server: %w", err)
		}
		return nil
	})

	return group.Wait()
}

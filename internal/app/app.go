package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"

	"github.com/MikhailRaia/link-shortener/internal/config"
	"github.com/MikhailRaia/link-shortener/internal/handler"
	"github.com/MikhailRaia/link-shortener/internal/service"
	"github.com/MikhailRaia/link-shortener/internal/storage"
	"github.com/MikhailRaia/link-shortener/internal/storage/file"
	"github.com/MikhailRaia/link-shortener/internal/storage/memory"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config     *config.Config
	handler    http.Handler
	grpcServer *grpc.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	store, err := newStore(cfg.FileStoragePath)
	if err != nil {
		return nil, err
	}

	linkService := service.NewLinkService(store)

	httpHandler := handler.NewHandler(linkService, cfg.StaticDir)

	a := &App{
		config:  cfg,
		handler: httpHandler.RegisterRoutes(),
	}

	if cfg.GRPCAddress != "" {
		a.grpcServer = handler.NewGRPCServer(linkService)
	}

	return a, nil
}

func newStore(path string) (storage.LinkStore, error) {
	if path == "" {
		log.Info().Msg("Using in-memory link storage")
		return memory.NewStorage(), nil
	}

	store, err := file.NewStorage(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file storage: %w", err)
	}

	log.Info().Str("path", path).Msg("Using file link storage")
	return store, nil
}

// Run serves HTTP (and gRPC when configured) until ctx is cancelled or a server fails.
func (a *App) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:         a.config.ServerAddress,
		Handler:      a.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		log.Info().Str("address", a.config.ServerAddress).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	if a.grpcServer != nil {
		lis, err := net.Listen("tcp", a.config.GRPCAddress)
		if err != nil {
			server.Close()
			return fmt.Errorf("failed to listen for gRPC: %w", err)
		}

		go func() {
			log.Info().Str("address", a.config.GRPCAddress).Msg("Starting gRPC server")
			if err := a.grpcServer.Serve(lis); err != nil {
				errCh <- fmt.Errorf("grpc server: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down")
	case runErr = <-errCh:
		log.Error().Err(runErr).Msg("Server failed, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if a.grpcServer != nil {
		a.grpcServer.GracefulStop()
	}

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Join(runErr, fmt.Errorf("http shutdown: %w", err))
	}

	return runErr
}

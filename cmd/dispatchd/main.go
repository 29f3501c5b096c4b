// TinyIM dispatch front-end: HTTP entry for register, login, logout and
// gateway discovery.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ashureev/tinyim/internal/config"
	"github.com/ashureev/tinyim/internal/directory"
	"github.com/ashureev/tinyim/internal/dispatch"
	"github.com/ashureev/tinyim/internal/kv"
	"github.com/ashureev/tinyim/internal/middleware"
	"github.com/ashureev/tinyim/internal/rpcpool"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting dispatch", "port", cfg.DispatchPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kvc, err := kv.New(ctx, cfg.Redis)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := kvc.Close(); closeErr != nil {
			slog.Error("Failed to close Redis client", "error", closeErr)
		}
	}()

	pool := rpcpool.New()
	defer pool.Close()

	dir := directory.New(kvc, cfg.Directory)
	dir.Observe(directory.ServiceGateway)
	dir.Start(ctx)

	handler := dispatch.NewHandler(dispatch.NewDirectoryAuths(dir, pool), dir, kvc, cfg.Timeout.Backend)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(middleware.CORS([]string{"*"}))
	handler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:         ":" + cfg.DispatchPort,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Dispatch listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Dispatch server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Dispatch stopped")
}

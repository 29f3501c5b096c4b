// TinyIM gateway node: WebSocket session plane plus push endpoint.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ashureev/tinyim/internal/config"
	"github.com/ashureev/tinyim/internal/directory"
	"github.com/ashureev/tinyim/internal/gateway"
	"github.com/ashureev/tinyim/internal/kv"
	"github.com/ashureev/tinyim/internal/proto/im"
	"github.com/ashureev/tinyim/internal/rpcpool"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
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

	slog.Info("Starting gateway", "ws_addr", cfg.WSAddr(), "push_addr", cfg.PushAddr())

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
	registry := gateway.NewRegistry()
	backends := gateway.NewDirectoryBackends(dir, pool)
	dispatcher := gateway.NewDispatcher(backends, cfg.Timeout.Backend)
	wsHandler := gateway.NewWSHandler(kvc, kvc, registry, dispatcher, cfg.Gateway, cfg.PushAddr())

	dir.Start(ctx)
	if err := dir.Register(ctx, directory.ServiceGateway, cfg.WSAddr()); err != nil {
		slog.Error("Failed to register gateway", "error", err)
		os.Exit(1)
	}
	if err := dir.Register(ctx, directory.ServicePush, cfg.PushAddr()); err != nil {
		slog.Error("Failed to register push endpoint", "error", err)
		os.Exit(1)
	}

	// Kick subscriber: the authoritative publish happens in auth login;
	// the local action is always a registry kick.
	go func() {
		err := kvc.SubscribeKick(ctx, func(userID int64, device string) {
			registry.KickUser(userID, device, "logged in elsewhere")
		})
		if err != nil && ctx.Err() == nil {
			slog.Error("Kick subscriber stopped", "error", err)
		}
	}()

	gateway.StartLocationRefresher(ctx, registry, kvc, cfg.Gateway.LocationRefresh, cfg.Gateway.LocationTTL)

	// Push endpoint gRPC server.
	grpcServer := grpc.NewServer()
	im.RegisterGatewayServiceServer(grpcServer, gateway.NewPushServer(registry))

	pushLis, err := net.Listen("tcp", ":"+cfg.Gateway.PushPort)
	if err != nil {
		slog.Error("Failed to listen on push port", "port", cfg.Gateway.PushPort, "error", err)
		os.Exit(1)
	}
	go func() {
		slog.Info("Push endpoint listening", "addr", pushLis.Addr().String())
		if err := grpcServer.Serve(pushLis); err != nil {
			slog.Error("Push endpoint failed", "error", err)
			os.Exit(1)
		}
	}()

	// WebSocket HTTP server.
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Get("/ws", wsHandler.ServeHTTP)

	srv := &http.Server{
		Addr:        ":" + cfg.Gateway.WSPort,
		Handler:     r,
		ReadTimeout: 0, // sessions manage their own idle timeout
		IdleTimeout: 120 * time.Second,
	}

	go func() {
		slog.Info("Gateway listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Gateway server failed", "error", err)
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
	}
	grpcServer.GracefulStop()

	slog.Info("Gateway stopped")
}

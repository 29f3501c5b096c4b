// TinyIM user service: auth and relation services in one process.
package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/ashureev/tinyim/internal/auth"
	"github.com/ashureev/tinyim/internal/config"
	"github.com/ashureev/tinyim/internal/directory"
	"github.com/ashureev/tinyim/internal/kv"
	"github.com/ashureev/tinyim/internal/proto/im"
	"github.com/ashureev/tinyim/internal/relation"
	"github.com/ashureev/tinyim/internal/rpcpool"
	"github.com/ashureev/tinyim/internal/store"
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

	slog.Info("Starting user service", "port", cfg.UserPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := store.NewMySQL(cfg.MySQL.WriteDSN, cfg.MySQL.ReadDSNs, store.Options{
		MaxOpenConns: cfg.MySQL.MaxOpenConns,
		MaxIdleConns: cfg.MySQL.MaxIdleConns,
		InitSchema:   cfg.MySQL.InitSchema,
	})
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(ctx); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

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
	dir.Start(ctx)

	authService := auth.NewService(repo, kvc, cfg.Auth.TokenSecret, cfg.Auth.SessionTTL)
	relationService := relation.NewService(repo, relation.NewDirectoryChats(dir, pool), cfg.Timeout.Backend)

	grpcServer := grpc.NewServer()
	im.RegisterAuthServiceServer(grpcServer, authService)
	im.RegisterRelationServiceServer(grpcServer, relationService)

	lis, err := net.Listen("tcp", ":"+cfg.UserPort)
	if err != nil {
		slog.Error("Failed to listen", "port", cfg.UserPort, "error", err)
		os.Exit(1)
	}

	addr := cfg.PublicHost + ":" + cfg.UserPort
	if err := dir.Register(ctx, directory.ServiceAuth, addr); err != nil {
		slog.Error("Failed to register auth service", "error", err)
		os.Exit(1)
	}
	if err := dir.Register(ctx, directory.ServiceRelation, addr); err != nil {
		slog.Error("Failed to register relation service", "error", err)
		os.Exit(1)
	}

	go func() {
		slog.Info("User service listening", "addr", lis.Addr().String())
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("User service failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")
	grpcServer.GracefulStop()
	slog.Info("User service stopped")
}

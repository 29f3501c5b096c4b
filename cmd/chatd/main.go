// TinyIM chat service: message timeline writes, sync and online push.
package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/ashureev/tinyim/internal/chat"
	"github.com/ashureev/tinyim/internal/config"
	"github.com/ashureev/tinyim/internal/directory"
	"github.com/ashureev/tinyim/internal/kv"
	"github.com/ashureev/tinyim/internal/proto/im"
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

	slog.Info("Starting chat service", "port", cfg.ChatPort)

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

	service := chat.NewService(repo, kvc, chat.NewPoolGateways(pool), cfg.Timeout.Push)

	grpcServer := grpc.NewServer()
	im.RegisterChatServiceServer(grpcServer, service)

	lis, err := net.Listen("tcp", ":"+cfg.ChatPort)
	if err != nil {
		slog.Error("Failed to listen", "port", cfg.ChatPort, "error", err)
		os.Exit(1)
	}

	dir := directory.New(kvc, cfg.Directory)
	dir.Start(ctx)
	addr := cfg.PublicHost + ":" + cfg.ChatPort
	if err := dir.Register(ctx, directory.ServiceChat, addr); err != nil {
		slog.Error("Failed to register chat service", "error", err)
		os.Exit(1)
	}

	go func() {
		slog.Info("Chat service listening", "addr", lis.Addr().String())
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("Chat service failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")
	grpcServer.GracefulStop()
	slog.Info("Chat service stopped")
}

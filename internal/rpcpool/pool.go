// Package rpcpool memoizes one long-lived gRPC client channel per peer
// address. Channels are created lazily, reconnect internally, and are
// never closed until process exit.
package rpcpool

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

// Pool is safe for concurrent use. The lock is never held across network
// I/O: grpc.NewClient does not dial.
type Pool struct {
	mu    sync.Mutex
	conns map[string]*grpc.ClientConn
}

// New creates an empty pool.
func New() *Pool {
	return &Pool{conns: make(map[string]*grpc.ClientConn)}
}

// Get returns the channel for addr, creating it on first use.
func (p *Pool) Get(addr string) (*grpc.ClientConn, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if conn, ok := p.conns[addr]; ok {
		return conn, nil
	}

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:    2 * time.Minute,
			Timeout: 10 * time.Second,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create channel to %s: %w", addr, err)
	}
	p.conns[addr] = conn
	slog.Info("Created gRPC channel", "addr", addr)
	return conn, nil
}

// Close closes every channel. Only called at process exit.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for addr, conn := range p.conns {
		if err := conn.Close(); err != nil {
			slog.Debug("Failed to close gRPC channel", "addr", addr, "error", err)
		}
	}
	p.conns = make(map[string]*grpc.ClientConn)
}

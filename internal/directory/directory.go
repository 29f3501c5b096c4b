// Package directory implements heartbeat self-registration and polled,
// cached discovery of service instances.
//
// Registration writes service:{name}:{addr} with a short TTL and refreshes
// it on an interval well below the TTL; a crashed owner simply expires.
// Discovery is cache-first: callers Observe a service name once, a
// background poller replaces the cached address list on an interval, and
// Discover round-robins over the cache. A just-registered instance may
// take up to one poll interval to become visible and a dead one may
// linger for up to one interval; callers tolerate a single failed RPC and
// re-resolve.
package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ashureev/tinyim/internal/config"
)

// ErrNoInstances is returned by Discover when no live instance is known.
var ErrNoInstances = errors.New("directory: no live instances")

// Store is the key-value backend for service records.
type Store interface {
	SetServiceRecord(ctx context.Context, name, addr string, ttl time.Duration) error
	DeleteServiceRecord(ctx context.Context, name, addr string) error
	ServiceAddrs(ctx context.Context, name string) ([]string, error)
}

// Directory is one process's view of the service registry.
type Directory struct {
	store Store
	cfg   config.DirectoryConfig

	mu       sync.Mutex
	observed map[string]struct{}
	cache    map[string][]string
	rr       map[string]int
}

// New creates a Directory; Start launches its poller.
func New(store Store, cfg config.DirectoryConfig) *Directory {
	return &Directory{
		store:    store,
		cfg:      cfg,
		observed: make(map[string]struct{}),
		cache:    make(map[string][]string),
		rr:       make(map[string]int),
	}
}

// Register announces (name, addr) and keeps the record alive with a
// heartbeat until ctx is cancelled, then removes it eagerly. Heartbeat
// failures are logged and retried on the next tick.
func (d *Directory) Register(ctx context.Context, name, addr string) error {
	if err := d.store.SetServiceRecord(ctx, name, addr, d.cfg.ServiceTTL); err != nil {
		return fmt.Errorf("register %s at %s: %w", name, addr, err)
	}
	slog.Info("Service registered", "service", name, "addr", addr)

	go func() {
		ticker := time.NewTicker(d.cfg.HeartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				// Best-effort removal; TTL expiry is the backstop.
				cleanupCtx, cancel := context.WithTimeout(context.Background(), time.Second)
				if err := d.store.DeleteServiceRecord(cleanupCtx, name, addr); err != nil {
					slog.Warn("Service deregister failed", "service", name, "addr", addr, "error", err)
				}
				cancel()
				return
			case <-ticker.C:
				if err := d.store.SetServiceRecord(ctx, name, addr, d.cfg.ServiceTTL); err != nil && ctx.Err() == nil {
					slog.Warn("Service heartbeat failed", "service", name, "addr", addr, "error", err)
				}
			}
		}
	}()
	return nil
}

// Observe marks a service name for background cache refresh.
func (d *Directory) Observe(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.observed[name]; ok {
		return
	}
	d.observed[name] = struct{}{}
	slog.Info("Observing service", "service", name)
}

// Start launches the poller; it refreshes every observed service's cache
// until ctx is cancelled. Poll failures are logged and the previous cache
// is kept.
func (d *Directory) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(d.cfg.PollInterval)
		defer ticker.Stop()
		d.refresh(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				d.refresh(ctx)
			}
		}
	}()
}

func (d *Directory) refresh(ctx context.Context) {
	d.mu.Lock()
	names := make([]string, 0, len(d.observed))
	for name := range d.observed {
		names = append(names, name)
	}
	d.mu.Unlock()

	for _, name := range names {
		addrs, err := d.store.ServiceAddrs(ctx, name)
		if err != nil {
			if ctx.Err() == nil {
				slog.Warn("Service cache refresh failed", "service", name, "error", err)
			}
			continue
		}
		d.mu.Lock()
		d.cache[name] = addrs
		d.mu.Unlock()
	}
}

// Discover returns a round-robin pick of a live instance. On cache miss it
// falls back to a one-shot direct enumeration so the first call works
// before the poller has run.
func (d *Directory) Discover(ctx context.Context, name string) (string, error) {
	d.mu.Lock()
	addrs := d.cache[name]
	d.mu.Unlock()

	if len(addrs) == 0 {
		direct, err := d.store.ServiceAddrs(ctx, name)
		if err != nil {
			return "", fmt.Errorf("discover %s: %w", name, err)
		}
		addrs = direct
	}
	if len(addrs) == 0 {
		return "", fmt.Errorf("discover %s: %w", name, ErrNoInstances)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	idx := d.rr[name] % len(addrs)
	d.rr[name] = idx + 1
	return addrs[idx], nil
}

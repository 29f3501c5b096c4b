package directory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ashureev/tinyim/internal/config"
)

type fakeStore struct {
	mu      sync.Mutex
	records map[string][]string // service name -> addrs
	sets    int
	deletes int
	err     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string][]string)}
}

func (f *fakeStore) SetServiceRecord(ctx context.Context, name, addr string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sets++
	for _, a := range f.records[name] {
		if a == addr {
			return nil
		}
	}
	f.records[name] = append(f.records[name], addr)
	return nil
}

func (f *fakeStore) DeleteServiceRecord(ctx context.Context, name, addr string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	addrs := f.records[name][:0]
	for _, a := range f.records[name] {
		if a != addr {
			addrs = append(addrs, a)
		}
	}
	f.records[name] = addrs
	return nil
}

func (f *fakeStore) ServiceAddrs(ctx context.Context, name string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]string(nil), f.records[name]...), nil
}

func testCfg() config.DirectoryConfig {
	return config.DirectoryConfig{
		ServiceTTL:        10 * time.Second,
		HeartbeatInterval: 3 * time.Second,
		PollInterval:      3 * time.Second,
	}
}

func TestDirectory_RegisterWritesRecord(t *testing.T) {
	store := newFakeStore()
	d := New(store, testCfg())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := d.Register(ctx, "chat", "127.0.0.1:50052"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	addrs, _ := store.ServiceAddrs(context.Background(), "chat")
	if len(addrs) != 1 || addrs[0] != "127.0.0.1:50052" {
		t.Errorf("Expected one record, got %v", addrs)
	}
}

func TestDirectory_DiscoverRoundRobin(t *testing.T) {
	store := newFakeStore()
	store.records["chat"] = []string{"a:1", "b:2"}

	d := New(store, testCfg())
	d.Observe("chat")
	d.refresh(context.Background())

	got := []string{}
	for i := 0; i < 4; i++ {
		addr, err := d.Discover(context.Background(), "chat")
		if err != nil {
			t.Fatalf("Discover failed: %v", err)
		}
		got = append(got, addr)
	}

	want := []string{"a:1", "b:2", "a:1", "b:2"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pick %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestDirectory_DiscoverFallsBackOnCacheMiss(t *testing.T) {
	store := newFakeStore()
	store.records["auth"] = []string{"x:9"}

	// No Observe, no poller: the first call still resolves directly.
	d := New(store, testCfg())
	addr, err := d.Discover(context.Background(), "auth")
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if addr != "x:9" {
		t.Errorf("Expected x:9, got %s", addr)
	}
}

func TestDirectory_DiscoverNoInstances(t *testing.T) {
	d := New(newFakeStore(), testCfg())
	if _, err := d.Discover(context.Background(), "ghost"); !errors.Is(err, ErrNoInstances) {
		t.Errorf("Expected ErrNoInstances, got %v", err)
	}
}

func TestDirectory_RefreshReplacesCache(t *testing.T) {
	store := newFakeStore()
	store.records["chat"] = []string{"a:1"}

	d := New(store, testCfg())
	d.Observe("chat")
	d.refresh(context.Background())

	// The instance dies; the next refresh must drop it from the cache.
	store.mu.Lock()
	store.records["chat"] = nil
	store.mu.Unlock()
	d.refresh(context.Background())

	if _, err := d.Discover(context.Background(), "chat"); !errors.Is(err, ErrNoInstances) {
		t.Errorf("Expected ErrNoInstances after expiry, got %v", err)
	}
}

func TestDirectory_RefreshFailureKeepsOldCache(t *testing.T) {
	store := newFakeStore()
	store.records["chat"] = []string{"a:1"}

	d := New(store, testCfg())
	d.Observe("chat")
	d.refresh(context.Background())

	store.mu.Lock()
	store.err = errors.New("redis down")
	store.mu.Unlock()
	d.refresh(context.Background())

	addr, err := d.Discover(context.Background(), "chat")
	if err != nil {
		t.Fatalf("Expected stale cache to serve, got %v", err)
	}
	if addr != "a:1" {
		t.Errorf("Expected a:1, got %s", addr)
	}
}

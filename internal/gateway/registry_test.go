package gateway

import (
	"testing"
	"time"
)

func testSession(r *Registry, userID int64, device string) (*Session, *fakeConn) {
	conn := newFakeConn()
	s := NewSession(SessionConfig{
		UserID:      userID,
		Device:      device,
		Conn:        conn,
		Registry:    r,
		Locations:   &fakeLocations{},
		Dispatcher:  NewDispatcher(&fakeBackends{}, time.Second),
		PushAddr:    "127.0.0.1:50060",
		IdleTimeout: time.Minute,
		LocationTTL: time.Minute,
		QueueSize:   4,
	})
	s.state.Store(stateActive)
	return s, conn
}

func TestRegistry_JoinAndSendToUser(t *testing.T) {
	r := NewRegistry()
	pc, _ := testSession(r, 1, "PC")
	mobile, _ := testSession(r, 1, "Mobile")
	other, _ := testSession(r, 2, "PC")
	r.Join(pc)
	r.Join(mobile)
	r.Join(other)

	if got := r.SendToUser(1, []byte("hello")); got != 2 {
		t.Errorf("Expected delivery to 2 sessions, got %d", got)
	}
	if got := r.SendToUser(99, []byte("hello")); got != 0 {
		t.Errorf("Expected no delivery for unknown user, got %d", got)
	}
}

func TestRegistry_Leave(t *testing.T) {
	r := NewRegistry()
	s, _ := testSession(r, 1, "PC")
	r.Join(s)
	r.Leave(s)

	if got := r.SendToUser(1, []byte("x")); got != 0 {
		t.Errorf("Expected no sessions after leave, got %d", got)
	}

	// Stale leave is a no-op.
	r.Leave(s)
}

func TestRegistry_KickUserDeviceFilter(t *testing.T) {
	r := NewRegistry()
	pc, _ := testSession(r, 1, "PC")
	mobile, _ := testSession(r, 1, "Mobile")
	r.Join(pc)
	r.Join(mobile)

	if got := r.KickUser(1, "PC", "test"); got != 1 {
		t.Errorf("Expected 1 kicked with device filter, got %d", got)
	}
	if pc.state.Load() == stateActive {
		t.Error("Expected PC session to leave ACTIVE on kick")
	}
	if mobile.state.Load() != stateActive {
		t.Error("Expected Mobile session to stay ACTIVE")
	}
}

func TestRegistry_KickUserEmptyFilterMatchesAll(t *testing.T) {
	r := NewRegistry()
	pc, _ := testSession(r, 1, "PC")
	mobile, _ := testSession(r, 1, "Mobile")
	r.Join(pc)
	r.Join(mobile)

	if got := r.KickUser(1, "", "test"); got != 2 {
		t.Errorf("Expected 2 kicked with empty filter, got %d", got)
	}
}

func TestRegistry_ActiveUsers(t *testing.T) {
	r := NewRegistry()
	a, _ := testSession(r, 1, "PC")
	b, _ := testSession(r, 2, "PC")
	r.Join(a)
	r.Join(b)

	users := r.ActiveUsers()
	if len(users) != 2 {
		t.Fatalf("Expected 2 active users, got %d", len(users))
	}
}

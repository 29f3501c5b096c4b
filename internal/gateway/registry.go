package gateway

import (
	"log/slog"
	"sync"
)

// Registry is the process-local mapping user -> live sessions. It holds
// back-references only: sessions remove themselves on exit, so the
// registry never extends a session's lifetime. The lock is released
// before any session method is invoked.
type Registry struct {
	mu    sync.Mutex
	users map[int64]map[*Session]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{users: make(map[int64]map[*Session]struct{})}
}

// Join adds a session under its user.
func (r *Registry) Join(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.users[s.UserID()]
	if !ok {
		set = make(map[*Session]struct{})
		r.users[s.UserID()] = set
	}
	set[s] = struct{}{}
	slog.Info("Registry join", "user_id", s.UserID(), "device", s.Device(), "sessions", len(set))
}

// Leave drops the back-reference. Safe to call for a session that already
// left.
func (r *Registry) Leave(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.users[s.UserID()]
	if !ok {
		return
	}
	if _, ok := set[s]; !ok {
		return
	}
	delete(set, s)
	if len(set) == 0 {
		delete(r.users, s.UserID())
	}
	slog.Info("Registry leave", "user_id", s.UserID(), "device", s.Device())
}

// SendToUser delivers one encoded frame to every device of the user,
// returning the number of sessions it reached.
func (r *Registry) SendToUser(userID int64, packet []byte) int {
	r.mu.Lock()
	sessions := make([]*Session, 0, len(r.users[userID]))
	for s := range r.users[userID] {
		sessions = append(sessions, s)
	}
	r.mu.Unlock()

	delivered := 0
	for _, s := range sessions {
		if err := s.Send(packet); err != nil {
			slog.Warn("Registry send dropped", "user_id", userID, "device", s.Device(), "error", err)
			continue
		}
		delivered++
	}
	return delivered
}

// KickUser kicks every session of the user matching the device filter; an
// empty filter matches all. Returns the number of sessions kicked.
func (r *Registry) KickUser(userID int64, device, reason string) int {
	r.mu.Lock()
	sessions := make([]*Session, 0, len(r.users[userID]))
	for s := range r.users[userID] {
		if device == "" || s.Device() == device {
			sessions = append(sessions, s)
		}
	}
	r.mu.Unlock()

	for _, s := range sessions {
		s.Kick(reason)
		slog.Info("Kicked session", "user_id", userID, "device", s.Device(), "reason", reason)
	}
	return len(sessions)
}

// ActiveUsers returns the users with at least one live session, for the
// location TTL refresher.
func (r *Registry) ActiveUsers() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]int64, 0, len(r.users))
	for uid := range r.users {
		users = append(users, uid)
	}
	return users
}

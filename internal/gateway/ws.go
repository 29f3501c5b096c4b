package gateway

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ashureev/tinyim/internal/config"
	"github.com/coder/websocket"
)

// TokenStore verifies session tokens minted by the auth service.
type TokenStore interface {
	SessionToken(ctx context.Context, userID int64, device string) (string, error)
}

// WSHandler is the front door: it verifies the session token against the
// K-V store, upgrades the connection, and runs a Session for its lifetime.
type WSHandler struct {
	tokens     TokenStore
	locations  LocationStore
	registry   *Registry
	dispatcher *Dispatcher
	cfg        config.GatewayConfig
	pushAddr   string
}

// NewWSHandler creates the /ws handler for this node.
func NewWSHandler(tokens TokenStore, locations LocationStore, registry *Registry, dispatcher *Dispatcher, cfg config.GatewayConfig, pushAddr string) *WSHandler {
	return &WSHandler{
		tokens:     tokens,
		locations:  locations,
		registry:   registry,
		dispatcher: dispatcher,
		cfg:        cfg,
		pushAddr:   pushAddr,
	}
}

// ServeHTTP implements the upgrade endpoint /ws?id=&token=&device=.
// A token/device mismatch is rejected with 401 before the upgrade.
func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID, err := strconv.ParseInt(q.Get("id"), 10, 64)
	if err != nil || userID <= 0 {
		http.Error(w, "missing or invalid id", http.StatusUnauthorized)
		return
	}
	token := q.Get("token")
	device := q.Get("device")
	if device == "" {
		device = "PC"
	}

	authCtx, cancel := context.WithTimeout(r.Context(), h.cfg.HandshakeTimeout)
	stored, err := h.tokens.SessionToken(authCtx, userID, device)
	cancel()
	if err != nil {
		slog.Error("Token lookup failed", "user_id", userID, "device", device, "error", err)
		http.Error(w, "auth unavailable", http.StatusInternalServerError)
		return
	}
	if token == "" || stored != token {
		slog.Warn("WS auth rejected", "user_id", userID, "device", device)
		http.Error(w, "auth failed", http.StatusUnauthorized)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("Failed to accept WebSocket", "user_id", userID, "error", err)
		return
	}

	session := NewSession(SessionConfig{
		UserID:      userID,
		Device:      device,
		Conn:        conn,
		Registry:    h.registry,
		Locations:   h.locations,
		Dispatcher:  h.dispatcher,
		PushAddr:    h.pushAddr,
		IdleTimeout: h.cfg.IdleTimeout,
		LocationTTL: h.cfg.LocationTTL,
		QueueSize:   h.cfg.WriteQueueSize,
	})

	// Run blocks for the session lifetime; cleanup happens inside.
	session.Run(r.Context())
}

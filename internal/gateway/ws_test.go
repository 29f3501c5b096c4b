package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ashureev/tinyim/internal/config"
)

type fakeTokens struct {
	token string
}

func (f *fakeTokens) SessionToken(ctx context.Context, userID int64, device string) (string, error) {
	return f.token, nil
}

func newWSHandler(token string) *WSHandler {
	cfg := config.GatewayConfig{
		HandshakeTimeout: time.Second,
		IdleTimeout:      time.Second,
		LocationTTL:      time.Minute,
		WriteQueueSize:   4,
	}
	return NewWSHandler(&fakeTokens{token: token}, &fakeLocations{}, NewRegistry(),
		NewDispatcher(&fakeBackends{}, time.Second), cfg, "127.0.0.1:50060")
}

func TestWSHandler_RejectsMissingID(t *testing.T) {
	h := newWSHandler("t1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws?token=t1&device=PC", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
}

func TestWSHandler_RejectsTokenMismatch(t *testing.T) {
	h := newWSHandler("stored-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws?id=1&token=forged&device=PC", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
}

func TestWSHandler_RejectsMissingSessionRecord(t *testing.T) {
	// No stored token at all: HGET returns empty.
	h := newWSHandler("")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws?id=1&token=t1&device=PC", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
}

// Package dispatch implements the HTTP entry point: register, login and
// logout fronting the auth service, plus gateway discovery for clients
// about to open their framed channel.
package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ashureev/tinyim/internal/directory"
	"github.com/ashureev/tinyim/internal/proto/im"
	"github.com/go-chi/chi/v5"
)

// Auths resolves a live auth-service client.
type Auths interface {
	Auth(ctx context.Context) (im.AuthServiceClient, error)
}

// Gateways picks a live gateway WebSocket address.
type Gateways interface {
	Discover(ctx context.Context, name string) (string, error)
}

// TokenStore verifies the optional token supplied on logout.
type TokenStore interface {
	SessionToken(ctx context.Context, userID int64, device string) (string, error)
}

// Handler serves the /api routes.
type Handler struct {
	auths    Auths
	gateways Gateways
	tokens   TokenStore
	timeout  time.Duration
}

// NewHandler creates the dispatch handler.
func NewHandler(auths Auths, gateways Gateways, tokens TokenStore, timeout time.Duration) *Handler {
	return &Handler{auths: auths, gateways: gateways, tokens: tokens, timeout: timeout}
}

// RegisterRoutes mounts the API on the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/register", h.handleRegister)
	r.Post("/api/login", h.handleLogin)
	r.Post("/api/logout", h.handleLogout)
	r.Get("/api/discover/chat", h.handleDiscoverChat)
}

// envelope is the uniform response shape: code 0 is success, non-zero is a
// logic failure.
type envelope struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, httpStatus int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Debug("Failed to encode response", "error", err)
	}
}

func (h *Handler) gatewayURL(ctx context.Context) (string, error) {
	addr, err := h.gateways.Discover(ctx, directory.ServiceGateway)
	if err != nil {
		return "", err
	}
	return "ws://" + addr + "/ws", nil
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Code: 1, Msg: "Invalid JSON"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	client, err := h.auths.Auth(ctx)
	if err != nil {
		slog.Error("Auth service unavailable", "error", err)
		writeJSON(w, http.StatusInternalServerError, envelope{Code: 1, Msg: "Auth service unavailable"})
		return
	}
	resp, err := client.Register(ctx, &im.RegisterReq{
		Username: body.Username,
		Password: body.Password,
		Nickname: body.Nickname,
	})
	if err != nil {
		slog.Error("Register RPC failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, envelope{Code: 1, Msg: "Auth service unavailable"})
		return
	}
	if !resp.Success {
		writeJSON(w, http.StatusOK, envelope{Code: 1, Msg: resp.ErrorMessage})
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Code: 0,
		Msg:  "Register success",
		Data: map[string]interface{}{"user_id": resp.UserId},
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Device   string `json:"device"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Code: 1, Msg: "Invalid JSON"})
		return
	}
	if body.Device == "" {
		body.Device = "PC"
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	client, err := h.auths.Auth(ctx)
	if err != nil {
		slog.Error("Auth service unavailable", "error", err)
		writeJSON(w, http.StatusInternalServerError, envelope{Code: 1, Msg: "Auth service unavailable"})
		return
	}
	resp, err := client.Login(ctx, &im.LoginReq{
		Username: body.Username,
		Password: body.Password,
		Device:   body.Device,
	})
	if err != nil {
		slog.Error("Login RPC failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, envelope{Code: 1, Msg: "Auth service unavailable"})
		return
	}
	if !resp.Success {
		writeJSON(w, http.StatusUnauthorized, envelope{Code: 1, Msg: resp.ErrorMessage})
		return
	}

	gatewayURL, err := h.gatewayURL(ctx)
	if err != nil {
		if errors.Is(err, directory.ErrNoInstances) {
			writeJSON(w, http.StatusServiceUnavailable, envelope{Code: 1, Msg: "No gateways available"})
			return
		}
		slog.Error("Gateway discovery failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, envelope{Code: 1, Msg: "Gateway discovery failed"})
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Code: 0,
		Msg:  "Login success",
		Data: map[string]interface{}{
			"user_id":     resp.UserId,
			"token":       resp.Token,
			"nickname":    resp.Nickname,
			"gateway_url": gatewayURL,
		},
	})
}

type logoutRequest struct {
	UserID int64  `json:"user_id"`
	Token  string `json:"token"`
	Device string `json:"device"`
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	var body logoutRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Code: 1, Msg: "Invalid JSON"})
		return
	}
	if body.UserID <= 0 {
		writeJSON(w, http.StatusBadRequest, envelope{Code: 1, Msg: "Missing user id"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	// A supplied token must match the live session record for the device.
	if body.Token != "" {
		device := body.Device
		if device == "" {
			device = "PC"
		}
		stored, err := h.tokens.SessionToken(ctx, body.UserID, device)
		if err != nil {
			slog.Error("Token lookup failed", "user_id", body.UserID, "error", err)
			writeJSON(w, http.StatusInternalServerError, envelope{Code: 1, Msg: "Session store unavailable"})
			return
		}
		if stored != body.Token {
			writeJSON(w, http.StatusUnauthorized, envelope{Code: 1, Msg: "Token mismatch"})
			return
		}
	}

	client, err := h.auths.Auth(ctx)
	if err != nil {
		slog.Error("Auth service unavailable", "error", err)
		writeJSON(w, http.StatusInternalServerError, envelope{Code: 1, Msg: "Auth service unavailable"})
		return
	}
	resp, err := client.Logout(ctx, &im.LogoutReq{UserId: body.UserID, Device: body.Device})
	if err != nil {
		slog.Error("Logout RPC failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, envelope{Code: 1, Msg: "Auth service unavailable"})
		return
	}
	if !resp.Success {
		writeJSON(w, http.StatusOK, envelope{Code: 1, Msg: resp.ErrorMessage})
		return
	}

	writeJSON(w, http.StatusOK, envelope{Code: 0, Msg: "Logged out"})
}

func (h *Handler) handleDiscoverChat(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	gatewayURL, err := h.gatewayURL(ctx)
	if err != nil {
		if errors.Is(err, directory.ErrNoInstances) {
			writeJSON(w, http.StatusServiceUnavailable, envelope{Code: 1, Msg: "No gateways available"})
			return
		}
		slog.Error("Gateway discovery failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, envelope{Code: 1, Msg: "Gateway discovery failed"})
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Code: 0,
		Msg:  "OK",
		Data: map[string]interface{}{"gateway_url": gatewayURL},
	})
}

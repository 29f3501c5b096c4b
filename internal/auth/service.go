// Package auth implements credential checks, session token minting and
// same-device eviction.
package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/ashureev/tinyim/internal/proto/im"
	"github.com/ashureev/tinyim/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SessionStore is the ephemeral session state the service owns: the
// per-device token hash and the kick broadcast.
type SessionStore interface {
	SessionToken(ctx context.Context, userID int64, device string) (string, error)
	SetSessionToken(ctx context.Context, userID int64, device, token string, ttl time.Duration) error
	DeleteSessionDevice(ctx context.Context, userID int64, device string) error
	DeleteSession(ctx context.Context, userID int64) error
	PublishKick(ctx context.Context, userID int64, device string) error
}

// Service implements im.AuthServiceServer.
type Service struct {
	im.UnimplementedAuthServiceServer

	repo       store.Repository
	sessions   SessionStore
	secret     []byte
	sessionTTL time.Duration
	now        func() time.Time
}

// NewService creates the auth service. secret signs session tokens; the
// tokens stay opaque to every other component.
func NewService(repo store.Repository, sessions SessionStore, secret string, sessionTTL time.Duration) *Service {
	return &Service{
		repo:       repo,
		sessions:   sessions,
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

// mintToken produces an opaque token bound to (user, device, now). The
// HMAC keeps tokens unforgeable without changing the token-equality
// verification protocol.
func (s *Service) mintToken(userID int64, device string) string {
	ts := strconv.FormatInt(s.now().UnixNano(), 10)
	uid := strconv.FormatInt(userID, 10)
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s|%s|%s", uid, device, ts)
	sig := hex.EncodeToString(mac.Sum(nil)[:12])
	return "token_" + uid + "_" + ts + "_" + sig
}

// Register inserts a new account. A taken username surfaces as a logic
// failure, not a transport error.
func (s *Service) Register(ctx context.Context, req *im.RegisterReq) (*im.RegisterResp, error) {
	if req.Username == "" || req.Password == "" {
		return &im.RegisterResp{Success: false, ErrorMessage: "Username or password cannot be empty"}, nil
	}

	userID, err := s.repo.CreateUser(ctx, req.Username, req.Password, req.Nickname)
	if errors.Is(err, store.ErrDuplicate) {
		return &im.RegisterResp{Success: false, ErrorMessage: "Register failed: user may exist"}, nil
	}
	if err != nil {
		slog.Error("Register failed", "username", req.Username, "error", err)
		return nil, status.Error(codes.Internal, "database error")
	}

	slog.Info("User registered", "user_id", userID, "username", req.Username)
	return &im.RegisterResp{Success: true, UserId: userID}, nil
}

// Login checks credentials, evicts any live session on the same device,
// and stores the fresh token. The kick publish happens before the new
// token lands so the evicted gateway never matches the new session.
func (s *Service) Login(ctx context.Context, req *im.LoginReq) (*im.LoginResp, error) {
	device := req.Device
	if device == "" {
		device = "PC"
	}

	user, err := s.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		slog.Error("Login lookup failed", "username", req.Username, "error", err)
		return nil, status.Error(codes.Internal, "database error")
	}
	if user == nil {
		return &im.LoginResp{Success: false, ErrorMessage: "User not found"}, nil
	}
	if user.Password != req.Password {
		return &im.LoginResp{Success: false, ErrorMessage: "Invalid password"}, nil
	}

	token := s.mintToken(user.UserID, device)

	oldToken, err := s.sessions.SessionToken(ctx, user.UserID, device)
	if err != nil {
		slog.Error("Session lookup failed", "user_id", user.UserID, "device", device, "error", err)
		return nil, status.Error(codes.Internal, "session store error")
	}
	if oldToken != "" {
		slog.Warn("Evicting old session", "user_id", user.UserID, "device", device)
		if err := s.sessions.PublishKick(ctx, user.UserID, device); err != nil {
			// Login still succeeds; the stale session is not evicted and
			// stays open until it closes on its own.
			slog.Error("Kick publish failed", "user_id", user.UserID, "device", device, "error", err)
		}
	}

	if err := s.sessions.SetSessionToken(ctx, user.UserID, device, token, s.sessionTTL); err != nil {
		slog.Error("Session write failed", "user_id", user.UserID, "device", device, "error", err)
		return nil, status.Error(codes.Internal, "session store error")
	}

	slog.Info("User login", "user_id", user.UserID, "device", device)
	return &im.LoginResp{
		Success:  true,
		UserId:   user.UserID,
		Token:    token,
		Nickname: user.Nickname,
	}, nil
}

// Logout clears session state. With a device it removes that record and
// kicks the matching session; without one it removes every device's
// record.
func (s *Service) Logout(ctx context.Context, req *im.LogoutReq) (*im.LogoutResp, error) {
	if req.UserId <= 0 {
		return &im.LogoutResp{Success: false, ErrorMessage: "Missing user id"}, nil
	}

	if req.Device == "" {
		if err := s.sessions.DeleteSession(ctx, req.UserId); err != nil {
			slog.Error("Session delete failed", "user_id", req.UserId, "error", err)
			return nil, status.Error(codes.Internal, "session store error")
		}
	} else {
		if err := s.sessions.DeleteSessionDevice(ctx, req.UserId, req.Device); err != nil {
			slog.Error("Session device delete failed", "user_id", req.UserId, "device", req.Device, "error", err)
			return nil, status.Error(codes.Internal, "session store error")
		}
		if err := s.sessions.PublishKick(ctx, req.UserId, req.Device); err != nil {
			slog.Error("Kick publish failed", "user_id", req.UserId, "device", req.Device, "error", err)
		}
	}

	slog.Info("User logout", "user_id", req.UserId, "device", req.Device)
	return &im.LogoutResp{Success: true}, nil
}

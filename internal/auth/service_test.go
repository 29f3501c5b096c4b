package auth

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ashureev/tinyim/internal/domain"
	"github.com/ashureev/tinyim/internal/proto/im"
	"github.com/ashureev/tinyim/internal/store"
)

type fakeRepo struct {
	store.Repository

	mu    sync.Mutex
	users map[string]*domain.User
	next  int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*domain.User)}
}

func (f *fakeRepo) CreateUser(ctx context.Context, username, password, nickname string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[username]; ok {
		return 0, store.ErrDuplicate
	}
	f.next++
	f.users[username] = &domain.User{UserID: f.next, Username: username, Password: password, Nickname: nickname}
	return f.next, nil
}

func (f *fakeRepo) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[username], nil
}

type kickEvent struct {
	userID int64
	device string
}

type fakeSessions struct {
	mu      sync.Mutex
	tokens  map[int64]map[string]string
	kicks   []kickEvent
	deletes []int64
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{tokens: make(map[int64]map[string]string)}
}

func (f *fakeSessions) SessionToken(ctx context.Context, userID int64, device string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokens[userID][device], nil
}

func (f *fakeSessions) SetSessionToken(ctx context.Context, userID int64, device, token string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tokens[userID] == nil {
		f.tokens[userID] = make(map[string]string)
	}
	f.tokens[userID][device] = token
	return nil
}

func (f *fakeSessions) DeleteSessionDevice(ctx context.Context, userID int64, device string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens[userID], device)
	return nil
}

func (f *fakeSessions) DeleteSession(ctx context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, userID)
	f.deletes = append(f.deletes, userID)
	return nil
}

func (f *fakeSessions) PublishKick(ctx context.Context, userID int64, device string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kicks = append(f.kicks, kickEvent{userID: userID, device: device})
	return nil
}

func newTestService() (*Service, *fakeRepo, *fakeSessions) {
	repo := newFakeRepo()
	sessions := newFakeSessions()
	return NewService(repo, sessions, "test-secret", 24*time.Hour), repo, sessions
}

func TestRegister_Success(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.Register(context.Background(), &im.RegisterReq{Username: "alice", Password: "123", Nickname: "Alice"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if !resp.Success || resp.UserId != 1 {
		t.Errorf("Expected success with user id 1, got %+v", resp)
	}
}

func TestRegister_EmptyCredentials(t *testing.T) {
	svc, _, _ := newTestService()

	for _, req := range []*im.RegisterReq{
		{Username: "", Password: "x"},
		{Username: "x", Password: ""},
	} {
		resp, err := svc.Register(context.Background(), req)
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if resp.Success {
			t.Errorf("Expected validation failure for %+v", req)
		}
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.Register(context.Background(), &im.RegisterReq{Username: "alice", Password: "123"}); err != nil {
		t.Fatalf("First register failed: %v", err)
	}
	resp, err := svc.Register(context.Background(), &im.RegisterReq{Username: "alice", Password: "456"})
	if err != nil {
		t.Fatalf("Second register failed: %v", err)
	}
	if resp.Success {
		t.Error("Expected duplicate username to fail")
	}
	if !strings.Contains(resp.ErrorMessage, "may exist") {
		t.Errorf("Expected user-may-exist message, got %q", resp.ErrorMessage)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newTestService()
	svc.Register(context.Background(), &im.RegisterReq{Username: "alice", Password: "123"})

	resp, err := svc.Login(context.Background(), &im.LoginReq{Username: "alice", Password: "wrong", Device: "PC"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Success {
		t.Error("Expected wrong password to fail")
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.Login(context.Background(), &im.LoginReq{Username: "ghost", Password: "x", Device: "PC"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Success {
		t.Error("Expected unknown user to fail")
	}
}

func TestLogin_MintsTokenAndStoresIt(t *testing.T) {
	svc, _, sessions := newTestService()
	svc.Register(context.Background(), &im.RegisterReq{Username: "alice", Password: "123", Nickname: "Alice"})

	resp, err := svc.Login(context.Background(), &im.LoginReq{Username: "alice", Password: "123", Device: "PC"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if !resp.Success {
		t.Fatalf("Expected success, got %q", resp.ErrorMessage)
	}
	if !strings.HasPrefix(resp.Token, "token_1_") {
		t.Errorf("Expected opaque token_<uid>_ prefix, got %q", resp.Token)
	}
	if resp.Nickname != "Alice" {
		t.Errorf("Expected nickname Alice, got %q", resp.Nickname)
	}

	stored, _ := sessions.SessionToken(context.Background(), 1, "PC")
	if stored != resp.Token {
		t.Errorf("Expected stored token to match minted token")
	}
	if len(sessions.kicks) != 0 {
		t.Errorf("Expected no kick on first login, got %d", len(sessions.kicks))
	}
}

func TestLogin_SameDeviceEvictsAndRotatesToken(t *testing.T) {
	svc, _, sessions := newTestService()
	svc.Register(context.Background(), &im.RegisterReq{Username: "alice", Password: "123"})

	first, _ := svc.Login(context.Background(), &im.LoginReq{Username: "alice", Password: "123", Device: "PC"})
	second, err := svc.Login(context.Background(), &im.LoginReq{Username: "alice", Password: "123", Device: "PC"})
	if err != nil {
		t.Fatalf("Second login failed: %v", err)
	}
	if !second.Success {
		t.Fatalf("Expected second login to succeed, got %q", second.ErrorMessage)
	}
	if first.Token == second.Token {
		t.Error("Expected a fresh token on relogin")
	}

	if len(sessions.kicks) != 1 {
		t.Fatalf("Expected one kick publish, got %d", len(sessions.kicks))
	}
	if sessions.kicks[0] != (kickEvent{userID: 1, device: "PC"}) {
		t.Errorf("Unexpected kick event %+v", sessions.kicks[0])
	}

	stored, _ := sessions.SessionToken(context.Background(), 1, "PC")
	if stored != second.Token {
		t.Error("Expected the stored token to be the new one")
	}
}

func TestLogin_DifferentDevicesCoexist(t *testing.T) {
	svc, _, sessions := newTestService()
	svc.Register(context.Background(), &im.RegisterReq{Username: "alice", Password: "123"})

	svc.Login(context.Background(), &im.LoginReq{Username: "alice", Password: "123", Device: "PC"})
	svc.Login(context.Background(), &im.LoginReq{Username: "alice", Password: "123", Device: "Mobile"})

	if len(sessions.kicks) != 0 {
		t.Errorf("Expected no kick across devices, got %d", len(sessions.kicks))
	}
	pc, _ := sessions.SessionToken(context.Background(), 1, "PC")
	mobile, _ := sessions.SessionToken(context.Background(), 1, "Mobile")
	if pc == "" || mobile == "" {
		t.Error("Expected both device sessions to exist")
	}
}

func TestLogout_DeviceRemovesAndKicks(t *testing.T) {
	svc, _, sessions := newTestService()
	svc.Register(context.Background(), &im.RegisterReq{Username: "alice", Password: "123"})
	svc.Login(context.Background(), &im.LoginReq{Username: "alice", Password: "123", Device: "PC"})

	resp, err := svc.Logout(context.Background(), &im.LogoutReq{UserId: 1, Device: "PC"})
	if err != nil || !resp.Success {
		t.Fatalf("Logout failed: %v %+v", err, resp)
	}

	stored, _ := sessions.SessionToken(context.Background(), 1, "PC")
	if stored != "" {
		t.Error("Expected device session removed")
	}
	if len(sessions.kicks) != 1 {
		t.Errorf("Expected one kick on device logout, got %d", len(sessions.kicks))
	}
}

func TestLogout_NoDeviceRemovesAll(t *testing.T) {
	svc, _, sessions := newTestService()
	svc.Register(context.Background(), &im.RegisterReq{Username: "alice", Password: "123"})
	svc.Login(context.Background(), &im.LoginReq{Username: "alice", Password: "123", Device: "PC"})
	svc.Login(context.Background(), &im.LoginReq{Username: "alice", Password: "123", Device: "Mobile"})

	resp, err := svc.Logout(context.Background(), &im.LogoutReq{UserId: 1})
	if err != nil || !resp.Success {
		t.Fatalf("Logout failed: %v %+v", err, resp)
	}
	if len(sessions.deletes) != 1 || sessions.deletes[0] != 1 {
		t.Errorf("Expected whole-session delete for user 1, got %v", sessions.deletes)
	}
}

func TestMintToken_Unique(t *testing.T) {
	svc, _, _ := newTestService()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		token := svc.mintToken(1, "PC")
		if seen[token] {
			t.Fatalf("Duplicate token minted: %s", token)
		}
		seen[token] = true
	}
}

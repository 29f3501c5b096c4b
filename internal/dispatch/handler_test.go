package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ashureev/tinyim/internal/directory"
	"github.com/ashureev/tinyim/internal/proto/im"
	"github.com/go-chi/chi/v5"
	"google.golang.org/grpc"
)

type fakeAuthClient struct {
	loginResp *im.LoginResp
	logouts   []*im.LogoutReq
}

func (c *fakeAuthClient) Register(ctx context.Context, in *im.RegisterReq, opts ...grpc.CallOption) (*im.RegisterResp, error) {
	if in.Username == "taken" {
		return &im.RegisterResp{Success: false, ErrorMessage: "Register failed: user may exist"}, nil
	}
	return &im.RegisterResp{Success: true, UserId: 5}, nil
}

func (c *fakeAuthClient) Login(ctx context.Context, in *im.LoginReq, opts ...grpc.CallOption) (*im.LoginResp, error) {
	return c.loginResp, nil
}

func (c *fakeAuthClient) Logout(ctx context.Context, in *im.LogoutReq, opts ...grpc.CallOption) (*im.LogoutResp, error) {
	c.logouts = append(c.logouts, in)
	return &im.LogoutResp{Success: true}, nil
}

type fakeAuths struct{ client *fakeAuthClient }

func (a *fakeAuths) Auth(ctx context.Context) (im.AuthServiceClient, error) {
	return a.client, nil
}

type fakeGateways struct {
	addr string
	err  error
}

func (g *fakeGateways) Discover(ctx context.Context, name string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.addr, nil
}

type fakeTokens struct {
	token string // stored token for any (user, device)
}

func (f *fakeTokens) SessionToken(ctx context.Context, userID int64, device string) (string, error) {
	return f.token, nil
}

func newTestRouter(auths Auths, gateways Gateways, tokens TokenStore) http.Handler {
	h := NewHandler(auths, gateways, tokens, time.Second)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var env envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("Response is not valid JSON: %v", err)
	}
	return rec, env
}

func TestHandleRegister_Success(t *testing.T) {
	handler := newTestRouter(&fakeAuths{client: &fakeAuthClient{}}, &fakeGateways{addr: "gw:8080"}, &fakeTokens{})

	rec, env := doJSON(t, handler, http.MethodPost, "/api/register",
		`{"username":"alice","password":"123","nickname":"Alice"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if env.Code != 0 {
		t.Fatalf("Expected code 0, got %d (%s)", env.Code, env.Msg)
	}
	data := env.Data.(map[string]interface{})
	if data["user_id"].(float64) != 5 {
		t.Errorf("Expected user_id 5, got %v", data["user_id"])
	}
}

func TestHandleRegister_DuplicateIsLogicFailure(t *testing.T) {
	handler := newTestRouter(&fakeAuths{client: &fakeAuthClient{}}, &fakeGateways{addr: "gw:8080"}, &fakeTokens{})

	rec, env := doJSON(t, handler, http.MethodPost, "/api/register",
		`{"username":"taken","password":"123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if env.Code == 0 {
		t.Error("Expected non-zero code for duplicate username")
	}
}

func TestHandleRegister_BadJSON(t *testing.T) {
	handler := newTestRouter(&fakeAuths{client: &fakeAuthClient{}}, &fakeGateways{addr: "gw:8080"}, &fakeTokens{})

	rec, env := doJSON(t, handler, http.MethodPost, "/api/register", `{broken`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if env.Code == 0 {
		t.Error("Expected non-zero code for bad JSON")
	}
}

func TestHandleLogin_SuccessIncludesGatewayURL(t *testing.T) {
	client := &fakeAuthClient{loginResp: &im.LoginResp{
		Success: true, UserId: 5, Token: "token_5_1_ab", Nickname: "Alice",
	}}
	handler := newTestRouter(&fakeAuths{client: client}, &fakeGateways{addr: "10.0.0.2:8080"}, &fakeTokens{})

	rec, env := doJSON(t, handler, http.MethodPost, "/api/login",
		`{"username":"alice","password":"123","device":"PC"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if env.Code != 0 {
		t.Fatalf("Expected code 0, got %d (%s)", env.Code, env.Msg)
	}
	data := env.Data.(map[string]interface{})
	if data["gateway_url"] != "ws://10.0.0.2:8080/ws" {
		t.Errorf("Expected ws URL, got %v", data["gateway_url"])
	}
	if data["token"] != "token_5_1_ab" {
		t.Errorf("Expected token passthrough, got %v", data["token"])
	}
}

func TestHandleLogin_InvalidCredentials401(t *testing.T) {
	client := &fakeAuthClient{loginResp: &im.LoginResp{Success: false, ErrorMessage: "Invalid password"}}
	handler := newTestRouter(&fakeAuths{client: client}, &fakeGateways{addr: "gw:8080"}, &fakeTokens{})

	rec, env := doJSON(t, handler, http.MethodPost, "/api/login",
		`{"username":"alice","password":"bad"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", rec.Code)
	}
	if env.Code == 0 {
		t.Error("Expected non-zero code")
	}
}

func TestHandleLogin_NoGateways503(t *testing.T) {
	client := &fakeAuthClient{loginResp: &im.LoginResp{Success: true, UserId: 5, Token: "t"}}
	handler := newTestRouter(&fakeAuths{client: client},
		&fakeGateways{err: directory.ErrNoInstances}, &fakeTokens{})

	rec, _ := doJSON(t, handler, http.MethodPost, "/api/login",
		`{"username":"alice","password":"123"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected 503, got %d", rec.Code)
	}
}

func TestHandleLogout_ForwardsToAuth(t *testing.T) {
	client := &fakeAuthClient{}
	handler := newTestRouter(&fakeAuths{client: client}, &fakeGateways{addr: "gw:8080"}, &fakeTokens{})

	rec, env := doJSON(t, handler, http.MethodPost, "/api/logout",
		`{"user_id":5,"device":"PC"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if env.Code != 0 {
		t.Fatalf("Expected code 0, got %d (%s)", env.Code, env.Msg)
	}
	if len(client.logouts) != 1 || client.logouts[0].UserId != 5 || client.logouts[0].Device != "PC" {
		t.Errorf("Expected logout forwarded, got %+v", client.logouts)
	}
}

func TestHandleLogout_TokenMismatch401(t *testing.T) {
	client := &fakeAuthClient{}
	handler := newTestRouter(&fakeAuths{client: client}, &fakeGateways{addr: "gw:8080"}, &fakeTokens{})

	rec, _ := doJSON(t, handler, http.MethodPost, "/api/logout",
		`{"user_id":5,"device":"PC","token":"forged"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", rec.Code)
	}
	if len(client.logouts) != 0 {
		t.Error("Expected no logout RPC on token mismatch")
	}
}

func TestHandleLogout_MissingUserID(t *testing.T) {
	handler := newTestRouter(&fakeAuths{client: &fakeAuthClient{}}, &fakeGateways{addr: "gw:8080"}, &fakeTokens{})

	rec, _ := doJSON(t, handler, http.MethodPost, "/api/logout", `{"device":"PC"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
}

func TestHandleDiscoverChat(t *testing.T) {
	handler := newTestRouter(&fakeAuths{client: &fakeAuthClient{}}, &fakeGateways{addr: "10.0.0.3:8080"}, &fakeTokens{})

	rec, env := doJSON(t, handler, http.MethodGet, "/api/discover/chat", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	data := env.Data.(map[string]interface{})
	if data["gateway_url"] != "ws://10.0.0.3:8080/ws" {
		t.Errorf("Expected ws URL, got %v", data["gateway_url"])
	}
}

func TestHandleDiscoverChat_NoGateways(t *testing.T) {
	handler := newTestRouter(&fakeAuths{client: &fakeAuthClient{}},
		&fakeGateways{err: directory.ErrNoInstances}, &fakeTokens{})

	rec, _ := doJSON(t, handler, http.MethodGet, "/api/discover/chat", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected 503, got %d", rec.Code)
	}
}

func TestHandleDiscoverChat_StoreError500(t *testing.T) {
	handler := newTestRouter(&fakeAuths{client: &fakeAuthClient{}},
		&fakeGateways{err: errors.New("redis down")}, &fakeTokens{})

	rec, _ := doJSON(t, handler, http.MethodGet, "/api/discover/chat", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rec.Code)
	}
}

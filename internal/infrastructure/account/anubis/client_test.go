package anubis

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/event-scoring/internal/domain/user"
	"github.com/riskibarqy/event-scoring/internal/platform/logging"
	"github.com/riskibarqy/event-scoring/internal/platform/resilience"
	"github.com/riskibarqy/event-scoring/internal/usecase"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:        baseURL,
		IntrospectPath: "/v1/auth/introspect",
		AdminKey:       "admin-secret",
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	body, _ := sonic.Marshal(payload)
	_, _ = w.Write(body)
}

func TestClientVerifyAccessToken_SendsAdminKeyAndParsesResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/v1/auth/introspect" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("x-admin-key"); got != "admin-secret" {
			t.Errorf("unexpected x-admin-key: %s", got)
		}

		var req map[string]string
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if req["token"] != "token-abc" {
			t.Errorf("unexpected token value: %s", req["token"])
		}

		writeJSON(w, map[string]any{
			"active":  true,
			"user_id": "jury-123",
			"email":   "ada@example.com",
			"roles":   []string{"student", "jury"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), testConfig(srv.URL), logging.NewNop())

	principal, err := client.VerifyAccessToken(context.Background(), "token-abc")
	if err != nil {
		t.Fatalf("verify token failed: %v", err)
	}
	if principal.UserID != "jury-123" || principal.Email != "ada@example.com" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
	if principal.Role != user.RoleJury {
		t.Fatalf("unexpected role: %s", principal.Role)
	}
}

func TestClientVerifyAccessToken_InactiveToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"active": false})
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), testConfig(srv.URL), logging.NewNop())

	_, err := client.VerifyAccessToken(context.Background(), "invalid-token")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClientVerifyAccessToken_EmptyToken(t *testing.T) {
	t.Parallel()

	client := NewClient(nil, testConfig("http://127.0.0.1:0"), logging.NewNop())
	if _, err := client.VerifyAccessToken(context.Background(), "   "); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClientVerifyAccessToken_ForbiddenMappedToDependencyUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"forbidden"}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.AdminKey = "wrong-key"
	client := NewClient(srv.Client(), cfg, logging.NewNop())

	_, err := client.VerifyAccessToken(context.Background(), "token-abc")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestClientVerifyAccessToken_UsesPrincipalCache(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, map[string]any{
			"active":  true,
			"user_id": "user-cache",
			"roles":   []string{"admin"},
		})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.CacheTTL = time.Minute
	client := NewClient(srv.Client(), cfg, logging.NewNop())

	for i := 0; i < 2; i++ {
		principal, err := client.VerifyAccessToken(context.Background(), "cached-token")
		if err != nil {
			t.Fatalf("verify token failed: %v", err)
		}
		if principal.UserID != "user-cache" || principal.Role != user.RoleAdmin {
			t.Fatalf("unexpected principal: %+v", principal)
		}
	}

	if calls.Load() != 1 {
		t.Fatalf("expected one introspection call with cache, got %d", calls.Load())
	}
}

func TestClientVerifyAccessToken_CircuitOpensOnTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker = resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	}
	client := NewClient(srv.Client(), cfg, logging.NewNop())

	for i := 0; i < 4; i++ {
		_, err := client.VerifyAccessToken(context.Background(), "token-abc")
		if !errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("call %d: expected ErrDependencyUnavailable, got %v", i, err)
		}
	}

	if calls.Load() != 2 {
		t.Fatalf("expected breaker to stop calls after threshold, got %d upstream calls", calls.Load())
	}
}

func TestBuildURL(t *testing.T) {
	cases := map[string]struct {
		base string
		path string
		want string
	}{
		"joins with slash":   {base: "https://auth.local/", path: "v1/introspect", want: "https://auth.local/v1/introspect"},
		"absolute path wins": {base: "https://auth.local", path: "https://other/x", want: "https://other/x"},
		"empty path":         {base: "https://auth.local/", path: "", want: "https://auth.local"},
	}
	for name, tc := range cases {
		if got := buildURL(tc.base, tc.path); got != tc.want {
			t.Fatalf("%s: got %q want %q", name, got, tc.want)
		}
	}
}

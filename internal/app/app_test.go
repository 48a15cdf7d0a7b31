package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/event-scoring/internal/config"
	"github.com/riskibarqy/event-scoring/internal/platform/logging"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":0",
		StorageDriver:      config.StorageMemory,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		CORSAllowedOrigins: []string{"*"},
		AuthMode:           config.AuthModeJWT,
		AuthJWTSecret:      "test-secret",
		NotifyWorkers:      2,
		PublishWorkers:     2,
		MetricsEnabled:     true,
	}
}

func TestNewHTTPServer_MemoryStorage(t *testing.T) {
	srv, cleanup, err := NewHTTPServer(context.Background(), memoryConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	defer func() { _ = cleanup() }()

	for _, path := range []string{"/healthz", "/metrics", "/v1/results"} {
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: unexpected status %d", path, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/jury/events", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestNewHTTPServer_RejectsBadConfig(t *testing.T) {
	t.Run("empty addr", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.HTTPAddr = ""
		if _, _, err := NewHTTPServer(context.Background(), cfg, nil); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unknown storage", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.StorageDriver = "sqlite"
		if _, _, err := NewHTTPServer(context.Background(), cfg, nil); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("resend without key", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.ResendEnabled = true
		if _, _, err := NewHTTPServer(context.Background(), cfg, nil); err == nil {
			t.Fatalf("expected error")
		}
	})
}

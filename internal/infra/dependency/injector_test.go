package dependency

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/walletive/backend/config"
	"github.com/walletive/backend/internal/infra/db"
)

func TestNewSessionStore(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name         string
		cfg          config.RedisConfig
		expectedKind string
		expectErr    bool
	}{
		{name: "memory without url", cfg: config.RedisConfig{SessionTTL: time.Hour}, expectedKind: SessionStoreMemory},
		{name: "redis with url", cfg: config.RedisConfig{URL: "redis://" + mr.Addr(), SessionTTL: time.Hour}, expectedKind: SessionStoreRedis},
		{name: "malformed url", cfg: config.RedisConfig{URL: "://nope"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, kind, client, err := newSessionStore(&tt.cfg)
			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if client != nil {
				t.Cleanup(func() { _ = client.Close() })
			}
			if store == nil || kind != tt.expectedKind {
				t.Errorf("expected %s store, got %s", tt.expectedKind, kind)
			}
		})
	}
}

func TestNewInjector_ServesHealth(t *testing.T) {
	database, err := db.NewConnection(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	if err := database.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := config.Default()
	cfg.Server.Environment = "test"

	injector, err := NewInjector(cfg, database.DB(), database.HealthCheck)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = injector.Close() })

	engine := injector.Router.Setup(cfg.Server.Environment)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"session_store":"memory"`) {
		t.Errorf("unexpected health response %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/setup", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"completed":false`) {
		t.Errorf("unexpected setup response %d: %s", rec.Code, rec.Body.String())
	}
}

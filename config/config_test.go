package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"BACKEND_URL", "SESSION_STORE", "SESSION_KEY", "SESSION_TTL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.BackendURL != "http://localhost:3011" {
		t.Fatalf("unexpected backend url %q", cfg.BackendURL)
	}
	if cfg.SessionStore != SessionStoreRedis || cfg.SessionKey != "currentUser" || cfg.SessionTTL != 0 {
		t.Fatalf("unexpected session config: %+v", cfg)
	}
}

func TestLoadOverridesAndBadValues(t *testing.T) {
	t.Setenv("SESSION_STORE", "Postgres")
	t.Setenv("BACKEND_TIMEOUT", "3s")
	t.Setenv("NOTIFY_ENABLED", "maybe")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.ma , ,http://b.ma")

	cfg := Load()
	if cfg.SessionStore != SessionStorePostgres {
		t.Fatalf("expected postgres, got %q", cfg.SessionStore)
	}
	if cfg.BackendTimeout != 3*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.BackendTimeout)
	}
	if cfg.NotifyEnabled {
		t.Fatal("invalid bool must fall back to default")
	}
	if got := cfg.CORSOrigins(); len(got) != 2 || got[1] != "http://b.ma" {
		t.Fatalf("unexpected origins %v", got)
	}
}

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.PollInterval != 5*time.Minute {
		t.Fatalf("expected default poll interval, got %v", cfg.PollInterval)
	}
	if cfg.Fantasy.BaseURL == "" {
		t.Fatalf("expected default base URL")
	}
	if cfg.Fantasy.MaxRetries != 3 {
		t.Fatalf("expected default retries, got %d", cfg.Fantasy.MaxRetries)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9090" {
		t.Fatalf("unexpected metrics defaults: %+v", cfg.Metrics)
	}
	if cfg.Snapshots.RetentionGameweeks != 6 {
		t.Fatalf("expected default retention, got %d", cfg.Snapshots.RetentionGameweeks)
	}
	if cfg.History.DBPath != "" {
		t.Fatalf("history must default off, got %q", cfg.History.DBPath)
	}
	if cfg.Cache.RedisURL != "" {
		t.Fatalf("cache must default off, got %q", cfg.Cache.RedisURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("POLL_INTERVAL", "30s")
	t.Setenv("FANTASY_API_BASE_URL", "https://game.example.net/api/")
	t.Setenv("FANTASY_API_TOKEN", "svc-token")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("HISTORY_DB_PATH", "/tmp/history.db")
	t.Setenv("CACHE_REDIS_URL", "redis://localhost:6379/0")

	cfg := Load()
	if cfg.Port != "9999" {
		t.Fatalf("port override ignored: %q", cfg.Port)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Fatalf("poll interval override ignored: %v", cfg.PollInterval)
	}
	if cfg.Fantasy.BaseURL != "https://game.example.net/api/" {
		t.Fatalf("base URL override ignored: %q", cfg.Fantasy.BaseURL)
	}
	if cfg.Fantasy.ServiceToken != "svc-token" {
		t.Fatalf("token override ignored")
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("metrics disable ignored")
	}
	if cfg.History.DBPath != "/tmp/history.db" {
		t.Fatalf("history path override ignored: %q", cfg.History.DBPath)
	}
	if cfg.Cache.RedisURL != "redis://localhost:6379/0" {
		t.Fatalf("redis override ignored: %q", cfg.Cache.RedisURL)
	}
}

func TestDurationEnvRejectsGarbage(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "soon")
	if cfg := Load(); cfg.PollInterval != 5*time.Minute {
		t.Fatalf("garbage duration must fall back, got %v", cfg.PollInterval)
	}

	t.Setenv("POLL_INTERVAL", "-2m")
	if cfg := Load(); cfg.PollInterval != 5*time.Minute {
		t.Fatalf("negative duration must fall back, got %v", cfg.PollInterval)
	}
}

func TestBoolEnvVariants(t *testing.T) {
	cases := map[string]bool{
		"1": true, "true": true, "YES": true,
		"0": false, "false": false, "No": false,
		"maybe": true, // falls back to the default
	}
	for raw, want := range cases {
		t.Setenv("METRICS_ENABLED", raw)
		if got := Load().Metrics.Enabled; got != want {
			t.Fatalf("METRICS_ENABLED=%q: expected %v, got %v", raw, want, got)
		}
	}
}

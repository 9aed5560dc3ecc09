package config

import (
	"testing"
	"time"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "")
	if _, err := Load(); err == nil {
		t.Error("Load() succeeded without RIOT_API_KEY")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "RGAPI-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Platform != "eun1" || cfg.Region != "europe" {
		t.Errorf("routing defaults = %s/%s, want eun1/europe", cfg.Platform, cfg.Region)
	}
	if cfg.Tier != "CHALLENGER" || cfg.MinPlayers != 200 {
		t.Errorf("ladder defaults = %s/%d", cfg.Tier, cfg.MinPlayers)
	}
	if cfg.RetryDelay != 5*time.Second {
		t.Errorf("RetryDelay = %v, want 5s", cfg.RetryDelay)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	t.Setenv("RIOT_PLATFORM", "na1")
	t.Setenv("RIOT_REGION", "americas")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("RETRY_DELAY", "10s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Platform != "na1" || cfg.Region != "americas" {
		t.Errorf("routing = %s/%s, want na1/americas", cfg.Platform, cfg.Region)
	}
	if cfg.WorkerCount != 8 {
		t.Errorf("WorkerCount = %d, want 8", cfg.WorkerCount)
	}
	if cfg.RetryDelay != 10*time.Second {
		t.Errorf("RetryDelay = %v, want 10s", cfg.RetryDelay)
	}
}

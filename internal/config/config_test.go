package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Timezone != "Europe/Prague" {
		t.Errorf("expected default timezone Europe/Prague, got %s", cfg.Timezone)
	}
	if cfg.SlotPageSize != 10 {
		t.Errorf("expected default slot page size 10, got %d", cfg.SlotPageSize)
	}
	if cfg.NearbyWindow != 90*time.Minute {
		t.Errorf("expected default nearby window 90m, got %s", cfg.NearbyWindow)
	}
	if cfg.DefaultLanguage != "en" {
		t.Errorf("expected default language en, got %s", cfg.DefaultLanguage)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("LOG_FORMAT", " TEXT ")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("expected session ttl 1h, got %s", cfg.SessionTTL)
	}
	if cfg.RedisDB != 3 {
		t.Errorf("expected redis db 3, got %d", cfg.RedisDB)
	}
	if !cfg.RedisTLS {
		t.Error("expected redis tls enabled")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("expected log format text, got %q", cfg.LogFormat)
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("SESSION_TTL", "soon")

	cfg := Load()

	if cfg.RedisDB != 0 {
		t.Errorf("expected fallback redis db 0, got %d", cfg.RedisDB)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected fallback session ttl 30m, got %s", cfg.SessionTTL)
	}
}

package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SESSION_SECRET", "TOKEN_SECRET", "TOKEN_TTL_SECONDS",
		"PORT", "GIN_MODE", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "5000" {
		t.Fatalf("unexpected default port: %q", cfg.Port)
	}
	if cfg.TokenTTL != 3600 {
		t.Fatalf("unexpected default token TTL: %d", cfg.TokenTTL)
	}
	if cfg.SessionSecret == "" || cfg.TokenSecret == "" {
		t.Fatal("expected dev fallback secrets in debug mode")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("TOKEN_TTL_SECONDS", "60")
	t.Setenv("TOKEN_SECRET", "env-token-secret")
	t.Setenv("GIN_MODE", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("unexpected port: %q", cfg.Port)
	}
	if cfg.TokenTTL != 60 {
		t.Fatalf("unexpected token TTL: %d", cfg.TokenTTL)
	}
	if cfg.TokenSecret != "env-token-secret" {
		t.Fatalf("unexpected token secret: %q", cfg.TokenSecret)
	}
}

func TestValidateReleaseMode(t *testing.T) {
	cfg := &Config{
		GinMode:       "release",
		SessionSecret: devFallbackSecret,
		TokenSecret:   devFallbackSecret,
		TokenTTL:      3600,
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected Validate to reject fallback secrets in release mode")
	}

	cfg.SessionSecret = "real-session-secret"
	cfg.TokenSecret = "real-token-secret"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
}

func TestGetEnvAsIntFallback(t *testing.T) {
	t.Setenv("TOKEN_TTL_SECONDS", "not-a-number")
	if got := getEnvAsInt("TOKEN_TTL_SECONDS", 3600); got != 3600 {
		t.Fatalf("getEnvAsInt = %d, want fallback 3600", got)
	}
}

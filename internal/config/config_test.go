// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

var allEnvVars = []string{
	"APP_HOST", "APP_PORT", "APP_ENV", "LOG_LEVEL",
	"SESSION_BACKEND", "SESSION_TTL", "SESSION_MEMORY_SIZE",
	"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD", "VALKEY_DB",
	"CURRENCY_LOCALE", "CURRENCY_SYMBOL",
	"RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW", "TRUST_PROXY",
}

// clearEnv sets every variable Load reads to empty, which envOrDefault
// treats the same as unset. t.Setenv restores the values afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		t.Setenv(key, "")
	}
}

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "0.0.0.0")
	check("Port", cfg.Port, "8080")
	check("Env", cfg.Env, "development")
	check("SessionBackend", cfg.SessionBackend, SessionBackendMemory)
	check("ValkeyHost", cfg.ValkeyHost, "localhost")
	check("ValkeyPort", cfg.ValkeyPort, "6379")
	check("ValkeyPassword", cfg.ValkeyPassword, "")
	check("CurrencyLocale", cfg.CurrencyLocale, "ru")
	check("CurrencySymbol", cfg.CurrencySymbol, "₽")

	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want INFO", cfg.LogLevel)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v, want 24h", cfg.SessionTTL)
	}
	if cfg.SessionMemorySize != 10000 {
		t.Errorf("SessionMemorySize = %d, want 10000", cfg.SessionMemorySize)
	}
	if cfg.ValkeyDB != 0 {
		t.Errorf("ValkeyDB = %d, want 0", cfg.ValkeyDB)
	}
	if cfg.RateLimitRequests != 60 || cfg.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d/%v, want 60/1m", cfg.RateLimitRequests, cfg.RateLimitWindow)
	}
	if cfg.TrustProxy {
		t.Error("TrustProxy should be off by default")
	}
	if !cfg.IsDev() {
		t.Error("IsDev() should be true by default")
	}
}

// TestLoad_EnvOverrides verifies that every environment variable properly
// overrides the default value.
func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	overrides := map[string]string{
		"APP_HOST":            "127.0.0.1",
		"APP_PORT":            "9090",
		"APP_ENV":             "production",
		"LOG_LEVEL":           "debug",
		"SESSION_BACKEND":     "VALKEY",
		"SESSION_TTL":         "2h",
		"SESSION_MEMORY_SIZE": "50",
		"VALKEY_HOST":         "cache.example.com",
		"VALKEY_PORT":         "6380",
		"VALKEY_PASSWORD":     "cachepass",
		"VALKEY_DB":           "3",
		"CURRENCY_LOCALE":     "en-US",
		"CURRENCY_SYMBOL":     "$",
		"RATE_LIMIT_REQUESTS": "5",
		"RATE_LIMIT_WINDOW":   "10s",
		"TRUST_PROXY":         "true",
	}
	for key, val := range overrides {
		t.Setenv(key, val)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Addr() != "127.0.0.1:9090" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.IsDev() {
		t.Error("IsDev() should be false in production")
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want DEBUG", cfg.LogLevel)
	}
	if cfg.SessionBackend != SessionBackendValkey {
		t.Errorf("SessionBackend = %q", cfg.SessionBackend)
	}
	if cfg.SessionTTL != 2*time.Hour || cfg.SessionMemorySize != 50 {
		t.Errorf("session = %v/%d", cfg.SessionTTL, cfg.SessionMemorySize)
	}
	if cfg.ValkeyHost != "cache.example.com" || cfg.ValkeyPort != "6380" || cfg.ValkeyPassword != "cachepass" || cfg.ValkeyDB != 3 {
		t.Errorf("valkey = %s:%s %q db %d", cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword, cfg.ValkeyDB)
	}
	if cfg.CurrencyLocale != "en-US" || cfg.CurrencySymbol != "$" {
		t.Errorf("currency = %q %q", cfg.CurrencyLocale, cfg.CurrencySymbol)
	}
	if cfg.RateLimitRequests != 5 || cfg.RateLimitWindow != 10*time.Second {
		t.Errorf("rate limit = %d/%v", cfg.RateLimitRequests, cfg.RateLimitWindow)
	}
	if !cfg.TrustProxy {
		t.Error("TrustProxy should be on")
	}
}

// TestLoad_Invalid verifies that malformed or unsafe settings are rejected
// with an error naming the variable.
func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
		env        string
	}{
		{"SESSION_BACKEND", "postgres", ""},
		{"SESSION_TTL", "forever", ""},
		{"SESSION_TTL", "-1h", ""},
		{"SESSION_MEMORY_SIZE", "lots", ""},
		{"SESSION_MEMORY_SIZE", "-5", ""},
		{"VALKEY_DB", "-1", ""},
		{"RATE_LIMIT_REQUESTS", "-1", ""},
		{"RATE_LIMIT_WINDOW", "0s", ""},
		{"LOG_LEVEL", "loud", ""},
		{"TRUST_PROXY", "maybe", ""},
		{"SESSION_BACKEND", "memory", "production"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if tt.env != "" {
				t.Setenv("APP_ENV", tt.env)
			}

			_, err := Load()
			if err == nil {
				t.Fatal("Load() should return an error")
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error should mention %s, got: %v", tt.key, err)
			}
		})
	}
}

// TestLoad_ProductionDefaultsToError verifies production refuses to start
// with the in-process session backend.
func TestLoad_ProductionDefaultsToError(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject production without Valkey sessions")
	}
}

func TestLoad_RateLimitCanBeDisabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("RATE_LIMIT_REQUESTS", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.RateLimitRequests != 0 {
		t.Errorf("RateLimitRequests = %d, want 0", cfg.RateLimitRequests)
	}
}

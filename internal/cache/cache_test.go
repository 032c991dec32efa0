// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestValkeyOptionsAddr(t *testing.T) {
	tests := []struct {
		opts ValkeyOptions
		want string
	}{
		{ValkeyOptions{Host: "localhost", Port: "6379"}, "localhost:6379"},
		{ValkeyOptions{Host: "::1", Port: "6380"}, "[::1]:6380"},
	}
	for _, tt := range tests {
		if got := tt.opts.Addr(); got != tt.want {
			t.Errorf("Addr(%+v) = %q, want %q", tt.opts, got, tt.want)
		}
	}
}

func TestConnectValkey(t *testing.T) {
	opts := ValkeyOptions{
		Host:     envOr("VALKEY_HOST", "localhost"),
		Port:     envOr("VALKEY_PORT", "6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15,
	}

	client, err := ConnectValkey(context.Background(), opts)
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
	if got := client.Options().DB; got != 15 {
		t.Errorf("DB: got %d, want 15", got)
	}
}

func TestConnectValkeyUnreachable(t *testing.T) {
	// Port 1 is reserved and never runs Valkey.
	_, err := ConnectValkey(context.Background(), ValkeyOptions{Host: "127.0.0.1", Port: "1"})
	if err == nil {
		t.Fatal("expected error for unreachable Valkey")
	}
}

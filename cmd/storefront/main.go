// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the storefront server.
// It loads configuration, selects the session backend, sets up routing, and
// starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"storefront/internal/cache"
	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/handlers"
	"storefront/internal/metrics"
	"storefront/internal/middleware"
	"storefront/internal/money"
	"storefront/internal/render"
	"storefront/internal/router"
	"storefront/internal/sections"
	"storefront/internal/session"
)

func main() {
	// A local .env is optional; real environment variables take precedence.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger: JSON in production, text in development.
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))

	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		slog.Warn("failed to read .env file", "error", envErr)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"session_backend", cfg.SessionBackend,
	)

	// Pick where visitor sessions live.
	var backend session.Backend
	switch cfg.SessionBackend {
	case config.SessionBackendValkey:
		client, err := cache.ConnectValkey(context.Background(), cache.ValkeyOptions{
			Host:     cfg.ValkeyHost,
			Port:     cfg.ValkeyPort,
			Password: cfg.ValkeyPassword,
			DB:       cfg.ValkeyDB,
		})
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		backend = session.NewValkeyBackend(client)
	default:
		slog.Warn("sessions are kept in memory and will not survive a restart")
		backend = session.NewMemoryBackend(cfg.SessionMemorySize, cfg.SessionTTL)
	}

	// Non-development environments mark session and CSRF cookies Secure.
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(backend, cfg.SessionTTL, secureCookies)

	content, err := sections.Default()
	if err != nil {
		slog.Error("failed to load page content", "error", err)
		os.Exit(1)
	}

	prices, err := money.NewFormatter(cfg.CurrencyLocale, cfg.CurrencySymbol)
	if err != nil {
		slog.Error("invalid currency settings", "error", err)
		os.Exit(1)
	}

	renderer, err := render.New(content, prices, cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	products := catalog.Default()
	slog.Info("catalog loaded", "products", products.Len(), "categories", len(products.Categories()))

	m := metrics.New(prometheus.DefaultRegisterer)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow, cfg.TrustProxy)

	r := router.New(router.Options{
		Sessions:      sessionStore,
		Storefront:    handlers.NewStorefront(products, sessionStore, renderer, m),
		Limiter:       limiter,
		Metrics:       m,
		Gatherer:      prometheus.DefaultGatherer,
		SecureCookies: secureCookies,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// storefront. Page reads and cart mutations share session and CSRF
// middleware; mutations are additionally rate limited per visitor.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storefront/internal/handlers"
	"storefront/internal/metrics"
	"storefront/internal/middleware"
	"storefront/internal/session"
	"storefront/web"
)

// Options wires the router's dependencies.
type Options struct {
	Sessions   *session.Store
	Storefront *handlers.Storefront

	// Limiter throttles cart mutations. Nil disables rate limiting.
	Limiter *middleware.RateLimiter

	// Metrics may be nil. Gatherer defaults to the Prometheus default registry.
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	// SecureCookies marks the CSRF cookie Secure.
	SecureCookies bool
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer(opts.Metrics))
	r.Use(middleware.Logger(opts.Metrics))
	r.Use(middleware.SecureHeaders)

	// Health check and metrics: no session, no CSRF.
	r.Get("/health", healthHandler)
	r.Handle("/metrics", metricsHandler(opts.Gatherer))
	r.Handle("/static/*", staticHandler())

	shop := opts.Storefront
	r.Group(func(r chi.Router) {
		r.Use(middleware.LoadSession(opts.Sessions))
		r.Use(middleware.NewCSRF(opts.SecureCookies))

		r.Get("/", shop.Index)
		r.Get("/catalog", shop.Catalog)
		r.Get("/cart", shop.Cart)

		// State-changing actions.
		r.Group(func(r chi.Router) {
			if opts.Limiter != nil {
				r.Use(opts.Limiter.Middleware)
			}

			r.Post("/catalog/category", shop.SelectCategory)
			r.Post("/cart/open", shop.OpenCart)
			r.Post("/cart/close", shop.CloseCart)

			r.Route("/cart/items", func(r chi.Router) {
				r.Post("/", shop.AddToCart)
				r.Post("/{id}/quantity", shop.SetQuantity)
				r.Post("/{id}/increment", shop.Increment)
				r.Post("/{id}/decrement", shop.Decrement)
				r.Post("/{id}/remove", shop.Remove)
			})

			r.Post("/session/reset", shop.ResetSession)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func metricsHandler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// staticHandler serves the embedded web/static tree under /static/.
func staticHandler() http.Handler {
	sub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

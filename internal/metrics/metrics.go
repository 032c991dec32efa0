// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package metrics exposes the storefront's Prometheus collectors. A nil
// *Metrics is valid and records nothing.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Cart action label values.
const (
	ActionAdd       = "add"
	ActionQuantity  = "quantity"
	ActionIncrement = "increment"
	ActionDecrement = "decrement"
	ActionRemove    = "remove"
	ActionOpen      = "open"
	ActionClose     = "close"
	ActionReset     = "reset"
)

// Metrics records HTTP traffic, cart actions and recovered panics.
type Metrics struct {
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	cartActions *prometheus.CounterVec
	panics      prometheus.Counter
}

// New registers the storefront metrics on the provided registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_http_requests_total",
		Help: "HTTP requests served, by method, route pattern and status.",
	}, []string{"method", "route", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	cartActions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_cart_actions_total",
		Help: "Cart actions applied to visitor sessions.",
	}, []string{"action"})
	panics := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storefront_panics_total",
		Help: "Panics recovered by the HTTP middleware.",
	})
	reg.MustRegister(requests, duration, cartActions, panics)
	return &Metrics{
		requests:    requests,
		duration:    duration,
		cartActions: cartActions,
		panics:      panics,
	}
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	route = normalizeLabel(route)
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// IncCartAction counts one applied cart action.
func (m *Metrics) IncCartAction(action string) {
	if m == nil || m.cartActions == nil {
		return
	}
	m.cartActions.WithLabelValues(normalizeLabel(action)).Inc()
}

// IncPanic counts one recovered panic.
func (m *Metrics) IncPanic() {
	if m == nil || m.panics == nil {
		return
	}
	m.panics.Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

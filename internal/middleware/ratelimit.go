// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultRateLimitKeys bounds how many visitors the limiter tracks at once.
const DefaultRateLimitKeys = 10000

// RateLimiter allows each visitor a fixed number of requests per sliding
// window. Visitors with a stored session are keyed by their visitor ID,
// everyone else by client IP. Forwarding headers are only read when the
// limiter is told a reverse proxy sits in front of the server.
//
// Request times live in an expiring LRU: a key idle for a whole window
// drops out on its own, which is exactly when its history stops mattering.
type RateLimiter struct {
	mu         sync.Mutex
	limit      int
	window     time.Duration
	trustProxy bool
	seen       *expirable.LRU[string, []time.Time]
}

// NewRateLimiter creates a limiter allowing limit requests per window.
// A non-positive limit disables limiting. trustProxy enables reading the
// client address from X-Forwarded-For and X-Real-IP.
func NewRateLimiter(limit int, window time.Duration, trustProxy bool) *RateLimiter {
	return &RateLimiter{
		limit:      limit,
		window:     window,
		trustProxy: trustProxy,
		seen:       expirable.NewLRU[string, []time.Time](DefaultRateLimitKeys, nil, window),
	}
}

// allow records a request for key and reports whether it fits the budget.
func (rl *RateLimiter) allow(key string) bool {
	if rl.limit <= 0 {
		return true
	}

	now := time.Now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	history, _ := rl.seen.Get(key)
	recent := history[:0]
	for _, ts := range history {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= rl.limit {
		rl.seen.Add(key, recent)
		return false
	}

	// Re-adding restarts the key's expiry.
	rl.seen.Add(key, append(recent, now))
	return true
}

// tracked reports how many keys currently have history.
func (rl *RateLimiter) tracked() int {
	return rl.seen.Len()
}

// Middleware rejects over-budget requests with 429 and a Retry-After hint.
// Must run after LoadSession to key by visitor.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	retryAfter := strconv.Itoa(int(math.Ceil(rl.window.Seconds())))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(rateKey(r, rl.trustProxy)) {
			w.Header().Set("Retry-After", retryAfter)
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// rateKey identifies the visitor behind a request.
func rateKey(r *http.Request, trustProxy bool) string {
	if sess := SessionFromCtx(r.Context()); sess != nil && !sess.Fresh {
		return "visitor:" + sess.VisitorID.String()
	}
	return "ip:" + clientIP(r, trustProxy)
}

// clientIP returns the connection's remote address. Behind a trusted proxy
// it returns the rightmost X-Forwarded-For hop, the one the proxy appended,
// falling back to X-Real-IP. Hops further left are client supplied.
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			hops := strings.Split(xff, ",")
			if last := strings.TrimSpace(hops[len(hops)-1]); last != "" {
				return last
			}
		}
		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

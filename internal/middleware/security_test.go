package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSecureHeaders(t *testing.T) {
	handler := SecureHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Handlers may still override a header after the middleware ran.
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	want := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "SAMEORIGIN",
		"X-XSS-Protection":        "0",
		"Referrer-Policy":         "no-referrer",
		"Permissions-Policy":      "interest-cohort=(), camera=(), microphone=(), geolocation=()",
		"Content-Security-Policy": ContentSecurityPolicy,
	}
	for header, value := range want {
		if got := rr.Header().Get(header); got != value {
			t.Errorf("%s: got %q, want %q", header, got, value)
		}
	}
}

func TestContentSecurityPolicyDirectives(t *testing.T) {
	for _, directive := range []string{
		"img-src 'self' https:",
		"script-src 'self' https://unpkg.com",
		"style-src 'self'",
		"frame-ancestors 'self'",
		"form-action 'self'",
	} {
		if !strings.Contains(ContentSecurityPolicy, directive) {
			t.Errorf("CSP missing %q", directive)
		}
	}
	if strings.Contains(ContentSecurityPolicy, "unsafe-inline") {
		t.Error("CSP must not allow inline code")
	}
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package session provides cookie-identified visitor sessions. Each session
// carries the serialized storefront state of one visitor (category
// selection, cart panel flag and cart lines) and expires after a TTL.
// Payloads live in a pluggable Backend: Valkey in production, an in-process
// LRU for development and tests.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"storefront/internal/storefront"
)

const (
	// CookieName is the name of the session cookie sent to the browser.
	CookieName = "sf_session"

	// DefaultTTL is how long an idle session lives before expiry.
	DefaultTTL = 24 * time.Hour

	// idLength is the byte length of the random session ID (32 bytes = 64 hex chars).
	idLength = 32
)

// ErrNotFound is returned by a Backend when no payload exists for an ID.
var ErrNotFound = errors.New("session not found")

// Backend persists raw session payloads keyed by session ID.
type Backend interface {
	Load(ctx context.Context, id string) ([]byte, error)
	Save(ctx context.Context, id string, payload []byte, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// Data is the session payload. Fresh marks a session built in this request
// that has not been loaded from the backend.
type Data struct {
	ID        string           `json:"-"`
	Fresh     bool             `json:"-"`
	VisitorID uuid.UUID        `json:"visitor_id"`
	State     storefront.State `json:"state"`
	CreatedAt time.Time        `json:"created_at"`
}

// Store manages the session lifecycle on top of a Backend.
type Store struct {
	backend Backend
	ttl     time.Duration
	secure  bool
}

// NewStore creates a session store. A non-positive ttl falls back to
// DefaultTTL. When secure is true the cookie is marked Secure.
func NewStore(backend Backend, ttl time.Duration, secure bool) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		backend: backend,
		ttl:     ttl,
		secure:  secure,
	}
}

// TTL returns the session lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// New builds a fresh session with a random ID and visitor identity without
// persisting it.
func (s *Store) New() (*Data, error) {
	id, err := generateID()
	if err != nil {
		return nil, fmt.Errorf("session id: %w", err)
	}
	return &Data{
		ID:        id,
		Fresh:     true,
		VisitorID: uuid.New(),
		CreatedAt: time.Now(),
	}, nil
}

// Commit stores data and refreshes the session cookie. A fresh session
// becomes a stored one.
func (s *Store) Commit(ctx context.Context, w http.ResponseWriter, data *Data) error {
	if err := s.Save(ctx, data); err != nil {
		return err
	}
	data.Fresh = false
	s.SetCookie(w, data)
	return nil
}

// SetCookie writes the session cookie for data.
func (s *Store) SetCookie(w http.ResponseWriter, data *Data) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    data.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})
}

// Get loads the session referenced by the request cookie. Returns nil, nil
// when there is no cookie or the session has expired.
func (s *Store) Get(ctx context.Context, r *http.Request) (*Data, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	payload, err := s.backend.Load(ctx, cookie.Value)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("session unmarshal: %w", err)
	}
	data.ID = cookie.Value

	return &data, nil
}

// Save replaces the stored payload and resets its TTL.
func (s *Store) Save(ctx context.Context, data *Data) error {
	if data.ID == "" {
		return fmt.Errorf("session save: missing id")
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}

	if err := s.backend.Save(ctx, data.ID, payload, s.ttl); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

// Destroy removes the session and expires the cookie.
func (s *Store) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	if err := s.backend.Delete(ctx, cookie.Value); err != nil {
		return fmt.Errorf("session destroy: %w", err)
	}
	return nil
}

// generateID creates a cryptographically random session identifier.
func generateID() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

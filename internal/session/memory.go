// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package session

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultMemorySize caps the number of sessions held by a MemoryBackend.
const DefaultMemorySize = 10000

// MemoryBackend keeps session payloads in a bounded in-process LRU. Entries
// expire after the TTL given at construction; the per-call ttl of Save is
// ignored. Sessions do not survive a restart.
type MemoryBackend struct {
	lru *expirable.LRU[string, []byte]
}

// NewMemoryBackend creates an LRU backend holding at most size sessions.
func NewMemoryBackend(size int, ttl time.Duration) *MemoryBackend {
	if size <= 0 {
		size = DefaultMemorySize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryBackend{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (b *MemoryBackend) Load(_ context.Context, id string) ([]byte, error) {
	payload, ok := b.lru.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return payload, nil
}

func (b *MemoryBackend) Save(_ context.Context, id string, payload []byte, _ time.Duration) error {
	b.lru.Add(id, payload)
	return nil
}

func (b *MemoryBackend) Delete(_ context.Context, id string) error {
	b.lru.Remove(id)
	return nil
}

// Len reports the number of live sessions.
func (b *MemoryBackend) Len() int {
	return b.lru.Len()
}

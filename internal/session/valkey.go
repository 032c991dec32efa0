// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces session keys in Valkey.
const keyPrefix = "session:"

// ValkeyBackend stores session payloads in Valkey with native key expiry.
type ValkeyBackend struct {
	client *redis.Client
}

// NewValkeyBackend wraps a connected Valkey client.
func NewValkeyBackend(client *redis.Client) *ValkeyBackend {
	return &ValkeyBackend{client: client}
}

func (b *ValkeyBackend) Load(ctx context.Context, id string) ([]byte, error) {
	payload, err := b.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return payload, err
}

func (b *ValkeyBackend) Save(ctx context.Context, id string, payload []byte, ttl time.Duration) error {
	return b.client.Set(ctx, keyPrefix+id, payload, ttl).Err()
}

func (b *ValkeyBackend) Delete(ctx context.Context, id string) error {
	return b.client.Del(ctx, keyPrefix+id).Err()
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package preferences

import (
	"context"
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps preferences in Redis with a sliding expiry
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, s.ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// MemoryStore is used when no Redis address is configured, selections then
// only live in this process
type MemoryStore struct {
	values *lru.LRU[string, string]
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.values.Get(key)

	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.values.Add(key, value)

	return nil
}

func (s *MemoryStore) Clear(_ context.Context, key string) error {
	s.values.Remove(key)

	return nil
}

func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{values: lru.NewLRU[string, string](size, nil, ttl)}
}

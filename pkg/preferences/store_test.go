// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package preferences

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStores(t *testing.T) map[string]PreferenceStore {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return map[string]PreferenceStore{
		"redis":  NewRedisStore(client, time.Hour),
		"memory": NewMemoryStore(16, time.Hour),
	}
}

func TestPreferenceStores(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, found, err := store.Get(ctx, "k")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, store.Set(ctx, "k", "w1"))

			v, found, err := store.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "w1", v)

			require.NoError(t, store.Clear(ctx, "k"))

			_, found, err = store.Get(ctx, "k")
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestRedisStoreExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := NewRedisStore(client, time.Minute)
	require.NoError(t, store.Set(context.Background(), "k", "w1"))

	mr.FastForward(2 * time.Minute)

	_, found, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, found)
}

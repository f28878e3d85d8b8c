// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
)

// NewClient creates a Redis client and verifies connectivity
func NewClient(ctx context.Context, addr, password string, db int, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = monitor.SetDependencyAvailability(map[string]string{"component": "redis"}, 0)
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	_ = monitor.SetDependencyAvailability(map[string]string{"component": "redis"}, 1)
	logger.Infow("Redis client connected", "addr", addr)

	return rdb, nil
}

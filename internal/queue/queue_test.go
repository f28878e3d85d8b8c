// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package queue

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
)

func TestDispatcherSendInviteEmail(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	d := NewDispatcher(client, tracing.NewNoopTracer(), logging.NewNoopLogger())

	require.NoError(t, d.SendInviteEmail(context.Background(), "b@x.com", "http://app/invite/i1"))

	items, err := mr.List(QueueEmails)
	require.NoError(t, err)
	require.Len(t, items, 1)

	var job Job
	require.NoError(t, json.Unmarshal([]byte(items[0]), &job))
	assert.Equal(t, JobTypeInviteEmail, job.Type)
	assert.NotEmpty(t, job.ID)

	var payload InviteEmailPayload
	require.NoError(t, json.Unmarshal(job.Payload, &payload))
	assert.Equal(t, "b@x.com", payload.RecipientEmail)
	assert.Equal(t, "http://app/invite/i1", payload.Link)
}

func TestDispatcherRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	d := NewDispatcher(client, tracing.NewNoopTracer(), logging.NewNoopLogger())

	assert.Error(t, d.SendInviteEmail(context.Background(), "b@x.com", "link"))
}

func TestNoopDispatcher(t *testing.T) {
	assert.NoError(t, NewNoopDispatcher(logging.NewNoopLogger()).SendInviteEmail(context.Background(), "b@x.com", "link"))
}

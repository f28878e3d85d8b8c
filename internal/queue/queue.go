// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
)

const (
	// QueueEmails is the Redis list consumed by the mail worker
	QueueEmails = "fluzz:jobs:email"
)

type JobType string

const (
	JobTypeInviteEmail JobType = "invite_email"
)

type InviteEmailPayload struct {
	RecipientEmail string `json:"recipient_email"`
	Link           string `json:"link"`
}

// Job is the envelope pushed on the list
type Job struct {
	ID        string          `json:"id"`
	Type      JobType         `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Attempt   int             `json:"attempt"`
	CreatedAt time.Time       `json:"created_at"`
}

type Dispatcher struct {
	client *redis.Client

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (d *Dispatcher) SendInviteEmail(ctx context.Context, email, link string) error {
	ctx, span := d.tracer.Start(ctx, "queue.Dispatcher.SendInviteEmail")
	defer span.End()

	body, err := json.Marshal(InviteEmailPayload{RecipientEmail: email, Link: link})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}

	job := Job{
		ID:        id.String(),
		Type:      JobTypeInviteEmail,
		Payload:   body,
		CreatedAt: time.Now().UTC(),
	}

	raw, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}

	if err := d.client.RPush(ctx, QueueEmails, raw).Err(); err != nil {
		return fmt.Errorf("rpush: %w", err)
	}

	d.logger.Debugw("enqueued invite email job", "job_id", job.ID)

	return nil
}

func NewDispatcher(client *redis.Client, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Dispatcher {
	return &Dispatcher{client: client, tracer: tracer, logger: logger}
}

// NoopDispatcher drops notifications, used when no queue is configured
type NoopDispatcher struct {
	logger logging.LoggerInterface
}

func (d *NoopDispatcher) SendInviteEmail(ctx context.Context, email, link string) error {
	d.logger.Debugw("notification queue disabled, dropping invite email", "link", link)
	return nil
}

func NewNoopDispatcher(logger logging.LoggerInterface) *NoopDispatcher {
	return &NoopDispatcher{logger: logger}
}

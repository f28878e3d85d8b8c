// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/appfluzzio-bit/fluzz2/internal/db"
	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
)

var _ StorageInterface = (*Storage)(nil)

// Storage is the typed repository over the tenancy tables. Every lookup of a
// soft-deletable entity filters out rows with deleted_at set.
type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

type scanner interface {
	Scan(...any) error
}

type rows interface {
	scanner
	Next() bool
	Err() error
	Close() error
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}

	return id.String(), nil
}

// collect drains rows with the given scan function
func collect[T any](r rows, scan func(scanner) (*T, error)) ([]*T, error) {
	defer r.Close()

	items := make([]*T, 0)
	for r.Next() {
		item, err := scan(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, nil
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *v, Valid: true}
}

func fromNullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}

	s := v.String

	return &s
}

func fromNullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}

	t := v.Time

	return &t
}

// affected returns ErrNotFound when the statement touched no row
func affected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}

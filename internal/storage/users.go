// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

var userColumns = []string{"id", "name", "email", "phone", "created_at", "deleted_at"}

func scanUser(row scanner) (*types.User, error) {
	var (
		u         types.User
		phone     sql.NullString
		deletedAt sql.NullTime
	)

	if err := row.Scan(&u.ID, &u.Name, &u.Email, &phone, &u.CreatedAt, &deletedAt); err != nil {
		return nil, err
	}

	u.Phone = fromNullString(phone)
	u.DeletedAt = fromNullTime(deletedAt)

	return &u, nil
}

// UpsertUser creates the profile row of an identity, or refreshes name and
// phone when the row already exists. The email of an existing row never changes.
func (s *Storage) UpsertUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.UpsertUser")
	defer span.End()

	user, err := scanUser(
		s.db.Statement(ctx).
			Insert("users").
			Columns("id", "name", "email", "phone").
			Values(u.ID, u.Name, types.NormalizeEmail(u.Email), nullString(u.Phone)).
			Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, phone = COALESCE(EXCLUDED.phone, users.phone)").
			Suffix("RETURNING id, name, email, phone, created_at, deleted_at").
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "upsert user")
	}

	return user, nil
}

// GetUserByID returns the profile row including soft-deleted ones, callers
// decide what a deleted profile means for them
func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetUserByID")
	defer span.End()

	user, err := scanUser(
		s.db.Statement(ctx).
			Select(userColumns...).
			From("users").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "get user")
	}

	return user, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetUserByEmail")
	defer span.End()

	user, err := scanUser(
		s.db.Statement(ctx).
			Select(userColumns...).
			From("users").
			Where(sq.Eq{"lower(email)": types.NormalizeEmail(email), "deleted_at": nil}).
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "get user by email")
	}

	return user, nil
}

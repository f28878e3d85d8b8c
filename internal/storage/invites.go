// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

var inviteColumns = []string{
	"id", "organization_id", "workspace_id", "email", "role", "status",
	"expires_at", "invited_by", "metadata", "created_at",
}

const inviteReturning = "RETURNING id, organization_id, workspace_id, email, role, status, expires_at, invited_by, metadata, created_at"

func scanInvite(row scanner) (*types.Invite, error) {
	var (
		i           types.Invite
		workspaceID sql.NullString
		metadata    []byte
	)

	err := row.Scan(
		&i.ID, &i.OrganizationID, &workspaceID, &i.Email, &i.Role, &i.Status,
		&i.ExpiresAt, &i.InvitedBy, &metadata, &i.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	i.WorkspaceID = fromNullString(workspaceID)

	if len(metadata) > 0 {
		i.Metadata = new(types.InviteMetadata)
		if err := json.Unmarshal(metadata, i.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode invite metadata: %w", err)
		}
	}

	return &i, nil
}

func encodeMetadata(m *types.InviteMetadata) (any, error) {
	if m == nil {
		return nil, nil
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode invite metadata: %w", err)
	}

	return string(b), nil
}

// CreateInvite inserts a pending invite, a second pending invite for the same
// organization and email violates invites_pending_unique and yields ErrDuplicateKey
func (s *Storage) CreateInvite(ctx context.Context, i *types.Invite) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateInvite")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	metadata, err := encodeMetadata(i.Metadata)
	if err != nil {
		return nil, err
	}

	invite, err := scanInvite(
		s.db.Statement(ctx).
			Insert("invites").
			Columns("id", "organization_id", "workspace_id", "email", "role", "status", "expires_at", "invited_by", "metadata", "created_at").
			Values(
				id, i.OrganizationID, nullString(i.WorkspaceID), types.NormalizeEmail(i.Email), i.Role,
				types.InviteStatusPending, i.ExpiresAt, i.InvitedBy, metadata, i.CreatedAt,
			).
			Suffix(inviteReturning).
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "insert invite")
	}

	return invite, nil
}

func (s *Storage) GetInviteByID(ctx context.Context, id string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetInviteByID")
	defer span.End()

	invite, err := scanInvite(
		s.db.Statement(ctx).
			Select(inviteColumns...).
			From("invites").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "get invite")
	}

	return invite, nil
}

// FindPendingInvite returns the pending invite of the email that has not
// expired at now
func (s *Storage) FindPendingInvite(ctx context.Context, orgID, email string, now time.Time) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.FindPendingInvite")
	defer span.End()

	invite, err := scanInvite(
		s.db.Statement(ctx).
			Select(inviteColumns...).
			From("invites").
			Where(sq.Eq{"organization_id": orgID, "email": types.NormalizeEmail(email), "status": types.InviteStatusPending}).
			Where(sq.Gt{"expires_at": now}).
			Limit(1).
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "find pending invite")
	}

	return invite, nil
}

// ExpireStaleInvites persists the expired state of pending invites past their
// expiry, freeing the pending slot of the email
func (s *Storage) ExpireStaleInvites(ctx context.Context, orgID, email string, now time.Time) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ExpireStaleInvites")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invites").
		Set("status", types.InviteStatusExpired).
		Where(sq.Eq{"organization_id": orgID, "email": types.NormalizeEmail(email), "status": types.InviteStatusPending}).
		Where(sq.LtOrEq{"expires_at": now}).
		ExecContext(ctx)

	if err != nil {
		return 0, mapError(err, "expire stale invites")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, mapError(err, "expire stale invites")
	}

	return n, nil
}

// TransitionInvite moves the invite from one status to another, ErrNotFound is
// returned when the invite is no longer in the expected status
func (s *Storage) TransitionInvite(ctx context.Context, id string, from, to types.InviteStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.TransitionInvite")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invites").
		Set("status", to).
		Where(sq.Eq{"id": id, "status": from}).
		ExecContext(ctx)

	if err != nil {
		return mapError(err, "update invite status")
	}

	return affected(res, "update invite status")
}

func (s *Storage) ListPendingInvites(ctx context.Context, orgID string) ([]*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListPendingInvites")
	defer span.End()

	r, err := s.db.Statement(ctx).
		Select(inviteColumns...).
		From("invites").
		Where(sq.Eq{"organization_id": orgID, "status": types.InviteStatusPending}).
		OrderBy("created_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, mapError(err, "list invites")
	}

	return collect(r, scanInvite)
}

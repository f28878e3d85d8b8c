// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/appfluzzio-bit/fluzz2/internal/db"
	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

func newTestStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor()
	logger := logging.NewNoopLogger()

	client := db.NewDBClientFromDB(conn, tracer, monitor, logger)

	return NewStorage(client, tracer, monitor, logger), mock
}

func TestGetOrganizationMember(t *testing.T) {
	query := regexp.QuoteMeta("SELECT m.id, m.organization_id, m.user_id, m.role, m.created_at FROM organization_members m JOIN organizations o ON o.id = m.organization_id WHERE m.organization_id = $1 AND m.user_id = $2 AND o.deleted_at IS NULL")
	now := time.Now()

	testCases := []struct {
		name         string
		setup        func(sqlmock.Sqlmock)
		expectedRole types.OrganizationRole
		expectedErr  error
	}{
		{
			name: "member found",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).
					WithArgs("o1", "u1").
					WillReturnRows(sqlmock.NewRows(organizationMemberColumns).AddRow("m1", "o1", "u1", "owner", now))
			},
			expectedRole: types.OrganizationRoleOwner,
		},
		{
			name: "absent row maps to ErrNotFound",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).
					WithArgs("o1", "u1").
					WillReturnRows(sqlmock.NewRows(organizationMemberColumns))
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "membership of a soft-deleted organization is not resolved",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).
					WithArgs("o1", "u1").
					WillReturnRows(sqlmock.NewRows(organizationMemberColumns))
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := newTestStorage(t)
			tc.setup(mock)

			member, err := s.GetOrganizationMember(context.Background(), "o1", "u1")

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}

			if tc.expectedErr == nil && member.Role != tc.expectedRole {
				t.Errorf("expected role %s, got %s", tc.expectedRole, member.Role)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestListWorkspacesByOrganizationExcludesDeleted(t *testing.T) {
	s, mock := newTestStorage(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, organization_id, name, slug, created_at, deleted_at FROM workspaces WHERE deleted_at IS NULL AND organization_id = $1 ORDER BY created_at ASC")).
		WithArgs("o1").
		WillReturnRows(
			sqlmock.NewRows(workspaceColumns).
				AddRow("w1", "o1", "Sales", "sales", now, nil).
				AddRow("w2", "o1", "Support", nil, now.Add(time.Minute), nil),
		)

	workspaces, err := s.ListWorkspacesByOrganization(context.Background(), "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(workspaces) != 2 {
		t.Fatalf("expected 2 workspaces, got %d", len(workspaces))
	}

	if workspaces[0].Slug == nil || *workspaces[0].Slug != "sales" {
		t.Errorf("expected slug sales, got %v", workspaces[0].Slug)
	}

	if workspaces[1].Slug != nil {
		t.Errorf("expected no slug, got %v", *workspaces[1].Slug)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListWorkspacesByMember(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM workspaces w JOIN workspace_members m ON m.workspace_id = w.id WHERE m.user_id = $1 AND w.deleted_at IS NULL AND w.organization_id = $2 ORDER BY w.created_at ASC")).
		WithArgs("u1", "o1").
		WillReturnRows(sqlmock.NewRows(workspaceColumns).AddRow("w1", "o1", "Sales", nil, time.Now(), nil))

	workspaces, err := s.ListWorkspacesByMember(context.Background(), "o1", "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(workspaces) != 1 || workspaces[0].ID != "w1" {
		t.Errorf("expected only w1, got %v", workspaces)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateInviteDuplicatePending(t *testing.T) {
	s, mock := newTestStorage(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO invites").
		WillReturnError(&pgconn.PgError{Code: pgErrCodeUniqueViolation, ConstraintName: "invites_pending_unique"})

	_, err := s.CreateInvite(context.Background(), &types.Invite{
		OrganizationID: "o1",
		Email:          "B@x.com",
		Role:           "admin",
		ExpiresAt:      now.Add(7 * 24 * time.Hour),
		InvitedBy:      "u1",
		CreatedAt:      now,
	})

	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestGetInviteByIDDecodesMetadata(t *testing.T) {
	s, mock := newTestStorage(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM invites WHERE id = $1")).
		WithArgs("i1").
		WillReturnRows(
			sqlmock.NewRows(inviteColumns).AddRow(
				"i1", "o1", "w1", "b@x.com", "agent", "pending", now.Add(time.Hour), "u1",
				[]byte(`{"name":"Bea","phone":"+5511999999999","is_organization_user":false}`), now,
			),
		)

	invite, err := s.GetInviteByID(context.Background(), "i1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if invite.Metadata == nil || invite.Metadata.Name != "Bea" {
		t.Fatalf("expected metadata name Bea, got %+v", invite.Metadata)
	}

	if invite.WorkspaceID == nil || *invite.WorkspaceID != "w1" {
		t.Errorf("expected workspace w1, got %v", invite.WorkspaceID)
	}

	if invite.Status != types.InviteStatusPending {
		t.Errorf("expected pending status, got %s", invite.Status)
	}
}

func TestTransitionInvite(t *testing.T) {
	testCases := []struct {
		name        string
		affected    int64
		expectedErr error
	}{
		{name: "pending invite is accepted", affected: 1},
		{name: "invite no longer pending", affected: 0, expectedErr: ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := newTestStorage(t)

			mock.ExpectExec(regexp.QuoteMeta("UPDATE invites SET status = $1 WHERE id = $2 AND status = $3")).
				WithArgs("accepted", "i1", "pending").
				WillReturnResult(sqlmock.NewResult(0, tc.affected))

			err := s.TransitionInvite(context.Background(), "i1", types.InviteStatusPending, types.InviteStatusAccepted)

			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestExpireStaleInvites(t *testing.T) {
	s, mock := newTestStorage(t)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE invites SET status = $1 WHERE email = $2 AND organization_id = $3 AND status = $4 AND expires_at <= $5")).
		WithArgs("expired", "b@x.com", "o1", "pending", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := s.ExpireStaleInvites(context.Background(), "o1", " B@X.com ", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n != 1 {
		t.Errorf("expected 1 expired invite, got %d", n)
	}
}

func TestAddWorkspaceMembers(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectExec(`INSERT INTO workspace_members \(id,workspace_id,user_id,role\) VALUES \(.+\),\(.+\),\(.+\) ON CONFLICT \(workspace_id, user_id\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := s.AddWorkspaceMembers(context.Background(), "u2", types.WorkspaceRoleAdmin, []string{"w1", "w2", "w3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n != 3 {
		t.Errorf("expected 3 rows, got %d", n)
	}

	if n, err := s.AddWorkspaceMembers(context.Background(), "u2", types.WorkspaceRoleAdmin, nil); err != nil || n != 0 {
		t.Errorf("expected no statement for an empty list, got %d, %v", n, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRemoveWorkspaceMemberNotFound(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM workspace_members WHERE id = $1 AND workspace_id = $2")).
		WithArgs("m1", "w1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.RemoveWorkspaceMember(context.Background(), "w1", "m1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetUserByEmailNormalizes(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE deleted_at IS NULL AND lower(email) = $1")).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("u1", "Ana", "a@x.com", nil, time.Now(), nil))

	user, err := s.GetUserByEmail(context.Background(), "A@X.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Phone != nil || user.DeletedAt != nil {
		t.Errorf("expected nullable fields to be nil, got %+v", user)
	}
}

func TestUpsertUserKeepsEmailOnConflict(t *testing.T) {
	s, mock := newTestStorage(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (id,name,email,phone) VALUES ($1,$2,$3,$4) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, phone = COALESCE(EXCLUDED.phone, users.phone) RETURNING id, name, email, phone, created_at, deleted_at")).
		WithArgs("u1", "Eve", "evil@x.com", nil).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("u1", "Eve", "ana@x.com", nil, now, nil))

	user, err := s.UpsertUser(context.Background(), &types.User{ID: "u1", Name: "Eve", Email: " Evil@x.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Email != "ana@x.com" {
		t.Errorf("expected the stored email to survive, got %s", user.Email)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

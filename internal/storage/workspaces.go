// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

var (
	workspaceColumns       = []string{"id", "organization_id", "name", "slug", "created_at", "deleted_at"}
	workspaceMemberColumns = []string{"id", "workspace_id", "user_id", "role", "created_at"}
)

func scanWorkspace(row scanner) (*types.Workspace, error) {
	var (
		w         types.Workspace
		slug      sql.NullString
		deletedAt sql.NullTime
	)

	if err := row.Scan(&w.ID, &w.OrganizationID, &w.Name, &slug, &w.CreatedAt, &deletedAt); err != nil {
		return nil, err
	}

	w.Slug = fromNullString(slug)
	w.DeletedAt = fromNullTime(deletedAt)

	return &w, nil
}

func scanWorkspaceMember(row scanner) (*types.WorkspaceMember, error) {
	var m types.WorkspaceMember

	if err := row.Scan(&m.ID, &m.WorkspaceID, &m.UserID, &m.Role, &m.CreatedAt); err != nil {
		return nil, err
	}

	return &m, nil
}

func (s *Storage) CreateWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateWorkspace")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	ws, err := scanWorkspace(
		s.db.Statement(ctx).
			Insert("workspaces").
			Columns("id", "organization_id", "name", "slug").
			Values(id, w.OrganizationID, w.Name, nullString(w.Slug)).
			Suffix("RETURNING id, organization_id, name, slug, created_at, deleted_at").
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "insert workspace")
	}

	return ws, nil
}

func (s *Storage) GetWorkspaceByID(ctx context.Context, id string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetWorkspaceByID")
	defer span.End()

	ws, err := scanWorkspace(
		s.db.Statement(ctx).
			Select(workspaceColumns...).
			From("workspaces").
			Where(sq.Eq{"id": id, "deleted_at": nil}).
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "get workspace")
	}

	return ws, nil
}

func (s *Storage) GetWorkspaceBySlug(ctx context.Context, orgID, slug string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetWorkspaceBySlug")
	defer span.End()

	ws, err := scanWorkspace(
		s.db.Statement(ctx).
			Select(workspaceColumns...).
			From("workspaces").
			Where(sq.Eq{"organization_id": orgID, "slug": slug, "deleted_at": nil}).
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "get workspace by slug")
	}

	return ws, nil
}

func (s *Storage) UpdateWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.UpdateWorkspace")
	defer span.End()

	ws, err := scanWorkspace(
		s.db.Statement(ctx).
			Update("workspaces").
			Set("name", w.Name).
			Set("slug", nullString(w.Slug)).
			Where(sq.Eq{"id": w.ID, "deleted_at": nil}).
			Suffix("RETURNING id, organization_id, name, slug, created_at, deleted_at").
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "update workspace")
	}

	return ws, nil
}

func (s *Storage) SoftDeleteWorkspace(ctx context.Context, id string, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.SoftDeleteWorkspace")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("workspaces").
		Set("deleted_at", at).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return mapError(err, "delete workspace")
	}

	return affected(res, "delete workspace")
}

// ListWorkspacesByOrganization returns every live workspace of the organization
// ordered by creation time
func (s *Storage) ListWorkspacesByOrganization(ctx context.Context, orgID string) ([]*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListWorkspacesByOrganization")
	defer span.End()

	r, err := s.db.Statement(ctx).
		Select(workspaceColumns...).
		From("workspaces").
		Where(sq.Eq{"organization_id": orgID, "deleted_at": nil}).
		OrderBy("created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, mapError(err, "list workspaces")
	}

	return collect(r, scanWorkspace)
}

// ListWorkspacesByMember returns the live workspaces of the organization where
// the user holds an explicit membership row
func (s *Storage) ListWorkspacesByMember(ctx context.Context, orgID, userID string) ([]*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListWorkspacesByMember")
	defer span.End()

	r, err := s.db.Statement(ctx).
		Select("w.id", "w.organization_id", "w.name", "w.slug", "w.created_at", "w.deleted_at").
		From("workspaces w").
		Join("workspace_members m ON m.workspace_id = w.id").
		Where(sq.Eq{"w.organization_id": orgID, "m.user_id": userID, "w.deleted_at": nil}).
		OrderBy("w.created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, mapError(err, "list member workspaces")
	}

	return collect(r, scanWorkspace)
}

func (s *Storage) AddWorkspaceMember(ctx context.Context, workspaceID, userID string, role types.WorkspaceRole) (*types.WorkspaceMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.AddWorkspaceMember")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	m, err := scanWorkspaceMember(
		s.db.Statement(ctx).
			Insert("workspace_members").
			Columns("id", "workspace_id", "user_id", "role").
			Values(id, workspaceID, userID, role).
			Suffix("RETURNING id, workspace_id, user_id, role, created_at").
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "add workspace member")
	}

	return m, nil
}

// AddWorkspaceMembers enrolls the user in all the given workspaces with one
// statement, existing memberships are left as they are
func (s *Storage) AddWorkspaceMembers(ctx context.Context, userID string, role types.WorkspaceRole, workspaceIDs []string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.AddWorkspaceMembers")
	defer span.End()

	if len(workspaceIDs) == 0 {
		return 0, nil
	}

	q := s.db.Statement(ctx).
		Insert("workspace_members").
		Columns("id", "workspace_id", "user_id", "role")

	for _, workspaceID := range workspaceIDs {
		id, err := newID()
		if err != nil {
			return 0, err
		}

		q = q.Values(id, workspaceID, userID, role)
	}

	res, err := q.Suffix("ON CONFLICT (workspace_id, user_id) DO NOTHING").ExecContext(ctx)
	if err != nil {
		return 0, mapError(err, "add workspace members")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, mapError(err, "add workspace members")
	}

	return n, nil
}

func (s *Storage) GetWorkspaceMember(ctx context.Context, workspaceID, userID string) (*types.WorkspaceMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetWorkspaceMember")
	defer span.End()

	m, err := scanWorkspaceMember(
		s.db.Statement(ctx).
			Select(workspaceMemberColumns...).
			From("workspace_members").
			Where(sq.Eq{"workspace_id": workspaceID, "user_id": userID}).
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "get workspace member")
	}

	return m, nil
}

func (s *Storage) GetWorkspaceMemberByID(ctx context.Context, workspaceID, memberID string) (*types.WorkspaceMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetWorkspaceMemberByID")
	defer span.End()

	m, err := scanWorkspaceMember(
		s.db.Statement(ctx).
			Select(workspaceMemberColumns...).
			From("workspace_members").
			Where(sq.Eq{"id": memberID, "workspace_id": workspaceID}).
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "get workspace member")
	}

	return m, nil
}

func (s *Storage) RemoveWorkspaceMember(ctx context.Context, workspaceID, memberID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.RemoveWorkspaceMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("workspace_members").
		Where(sq.Eq{"id": memberID, "workspace_id": workspaceID}).
		ExecContext(ctx)

	if err != nil {
		return mapError(err, "remove workspace member")
	}

	return affected(res, "remove workspace member")
}

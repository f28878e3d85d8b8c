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

var departmentColumns = []string{"id", "workspace_id", "name", "created_at", "deleted_at"}

func scanDepartment(row scanner) (*types.Department, error) {
	var (
		d         types.Department
		deletedAt sql.NullTime
	)

	if err := row.Scan(&d.ID, &d.WorkspaceID, &d.Name, &d.CreatedAt, &deletedAt); err != nil {
		return nil, err
	}

	d.DeletedAt = fromNullTime(deletedAt)

	return &d, nil
}

func scanDepartmentMember(row scanner) (*types.DepartmentMember, error) {
	var m types.DepartmentMember

	if err := row.Scan(&m.ID, &m.DepartmentID, &m.UserID, &m.Role, &m.CreatedAt); err != nil {
		return nil, err
	}

	return &m, nil
}

func (s *Storage) CreateDepartment(ctx context.Context, d *types.Department) (*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateDepartment")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	dep, err := scanDepartment(
		s.db.Statement(ctx).
			Insert("departments").
			Columns("id", "workspace_id", "name").
			Values(id, d.WorkspaceID, d.Name).
			Suffix("RETURNING id, workspace_id, name, created_at, deleted_at").
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "insert department")
	}

	return dep, nil
}

// GetDepartment looks the department up inside its workspace
func (s *Storage) GetDepartment(ctx context.Context, workspaceID, id string) (*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetDepartment")
	defer span.End()

	dep, err := scanDepartment(
		s.db.Statement(ctx).
			Select(departmentColumns...).
			From("departments").
			Where(sq.Eq{"id": id, "workspace_id": workspaceID, "deleted_at": nil}).
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "get department")
	}

	return dep, nil
}

func (s *Storage) UpdateDepartment(ctx context.Context, d *types.Department) (*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.UpdateDepartment")
	defer span.End()

	dep, err := scanDepartment(
		s.db.Statement(ctx).
			Update("departments").
			Set("name", d.Name).
			Where(sq.Eq{"id": d.ID, "workspace_id": d.WorkspaceID, "deleted_at": nil}).
			Suffix("RETURNING id, workspace_id, name, created_at, deleted_at").
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "update department")
	}

	return dep, nil
}

func (s *Storage) SoftDeleteDepartment(ctx context.Context, workspaceID, id string, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.SoftDeleteDepartment")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("departments").
		Set("deleted_at", at).
		Where(sq.Eq{"id": id, "workspace_id": workspaceID, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return mapError(err, "delete department")
	}

	return affected(res, "delete department")
}

func (s *Storage) ListDepartmentsByWorkspace(ctx context.Context, workspaceID string) ([]*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListDepartmentsByWorkspace")
	defer span.End()

	r, err := s.db.Statement(ctx).
		Select(departmentColumns...).
		From("departments").
		Where(sq.Eq{"workspace_id": workspaceID, "deleted_at": nil}).
		OrderBy("created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, mapError(err, "list departments")
	}

	return collect(r, scanDepartment)
}

func (s *Storage) AddDepartmentMember(ctx context.Context, departmentID, userID string, role types.DepartmentRole) (*types.DepartmentMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.AddDepartmentMember")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	m, err := scanDepartmentMember(
		s.db.Statement(ctx).
			Insert("department_members").
			Columns("id", "department_id", "user_id", "role").
			Values(id, departmentID, userID, role).
			Suffix("RETURNING id, department_id, user_id, role, created_at").
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "add department member")
	}

	return m, nil
}

func (s *Storage) RemoveDepartmentMember(ctx context.Context, departmentID, memberID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.RemoveDepartmentMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("department_members").
		Where(sq.Eq{"id": memberID, "department_id": departmentID}).
		ExecContext(ctx)

	if err != nil {
		return mapError(err, "remove department member")
	}

	return affected(res, "remove department member")
}

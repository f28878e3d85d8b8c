// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

var organizationMemberColumns = []string{"id", "organization_id", "user_id", "role", "created_at"}

func scanOrganization(row scanner) (*types.Organization, error) {
	var (
		o         types.Organization
		deletedAt sql.NullTime
	)

	if err := row.Scan(&o.ID, &o.Name, &o.Timezone, &o.Currency, &o.CreatedAt, &deletedAt); err != nil {
		return nil, err
	}

	o.DeletedAt = fromNullTime(deletedAt)

	return &o, nil
}

func scanOrganizationMember(row scanner) (*types.OrganizationMember, error) {
	var m types.OrganizationMember

	if err := row.Scan(&m.ID, &m.OrganizationID, &m.UserID, &m.Role, &m.CreatedAt); err != nil {
		return nil, err
	}

	return &m, nil
}

func (s *Storage) CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateOrganization")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	org, err := scanOrganization(
		s.db.Statement(ctx).
			Insert("organizations").
			Columns("id", "name", "timezone", "currency").
			Values(id, o.Name, o.Timezone, o.Currency).
			Suffix("RETURNING id, name, timezone, currency, created_at, deleted_at").
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "insert organization")
	}

	return org, nil
}

func (s *Storage) GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetOrganizationByID")
	defer span.End()

	org, err := scanOrganization(
		s.db.Statement(ctx).
			Select("id", "name", "timezone", "currency", "created_at", "deleted_at").
			From("organizations").
			Where(sq.Eq{"id": id, "deleted_at": nil}).
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "get organization")
	}

	return org, nil
}

// ListOrganizationsByUserID returns the live organizations the user belongs to,
// oldest membership first
func (s *Storage) ListOrganizationsByUserID(ctx context.Context, userID string) ([]*types.UserOrganization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListOrganizationsByUserID")
	defer span.End()

	r, err := s.db.Statement(ctx).
		Select("o.id", "o.name", "o.timezone", "o.currency", "o.created_at", "o.deleted_at", "m.role").
		From("organizations o").
		Join("organization_members m ON m.organization_id = o.id").
		Where(sq.Eq{"m.user_id": userID, "o.deleted_at": nil}).
		OrderBy("m.created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, mapError(err, "list organizations")
	}

	return collect(r, func(row scanner) (*types.UserOrganization, error) {
		var (
			uo        types.UserOrganization
			deletedAt sql.NullTime
		)

		if err := row.Scan(&uo.ID, &uo.Name, &uo.Timezone, &uo.Currency, &uo.CreatedAt, &deletedAt, &uo.Role); err != nil {
			return nil, err
		}

		uo.DeletedAt = fromNullTime(deletedAt)

		return &uo, nil
	})
}

func (s *Storage) AddOrganizationMember(ctx context.Context, orgID, userID string, role types.OrganizationRole) (*types.OrganizationMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.AddOrganizationMember")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	m, err := scanOrganizationMember(
		s.db.Statement(ctx).
			Insert("organization_members").
			Columns("id", "organization_id", "user_id", "role").
			Values(id, orgID, userID, role).
			Suffix("RETURNING id, organization_id, user_id, role, created_at").
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "add organization member")
	}

	return m, nil
}

// GetOrganizationMember only resolves memberships of live organizations
func (s *Storage) GetOrganizationMember(ctx context.Context, orgID, userID string) (*types.OrganizationMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetOrganizationMember")
	defer span.End()

	m, err := scanOrganizationMember(
		s.db.Statement(ctx).
			Select("m.id", "m.organization_id", "m.user_id", "m.role", "m.created_at").
			From("organization_members m").
			Join("organizations o ON o.id = m.organization_id").
			Where(sq.Eq{"m.organization_id": orgID, "m.user_id": userID, "o.deleted_at": nil}).
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "get organization member")
	}

	return m, nil
}

func (s *Storage) GetOrganizationMemberByID(ctx context.Context, orgID, memberID string) (*types.OrganizationMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetOrganizationMemberByID")
	defer span.End()

	m, err := scanOrganizationMember(
		s.db.Statement(ctx).
			Select(organizationMemberColumns...).
			From("organization_members").
			Where(sq.Eq{"id": memberID, "organization_id": orgID}).
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, mapError(err, "get organization member")
	}

	return m, nil
}

func (s *Storage) ListOrganizationMembers(ctx context.Context, orgID string) ([]*types.OrganizationMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListOrganizationMembers")
	defer span.End()

	r, err := s.db.Statement(ctx).
		Select(organizationMemberColumns...).
		From("organization_members").
		Where(sq.Eq{"organization_id": orgID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, mapError(err, "list organization members")
	}

	return collect(r, scanOrganizationMember)
}

func (s *Storage) CountOrganizationOwners(ctx context.Context, orgID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CountOrganizationOwners")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("organization_members").
		Where(sq.Eq{"organization_id": orgID, "role": types.OrganizationRoleOwner}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, mapError(err, "count organization owners")
	}

	return count, nil
}

// RemoveOrganizationMember deletes the membership row, the user profile is untouched
func (s *Storage) RemoveOrganizationMember(ctx context.Context, orgID, memberID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.RemoveOrganizationMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("organization_members").
		Where(sq.Eq{"id": memberID, "organization_id": orgID}).
		ExecContext(ctx)

	if err != nil {
		return mapError(err, "remove organization member")
	}

	return affected(res, "remove organization member")
}

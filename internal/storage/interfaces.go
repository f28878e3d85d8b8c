// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

type StorageInterface interface {
	UpsertUser(context.Context, *types.User) (*types.User, error)
	GetUserByID(context.Context, string) (*types.User, error)
	GetUserByEmail(context.Context, string) (*types.User, error)

	CreateOrganization(context.Context, *types.Organization) (*types.Organization, error)
	GetOrganizationByID(context.Context, string) (*types.Organization, error)
	ListOrganizationsByUserID(context.Context, string) ([]*types.UserOrganization, error)
	AddOrganizationMember(context.Context, string, string, types.OrganizationRole) (*types.OrganizationMember, error)
	GetOrganizationMember(context.Context, string, string) (*types.OrganizationMember, error)
	GetOrganizationMemberByID(context.Context, string, string) (*types.OrganizationMember, error)
	ListOrganizationMembers(context.Context, string) ([]*types.OrganizationMember, error)
	CountOrganizationOwners(context.Context, string) (int, error)
	RemoveOrganizationMember(context.Context, string, string) error

	CreateWorkspace(context.Context, *types.Workspace) (*types.Workspace, error)
	GetWorkspaceByID(context.Context, string) (*types.Workspace, error)
	GetWorkspaceBySlug(context.Context, string, string) (*types.Workspace, error)
	UpdateWorkspace(context.Context, *types.Workspace) (*types.Workspace, error)
	SoftDeleteWorkspace(context.Context, string, time.Time) error
	ListWorkspacesByOrganization(context.Context, string) ([]*types.Workspace, error)
	ListWorkspacesByMember(context.Context, string, string) ([]*types.Workspace, error)
	AddWorkspaceMember(context.Context, string, string, types.WorkspaceRole) (*types.WorkspaceMember, error)
	AddWorkspaceMembers(context.Context, string, types.WorkspaceRole, []string) (int64, error)
	GetWorkspaceMember(context.Context, string, string) (*types.WorkspaceMember, error)
	GetWorkspaceMemberByID(context.Context, string, string) (*types.WorkspaceMember, error)
	RemoveWorkspaceMember(context.Context, string, string) error

	CreateDepartment(context.Context, *types.Department) (*types.Department, error)
	GetDepartment(context.Context, string, string) (*types.Department, error)
	UpdateDepartment(context.Context, *types.Department) (*types.Department, error)
	SoftDeleteDepartment(context.Context, string, string, time.Time) error
	ListDepartmentsByWorkspace(context.Context, string) ([]*types.Department, error)
	AddDepartmentMember(context.Context, string, string, types.DepartmentRole) (*types.DepartmentMember, error)
	RemoveDepartmentMember(context.Context, string, string) error

	CreateInvite(context.Context, *types.Invite) (*types.Invite, error)
	GetInviteByID(context.Context, string) (*types.Invite, error)
	FindPendingInvite(context.Context, string, string, time.Time) (*types.Invite, error)
	ExpireStaleInvites(context.Context, string, string, time.Time) (int64, error)
	TransitionInvite(context.Context, string, types.InviteStatus, types.InviteStatus) error
	ListPendingInvites(context.Context, string) ([]*types.Invite, error)
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"context"

	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package permissions -destination ./mock_interfaces.go -source=./interfaces.go

type StorageInterface interface {
	GetOrganizationMember(context.Context, string, string) (*types.OrganizationMember, error)
	GetWorkspaceByID(context.Context, string) (*types.Workspace, error)
	GetWorkspaceMember(context.Context, string, string) (*types.WorkspaceMember, error)
	ListWorkspacesByOrganization(context.Context, string) ([]*types.Workspace, error)
	ListWorkspacesByMember(context.Context, string, string) ([]*types.Workspace, error)
}

type ServiceInterface interface {
	IsOrgAdmin(context.Context, string, string) (bool, error)
	IsOrgOwner(context.Context, string, string) (bool, error)
	CanManageWorkspaces(context.Context, string, string) (bool, error)
	CanManageWorkspaceMembers(context.Context, string, string) (bool, error)
	CanManageDepartments(context.Context, string, string) (bool, error)
	GetOrgRole(context.Context, string, string) (*types.OrganizationRole, error)
	GetWorkspaceRole(context.Context, string, string) (*types.WorkspaceRole, error)
	GetUserWorkspaces(context.Context, string, string) ([]*types.Workspace, error)
}

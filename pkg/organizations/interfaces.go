// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"

	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package organizations -destination ./mock_interfaces.go -source=./interfaces.go

type StorageInterface interface {
	UpsertUser(context.Context, *types.User) (*types.User, error)
	CreateOrganization(context.Context, *types.Organization) (*types.Organization, error)
	AddOrganizationMember(context.Context, string, string, types.OrganizationRole) (*types.OrganizationMember, error)
	CreateWorkspace(context.Context, *types.Workspace) (*types.Workspace, error)
	AddWorkspaceMember(context.Context, string, string, types.WorkspaceRole) (*types.WorkspaceMember, error)
	ListOrganizationMembers(context.Context, string) ([]*types.OrganizationMember, error)
	GetOrganizationMemberByID(context.Context, string, string) (*types.OrganizationMember, error)
	CountOrganizationOwners(context.Context, string) (int, error)
	RemoveOrganizationMember(context.Context, string, string) error
}

type TxManagerInterface interface {
	WithTx(context.Context, func(context.Context) error) error
}

type PermissionsInterface interface {
	IsOrgAdmin(context.Context, string, string) (bool, error)
}

type CacheInterface interface {
	InvalidateOrganization(string)
}

type AuthorizerInterface interface {
	AssignOrganizationMember(context.Context, string, string, types.OrganizationRole) error
	RemoveOrganizationMember(context.Context, string, string, types.OrganizationRole) error
	LinkWorkspace(context.Context, string, string) error
	AssignWorkspaceMembers(context.Context, string, types.WorkspaceRole, ...string) error
}

type ServiceInterface interface {
	Create(context.Context, *types.User, *CreateRequest) (*Onboarding, error)
	Members(context.Context, string, string) ([]*types.OrganizationMember, error)
	RemoveMember(context.Context, string, string, string) error
}

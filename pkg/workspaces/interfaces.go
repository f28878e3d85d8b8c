// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspaces

import (
	"context"
	"time"

	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package workspaces -destination ./mock_interfaces.go -source=./interfaces.go

type StorageInterface interface {
	CreateWorkspace(context.Context, *types.Workspace) (*types.Workspace, error)
	GetWorkspaceByID(context.Context, string) (*types.Workspace, error)
	GetWorkspaceBySlug(context.Context, string, string) (*types.Workspace, error)
	UpdateWorkspace(context.Context, *types.Workspace) (*types.Workspace, error)
	SoftDeleteWorkspace(context.Context, string, time.Time) error
	AddWorkspaceMember(context.Context, string, string, types.WorkspaceRole) (*types.WorkspaceMember, error)
	GetWorkspaceMemberByID(context.Context, string, string) (*types.WorkspaceMember, error)
	RemoveWorkspaceMember(context.Context, string, string) error
}

type PermissionsInterface interface {
	CanManageWorkspaces(context.Context, string, string) (bool, error)
	CanManageWorkspaceMembers(context.Context, string, string) (bool, error)
	GetUserWorkspaces(context.Context, string, string) ([]*types.Workspace, error)
}

type CacheInterface interface {
	Get(string, string) ([]*types.Workspace, bool)
	Set(string, string, []*types.Workspace)
	InvalidateOrganization(string)
}

type AuthorizerInterface interface {
	LinkWorkspace(context.Context, string, string) error
	AssignWorkspaceMembers(context.Context, string, types.WorkspaceRole, ...string) error
	RemoveWorkspaceMember(context.Context, string, string, types.WorkspaceRole) error
	DeleteWorkspace(context.Context, string) error
}

type ServiceInterface interface {
	Create(context.Context, string, string, *CreateRequest) (*types.Workspace, error)
	Update(context.Context, string, string, string, *UpdateRequest) (*types.Workspace, error)
	Delete(context.Context, string, string, string) error
	List(context.Context, string, string) ([]*types.Workspace, error)
	RemoveMember(context.Context, string, string, string) error
}

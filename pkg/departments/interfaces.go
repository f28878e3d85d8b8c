// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package departments

import (
	"context"
	"time"

	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package departments -destination ./mock_interfaces.go -source=./interfaces.go

type StorageInterface interface {
	GetWorkspaceByID(context.Context, string) (*types.Workspace, error)
	GetWorkspaceMember(context.Context, string, string) (*types.WorkspaceMember, error)
	CreateDepartment(context.Context, *types.Department) (*types.Department, error)
	GetDepartment(context.Context, string, string) (*types.Department, error)
	UpdateDepartment(context.Context, *types.Department) (*types.Department, error)
	SoftDeleteDepartment(context.Context, string, string, time.Time) error
	ListDepartmentsByWorkspace(context.Context, string) ([]*types.Department, error)
	AddDepartmentMember(context.Context, string, string, types.DepartmentRole) (*types.DepartmentMember, error)
	RemoveDepartmentMember(context.Context, string, string) error
}

type PermissionsInterface interface {
	CanManageDepartments(context.Context, string, string) (bool, error)
	GetWorkspaceRole(context.Context, string, string) (*types.WorkspaceRole, error)
	IsOrgAdmin(context.Context, string, string) (bool, error)
}

type ServiceInterface interface {
	Create(context.Context, string, string, *DepartmentRequest) (*types.Department, error)
	Update(context.Context, string, string, string, *DepartmentRequest) (*types.Department, error)
	Delete(context.Context, string, string, string) error
	List(context.Context, string, string) ([]*types.Department, error)
	AddMember(context.Context, string, string, string, *AddMemberRequest) (*types.DepartmentMember, error)
	RemoveMember(context.Context, string, string, string, string) error
}

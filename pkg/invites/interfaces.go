// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"time"

	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package invites -destination ./mock_interfaces.go -source=./interfaces.go

type StorageInterface interface {
	GetUserByEmail(context.Context, string) (*types.User, error)
	UpsertUser(context.Context, *types.User) (*types.User, error)
	GetOrganizationByID(context.Context, string) (*types.Organization, error)
	GetOrganizationMember(context.Context, string, string) (*types.OrganizationMember, error)
	AddOrganizationMember(context.Context, string, string, types.OrganizationRole) (*types.OrganizationMember, error)
	GetWorkspaceByID(context.Context, string) (*types.Workspace, error)
	ListWorkspacesByOrganization(context.Context, string) ([]*types.Workspace, error)
	GetWorkspaceMember(context.Context, string, string) (*types.WorkspaceMember, error)
	AddWorkspaceMember(context.Context, string, string, types.WorkspaceRole) (*types.WorkspaceMember, error)
	AddWorkspaceMembers(context.Context, string, types.WorkspaceRole, []string) (int64, error)
	CreateInvite(context.Context, *types.Invite) (*types.Invite, error)
	GetInviteByID(context.Context, string) (*types.Invite, error)
	FindPendingInvite(context.Context, string, string, time.Time) (*types.Invite, error)
	ExpireStaleInvites(context.Context, string, string, time.Time) (int64, error)
	TransitionInvite(context.Context, string, types.InviteStatus, types.InviteStatus) error
	ListPendingInvites(context.Context, string) ([]*types.Invite, error)
}

type TxManagerInterface interface {
	WithTx(context.Context, func(context.Context) error) error
}

type PermissionsInterface interface {
	IsOrgAdmin(context.Context, string, string) (bool, error)
	CanManageWorkspaceMembers(context.Context, string, string) (bool, error)
}

// ProviderInterface is the subset of the identity provider used to onboard invitees
type ProviderInterface interface {
	IdentityExists(context.Context, string) (bool, error)
	CreateAccount(context.Context, string, string, map[string]interface{}) (string, error)
	DeleteIdentity(context.Context, string) error
	SignIn(context.Context, string, string) (string, string, error)
}

type DispatcherInterface interface {
	SendInviteEmail(context.Context, string, string) error
}

type CacheInterface interface {
	InvalidateOrganization(string)
}

type AuthorizerInterface interface {
	AssignOrganizationMember(context.Context, string, string, types.OrganizationRole) error
	AssignWorkspaceMembers(context.Context, string, types.WorkspaceRole, ...string) error
}

type ServiceInterface interface {
	Create(context.Context, string, *CreateRequest) (*types.Invite, error)
	AcceptNew(context.Context, string, *AcceptRequest) (*Acceptance, error)
	AcceptAuthenticated(context.Context, *types.User, string) (*Acceptance, error)
	Resend(context.Context, string, string, string) (*types.Invite, error)
	Cancel(context.Context, string, string, string) error
	Details(context.Context, string) (*Details, error)
	List(context.Context, string, string) ([]*types.Invite, error)
}

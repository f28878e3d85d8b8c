// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_interfaces.go -source=./interfaces.go

type StorageInterface interface {
	GetUserByID(context.Context, string) (*types.User, error)
	GetUserByEmail(context.Context, string) (*types.User, error)
	UpsertUser(context.Context, *types.User) (*types.User, error)
	ListOrganizationsByUserID(context.Context, string) ([]*types.UserOrganization, error)
}

// ProviderInterface is the subset of the identity provider used for accounts
type ProviderInterface interface {
	CurrentPrincipal(context.Context) (*types.Principal, error)
	CreateAccount(context.Context, string, string, map[string]interface{}) (string, error)
	DeleteIdentity(context.Context, string) error
	SignIn(context.Context, string, string) (string, string, error)
	SignOut(context.Context, string) error
}

type ServiceInterface interface {
	ResolveCurrentUser(context.Context) (*types.User, error)
	SignUp(context.Context, *SignUpRequest) (*Session, error)
	SignIn(context.Context, *SignInRequest) (*Session, error)
	SignOut(context.Context, string) error
	Organizations(context.Context, string) ([]*types.UserOrganization, error)
}

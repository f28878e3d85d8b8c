// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_interfaces.go -source=./interfaces.go

// StorageInterface defines the storage operations required by the webhooks package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	UpsertUser(context.Context, *types.User) (*types.User, error)
	ListOrganizationsByUserID(context.Context, string) ([]*types.UserOrganization, error)
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleRegistration(context.Context, *KratosIdentity) (*types.User, error)
	HandleTokenHook(context.Context, *oauth2.TokenHookRequest) (*TokenHookResponse, error)
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package preferences

import (
	"context"

	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package preferences -destination ./mock_interfaces.go -source=./interfaces.go

// PreferenceStore persists small per session values
type PreferenceStore interface {
	Get(context.Context, string) (string, bool, error)
	Set(context.Context, string, string) error
	Clear(context.Context, string) error
}

type WorkspaceListerInterface interface {
	List(context.Context, string, string) ([]*types.Workspace, error)
}

type ServiceInterface interface {
	Current(context.Context, SessionPreferences, []*types.Workspace) (*Selection, error)
	Select(context.Context, SessionPreferences, string) (*Selection, error)
}

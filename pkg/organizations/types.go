// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import "github.com/appfluzzio-bit/fluzz2/internal/types"

const (
	DefaultTimezone      = "UTC"
	DefaultCurrency      = "USD"
	DefaultWorkspaceName = "General"
	DefaultWorkspaceSlug = "general"
)

type CreateRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Timezone string `json:"timezone" validate:"omitempty,timezone"`
	Currency string `json:"currency" validate:"omitempty,iso4217"`
}

// Onboarding is what a freshly created organization starts with
type Onboarding struct {
	Organization *types.Organization       `json:"organization"`
	Member       *types.OrganizationMember `json:"member"`
	Workspace    *types.Workspace          `json:"workspace"`
}

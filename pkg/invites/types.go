// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"time"

	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

// Lifetime is fixed, every invite expires seven days after it was issued
const Lifetime = 7 * 24 * time.Hour

type CreateRequest struct {
	OrganizationID string                `json:"-"`
	Email          string                `json:"email" validate:"required,email"`
	Role           string                `json:"role" validate:"required"`
	WorkspaceID    *string               `json:"workspace_id,omitempty"`
	Metadata       *types.InviteMetadata `json:"metadata,omitempty"`
}

// targetsOrganization mirrors types.Invite.TargetsOrganization for a request
// that has not been persisted yet
func (r *CreateRequest) targetsOrganization() bool {
	i := types.Invite{WorkspaceID: r.WorkspaceID, Metadata: r.Metadata}

	return i.TargetsOrganization()
}

type AcceptRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// Acceptance is the outcome of accepting an invite, Token is only set when
// a new account was signed in
type Acceptance struct {
	Token  string        `json:"session_token,omitempty"`
	User   *types.User   `json:"user"`
	Invite *types.Invite `json:"invite"`
}

// Details is the public preview of a pending invite
type Details struct {
	Invite           *types.Invite `json:"invite"`
	OrganizationName string        `json:"organization_name"`
	WorkspaceName    *string       `json:"workspace_name,omitempty"`
}

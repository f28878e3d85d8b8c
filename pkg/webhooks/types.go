// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// OrganizationsClaim is the claim carrying the caller's organization ids
const OrganizationsClaim = "organizations"

type KratosIdentity struct {
	ID     string       `json:"id"`
	Traits KratosTraits `json:"traits"`
}

type KratosTraits struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type TokenHookSession struct {
	IDToken     map[string]interface{} `json:"id_token,omitempty"`
	AccessToken map[string]interface{} `json:"access_token,omitempty"`
}

// TokenHookResponse is the body Hydra merges into the issued tokens
type TokenHookResponse struct {
	Session TokenHookSession `json:"session"`
}

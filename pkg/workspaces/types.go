// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspaces

type CreateRequest struct {
	Name string  `json:"name" validate:"required,min=2,max=100"`
	Slug *string `json:"slug,omitempty" validate:"omitempty,min=2,max=64,slug"`
}

type UpdateRequest struct {
	Name string  `json:"name" validate:"required,min=2,max=100"`
	Slug *string `json:"slug,omitempty" validate:"omitempty,min=2,max=64,slug"`
}

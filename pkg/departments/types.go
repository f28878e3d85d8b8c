// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package departments

type DepartmentRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type AddMemberRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"required,oneof=manager agent"`
}

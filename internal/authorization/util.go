// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	OWNER_RELATION        = "owner"
	ADMIN_RELATION        = "admin"
	ORGANIZATION_RELATION = "organization"

	CAN_MANAGE_PERMISSION = "can_manage"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func OrganizationTuple(orgId string) string {
	return "organization:" + orgId
}

func WorkspaceTuple(workspaceId string) string {
	return "workspace:" + workspaceId
}

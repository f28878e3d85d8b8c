// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package preferences

import (
	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

// AllWorkspaces is the persisted value selecting every accessible workspace
const AllWorkspaces = "all"

// SessionPreferences identifies whose selection is read or written
type SessionPreferences struct {
	UserID         string
	OrganizationID string
}

func (p SessionPreferences) key() string {
	return "fluzz:prefs:" + p.UserID + ":" + p.OrganizationID + ":workspace"
}

type Selection struct {
	All       bool             `json:"all"`
	Workspace *types.Workspace `json:"workspace,omitempty"`
}

// ResolveSelection picks the effective selection: the "all" sentinel, the persisted
// workspace when still accessible, otherwise the first workspace. No workspaces
// at all resolves to all.
func ResolveSelection(persistedID string, workspaces []*types.Workspace) Selection {
	if persistedID == AllWorkspaces || len(workspaces) == 0 {
		return Selection{All: true}
	}

	for _, w := range workspaces {
		if w.ID == persistedID {
			return Selection{Workspace: w}
		}
	}

	return Selection{Workspace: workspaces[0]}
}

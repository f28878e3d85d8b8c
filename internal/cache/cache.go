// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

// WorkspaceListCache holds the per user workspace listing of an organization.
// Entries expire after the ttl and are dropped eagerly when the organization changes.
type WorkspaceListCache struct {
	cache *lru.LRU[string, []*types.Workspace]
}

func key(orgID, userID string) string {
	return orgID + "/" + userID
}

// clone copies the listing down to the slug so callers never share an entry
func clone(workspaces []*types.Workspace) []*types.Workspace {
	if workspaces == nil {
		return nil
	}

	out := make([]*types.Workspace, len(workspaces))

	for i, ws := range workspaces {
		if ws == nil {
			continue
		}

		c := *ws
		if ws.Slug != nil {
			slug := *ws.Slug
			c.Slug = &slug
		}

		if ws.DeletedAt != nil {
			deletedAt := *ws.DeletedAt
			c.DeletedAt = &deletedAt
		}

		out[i] = &c
	}

	return out
}

func (c *WorkspaceListCache) Get(orgID, userID string) ([]*types.Workspace, bool) {
	workspaces, ok := c.cache.Get(key(orgID, userID))
	if !ok {
		return nil, false
	}

	return clone(workspaces), true
}

func (c *WorkspaceListCache) Set(orgID, userID string, workspaces []*types.Workspace) {
	c.cache.Add(key(orgID, userID), clone(workspaces))
}

func (c *WorkspaceListCache) InvalidateOrganization(orgID string) {
	prefix := orgID + "/"

	for _, k := range c.cache.Keys() {
		if strings.HasPrefix(k, prefix) {
			c.cache.Remove(k)
		}
	}
}

func NewWorkspaceListCache(size int, ttl time.Duration) *WorkspaceListCache {
	if size <= 0 {
		size = 1024
	}

	return &WorkspaceListCache{
		cache: lru.NewLRU[string, []*types.Workspace](size, nil, ttl),
	}
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

func TestWorkspaceListCache(t *testing.T) {
	c := NewWorkspaceListCache(16, time.Minute)

	ws := []*types.Workspace{{ID: "w1"}}
	c.Set("o1", "u1", ws)
	c.Set("o1", "u2", ws)
	c.Set("o2", "u1", ws)

	got, ok := c.Get("o1", "u1")
	assert.True(t, ok)
	assert.Equal(t, ws, got)

	c.InvalidateOrganization("o1")

	_, ok = c.Get("o1", "u1")
	assert.False(t, ok)
	_, ok = c.Get("o1", "u2")
	assert.False(t, ok)
	_, ok = c.Get("o2", "u1")
	assert.True(t, ok)
}

func TestWorkspaceListCacheExpiry(t *testing.T) {
	c := NewWorkspaceListCache(16, 10*time.Millisecond)
	c.Set("o1", "u1", nil)

	assert.Eventually(t, func() bool {
		_, ok := c.Get("o1", "u1")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestWorkspaceListCacheReturnsCopies(t *testing.T) {
	c := NewWorkspaceListCache(16, time.Minute)

	slug := "sales"
	ws := []*types.Workspace{{ID: "w1", Name: "Sales", Slug: &slug}}
	c.Set("o1", "u1", ws)

	ws[0].Name = "changed by the producer"

	got, ok := c.Get("o1", "u1")
	assert.True(t, ok)
	assert.Equal(t, "Sales", got[0].Name)

	got[0].Name = "changed by a caller"
	*got[0].Slug = "tampered"
	got[0] = nil

	again, ok := c.Get("o1", "u1")
	assert.True(t, ok)
	assert.Equal(t, "Sales", again[0].Name)
	assert.Equal(t, "sales", *again[0].Slug)
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

type subjectKey struct{}

// WithUserID attaches the authenticated Kratos identity id to ctx
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, subjectKey{}, userID)
}

// GetUserID is false for anonymous requests, an empty id counts as anonymous
func GetUserID(ctx context.Context) (string, bool) {
	if subject, ok := ctx.Value(subjectKey{}).(string); ok && subject != "" {
		return subject, true
	}

	return "", false
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

type SignUpRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Name     string  `json:"name" validate:"required,min=2,max=120"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session is returned by sign up and sign in, the token goes in X-Session-Token
type Session struct {
	Token string      `json:"session_token"`
	User  *types.User `json:"user"`
}

type Me struct {
	User          *types.User               `json:"user"`
	Organizations []*types.UserOrganization `json:"organizations"`
}

type userContextKey struct{}

// WithUser stores the resolved user on the request context
func WithUser(ctx context.Context, u *types.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, u)
}

// UserFromContext returns the user placed by RequireUser
func UserFromContext(ctx context.Context) *types.User {
	u, _ := ctx.Value(userContextKey{}).(*types.User)

	return u
}

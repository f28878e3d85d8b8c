// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/appfluzzio-bit/fluzz2/internal/apperror"
	httptypes "github.com/appfluzzio-bit/fluzz2/internal/http/types"
	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
	"github.com/appfluzzio-bit/fluzz2/pkg/authentication"
)

type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// RegisterPublicEndpoints mounts the routes reachable without a session
func (a *API) RegisterPublicEndpoints(mux chi.Router) {
	mux.Post("/auth/signup", a.signUp)
	mux.Post("/auth/login", a.signIn)
	mux.Post("/auth/logout", a.signOut)
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/me", a.me)
}

// RequireUser rejects requests without a caller that has standing, the
// resolved user is placed on the context
func (a *API) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := a.service.ResolveCurrentUser(r.Context())
		if err != nil {
			httptypes.WriteError(w, err, a.logger)
			return
		}

		if user == nil {
			httptypes.WriteError(w, apperror.AuthenticationRequired(), a.logger)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func (a *API) signUp(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "identity.API.signUp")
	defer span.End()

	req := new(SignUpRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	session, err := a.service.SignUp(ctx, req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, session)
}

func (a *API) signIn(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "identity.API.signIn")
	defer span.End()

	req := new(SignInRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	session, err := a.service.SignIn(ctx, req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, session)
}

func (a *API) signOut(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "identity.API.signOut")
	defer span.End()

	if err := a.service.SignOut(ctx, r.Header.Get(authentication.SessionTokenHeader)); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, nil)
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "identity.API.me")
	defer span.End()

	user := UserFromContext(ctx)
	if user == nil {
		httptypes.WriteError(w, apperror.AuthenticationRequired(), a.logger)
		return
	}

	orgs, err := a.service.Organizations(ctx, user.ID)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, Me{User: user, Organizations: orgs})
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{service: service, tracer: tracer, logger: logger}
}

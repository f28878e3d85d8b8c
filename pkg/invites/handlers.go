// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/appfluzzio-bit/fluzz2/internal/apperror"
	httptypes "github.com/appfluzzio-bit/fluzz2/internal/http/types"
	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
	"github.com/appfluzzio-bit/fluzz2/pkg/authentication"
	"github.com/appfluzzio-bit/fluzz2/pkg/identity"
)

type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// RegisterPublicEndpoints mounts the routes reachable by invitees without an account
func (a *API) RegisterPublicEndpoints(mux chi.Router) {
	mux.Get("/invites/{id}", a.details)
	mux.Post("/invites/{id}/accept", a.acceptNew)
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/organizations/{org}/invites", a.list)
	mux.Post("/organizations/{org}/invites", a.create)
	mux.Post("/organizations/{org}/invites/{id}/resend", a.resend)
	mux.Post("/organizations/{org}/invites/{id}/cancel", a.cancel)
	mux.Post("/invites/{id}/join", a.join)
}

func (a *API) actor(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteError(w, apperror.AuthenticationRequired(), a.logger)
	}

	return userID, ok
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.list")
	defer span.End()

	actorID, ok := a.actor(w, r)
	if !ok {
		return
	}

	invites, err := a.service.List(ctx, actorID, chi.URLParam(r, "org"))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, invites)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.create")
	defer span.End()

	actorID, ok := a.actor(w, r)
	if !ok {
		return
	}

	req := new(CreateRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	req.OrganizationID = chi.URLParam(r, "org")

	invite, err := a.service.Create(ctx, actorID, req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, invite)
}

func (a *API) resend(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.resend")
	defer span.End()

	actorID, ok := a.actor(w, r)
	if !ok {
		return
	}

	invite, err := a.service.Resend(ctx, actorID, chi.URLParam(r, "org"), chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, invite)
}

func (a *API) cancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.cancel")
	defer span.End()

	actorID, ok := a.actor(w, r)
	if !ok {
		return
	}

	if err := a.service.Cancel(ctx, actorID, chi.URLParam(r, "org"), chi.URLParam(r, "id")); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, nil)
}

func (a *API) details(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.details")
	defer span.End()

	details, err := a.service.Details(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, details)
}

func (a *API) acceptNew(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.acceptNew")
	defer span.End()

	req := new(AcceptRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	out, err := a.service.AcceptNew(ctx, chi.URLParam(r, "id"), req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, out)
}

func (a *API) join(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.join")
	defer span.End()

	user := identity.UserFromContext(ctx)
	if user == nil {
		httptypes.WriteError(w, apperror.AuthenticationRequired(), a.logger)
		return
	}

	out, err := a.service.AcceptAuthenticated(ctx, user, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, out)
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{service: service, tracer: tracer, logger: logger}
}

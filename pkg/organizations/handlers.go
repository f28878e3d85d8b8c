// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

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

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/organizations", a.create)
	mux.Get("/organizations/{org}/members", a.members)
	mux.Delete("/organizations/{org}/members/{member}", a.removeMember)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.create")
	defer span.End()

	actor := identity.UserFromContext(ctx)
	if actor == nil {
		httptypes.WriteError(w, apperror.AuthenticationRequired(), a.logger)
		return
	}

	req := new(CreateRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	out, err := a.service.Create(ctx, actor, req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, out)
}

func (a *API) members(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.members")
	defer span.End()

	actorID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteError(w, apperror.AuthenticationRequired(), a.logger)
		return
	}

	members, err := a.service.Members(ctx, actorID, chi.URLParam(r, "org"))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, members)
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.removeMember")
	defer span.End()

	actorID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteError(w, apperror.AuthenticationRequired(), a.logger)
		return
	}

	if err := a.service.RemoveMember(ctx, actorID, chi.URLParam(r, "org"), chi.URLParam(r, "member")); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, nil)
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{service: service, tracer: tracer, logger: logger}
}

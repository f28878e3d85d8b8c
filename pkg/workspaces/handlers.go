// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspaces

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

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/organizations/{org}/workspaces", a.list)
	mux.Post("/organizations/{org}/workspaces", a.create)
	mux.Patch("/organizations/{org}/workspaces/{ws}", a.update)
	mux.Delete("/organizations/{org}/workspaces/{ws}", a.delete)
	mux.Delete("/workspaces/{ws}/members/{member}", a.removeMember)
}

func (a *API) actor(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteError(w, apperror.AuthenticationRequired(), a.logger)
	}

	return userID, ok
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspaces.API.list")
	defer span.End()

	actorID, ok := a.actor(w, r)
	if !ok {
		return
	}

	workspaces, err := a.service.List(ctx, actorID, chi.URLParam(r, "org"))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, workspaces)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspaces.API.create")
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

	ws, err := a.service.Create(ctx, actorID, chi.URLParam(r, "org"), req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, ws)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspaces.API.update")
	defer span.End()

	actorID, ok := a.actor(w, r)
	if !ok {
		return
	}

	req := new(UpdateRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	ws, err := a.service.Update(ctx, actorID, chi.URLParam(r, "org"), chi.URLParam(r, "ws"), req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, ws)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspaces.API.delete")
	defer span.End()

	actorID, ok := a.actor(w, r)
	if !ok {
		return
	}

	if err := a.service.Delete(ctx, actorID, chi.URLParam(r, "org"), chi.URLParam(r, "ws")); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, nil)
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspaces.API.removeMember")
	defer span.End()

	actorID, ok := a.actor(w, r)
	if !ok {
		return
	}

	if err := a.service.RemoveMember(ctx, actorID, chi.URLParam(r, "ws"), chi.URLParam(r, "member")); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, nil)
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{service: service, tracer: tracer, logger: logger}
}

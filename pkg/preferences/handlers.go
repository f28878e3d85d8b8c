// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package preferences

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/appfluzzio-bit/fluzz2/internal/apperror"
	httptypes "github.com/appfluzzio-bit/fluzz2/internal/http/types"
	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
	"github.com/appfluzzio-bit/fluzz2/pkg/authentication"
)

type SelectRequest struct {
	WorkspaceID string `json:"workspace_id"`
}

type API struct {
	service    ServiceInterface
	workspaces WorkspaceListerInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/organizations/{org}/workspace-selection", a.current)
	mux.Put("/organizations/{org}/workspace-selection", a.selectWorkspace)
}

func (a *API) prefs(r *http.Request) (SessionPreferences, bool) {
	userID, ok := authentication.GetUserID(r.Context())

	return SessionPreferences{UserID: userID, OrganizationID: chi.URLParam(r, "org")}, ok
}

func (a *API) current(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "preferences.API.current")
	defer span.End()

	prefs, ok := a.prefs(r)
	if !ok {
		httptypes.WriteError(w, apperror.AuthenticationRequired(), a.logger)
		return
	}

	workspaces, err := a.workspaces.List(ctx, prefs.UserID, prefs.OrganizationID)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	selection, err := a.service.Current(ctx, prefs, workspaces)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, selection)
}

func (a *API) selectWorkspace(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "preferences.API.selectWorkspace")
	defer span.End()

	prefs, ok := a.prefs(r)
	if !ok {
		httptypes.WriteError(w, apperror.AuthenticationRequired(), a.logger)
		return
	}

	req := new(SelectRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if req.WorkspaceID == "" {
		httptypes.WriteError(w, apperror.Validation("workspace_id is required"), a.logger)
		return
	}

	selection, err := a.service.Select(ctx, prefs, req.WorkspaceID)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, selection)
}

func NewAPI(service ServiceInterface, workspaces WorkspaceListerInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{service: service, workspaces: workspaces, tracer: tracer, logger: logger}
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package departments

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
	mux.Route("/workspaces/{ws}/departments", func(r chi.Router) {
		r.Get("/", a.list)
		r.Post("/", a.create)
		r.Patch("/{dep}", a.update)
		r.Delete("/{dep}", a.delete)
		r.Post("/{dep}/members", a.addMember)
		r.Delete("/{dep}/members/{member}", a.removeMember)
	})
}

func (a *API) handle(w http.ResponseWriter, r *http.Request, status int, fn func(actorID string) (any, error)) {
	actorID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteError(w, apperror.AuthenticationRequired(), a.logger)
		return
	}

	data, err := fn(actorID)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, status, data)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "departments.API.list")
	defer span.End()

	a.handle(w, r, http.StatusOK, func(actorID string) (any, error) {
		return a.service.List(ctx, actorID, chi.URLParam(r, "ws"))
	})
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "departments.API.create")
	defer span.End()

	a.handle(w, r, http.StatusCreated, func(actorID string) (any, error) {
		req := new(DepartmentRequest)
		if err := httptypes.DecodeJSON(r, req); err != nil {
			return nil, err
		}

		return a.service.Create(ctx, actorID, chi.URLParam(r, "ws"), req)
	})
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "departments.API.update")
	defer span.End()

	a.handle(w, r, http.StatusOK, func(actorID string) (any, error) {
		req := new(DepartmentRequest)
		if err := httptypes.DecodeJSON(r, req); err != nil {
			return nil, err
		}

		return a.service.Update(ctx, actorID, chi.URLParam(r, "ws"), chi.URLParam(r, "dep"), req)
	})
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "departments.API.delete")
	defer span.End()

	a.handle(w, r, http.StatusOK, func(actorID string) (any, error) {
		return nil, a.service.Delete(ctx, actorID, chi.URLParam(r, "ws"), chi.URLParam(r, "dep"))
	})
}

func (a *API) addMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "departments.API.addMember")
	defer span.End()

	a.handle(w, r, http.StatusCreated, func(actorID string) (any, error) {
		req := new(AddMemberRequest)
		if err := httptypes.DecodeJSON(r, req); err != nil {
			return nil, err
		}

		return a.service.AddMember(ctx, actorID, chi.URLParam(r, "ws"), chi.URLParam(r, "dep"), req)
	})
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "departments.API.removeMember")
	defer span.End()

	a.handle(w, r, http.StatusOK, func(actorID string) (any, error) {
		return nil, a.service.RemoveMember(ctx, actorID, chi.URLParam(r, "ws"), chi.URLParam(r, "dep"), chi.URLParam(r, "member"))
	})
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{service: service, tracer: tracer, logger: logger}
}

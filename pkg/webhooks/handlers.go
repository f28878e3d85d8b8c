// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"

	httptypes "github.com/appfluzzio-bit/fluzz2/internal/http/types"
	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
)

type API struct {
	service ServiceInterface
	secret  string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, secret string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		secret:  secret,
		tracer:  tracer,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Group(func(r chi.Router) {
		r.Use(requireSecret(a.secret, a.logger))

		r.Post("/webhooks/registration", a.registration)
		r.Post("/webhooks/token", a.tokenHook)
	})
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "webhooks.API.registration")
	defer span.End()

	identity := new(KratosIdentity)
	if err := httptypes.DecodeJSON(r, identity); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	user, err := a.service.HandleRegistration(ctx, identity)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, user)
}

// tokenHook answers Hydra with the bare hook response, Hydra does not
// understand the API envelope
func (a *API) tokenHook(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "webhooks.API.tokenHook")
	defer span.End()

	req := new(oauth2.TokenHookRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	resp, err := a.service.HandleTokenHook(ctx, req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		a.logger.Errorf("failed to encode token hook response: %v", err)
	}
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
	"github.com/appfluzzio-bit/fluzz2/pkg/departments"
	"github.com/appfluzzio-bit/fluzz2/pkg/identity"
	"github.com/appfluzzio-bit/fluzz2/pkg/invites"
	"github.com/appfluzzio-bit/fluzz2/pkg/metrics"
	"github.com/appfluzzio-bit/fluzz2/pkg/organizations"
	"github.com/appfluzzio-bit/fluzz2/pkg/preferences"
	"github.com/appfluzzio-bit/fluzz2/pkg/status"
	"github.com/appfluzzio-bit/fluzz2/pkg/webhooks"
	"github.com/appfluzzio-bit/fluzz2/pkg/workspaces"
)

const APIPrefix = "/api/v0"

// Services groups the application services exposed over HTTP
type Services struct {
	Identity      identity.ServiceInterface
	Organizations organizations.ServiceInterface
	Workspaces    workspaces.ServiceInterface
	Departments   departments.ServiceInterface
	Invites       invites.ServiceInterface
	Preferences   preferences.ServiceInterface
	Webhooks      webhooks.ServiceInterface
}

type RouterConfig struct {
	AllowedOrigins []string

	// Authentication places the caller's subject on the request context
	Authentication func(http.Handler) http.Handler
	// IdentityHeader is only set behind a proxy that owns the identity header
	IdentityHeader func(http.Handler) http.Handler

	// WebhookSecret is the shared secret the identity provider hooks present
	WebhookSecret string
}

func NewRouter(
	config RouterConfig,
	services Services,
	db status.PingerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	origins := config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(origins),
	)

	router.Use(middlewares...)

	identityAPI := identity.NewAPI(services.Identity, tracer, logger)
	invitesAPI := invites.NewAPI(services.Invites, tracer, logger)

	router.Route(APIPrefix, func(r chi.Router) {
		metrics.NewAPI(logger).RegisterEndpoints(r)
		status.NewAPI(db, tracer, monitor, logger).RegisterEndpoints(r)
		webhooks.NewAPI(services.Webhooks, config.WebhookSecret, tracer, logger).RegisterEndpoints(r)

		r.Group(func(r chi.Router) {
			if config.Authentication != nil {
				r.Use(config.Authentication)
			}

			if config.IdentityHeader != nil {
				r.Use(config.IdentityHeader)
			}

			identityAPI.RegisterPublicEndpoints(r)
			invitesAPI.RegisterPublicEndpoints(r)

			r.Group(func(r chi.Router) {
				r.Use(identityAPI.RequireUser)

				identityAPI.RegisterEndpoints(r)
				invitesAPI.RegisterEndpoints(r)
				organizations.NewAPI(services.Organizations, tracer, logger).RegisterEndpoints(r)
				workspaces.NewAPI(services.Workspaces, tracer, logger).RegisterEndpoints(r)
				departments.NewAPI(services.Departments, tracer, logger).RegisterEndpoints(r)
				preferences.NewAPI(services.Preferences, services.Workspaces, tracer, logger).RegisterEndpoints(r)
			})
		})
	})

	return tracing.NewMiddleware(logger).OpenTelemetry(router)
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"

	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
	"github.com/appfluzzio-bit/fluzz2/pkg/authentication"
)

const (
	// HeaderName is the header used by the gateway to pass the authenticated identity ID
	HeaderName = "X-Kratos-Authenticated-Identity-Id"
)

// Middleware trusts the identity header set by an authenticating proxy in front
// of the service, it must only be mounted when such a proxy strips the header
// from client requests
type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, ok := authentication.GetUserID(ctx); ok {
			next.ServeHTTP(w, r)
			return
		}

		userID := r.Header.Get(HeaderName)
		if userID == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx, span := m.tracer.Start(ctx, "identity.Middleware.HTTPMiddleware")
		defer span.End()

		next.ServeHTTP(w, r.WithContext(authentication.WithUserID(ctx, userID)))
	})
}

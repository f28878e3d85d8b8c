// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
)

// SessionTokenHeader carries a Kratos session token issued by the native login flow
const SessionTokenHeader = "X-Session-Token"

type Middleware struct {
	verifier TokenVerifierInterface
	sessions SessionResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate resolves the caller from a bearer JWT or a Kratos session token.
// Requests without credentials pass through anonymously, presenting invalid
// credentials is rejected.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			var (
				userID string
				err    error
			)

			if token, found := m.getBearerToken(r.Header); found {
				userID, err = m.verifier.VerifyToken(ctx, token)
			} else if token := r.Header.Get(SessionTokenHeader); token != "" && m.sessions != nil {
				userID, err = m.sessions.SessionSubject(ctx, token)
			} else if r.Header.Get("Authorization") != "" {
				m.unauthorizedResponse(w, "unsupported authorization scheme")
				return
			} else {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if err != nil {
				m.logger.Debugf("credential verification failed: %v", err)
				m.unauthorizedResponse(w, "invalid credentials")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, userID)))
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   message,
		"code":    "authentication_required",
	}); err != nil {
		m.logger.Errorf("failed to encode unauthorized response: %v", err)
	}
}

func NewMiddleware(verifier TokenVerifierInterface, sessions SessionResolverInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier: verifier,
		sessions: sessions,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

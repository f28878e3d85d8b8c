// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/appfluzzio-bit/fluzz2/internal/logging"
)

type Middleware struct {
	logger logging.LoggerInterface
}

func (mdw *Middleware) OpenTelemetry(handler http.Handler) http.Handler {
	return otelhttp.NewHandler(
		handler,
		"server",
		otelhttp.WithSpanNameFormatter(
			func(operation string, r *http.Request) string {
				return operation + " " + r.Method
			},
		),
	)
}

func NewMiddleware(logger logging.LoggerInterface) *Middleware {
	mdw := new(Middleware)

	mdw.logger = logger

	return mdw
}

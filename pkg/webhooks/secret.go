// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"net/http"

	"github.com/appfluzzio-bit/fluzz2/internal/apperror"
	httptypes "github.com/appfluzzio-bit/fluzz2/internal/http/types"
	"github.com/appfluzzio-bit/fluzz2/internal/logging"
)

// SecretHeader carries the shared secret configured as api_key auth on the
// Kratos and Hydra webhooks
const SecretHeader = "X-Webhook-Secret"

var errWebhookUnauthorized = apperror.AuthenticationRequired()

// requireSecret rejects every call when no secret is configured
func requireSecret(secret string, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(SecretHeader)

			if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				logger.Security().AuthzFailure("webhook", r.URL.Path)
				httptypes.WriteError(w, errWebhookUnauthorized, logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

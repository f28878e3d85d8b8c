// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
)

// JWTVerifier validates access tokens issued for the dashboard, the subject of
// the token is the Kratos identity id
type JWTVerifier struct {
	verifier *oidc.IDTokenVerifier

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", err
	}

	if token.Subject == "" {
		v.logger.Security().AuthzFailure("anonymous", "jwt_api_access")
		return "", fmt.Errorf("token has no subject")
	}

	return token.Subject, nil
}

// NewJWTVerifier checks the audience only when one is configured
func NewJWTVerifier(
	provider ProviderInterface,
	audience string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	v := new(JWTVerifier)

	v.verifier = provider.Verifier(
		&oidc.Config{
			ClientID:          audience,
			SkipClientIDCheck: audience == "",
		},
	)

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}

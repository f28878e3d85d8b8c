// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/appfluzzio-bit/fluzz2/internal/apperror"
	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandleRegistration writes the profile row of an identity registered
// directly with Kratos, it is idempotent
func (s *Service) HandleRegistration(ctx context.Context, identity *KratosIdentity) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if identity == nil || identity.ID == "" || identity.Traits.Email == "" {
		return nil, apperror.Validation("identity id and email are required")
	}

	s.logger.Debugf("handling registration for identity %s", identity.ID)

	email := types.NormalizeEmail(identity.Traits.Email)

	user := &types.User{ID: identity.ID, Email: email, Name: identity.Traits.Name}
	if user.Name == "" {
		user.Name = types.EmailLocalPart(email)
	}

	if identity.Traits.Phone != "" {
		phone := identity.Traits.Phone
		user.Phone = &phone
	}

	user, err := s.storage.UpsertUser(ctx, user)
	if err != nil {
		s.logger.Errorf("failed to provision profile for identity %s: %v", identity.ID, err)
		return nil, apperror.Store(err)
	}

	s.logger.Infof("provisioned profile for identity %s", identity.ID)

	return user, nil
}

func subject(req *oauth2.TokenHookRequest) string {
	if req == nil || req.Session == nil || req.Session.DefaultSession == nil {
		return ""
	}

	if sub := req.Session.DefaultSession.Subject; sub != "" {
		return sub
	}

	if claims := req.Session.DefaultSession.Claims; claims != nil {
		return claims.Subject
	}

	return ""
}

// HandleTokenHook adds the organizations of the token subject to both the
// id token and the access token
func (s *Service) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTokenHook")
	defer span.End()

	userID := subject(req)
	if userID == "" {
		return nil, apperror.Validation("token hook request carries no subject")
	}

	orgs, err := s.storage.ListOrganizationsByUserID(ctx, userID)
	if err != nil {
		s.logger.Errorf("failed to list organizations of %s: %v", userID, err)
		return nil, apperror.Store(fmt.Errorf("list organizations: %w", err))
	}

	ids := make([]string, 0, len(orgs))
	for _, o := range orgs {
		ids = append(ids, o.ID)
	}

	s.logger.Debugf("adding %d organizations to the token of %s", len(ids), userID)

	resp := new(TokenHookResponse)
	resp.Session.IDToken = map[string]interface{}{OrganizationsClaim: ids}
	resp.Session.AccessToken = map[string]interface{}{OrganizationsClaim: ids}

	return resp, nil
}

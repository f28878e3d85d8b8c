// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/appfluzzio-bit/fluzz2/internal/apperror"
	"github.com/appfluzzio-bit/fluzz2/internal/kratos"
	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
	"github.com/appfluzzio-bit/fluzz2/internal/storage"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
	"github.com/appfluzzio-bit/fluzz2/internal/types"
	"github.com/appfluzzio-bit/fluzz2/internal/validation"
	"github.com/appfluzzio-bit/fluzz2/pkg/authentication"
)

var _ ServiceInterface = (*Service)(nil)

var errInvalidLogin = apperror.New(apperror.KindAuthenticationRequired, "invalid email or password")

type Service struct {
	storage  StorageInterface
	provider ProviderInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ResolveCurrentUser returns the profile of the authenticated caller. A caller
// without a profile row gets a transient user built from the identity traits,
// a soft-deleted profile has no standing and resolves to nil.
func (s *Service) ResolveCurrentUser(ctx context.Context) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Service.ResolveCurrentUser")
	defer span.End()

	subject, ok := authentication.GetUserID(ctx)
	if !ok {
		return nil, nil
	}

	user, err := s.storage.GetUserByID(ctx, subject)
	switch {
	case err == nil && user.DeletedAt != nil:
		return nil, nil
	case err == nil:
		return user, nil
	case !errors.Is(err, storage.ErrNotFound):
		s.logger.Errorf("failed to read user %s: %v", subject, err)
		return nil, apperror.Store(err)
	}

	principal, err := s.provider.CurrentPrincipal(ctx)
	if err != nil {
		s.logger.Errorf("failed to read principal %s: %v", subject, err)
		return nil, apperror.Store(err)
	}

	if principal == nil {
		return nil, nil
	}

	return userFromPrincipal(principal), nil
}

func userFromPrincipal(p *types.Principal) *types.User {
	u := new(types.User)
	u.ID = p.SubjectID
	u.Email = types.NormalizeEmail(p.Email)
	u.Name = p.Claim("name")

	if u.Name == "" {
		u.Name = types.EmailLocalPart(u.Email)
	}

	if phone := p.Claim("phone"); phone != "" {
		u.Phone = &phone
	}

	return u
}

func (s *Service) SignUp(ctx context.Context, req *SignUpRequest) (*Session, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Service.SignUp")
	defer span.End()

	req.Email = types.NormalizeEmail(req.Email)

	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	email := req.Email

	_, err := s.storage.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, apperror.Conflict("an account with this email already exists")
	}

	if !errors.Is(err, storage.ErrNotFound) {
		s.logger.Errorf("failed to look up user by email: %v", err)
		return nil, apperror.Store(err)
	}

	traits := map[string]interface{}{"name": req.Name}
	if req.Phone != nil && *req.Phone != "" {
		traits["phone"] = *req.Phone
	}

	id, err := s.provider.CreateAccount(ctx, email, req.Password, traits)
	if errors.Is(err, kratos.ErrIdentityExists) {
		return nil, apperror.Conflict("an account with this email already exists")
	}

	if err != nil {
		s.logger.Errorf("failed to create identity: %v", err)
		return nil, apperror.Store(err)
	}

	user, err := s.storage.UpsertUser(ctx, &types.User{ID: id, Name: req.Name, Email: email, Phone: req.Phone})
	if err != nil {
		s.logger.Errorf("failed to create profile for identity %s: %v", id, err)

		if derr := s.provider.DeleteIdentity(ctx, id); derr != nil {
			s.logger.Errorf("failed to roll back identity %s: %v", id, derr)
		}

		return nil, apperror.Store(err)
	}

	token, _, err := s.provider.SignIn(ctx, email, req.Password)
	if err != nil {
		s.logger.Errorf("failed to sign in new account %s: %v", id, err)
		return nil, apperror.Store(err)
	}

	return &Session{Token: token, User: user}, nil
}

func (s *Service) SignIn(ctx context.Context, req *SignInRequest) (*Session, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Service.SignIn")
	defer span.End()

	req.Email = types.NormalizeEmail(req.Email)

	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	token, subject, err := s.provider.SignIn(ctx, req.Email, req.Password)
	if errors.Is(err, kratos.ErrInvalidLogin) {
		s.logger.Security().AuthzFailure(req.Email, "login")
		return nil, errInvalidLogin
	}

	if err != nil {
		s.logger.Errorf("failed to sign in: %v", err)
		return nil, apperror.Store(err)
	}

	user, err := s.storage.GetUserByID(ctx, subject)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.logger.Errorf("failed to read user %s: %v", subject, err)
		return nil, apperror.Store(err)
	}

	if user != nil && user.DeletedAt != nil {
		if err := s.provider.SignOut(ctx, token); err != nil {
			s.logger.Warnf("failed to revoke session of deleted user %s: %v", subject, err)
		}

		return nil, errInvalidLogin
	}

	return &Session{Token: token, User: user}, nil
}

func (s *Service) SignOut(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "identity.Service.SignOut")
	defer span.End()

	if token == "" {
		return nil
	}

	if err := s.provider.SignOut(ctx, token); err != nil {
		s.logger.Errorf("failed to sign out: %v", err)
		return apperror.Store(err)
	}

	return nil
}

// Organizations lists the live organizations of a user with the user's role
func (s *Service) Organizations(ctx context.Context, userID string) ([]*types.UserOrganization, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Service.Organizations")
	defer span.End()

	orgs, err := s.storage.ListOrganizationsByUserID(ctx, userID)
	if err != nil {
		s.logger.Errorf("failed to list organizations of %s: %v", userID, err)
		return nil, apperror.Store(err)
	}

	return orgs, nil
}

func NewService(storage StorageInterface, provider ProviderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.provider = provider
	s.validate = validation.New()

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/appfluzzio-bit/fluzz2/internal/apperror"
	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
	"github.com/appfluzzio-bit/fluzz2/internal/storage"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
	"github.com/appfluzzio-bit/fluzz2/internal/types"
	"github.com/appfluzzio-bit/fluzz2/internal/validation"
)

var _ ServiceInterface = (*Service)(nil)

var (
	errCannotManage   = apperror.PermissionDenied("you don't have permission to manage this organization")
	errMemberNotFound = apperror.NotFound("member not found")
	errLastOwner      = apperror.Conflict("the last owner of an organization cannot be removed")
)

type Service struct {
	storage     StorageInterface
	tx          TxManagerInterface
	permissions PermissionsInterface
	cache       CacheInterface
	authz       AuthorizerInterface
	validate    *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) authorize(ctx context.Context, actorID, orgID string) error {
	ok, err := s.permissions.IsOrgAdmin(ctx, actorID, orgID)
	if err != nil {
		s.logger.Errorf("failed to evaluate organization permissions: %v", err)
		return apperror.Store(err)
	}

	if !ok {
		s.logger.Security().AuthzFailure(actorID, "organization:"+orgID)
		return errCannotManage
	}

	return nil
}

// Create onboards a new organization: the actor's profile when it was only
// synthesized from the identity, the row, the actor as owner and the default
// workspace with the actor as its admin are written together or not at all
func (s *Service) Create(ctx context.Context, actor *types.User, req *CreateRequest) (*Onboarding, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.Create")
	defer span.End()

	if actor == nil || actor.ID == "" {
		return nil, apperror.AuthenticationRequired()
	}

	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	actorID := actor.ID

	org := &types.Organization{Name: req.Name, Timezone: req.Timezone, Currency: req.Currency}
	if org.Timezone == "" {
		org.Timezone = DefaultTimezone
	}

	if org.Currency == "" {
		org.Currency = DefaultCurrency
	}

	out := new(Onboarding)

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if actor.CreatedAt.IsZero() {
			if _, err := s.storage.UpsertUser(ctx, actor); err != nil {
				return err
			}
		}

		var err error

		if out.Organization, err = s.storage.CreateOrganization(ctx, org); err != nil {
			return err
		}

		if out.Member, err = s.storage.AddOrganizationMember(ctx, out.Organization.ID, actorID, types.OrganizationRoleOwner); err != nil {
			return err
		}

		slug := DefaultWorkspaceSlug
		if out.Workspace, err = s.storage.CreateWorkspace(ctx, &types.Workspace{OrganizationID: out.Organization.ID, Name: DefaultWorkspaceName, Slug: &slug}); err != nil {
			return err
		}

		_, err = s.storage.AddWorkspaceMember(ctx, out.Workspace.ID, actorID, types.WorkspaceRoleAdmin)

		return err
	})

	if err != nil {
		s.logger.Errorf("failed to onboard organization: %v", err)
		return nil, apperror.Store(err)
	}

	orgID := out.Organization.ID

	if err := s.authz.AssignOrganizationMember(ctx, orgID, actorID, types.OrganizationRoleOwner); err != nil {
		s.logger.Warnf("failed to mirror owner of %s: %v", orgID, err)
	}

	if err := s.authz.LinkWorkspace(ctx, out.Workspace.ID, orgID); err != nil {
		s.logger.Warnf("failed to mirror workspace %s: %v", out.Workspace.ID, err)
	}

	if err := s.authz.AssignWorkspaceMembers(ctx, actorID, types.WorkspaceRoleAdmin, out.Workspace.ID); err != nil {
		s.logger.Warnf("failed to mirror workspace admin %s: %v", out.Workspace.ID, err)
	}

	s.logger.Security().AdminAction(actorID, "create_organization", "organization:"+orgID)

	return out, nil
}

func (s *Service) Members(ctx context.Context, actorID, orgID string) ([]*types.OrganizationMember, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.Members")
	defer span.End()

	if err := s.authorize(ctx, actorID, orgID); err != nil {
		return nil, err
	}

	members, err := s.storage.ListOrganizationMembers(ctx, orgID)
	if err != nil {
		s.logger.Errorf("failed to list members of %s: %v", orgID, err)
		return nil, apperror.Store(err)
	}

	if members == nil {
		members = []*types.OrganizationMember{}
	}

	return members, nil
}

func (s *Service) RemoveMember(ctx context.Context, actorID, orgID, memberID string) error {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.RemoveMember")
	defer span.End()

	if err := s.authorize(ctx, actorID, orgID); err != nil {
		return err
	}

	var member *types.OrganizationMember

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error

		member, err = s.storage.GetOrganizationMemberByID(ctx, orgID, memberID)
		if errors.Is(err, storage.ErrNotFound) {
			return errMemberNotFound
		}

		if err != nil {
			return err
		}

		if member.Role == types.OrganizationRoleOwner {
			owners, err := s.storage.CountOrganizationOwners(ctx, orgID)
			if err != nil {
				return err
			}

			if owners <= 1 {
				return errLastOwner
			}
		}

		err = s.storage.RemoveOrganizationMember(ctx, orgID, memberID)
		if errors.Is(err, storage.ErrNotFound) {
			return errMemberNotFound
		}

		return err
	})

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if err != nil {
		s.logger.Errorf("failed to remove organization member %s: %v", memberID, err)
		return apperror.Store(err)
	}

	s.cache.InvalidateOrganization(orgID)

	if err := s.authz.RemoveOrganizationMember(ctx, orgID, member.UserID, member.Role); err != nil {
		s.logger.Warnf("failed to mirror member removal %s: %v", memberID, err)
	}

	s.logger.Security().AdminAction(actorID, "remove_organization_member", "organization:"+orgID+":member:"+memberID)

	return nil
}

func NewService(
	storage StorageInterface,
	tx TxManagerInterface,
	permissions PermissionsInterface,
	cache CacheInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.permissions = permissions
	s.cache = cache
	s.authz = authz
	s.validate = validation.New()

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

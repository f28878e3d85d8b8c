// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspaces

import (
	"context"
	"errors"
	"time"

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
	errCannotManageWorkspaces = apperror.PermissionDenied("you don't have permission to manage workspaces")
	errCannotManageMembers    = apperror.PermissionDenied("you don't have permission to manage members of this workspace")
	errWorkspaceNotFound      = apperror.NotFound("workspace not found")
	errMemberNotFound         = apperror.NotFound("member not found")
	errSlugTaken              = apperror.Conflict("a workspace with this slug already exists")
)

type Service struct {
	storage     StorageInterface
	permissions PermissionsInterface
	cache       CacheInterface
	authz       AuthorizerInterface
	validate    *validator.Validate
	now         func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) authorizeOrg(ctx context.Context, actorID, orgID string) error {
	ok, err := s.permissions.CanManageWorkspaces(ctx, actorID, orgID)
	if err != nil {
		s.logger.Errorf("failed to evaluate workspace permissions: %v", err)
		return apperror.Store(err)
	}

	if !ok {
		s.logger.Security().AuthzFailure(actorID, "organization:"+orgID+":workspaces")
		return errCannotManageWorkspaces
	}

	return nil
}

func (s *Service) checkSlug(ctx context.Context, orgID string, slug *string, self string) error {
	if slug == nil || *slug == "" {
		return nil
	}

	existing, err := s.storage.GetWorkspaceBySlug(ctx, orgID, *slug)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}

	if err != nil {
		s.logger.Errorf("failed to look up workspace slug: %v", err)
		return apperror.Store(err)
	}

	if existing.ID != self {
		return errSlugTaken
	}

	return nil
}

func normalizeSlug(slug *string) *string {
	if slug == nil || *slug == "" {
		return nil
	}

	return slug
}

// Create inserts the workspace and then enrolls the creator as admin. The
// workspace exists once the first insert succeeds, a failed enrollment is
// logged and does not fail the call.
func (s *Service) Create(ctx context.Context, actorID, orgID string, req *CreateRequest) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.Create")
	defer span.End()

	if err := s.authorizeOrg(ctx, actorID, orgID); err != nil {
		return nil, err
	}

	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	if err := s.checkSlug(ctx, orgID, req.Slug, ""); err != nil {
		return nil, err
	}

	ws, err := s.storage.CreateWorkspace(ctx, &types.Workspace{OrganizationID: orgID, Name: req.Name, Slug: normalizeSlug(req.Slug)})
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, errSlugTaken
	}

	if err != nil {
		s.logger.Errorf("failed to create workspace: %v", err)
		return nil, apperror.Store(err)
	}

	s.cache.InvalidateOrganization(orgID)

	if _, err := s.storage.AddWorkspaceMember(ctx, ws.ID, actorID, types.WorkspaceRoleAdmin); err != nil {
		s.logger.Errorw("workspace created without creator membership", "workspace_id", ws.ID, "user_id", actorID, "error", err)
	}

	if err := s.authz.LinkWorkspace(ctx, ws.ID, orgID); err != nil {
		s.logger.Warnf("failed to mirror workspace %s: %v", ws.ID, err)
	}

	if err := s.authz.AssignWorkspaceMembers(ctx, actorID, types.WorkspaceRoleAdmin, ws.ID); err != nil {
		s.logger.Warnf("failed to mirror workspace admin %s: %v", ws.ID, err)
	}

	s.logger.Security().AdminAction(actorID, "create_workspace", "workspace:"+ws.ID)

	return ws, nil
}

func (s *Service) workspaceOf(ctx context.Context, orgID, workspaceID string) (*types.Workspace, error) {
	ws, err := s.storage.GetWorkspaceByID(ctx, workspaceID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, errWorkspaceNotFound
	}

	if err != nil {
		s.logger.Errorf("failed to read workspace %s: %v", workspaceID, err)
		return nil, apperror.Store(err)
	}

	if ws.OrganizationID != orgID {
		return nil, errWorkspaceNotFound
	}

	return ws, nil
}

func (s *Service) Update(ctx context.Context, actorID, orgID, workspaceID string, req *UpdateRequest) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.Update")
	defer span.End()

	if err := s.authorizeOrg(ctx, actorID, orgID); err != nil {
		return nil, err
	}

	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	ws, err := s.workspaceOf(ctx, orgID, workspaceID)
	if err != nil {
		return nil, err
	}

	if err := s.checkSlug(ctx, orgID, req.Slug, ws.ID); err != nil {
		return nil, err
	}

	ws.Name = req.Name
	ws.Slug = normalizeSlug(req.Slug)

	updated, err := s.storage.UpdateWorkspace(ctx, ws)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return nil, errWorkspaceNotFound
	case errors.Is(err, storage.ErrDuplicateKey):
		return nil, errSlugTaken
	case err != nil:
		s.logger.Errorf("failed to update workspace %s: %v", workspaceID, err)
		return nil, apperror.Store(err)
	}

	s.cache.InvalidateOrganization(orgID)

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, actorID, orgID, workspaceID string) error {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.Delete")
	defer span.End()

	if err := s.authorizeOrg(ctx, actorID, orgID); err != nil {
		return err
	}

	if _, err := s.workspaceOf(ctx, orgID, workspaceID); err != nil {
		return err
	}

	err := s.storage.SoftDeleteWorkspace(ctx, workspaceID, s.now().UTC())
	if errors.Is(err, storage.ErrNotFound) {
		return errWorkspaceNotFound
	}

	if err != nil {
		s.logger.Errorf("failed to delete workspace %s: %v", workspaceID, err)
		return apperror.Store(err)
	}

	s.cache.InvalidateOrganization(orgID)

	if err := s.authz.DeleteWorkspace(ctx, workspaceID); err != nil {
		s.logger.Warnf("failed to drop mirrored tuples of workspace %s: %v", workspaceID, err)
	}

	s.logger.Security().AdminAction(actorID, "delete_workspace", "workspace:"+workspaceID)

	return nil
}

// List returns the workspaces the actor can see in the organization
func (s *Service) List(ctx context.Context, actorID, orgID string) ([]*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.List")
	defer span.End()

	if cached, ok := s.cache.Get(orgID, actorID); ok {
		return cached, nil
	}

	workspaces, err := s.permissions.GetUserWorkspaces(ctx, actorID, orgID)
	if err != nil {
		s.logger.Errorf("failed to list workspaces of %s: %v", actorID, err)
		return nil, apperror.Store(err)
	}

	if workspaces == nil {
		workspaces = []*types.Workspace{}
	}

	s.cache.Set(orgID, actorID, workspaces)

	return workspaces, nil
}

func (s *Service) RemoveMember(ctx context.Context, actorID, workspaceID, memberID string) error {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.RemoveMember")
	defer span.End()

	ok, err := s.permissions.CanManageWorkspaceMembers(ctx, actorID, workspaceID)
	if err != nil {
		s.logger.Errorf("failed to evaluate member permissions: %v", err)
		return apperror.Store(err)
	}

	if !ok {
		s.logger.Security().AuthzFailure(actorID, "workspace:"+workspaceID+":members")
		return errCannotManageMembers
	}

	member, err := s.storage.GetWorkspaceMemberByID(ctx, workspaceID, memberID)
	if errors.Is(err, storage.ErrNotFound) {
		return errMemberNotFound
	}

	if err != nil {
		s.logger.Errorf("failed to read workspace member %s: %v", memberID, err)
		return apperror.Store(err)
	}

	err = s.storage.RemoveWorkspaceMember(ctx, workspaceID, memberID)
	if errors.Is(err, storage.ErrNotFound) {
		return errMemberNotFound
	}

	if err != nil {
		s.logger.Errorf("failed to remove workspace member %s: %v", memberID, err)
		return apperror.Store(err)
	}

	if ws, err := s.storage.GetWorkspaceByID(ctx, workspaceID); err == nil {
		s.cache.InvalidateOrganization(ws.OrganizationID)
	}

	if err := s.authz.RemoveWorkspaceMember(ctx, workspaceID, member.UserID, member.Role); err != nil {
		s.logger.Warnf("failed to mirror member removal %s: %v", memberID, err)
	}

	s.logger.Security().AdminAction(actorID, "remove_workspace_member", "workspace:"+workspaceID+":member:"+memberID)

	return nil
}

func NewService(
	storage StorageInterface,
	permissions PermissionsInterface,
	cache CacheInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.permissions = permissions
	s.cache = cache
	s.authz = authz
	s.validate = validation.New()
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

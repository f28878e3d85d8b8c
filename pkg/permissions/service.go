// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"context"
	"errors"
	"fmt"

	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
	"github.com/appfluzzio-bit/fluzz2/internal/storage"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

// Service answers authorization questions from the membership tables. Nothing
// is cached, every call reads the current rows. A missing membership row is a
// denial, never an error.
type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) GetOrgRole(ctx context.Context, userID, orgID string) (*types.OrganizationRole, error) {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.GetOrgRole")
	defer span.End()

	if userID == "" || orgID == "" {
		return nil, nil
	}

	m, err := s.storage.GetOrganizationMember(ctx, orgID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read organization membership: %w", err)
	}

	role := m.Role

	return &role, nil
}

func (s *Service) GetWorkspaceRole(ctx context.Context, userID, workspaceID string) (*types.WorkspaceRole, error) {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.GetWorkspaceRole")
	defer span.End()

	if userID == "" || workspaceID == "" {
		return nil, nil
	}

	m, err := s.storage.GetWorkspaceMember(ctx, workspaceID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read workspace membership: %w", err)
	}

	role := m.Role

	return &role, nil
}

func (s *Service) IsOrgAdmin(ctx context.Context, userID, orgID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.IsOrgAdmin")
	defer span.End()

	role, err := s.GetOrgRole(ctx, userID, orgID)
	if err != nil || role == nil {
		return false, err
	}

	return role.Valid(), nil
}

func (s *Service) IsOrgOwner(ctx context.Context, userID, orgID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.IsOrgOwner")
	defer span.End()

	role, err := s.GetOrgRole(ctx, userID, orgID)
	if err != nil || role == nil {
		return false, err
	}

	return *role == types.OrganizationRoleOwner, nil
}

func (s *Service) CanManageWorkspaces(ctx context.Context, userID, orgID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.CanManageWorkspaces")
	defer span.End()

	return s.IsOrgAdmin(ctx, userID, orgID)
}

func (s *Service) CanManageWorkspaceMembers(ctx context.Context, userID, workspaceID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.CanManageWorkspaceMembers")
	defer span.End()

	return s.canManageInWorkspace(ctx, userID, workspaceID)
}

func (s *Service) CanManageDepartments(ctx context.Context, userID, workspaceID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.CanManageDepartments")
	defer span.End()

	return s.canManageInWorkspace(ctx, userID, workspaceID)
}

// canManageInWorkspace grants on a managing workspace role, and otherwise
// falls back to org admin of the organization currently owning the workspace
func (s *Service) canManageInWorkspace(ctx context.Context, userID, workspaceID string) (bool, error) {
	if userID == "" || workspaceID == "" {
		return false, nil
	}

	ws, err := s.storage.GetWorkspaceByID(ctx, workspaceID)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to read workspace: %w", err)
	}

	role, err := s.GetWorkspaceRole(ctx, userID, ws.ID)
	if err != nil {
		return false, err
	}

	if role != nil && role.CanManage() {
		return true, nil
	}

	return s.IsOrgAdmin(ctx, userID, ws.OrganizationID)
}

// GetUserWorkspaces returns every live workspace of the organization to org
// admins, and only the explicitly joined ones to everybody else
func (s *Service) GetUserWorkspaces(ctx context.Context, userID, orgID string) ([]*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "permissions.Service.GetUserWorkspaces")
	defer span.End()

	admin, err := s.IsOrgAdmin(ctx, userID, orgID)
	if err != nil {
		return nil, err
	}

	var workspaces []*types.Workspace

	if admin {
		workspaces, err = s.storage.ListWorkspacesByOrganization(ctx, orgID)
	} else {
		workspaces, err = s.storage.ListWorkspacesByMember(ctx, orgID, userID)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	return workspaces, nil
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package departments

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
	errCannotManage        = apperror.PermissionDenied("you don't have permission to manage departments")
	errCannotView          = apperror.PermissionDenied("you don't have access to this workspace")
	errWorkspaceNotFound   = apperror.NotFound("workspace not found")
	errDepartmentNotFound  = apperror.NotFound("department not found")
	errMemberNotFound      = apperror.NotFound("member not found")
	errNotWorkspaceMember  = apperror.Validation("user is not a member of this workspace")
	errAlreadyInDepartment = apperror.Conflict("user is already a member of this department")
)

type Service struct {
	storage     StorageInterface
	permissions PermissionsInterface
	validate    *validator.Validate
	now         func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) storeError(op string, err error) error {
	s.logger.Errorf("failed to %s: %v", op, err)
	return apperror.Store(err)
}

func (s *Service) authorize(ctx context.Context, actorID, workspaceID string) error {
	ok, err := s.permissions.CanManageDepartments(ctx, actorID, workspaceID)
	if err != nil {
		return s.storeError("evaluate department permissions", err)
	}

	if !ok {
		s.logger.Security().AuthzFailure(actorID, "workspace:"+workspaceID+":departments")
		return errCannotManage
	}

	return nil
}

func (s *Service) Create(ctx context.Context, actorID, workspaceID string, req *DepartmentRequest) (*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "departments.Service.Create")
	defer span.End()

	if err := s.authorize(ctx, actorID, workspaceID); err != nil {
		return nil, err
	}

	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	dep, err := s.storage.CreateDepartment(ctx, &types.Department{WorkspaceID: workspaceID, Name: req.Name})
	if err != nil {
		return nil, s.storeError("create department", err)
	}

	return dep, nil
}

func (s *Service) Update(ctx context.Context, actorID, workspaceID, departmentID string, req *DepartmentRequest) (*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "departments.Service.Update")
	defer span.End()

	if err := s.authorize(ctx, actorID, workspaceID); err != nil {
		return nil, err
	}

	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	dep, err := s.storage.UpdateDepartment(ctx, &types.Department{ID: departmentID, WorkspaceID: workspaceID, Name: req.Name})
	if errors.Is(err, storage.ErrNotFound) {
		return nil, errDepartmentNotFound
	}

	if err != nil {
		return nil, s.storeError("update department", err)
	}

	return dep, nil
}

func (s *Service) Delete(ctx context.Context, actorID, workspaceID, departmentID string) error {
	ctx, span := s.tracer.Start(ctx, "departments.Service.Delete")
	defer span.End()

	if err := s.authorize(ctx, actorID, workspaceID); err != nil {
		return err
	}

	err := s.storage.SoftDeleteDepartment(ctx, workspaceID, departmentID, s.now().UTC())
	if errors.Is(err, storage.ErrNotFound) {
		return errDepartmentNotFound
	}

	if err != nil {
		return s.storeError("delete department", err)
	}

	return nil
}

// List is open to every workspace member and to admins of the owning organization
func (s *Service) List(ctx context.Context, actorID, workspaceID string) ([]*types.Department, error) {
	ctx, span := s.tracer.Start(ctx, "departments.Service.List")
	defer span.End()

	ws, err := s.storage.GetWorkspaceByID(ctx, workspaceID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, errWorkspaceNotFound
	}

	if err != nil {
		return nil, s.storeError("read workspace", err)
	}

	role, err := s.permissions.GetWorkspaceRole(ctx, actorID, workspaceID)
	if err != nil {
		return nil, s.storeError("read workspace role", err)
	}

	if role == nil {
		admin, err := s.permissions.IsOrgAdmin(ctx, actorID, ws.OrganizationID)
		if err != nil {
			return nil, s.storeError("read organization role", err)
		}

		if !admin {
			return nil, errCannotView
		}
	}

	deps, err := s.storage.ListDepartmentsByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, s.storeError("list departments", err)
	}

	if deps == nil {
		deps = []*types.Department{}
	}

	return deps, nil
}

func (s *Service) AddMember(ctx context.Context, actorID, workspaceID, departmentID string, req *AddMemberRequest) (*types.DepartmentMember, error) {
	ctx, span := s.tracer.Start(ctx, "departments.Service.AddMember")
	defer span.End()

	if err := s.authorize(ctx, actorID, workspaceID); err != nil {
		return nil, err
	}

	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	if _, err := s.storage.GetDepartment(ctx, workspaceID, departmentID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, errDepartmentNotFound
		}

		return nil, s.storeError("read department", err)
	}

	if _, err := s.storage.GetWorkspaceMember(ctx, workspaceID, req.UserID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, errNotWorkspaceMember
		}

		return nil, s.storeError("read workspace member", err)
	}

	m, err := s.storage.AddDepartmentMember(ctx, departmentID, req.UserID, types.DepartmentRole(req.Role))
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, errAlreadyInDepartment
	}

	if err != nil {
		return nil, s.storeError("add department member", err)
	}

	return m, nil
}

func (s *Service) RemoveMember(ctx context.Context, actorID, workspaceID, departmentID, memberID string) error {
	ctx, span := s.tracer.Start(ctx, "departments.Service.RemoveMember")
	defer span.End()

	if err := s.authorize(ctx, actorID, workspaceID); err != nil {
		return err
	}

	if _, err := s.storage.GetDepartment(ctx, workspaceID, departmentID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return errDepartmentNotFound
		}

		return s.storeError("read department", err)
	}

	err := s.storage.RemoveDepartmentMember(ctx, departmentID, memberID)
	if errors.Is(err, storage.ErrNotFound) {
		return errMemberNotFound
	}

	if err != nil {
		return s.storeError("remove department member", err)
	}

	return nil
}

func NewService(storage StorageInterface, permissions PermissionsInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.permissions = permissions
	s.validate = validation.New()
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

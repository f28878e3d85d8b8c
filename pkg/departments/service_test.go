// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package departments

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/appfluzzio-bit/fluzz2/internal/apperror"
	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
	"github.com/appfluzzio-bit/fluzz2/internal/storage"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

func newTestService(ctrl *gomock.Controller) (*Service, *MockStorageInterface, *MockPermissionsInterface) {
	st := NewMockStorageInterface(ctrl)
	perms := NewMockPermissionsInterface(ctrl)

	return NewService(st, perms, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger()), st, perms
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name         string
		req          *DepartmentRequest
		setupMocks   func(*MockStorageInterface, *MockPermissionsInterface)
		expectedKind apperror.Kind
	}{
		{
			name: "agent cannot manage departments",
			req:  &DepartmentRequest{Name: "Support"},
			setupMocks: func(_ *MockStorageInterface, p *MockPermissionsInterface) {
				p.EXPECT().CanManageDepartments(gomock.Any(), "u1", "w1").Return(false, nil)
			},
			expectedKind: apperror.KindPermissionDenied,
		},
		{
			name: "missing name",
			req:  &DepartmentRequest{},
			setupMocks: func(_ *MockStorageInterface, p *MockPermissionsInterface) {
				p.EXPECT().CanManageDepartments(gomock.Any(), "u1", "w1").Return(true, nil)
			},
			expectedKind: apperror.KindValidation,
		},
		{
			name: "success",
			req:  &DepartmentRequest{Name: "Support"},
			setupMocks: func(s *MockStorageInterface, p *MockPermissionsInterface) {
				p.EXPECT().CanManageDepartments(gomock.Any(), "u1", "w1").Return(true, nil)
				s.EXPECT().CreateDepartment(gomock.Any(), &types.Department{WorkspaceID: "w1", Name: "Support"}).
					Return(&types.Department{ID: "d1", WorkspaceID: "w1", Name: "Support"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, st, perms := newTestService(ctrl)
			tt.setupMocks(st, perms)

			dep, err := s.Create(context.Background(), "u1", "w1", tt.req)

			if tt.expectedKind != "" {
				if !apperror.Is(err, tt.expectedKind) {
					t.Fatalf("expected %s, got %v", tt.expectedKind, err)
				}
				return
			}

			if err != nil || dep.ID != "d1" {
				t.Fatalf("unexpected result %+v %v", dep, err)
			}
		})
	}
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, st, perms := newTestService(ctrl)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	perms.EXPECT().CanManageDepartments(gomock.Any(), "u1", "w1").Return(true, nil).Times(2)
	st.EXPECT().SoftDeleteDepartment(gomock.Any(), "w1", "d1", now).Return(nil)
	st.EXPECT().SoftDeleteDepartment(gomock.Any(), "w1", "d2", now).Return(storage.ErrNotFound)

	if err := s.Delete(context.Background(), "u1", "w1", "d1"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if err := s.Delete(context.Background(), "u1", "w1", "d2"); !apperror.Is(err, apperror.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestService_List(t *testing.T) {
	agent := types.WorkspaceRoleAgent

	tests := []struct {
		name         string
		setupMocks   func(*MockStorageInterface, *MockPermissionsInterface)
		expectedKind apperror.Kind
	}{
		{
			name: "deleted workspace",
			setupMocks: func(s *MockStorageInterface, _ *MockPermissionsInterface) {
				s.EXPECT().GetWorkspaceByID(gomock.Any(), "w1").Return(nil, storage.ErrNotFound)
			},
			expectedKind: apperror.KindNotFound,
		},
		{
			name: "workspace member",
			setupMocks: func(s *MockStorageInterface, p *MockPermissionsInterface) {
				s.EXPECT().GetWorkspaceByID(gomock.Any(), "w1").Return(&types.Workspace{ID: "w1", OrganizationID: "o1"}, nil)
				p.EXPECT().GetWorkspaceRole(gomock.Any(), "u1", "w1").Return(&agent, nil)
				s.EXPECT().ListDepartmentsByWorkspace(gomock.Any(), "w1").Return(nil, nil)
			},
		},
		{
			name: "org admin without workspace row",
			setupMocks: func(s *MockStorageInterface, p *MockPermissionsInterface) {
				s.EXPECT().GetWorkspaceByID(gomock.Any(), "w1").Return(&types.Workspace{ID: "w1", OrganizationID: "o1"}, nil)
				p.EXPECT().GetWorkspaceRole(gomock.Any(), "u1", "w1").Return(nil, nil)
				p.EXPECT().IsOrgAdmin(gomock.Any(), "u1", "o1").Return(true, nil)
				s.EXPECT().ListDepartmentsByWorkspace(gomock.Any(), "w1").Return([]*types.Department{{ID: "d1"}}, nil)
			},
		},
		{
			name: "outsider",
			setupMocks: func(s *MockStorageInterface, p *MockPermissionsInterface) {
				s.EXPECT().GetWorkspaceByID(gomock.Any(), "w1").Return(&types.Workspace{ID: "w1", OrganizationID: "o1"}, nil)
				p.EXPECT().GetWorkspaceRole(gomock.Any(), "u1", "w1").Return(nil, nil)
				p.EXPECT().IsOrgAdmin(gomock.Any(), "u1", "o1").Return(false, nil)
			},
			expectedKind: apperror.KindPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, st, perms := newTestService(ctrl)
			tt.setupMocks(st, perms)

			deps, err := s.List(context.Background(), "u1", "w1")

			if tt.expectedKind != "" {
				if !apperror.Is(err, tt.expectedKind) {
					t.Fatalf("expected %s, got %v", tt.expectedKind, err)
				}
				return
			}

			if err != nil || deps == nil {
				t.Fatalf("unexpected result %v %v", deps, err)
			}
		})
	}
}

func TestService_AddMember(t *testing.T) {
	tests := []struct {
		name         string
		req          *AddMemberRequest
		setupMocks   func(*MockStorageInterface, *MockPermissionsInterface)
		expectedKind apperror.Kind
	}{
		{
			name: "invalid role",
			req:  &AddMemberRequest{UserID: "u2", Role: "viewer"},
			setupMocks: func(_ *MockStorageInterface, p *MockPermissionsInterface) {
				p.EXPECT().CanManageDepartments(gomock.Any(), "u1", "w1").Return(true, nil)
			},
			expectedKind: apperror.KindValidation,
		},
		{
			name: "user outside the workspace",
			req:  &AddMemberRequest{UserID: "u2", Role: "agent"},
			setupMocks: func(s *MockStorageInterface, p *MockPermissionsInterface) {
				p.EXPECT().CanManageDepartments(gomock.Any(), "u1", "w1").Return(true, nil)
				s.EXPECT().GetDepartment(gomock.Any(), "w1", "d1").Return(&types.Department{ID: "d1"}, nil)
				s.EXPECT().GetWorkspaceMember(gomock.Any(), "w1", "u2").Return(nil, storage.ErrNotFound)
			},
			expectedKind: apperror.KindValidation,
		},
		{
			name: "already a member",
			req:  &AddMemberRequest{UserID: "u2", Role: "agent"},
			setupMocks: func(s *MockStorageInterface, p *MockPermissionsInterface) {
				p.EXPECT().CanManageDepartments(gomock.Any(), "u1", "w1").Return(true, nil)
				s.EXPECT().GetDepartment(gomock.Any(), "w1", "d1").Return(&types.Department{ID: "d1"}, nil)
				s.EXPECT().GetWorkspaceMember(gomock.Any(), "w1", "u2").Return(&types.WorkspaceMember{}, nil)
				s.EXPECT().AddDepartmentMember(gomock.Any(), "d1", "u2", types.DepartmentRoleAgent).
					Return(nil, fmt.Errorf("add department member: %w", storage.ErrDuplicateKey))
			},
			expectedKind: apperror.KindConflict,
		},
		{
			name: "success",
			req:  &AddMemberRequest{UserID: "u2", Role: "manager"},
			setupMocks: func(s *MockStorageInterface, p *MockPermissionsInterface) {
				p.EXPECT().CanManageDepartments(gomock.Any(), "u1", "w1").Return(true, nil)
				s.EXPECT().GetDepartment(gomock.Any(), "w1", "d1").Return(&types.Department{ID: "d1"}, nil)
				s.EXPECT().GetWorkspaceMember(gomock.Any(), "w1", "u2").Return(&types.WorkspaceMember{}, nil)
				s.EXPECT().AddDepartmentMember(gomock.Any(), "d1", "u2", types.DepartmentRoleManager).
					Return(&types.DepartmentMember{ID: "dm1"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, st, perms := newTestService(ctrl)
			tt.setupMocks(st, perms)

			_, err := s.AddMember(context.Background(), "u1", "w1", "d1", tt.req)

			if tt.expectedKind != "" {
				if !apperror.Is(err, tt.expectedKind) {
					t.Fatalf("expected %s, got %v", tt.expectedKind, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
		})
	}
}

func TestService_RemoveMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, st, perms := newTestService(ctrl)

	perms.EXPECT().CanManageDepartments(gomock.Any(), "u1", "w1").Return(true, nil)
	st.EXPECT().GetDepartment(gomock.Any(), "w1", "d1").Return(&types.Department{ID: "d1"}, nil)
	st.EXPECT().RemoveDepartmentMember(gomock.Any(), "d1", "dm1").Return(storage.ErrNotFound)

	if err := s.RemoveMember(context.Background(), "u1", "w1", "d1", "dm1"); !apperror.Is(err, apperror.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
	"github.com/appfluzzio-bit/fluzz2/internal/storage"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

func newTestService(s StorageInterface) *Service {
	return NewService(s, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func orgMember(orgID, userID string, role types.OrganizationRole) *types.OrganizationMember {
	return &types.OrganizationMember{ID: "om-" + userID, OrganizationID: orgID, UserID: userID, Role: role}
}

func wsMember(workspaceID, userID string, role types.WorkspaceRole) *types.WorkspaceMember {
	return &types.WorkspaceMember{ID: "wm-" + userID, WorkspaceID: workspaceID, UserID: userID, Role: role}
}

func TestIsOrgAdmin(t *testing.T) {
	storeErr := errors.New("connection reset")

	testCases := []struct {
		name          string
		setupMocks    func(*MockStorageInterface)
		expected      bool
		expectedOwner bool
		expectedErr   error
	}{
		{
			name: "owner",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetOrganizationMember(gomock.Any(), "o1", "u1").Return(orgMember("o1", "u1", types.OrganizationRoleOwner), nil).Times(2)
			},
			expected:      true,
			expectedOwner: true,
		},
		{
			name: "admin",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetOrganizationMember(gomock.Any(), "o1", "u1").Return(orgMember("o1", "u1", types.OrganizationRoleAdmin), nil).Times(2)
			},
			expected: true,
		},
		{
			name: "no membership row is a denial",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetOrganizationMember(gomock.Any(), "o1", "u1").Return(nil, storage.ErrNotFound).Times(2)
			},
		},
		{
			name: "unknown role is a denial",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetOrganizationMember(gomock.Any(), "o1", "u1").Return(orgMember("o1", "u1", "viewer"), nil).Times(2)
			},
		},
		{
			name: "store failure",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetOrganizationMember(gomock.Any(), "o1", "u1").Return(nil, storeErr).Times(2)
			},
			expectedErr: storeErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			svc := newTestService(mockStorage)

			admin, err := svc.IsOrgAdmin(context.Background(), "u1", "o1")
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}

			if admin != tc.expected {
				t.Errorf("expected IsOrgAdmin %v, got %v", tc.expected, admin)
			}

			owner, err := svc.IsOrgOwner(context.Background(), "u1", "o1")
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}

			if owner != tc.expectedOwner {
				t.Errorf("expected IsOrgOwner %v, got %v", tc.expectedOwner, owner)
			}
		})
	}
}

func TestCanManageWorkspaceMembers(t *testing.T) {
	workspace := &types.Workspace{ID: "w1", OrganizationID: "o1", Name: "Sales"}

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		expected   bool
	}{
		{
			name: "workspace manager",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetWorkspaceByID(gomock.Any(), "w1").Return(workspace, nil)
				s.EXPECT().GetWorkspaceMember(gomock.Any(), "w1", "u1").Return(wsMember("w1", "u1", types.WorkspaceRoleManager), nil)
			},
			expected: true,
		},
		{
			name: "workspace agent without org standing",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetWorkspaceByID(gomock.Any(), "w1").Return(workspace, nil)
				s.EXPECT().GetWorkspaceMember(gomock.Any(), "w1", "u1").Return(wsMember("w1", "u1", types.WorkspaceRoleAgent), nil)
				s.EXPECT().GetOrganizationMember(gomock.Any(), "o1", "u1").Return(nil, storage.ErrNotFound)
			},
			expected: false,
		},
		{
			name: "org admin without any workspace row",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetWorkspaceByID(gomock.Any(), "w1").Return(workspace, nil)
				s.EXPECT().GetWorkspaceMember(gomock.Any(), "w1", "u1").Return(nil, storage.ErrNotFound)
				s.EXPECT().GetOrganizationMember(gomock.Any(), "o1", "u1").Return(orgMember("o1", "u1", types.OrganizationRoleAdmin), nil)
			},
			expected: true,
		},
		{
			name: "org owner overrides a viewer role",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetWorkspaceByID(gomock.Any(), "w1").Return(workspace, nil)
				s.EXPECT().GetWorkspaceMember(gomock.Any(), "w1", "u1").Return(wsMember("w1", "u1", types.WorkspaceRoleViewer), nil)
				s.EXPECT().GetOrganizationMember(gomock.Any(), "o1", "u1").Return(orgMember("o1", "u1", types.OrganizationRoleOwner), nil)
			},
			expected: true,
		},
		{
			name: "deleted or missing workspace",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetWorkspaceByID(gomock.Any(), "w1").Return(nil, storage.ErrNotFound)
			},
			expected: false,
		},
	}

	for _, tc := range testCases {
		for _, predicate := range []string{"members", "departments"} {
			t.Run(tc.name+"/"+predicate, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				mockStorage := NewMockStorageInterface(ctrl)
				tc.setupMocks(mockStorage)

				svc := newTestService(mockStorage)

				var (
					allowed bool
					err     error
				)

				if predicate == "members" {
					allowed, err = svc.CanManageWorkspaceMembers(context.Background(), "u1", "w1")
				} else {
					allowed, err = svc.CanManageDepartments(context.Background(), "u1", "w1")
				}

				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				if allowed != tc.expected {
					t.Errorf("expected %v, got %v", tc.expected, allowed)
				}
			})
		}
	}
}

func TestGetUserWorkspacesScoping(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)

	all := []*types.Workspace{
		{ID: "w1", OrganizationID: "o1"},
		{ID: "w2", OrganizationID: "o1"},
		{ID: "w3", OrganizationID: "o1"},
	}
	joined := []*types.Workspace{{ID: "w5", OrganizationID: "o2"}}

	// u1 is admin of o1 and a plain workspace member in o2
	mockStorage.EXPECT().GetOrganizationMember(gomock.Any(), "o1", "u1").Return(orgMember("o1", "u1", types.OrganizationRoleAdmin), nil)
	mockStorage.EXPECT().ListWorkspacesByOrganization(gomock.Any(), "o1").Return(all, nil)
	mockStorage.EXPECT().GetOrganizationMember(gomock.Any(), "o2", "u1").Return(nil, storage.ErrNotFound)
	mockStorage.EXPECT().ListWorkspacesByMember(gomock.Any(), "o2", "u1").Return(joined, nil)

	svc := newTestService(mockStorage)

	adminView, err := svc.GetUserWorkspaces(context.Background(), "u1", "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(adminView) != len(all) {
		t.Errorf("expected the admin to see %d workspaces, got %d", len(all), len(adminView))
	}

	memberView, err := svc.GetUserWorkspaces(context.Background(), "u1", "o2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(memberView) != 1 || memberView[0].ID != "w5" {
		t.Errorf("expected the member to only see w5, got %v", memberView)
	}
}

func TestGetRolesWithEmptyIdentifiers(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestService(NewMockStorageInterface(ctrl))

	if role, err := svc.GetOrgRole(context.Background(), "", "o1"); role != nil || err != nil {
		t.Errorf("expected no role and no error, got %v, %v", role, err)
	}

	if role, err := svc.GetWorkspaceRole(context.Background(), "u1", ""); role != nil || err != nil {
		t.Errorf("expected no role and no error, got %v, %v", role, err)
	}

	if ok, err := svc.CanManageWorkspaceMembers(context.Background(), "", "w1"); ok || err != nil {
		t.Errorf("expected a denial, got %v, %v", ok, err)
	}
}

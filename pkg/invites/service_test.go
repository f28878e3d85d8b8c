// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/appfluzzio-bit/fluzz2/internal/apperror"
	"github.com/appfluzzio-bit/fluzz2/internal/kratos"
	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
	"github.com/appfluzzio-bit/fluzz2/internal/storage"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
	"github.com/appfluzzio-bit/fluzz2/internal/types"
)

const baseURL = "https://app.fluzz.test"

var now = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

type mocks struct {
	storage     *MockStorageInterface
	tx          *MockTxManagerInterface
	permissions *MockPermissionsInterface
	provider    *MockProviderInterface
	dispatcher  *MockDispatcherInterface
	authz       *MockAuthorizerInterface
	cache       *MockCacheInterface
}

func setup(ctrl *gomock.Controller) (*Service, *mocks) {
	m := &mocks{
		storage:     NewMockStorageInterface(ctrl),
		tx:          NewMockTxManagerInterface(ctrl),
		permissions: NewMockPermissionsInterface(ctrl),
		provider:    NewMockProviderInterface(ctrl),
		dispatcher:  NewMockDispatcherInterface(ctrl),
		authz:       NewMockAuthorizerInterface(ctrl),
		cache:       NewMockCacheInterface(ctrl),
	}

	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
	).AnyTimes()

	s := NewService(
		m.storage, m.tx, m.permissions, m.provider, m.dispatcher, m.authz, m.cache,
		baseURL+"/",
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger(),
	)
	s.now = func() time.Time { return now }

	return s, m
}

func strPtr(s string) *string {
	return &s
}

func notFound(op string) error {
	return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}

func TestService_CreateOwnerInvitesAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := setup(ctrl)
	l := newLedger()
	l.wire(m.storage)

	m.permissions.EXPECT().IsOrgAdmin(gomock.Any(), "u1", "o1").Return(true, nil).Times(2)
	m.storage.EXPECT().GetUserByEmail(gomock.Any(), "b@x.com").Return(nil, notFound("get user")).Times(2)
	m.dispatcher.EXPECT().SendInviteEmail(gomock.Any(), "b@x.com", baseURL+"/invite/new1").Return(nil)

	invite, err := s.Create(context.Background(), "u1", &CreateRequest{OrganizationID: "o1", Email: " B@x.com ", Role: "admin"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if invite.Status != types.InviteStatusPending || invite.Email != "b@x.com" || invite.InvitedBy != "u1" {
		t.Fatalf("unexpected invite %+v", invite)
	}

	if !invite.ExpiresAt.Equal(now.Add(7 * 24 * time.Hour)) {
		t.Fatalf("expected a seven day window, got %v", invite.ExpiresAt)
	}

	_, err = s.Create(context.Background(), "u1", &CreateRequest{OrganizationID: "o1", Email: "b@x.com", Role: "admin"})
	if !apperror.Is(err, apperror.KindConflict) || apperror.Message(err) != "invite pending" {
		t.Fatalf("expected pending conflict, got %v", err)
	}
}

func TestService_CreateAfterCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := setup(ctrl)
	l := newLedger()
	l.wire(m.storage)

	m.permissions.EXPECT().IsOrgAdmin(gomock.Any(), "u1", "o1").Return(true, nil).AnyTimes()
	m.storage.EXPECT().GetUserByEmail(gomock.Any(), "b@x.com").Return(nil, notFound("get user")).AnyTimes()
	m.dispatcher.EXPECT().SendInviteEmail(gomock.Any(), "b@x.com", gomock.Any()).Return(nil).Times(2)

	first, err := s.Create(context.Background(), "u1", &CreateRequest{OrganizationID: "o1", Email: "b@x.com", Role: "admin"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if err := s.Cancel(context.Background(), "u1", "o1", first.ID); err != nil {
		t.Fatalf("unexpected cancel error %v", err)
	}

	if err := s.Cancel(context.Background(), "u1", "o1", first.ID); !apperror.Is(err, apperror.KindConflict) {
		t.Fatalf("expected conflict on terminal invite, got %v", err)
	}

	second, err := s.Create(context.Background(), "u1", &CreateRequest{OrganizationID: "o1", Email: "b@x.com", Role: "admin"})
	if err != nil {
		t.Fatalf("unexpected error after cancel %v", err)
	}

	if second.ID == first.ID || l.status(first.ID) != types.InviteStatusCancelled {
		t.Fatalf("unexpected ledger state %+v", l.rows)
	}
}

func TestService_CreateExpiresStaleInvite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := setup(ctrl)
	l := newLedger(&types.Invite{
		ID: "old", OrganizationID: "o1", Email: "b@x.com", Role: "admin",
		Status: types.InviteStatusPending, ExpiresAt: now.Add(-time.Minute),
	})
	l.wire(m.storage)

	m.permissions.EXPECT().IsOrgAdmin(gomock.Any(), "u1", "o1").Return(true, nil)
	m.storage.EXPECT().GetUserByEmail(gomock.Any(), "b@x.com").Return(nil, notFound("get user"))
	m.dispatcher.EXPECT().SendInviteEmail(gomock.Any(), "b@x.com", gomock.Any()).Return(errors.New("redis down"))

	if _, err := s.Create(context.Background(), "u1", &CreateRequest{OrganizationID: "o1", Email: "b@x.com", Role: "admin"}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if l.status("old") != types.InviteStatusExpired {
		t.Fatalf("expected stale invite to be expired, got %s", l.status("old"))
	}
}

func TestService_CreateRejections(t *testing.T) {
	tests := []struct {
		name         string
		req          *CreateRequest
		setupMocks   func(*mocks)
		expectedKind apperror.Kind
	}{
		{
			name: "not an organization admin",
			req:  &CreateRequest{OrganizationID: "o1", Email: "b@x.com", Role: "admin"},
			setupMocks: func(m *mocks) {
				m.permissions.EXPECT().IsOrgAdmin(gomock.Any(), "u1", "o1").Return(false, nil)
			},
			expectedKind: apperror.KindPermissionDenied,
		},
		{
			name: "organization user flag requires organization admin",
			req: &CreateRequest{
				OrganizationID: "o1", Email: "b@x.com", Role: "admin", WorkspaceID: strPtr("w1"),
				Metadata: &types.InviteMetadata{IsOrganizationUser: true},
			},
			setupMocks: func(m *mocks) {
				m.permissions.EXPECT().IsOrgAdmin(gomock.Any(), "u1", "o1").Return(false, nil)
			},
			expectedKind: apperror.KindPermissionDenied,
		},
		{
			name: "cannot manage workspace members",
			req:  &CreateRequest{OrganizationID: "o1", Email: "b@x.com", Role: "agent", WorkspaceID: strPtr("w1")},
			setupMocks: func(m *mocks) {
				m.permissions.EXPECT().CanManageWorkspaceMembers(gomock.Any(), "u1", "w1").Return(false, nil)
			},
			expectedKind: apperror.KindPermissionDenied,
		},
		{
			name: "invalid email",
			req:  &CreateRequest{OrganizationID: "o1", Email: "not-an-email", Role: "admin"},
			setupMocks: func(m *mocks) {
				m.permissions.EXPECT().IsOrgAdmin(gomock.Any(), "u1", "o1").Return(true, nil)
			},
			expectedKind: apperror.KindValidation,
		},
		{
			name: "workspace role on organization invite",
			req:  &CreateRequest{OrganizationID: "o1", Email: "b@x.com", Role: "agent"},
			setupMocks: func(m *mocks) {
				m.permissions.EXPECT().IsOrgAdmin(gomock.Any(), "u1", "o1").Return(true, nil)
			},
			expectedKind: apperror.KindValidation,
		},
		{
			name: "owner role on workspace invite",
			req:  &CreateRequest{OrganizationID: "o1", Email: "b@x.com", Role: "owner", WorkspaceID: strPtr("w1")},
			setupMocks: func(m *mocks) {
				m.permissions.EXPECT().CanManageWorkspaceMembers(gomock.Any(), "u1", "w1").Return(true, nil)
			},
			expectedKind: apperror.KindValidation,
		},
		{
			name: "workspace of another organization",
			req:  &CreateRequest{OrganizationID: "o1", Email: "b@x.com", Role: "agent", WorkspaceID: strPtr("w9")},
			setupMocks: func(m *mocks) {
				m.permissions.EXPECT().CanManageWorkspaceMembers(gomock.Any(), "u1", "w9").Return(true, nil)
				m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "w9").Return(&types.Workspace{ID: "w9", OrganizationID: "o2"}, nil)
			},
			expectedKind: apperror.KindNotFound,
		},
		{
			name: "already a workspace member",
			req:  &CreateRequest{OrganizationID: "o1", Email: "b@x.com", Role: "agent", WorkspaceID: strPtr("w1")},
			setupMocks: func(m *mocks) {
				m.permissions.EXPECT().CanManageWorkspaceMembers(gomock.Any(), "u1", "w1").Return(true, nil)
				m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "w1").Return(&types.Workspace{ID: "w1", OrganizationID: "o1"}, nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "b@x.com").Return(&types.User{ID: "u2"}, nil)
				m.storage.EXPECT().GetWorkspaceMember(gomock.Any(), "w1", "u2").Return(&types.WorkspaceMember{}, nil)
			},
			expectedKind: apperror.KindConflict,
		},
		{
			name: "already an organization member",
			req:  &CreateRequest{OrganizationID: "o1", Email: "b@x.com", Role: "admin"},
			setupMocks: func(m *mocks) {
				m.permissions.EXPECT().IsOrgAdmin(gomock.Any(), "u1", "o1").Return(true, nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "b@x.com").Return(&types.User{ID: "u2"}, nil)
				m.storage.EXPECT().GetOrganizationMember(gomock.Any(), "o1", "u2").Return(&types.OrganizationMember{}, nil)
			},
			expectedKind: apperror.KindConflict,
		},
		{
			name: "concurrent insert loses on the pending index",
			req:  &CreateRequest{OrganizationID: "o1", Email: "b@x.com", Role: "admin"},
			setupMocks: func(m *mocks) {
				m.permissions.EXPECT().IsOrgAdmin(gomock.Any(), "u1", "o1").Return(true, nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "b@x.com").Return(nil, notFound("get user"))
				m.storage.EXPECT().FindPendingInvite(gomock.Any(), "o1", "b@x.com", now).Return(nil, notFound("find"))
				m.storage.EXPECT().ExpireStaleInvites(gomock.Any(), "o1", "b@x.com", now).Return(int64(0), nil)
				m.storage.EXPECT().CreateInvite(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("insert invite: %w", storage.ErrDuplicateKey))
			},
			expectedKind: apperror.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := setup(ctrl)
			tt.setupMocks(m)

			if _, err := s.Create(context.Background(), "u1", tt.req); !apperror.Is(err, tt.expectedKind) {
				t.Fatalf("expected %s, got %v", tt.expectedKind, err)
			}
		})
	}
}

func workspaceInvite(expiresAt time.Time) *types.Invite {
	return &types.Invite{
		ID: "i1", OrganizationID: "o1", WorkspaceID: strPtr("w1"), Email: "c@x.com", Role: "agent",
		Status: types.InviteStatusPending, ExpiresAt: expiresAt, InvitedBy: "u1",
	}
}

// expectNewAccount wires the identity and profile creation of c@x.com as u9
func expectNewAccount(m *mocks, name string) {
	m.storage.EXPECT().GetUserByEmail(gomock.Any(), "c@x.com").Return(nil, notFound("get user"))
	m.provider.EXPECT().IdentityExists(gomock.Any(), "c@x.com").Return(false, nil)
	m.provider.EXPECT().CreateAccount(gomock.Any(), "c@x.com", "secret1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, traits map[string]interface{}) (string, error) {
			if traits["name"] != name {
				return "", fmt.Errorf("unexpected traits %v", traits)
			}

			return "u9", nil
		},
	)
	m.storage.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *types.User) (*types.User, error) {
			out := *u
			out.CreatedAt = now

			return &out, nil
		},
	)
}

func TestService_AcceptNewExpiryBoundary(t *testing.T) {
	tests := []struct {
		name         string
		offset       time.Duration
		expectedKind apperror.Kind
	}{
		{name: "one second past expiry", offset: -time.Second, expectedKind: apperror.KindExpired},
		{name: "at expiry", offset: 0, expectedKind: apperror.KindExpired},
		{name: "one second before expiry", offset: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := setup(ctrl)
			l := newLedger(workspaceInvite(now.Add(tt.offset)))
			l.wire(m.storage)

			if tt.expectedKind == "" {
				expectNewAccount(m, "c")
				m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "w1").Return(&types.Workspace{ID: "w1", OrganizationID: "o1"}, nil)
				m.storage.EXPECT().AddWorkspaceMember(gomock.Any(), "w1", "u9", types.WorkspaceRoleAgent).Return(&types.WorkspaceMember{}, nil)
				m.cache.EXPECT().InvalidateOrganization("o1")
				m.authz.EXPECT().AssignWorkspaceMembers(gomock.Any(), "u9", types.WorkspaceRoleAgent, "w1").Return(nil)
				m.provider.EXPECT().SignIn(gomock.Any(), "c@x.com", "secret1").Return("token", "u9", nil)
			}

			out, err := s.AcceptNew(context.Background(), "i1", &AcceptRequest{Password: "secret1"})

			if tt.expectedKind != "" {
				if !apperror.Is(err, tt.expectedKind) {
					t.Fatalf("expected %s, got %v", tt.expectedKind, err)
				}

				if l.status("i1") != types.InviteStatusPending {
					t.Fatalf("expiry check must not write, got %s", l.status("i1"))
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}

			if out.Token != "token" || out.User.ID != "u9" || l.status("i1") != types.InviteStatusAccepted {
				t.Fatalf("unexpected acceptance %+v", out)
			}
		})
	}
}

func TestService_AcceptNewTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := setup(ctrl)
	l := newLedger(workspaceInvite(now.Add(time.Hour)))
	l.wire(m.storage)

	expectNewAccount(m, "c")
	m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "w1").Return(&types.Workspace{ID: "w1", OrganizationID: "o1"}, nil)
	m.storage.EXPECT().AddWorkspaceMember(gomock.Any(), "w1", "u9", types.WorkspaceRoleAgent).Return(&types.WorkspaceMember{}, nil).Times(1)
	m.cache.EXPECT().InvalidateOrganization("o1")
	m.authz.EXPECT().AssignWorkspaceMembers(gomock.Any(), "u9", types.WorkspaceRoleAgent, "w1").Return(nil)
	m.provider.EXPECT().SignIn(gomock.Any(), "c@x.com", "secret1").Return("token", "u9", nil)

	if _, err := s.AcceptNew(context.Background(), "i1", &AcceptRequest{Password: "secret1"}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if _, err := s.AcceptNew(context.Background(), "i1", &AcceptRequest{Password: "secret1"}); !apperror.Is(err, apperror.KindNotFound) {
		t.Fatalf("expected not found on second acceptance, got %v", err)
	}
}

func TestService_AcceptNewOrganizationScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := setup(ctrl)
	l := newLedger(&types.Invite{
		ID: "i1", OrganizationID: "o1", Email: "c@x.com", Role: "admin",
		Status: types.InviteStatusPending, ExpiresAt: now.Add(time.Hour),
		Metadata: &types.InviteMetadata{Name: "Carla", Phone: "+351900000000"},
	})
	l.wire(m.storage)

	expectNewAccount(m, "Carla")
	m.storage.EXPECT().AddOrganizationMember(gomock.Any(), "o1", "u9", types.OrganizationRoleAdmin).Return(&types.OrganizationMember{}, nil)
	// w4 is soft-deleted and never listed
	m.storage.EXPECT().ListWorkspacesByOrganization(gomock.Any(), "o1").Return([]*types.Workspace{{ID: "w1"}, {ID: "w2"}, {ID: "w3"}}, nil)
	m.storage.EXPECT().AddWorkspaceMembers(gomock.Any(), "u9", types.WorkspaceRoleAdmin, []string{"w1", "w2", "w3"}).Return(int64(3), nil)
	m.cache.EXPECT().InvalidateOrganization("o1")
	m.authz.EXPECT().AssignOrganizationMember(gomock.Any(), "o1", "u9", types.OrganizationRoleAdmin).Return(nil)
	m.authz.EXPECT().AssignWorkspaceMembers(gomock.Any(), "u9", types.WorkspaceRoleAdmin, "w1", "w2", "w3").Return(errors.New("fga down"))
	m.provider.EXPECT().SignIn(gomock.Any(), "c@x.com", "secret1").Return("", "", errors.New("kratos down"))

	out, err := s.AcceptNew(context.Background(), "i1", &AcceptRequest{Password: "secret1"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if out.Token != "" || out.User.Name != "Carla" || out.User.Phone == nil {
		t.Fatalf("unexpected acceptance %+v", out)
	}
}

func TestService_AcceptNewRejections(t *testing.T) {
	tests := []struct {
		name         string
		password     string
		setupMocks   func(*mocks)
		expectedKind apperror.Kind
	}{
		{
			name:         "short password",
			password:     "12345",
			setupMocks:   func(*mocks) {},
			expectedKind: apperror.KindValidation,
		},
		{
			name:     "profile exists",
			password: "secret1",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "c@x.com").Return(&types.User{ID: "u2"}, nil)
			},
			expectedKind: apperror.KindConflict,
		},
		{
			name:     "identity exists",
			password: "secret1",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "c@x.com").Return(nil, notFound("get user"))
				m.provider.EXPECT().IdentityExists(gomock.Any(), "c@x.com").Return(true, nil)
			},
			expectedKind: apperror.KindConflict,
		},
		{
			name:     "identity created concurrently",
			password: "secret1",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "c@x.com").Return(nil, notFound("get user"))
				m.provider.EXPECT().IdentityExists(gomock.Any(), "c@x.com").Return(false, nil)
				m.provider.EXPECT().CreateAccount(gomock.Any(), "c@x.com", "secret1", gomock.Any()).Return("", kratos.ErrIdentityExists)
			},
			expectedKind: apperror.KindConflict,
		},
		{
			name:     "failed commit removes the identity",
			password: "secret1",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "c@x.com").Return(nil, notFound("get user"))
				m.provider.EXPECT().IdentityExists(gomock.Any(), "c@x.com").Return(false, nil)
				m.provider.EXPECT().CreateAccount(gomock.Any(), "c@x.com", "secret1", gomock.Any()).Return("u9", nil)
				m.storage.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
				m.provider.EXPECT().DeleteIdentity(gomock.Any(), "u9").Return(nil)
			},
			expectedKind: apperror.KindStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := setup(ctrl)
			l := newLedger(workspaceInvite(now.Add(time.Hour)))
			l.wire(m.storage)
			tt.setupMocks(m)

			if _, err := s.AcceptNew(context.Background(), "i1", &AcceptRequest{Password: tt.password}); !apperror.Is(err, tt.expectedKind) {
				t.Fatalf("expected %s, got %v", tt.expectedKind, err)
			}

			if l.status("i1") != types.InviteStatusPending {
				t.Fatalf("invite must stay pending, got %s", l.status("i1"))
			}
		})
	}
}

func TestService_AcceptAuthenticated(t *testing.T) {
	member := &types.User{ID: "u5", Email: "C@X.com", Name: "Carla", CreatedAt: now.Add(-time.Hour)}

	tests := []struct {
		name         string
		user         *types.User
		setupMocks   func(*mocks)
		expectedKind apperror.Kind
	}{
		{
			name:         "email mismatch",
			user:         &types.User{ID: "u6", Email: "d@x.com", CreatedAt: now},
			setupMocks:   func(*mocks) {},
			expectedKind: apperror.KindForbidden,
		},
		{
			name: "gains organization standing",
			user: member,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "w1").Return(&types.Workspace{ID: "w1", OrganizationID: "o1"}, nil)
				m.storage.EXPECT().AddWorkspaceMember(gomock.Any(), "w1", "u5", types.WorkspaceRoleAgent).Return(&types.WorkspaceMember{}, nil)
				m.storage.EXPECT().GetOrganizationMember(gomock.Any(), "o1", "u5").Return(nil, notFound("get member"))
				m.storage.EXPECT().AddOrganizationMember(gomock.Any(), "o1", "u5", types.OrganizationRoleAdmin).Return(&types.OrganizationMember{}, nil)
				m.cache.EXPECT().InvalidateOrganization("o1")
				m.authz.EXPECT().AssignOrganizationMember(gomock.Any(), "o1", "u5", types.OrganizationRoleAdmin).Return(nil)
				m.authz.EXPECT().AssignWorkspaceMembers(gomock.Any(), "u5", types.WorkspaceRoleAgent, "w1").Return(nil)
			},
		},
		{
			name: "keeps existing organization standing",
			user: member,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "w1").Return(&types.Workspace{ID: "w1", OrganizationID: "o1"}, nil)
				m.storage.EXPECT().AddWorkspaceMember(gomock.Any(), "w1", "u5", types.WorkspaceRoleAgent).Return(&types.WorkspaceMember{}, nil)
				m.storage.EXPECT().GetOrganizationMember(gomock.Any(), "o1", "u5").Return(&types.OrganizationMember{Role: types.OrganizationRoleOwner}, nil)
				m.cache.EXPECT().InvalidateOrganization("o1")
				m.authz.EXPECT().AssignWorkspaceMembers(gomock.Any(), "u5", types.WorkspaceRoleAgent, "w1").Return(nil)
			},
		},
		{
			name: "transient profile is written",
			user: &types.User{ID: "u7", Email: "c@x.com", Name: "c"},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().UpsertUser(gomock.Any(), &types.User{ID: "u7", Email: "c@x.com", Name: "c"}).Return(&types.User{ID: "u7", Email: "c@x.com", CreatedAt: now}, nil)
				m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "w1").Return(&types.Workspace{ID: "w1", OrganizationID: "o1"}, nil)
				m.storage.EXPECT().AddWorkspaceMember(gomock.Any(), "w1", "u7", types.WorkspaceRoleAgent).Return(&types.WorkspaceMember{}, nil)
				m.storage.EXPECT().GetOrganizationMember(gomock.Any(), "o1", "u7").Return(&types.OrganizationMember{}, nil)
				m.cache.EXPECT().InvalidateOrganization("o1")
				m.authz.EXPECT().AssignWorkspaceMembers(gomock.Any(), "u7", types.WorkspaceRoleAgent, "w1").Return(nil)
			},
		},
		{
			name: "already in the workspace",
			user: member,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "w1").Return(&types.Workspace{ID: "w1", OrganizationID: "o1"}, nil)
				m.storage.EXPECT().AddWorkspaceMember(gomock.Any(), "w1", "u5", types.WorkspaceRoleAgent).Return(nil, fmt.Errorf("add: %w", storage.ErrDuplicateKey))
			},
			expectedKind: apperror.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := setup(ctrl)
			l := newLedger(workspaceInvite(now.Add(time.Hour)))
			l.wire(m.storage)
			tt.setupMocks(m)

			out, err := s.AcceptAuthenticated(context.Background(), tt.user, "i1")

			if tt.expectedKind != "" {
				if !apperror.Is(err, tt.expectedKind) {
					t.Fatalf("expected %s, got %v", tt.expectedKind, err)
				}

				if l.status("i1") != types.InviteStatusPending {
					t.Fatalf("invite must stay pending, got %s", l.status("i1"))
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}

			if out.Token != "" || out.Invite.Status != types.InviteStatusAccepted || l.status("i1") != types.InviteStatusAccepted {
				t.Fatalf("unexpected acceptance %+v", out)
			}
		})
	}
}

func TestService_Resend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := setup(ctrl)

	old := workspaceInvite(now.Add(-time.Hour))
	old.CreatedAt = now.Add(-8 * 24 * time.Hour)
	old.Metadata = &types.InviteMetadata{Name: "Carla"}

	l := newLedger(old, &types.Invite{ID: "done", OrganizationID: "o1", Email: "e@x.com", Status: types.InviteStatusAccepted})
	l.wire(m.storage)

	m.permissions.EXPECT().IsOrgAdmin(gomock.Any(), "u2", "o1").Return(true, nil).Times(2)
	m.permissions.EXPECT().IsOrgAdmin(gomock.Any(), "u2", "o2").Return(true, nil)
	m.dispatcher.EXPECT().SendInviteEmail(gomock.Any(), "c@x.com", baseURL+"/invite/new1").Return(nil)

	invite, err := s.Resend(context.Background(), "u2", "o1", "i1")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if invite.ID == "i1" || invite.Email != old.Email || invite.Role != old.Role || *invite.WorkspaceID != "w1" ||
		invite.Metadata.Name != "Carla" || invite.InvitedBy != "u2" {
		t.Fatalf("resend must copy the invite, got %+v", invite)
	}

	if !invite.ExpiresAt.After(old.ExpiresAt) || !invite.ExpiresAt.Equal(now.Add(Lifetime)) {
		t.Fatalf("expected a fresh window, got %v", invite.ExpiresAt)
	}

	if l.status("i1") != types.InviteStatusExpired {
		t.Fatalf("expected the old invite to be expired, got %s", l.status("i1"))
	}

	if _, err := s.Resend(context.Background(), "u2", "o1", "done"); !apperror.Is(err, apperror.KindConflict) {
		t.Fatalf("expected conflict for accepted invite, got %v", err)
	}

	if _, err := s.Resend(context.Background(), "u2", "o2", invite.ID); !apperror.Is(err, apperror.KindNotFound) {
		t.Fatalf("expected not found for invite of another organization, got %v", err)
	}
}

func TestService_Details(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := setup(ctrl)
	l := newLedger(
		workspaceInvite(now.Add(time.Hour)),
		&types.Invite{ID: "late", OrganizationID: "o1", Email: "f@x.com", Status: types.InviteStatusPending, ExpiresAt: now},
	)
	l.wire(m.storage)

	m.storage.EXPECT().GetOrganizationByID(gomock.Any(), "o1").Return(&types.Organization{ID: "o1", Name: "Acme"}, nil)
	m.storage.EXPECT().GetWorkspaceByID(gomock.Any(), "w1").Return(&types.Workspace{ID: "w1", Name: "Support"}, nil)

	details, err := s.Details(context.Background(), "i1")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if details.OrganizationName != "Acme" || details.WorkspaceName == nil || *details.WorkspaceName != "Support" {
		t.Fatalf("unexpected details %+v", details)
	}

	if _, err := s.Details(context.Background(), "late"); !apperror.Is(err, apperror.KindExpired) {
		t.Fatalf("expected expired, got %v", err)
	}

	if _, err := s.Details(context.Background(), "missing"); !apperror.Is(err, apperror.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := setup(ctrl)

	m.permissions.EXPECT().IsOrgAdmin(gomock.Any(), "u3", "o1").Return(false, nil)

	if _, err := s.List(context.Background(), "u3", "o1"); !apperror.Is(err, apperror.KindPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}

	m.permissions.EXPECT().IsOrgAdmin(gomock.Any(), "u1", "o1").Return(true, nil)
	m.storage.EXPECT().ListPendingInvites(gomock.Any(), "o1").Return(nil, nil)

	invites, err := s.List(context.Background(), "u1", "o1")
	if err != nil || invites == nil {
		t.Fatalf("unexpected result %v %v", invites, err)
	}
}

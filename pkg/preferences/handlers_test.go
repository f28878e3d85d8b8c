// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package preferences

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/appfluzzio-bit/fluzz2/internal/apperror"
	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
	"github.com/appfluzzio-bit/fluzz2/internal/types"
	"github.com/appfluzzio-bit/fluzz2/pkg/authentication"
)

func TestAPI(t *testing.T) {
	prefs := SessionPreferences{UserID: "u1", OrganizationID: "o1"}
	workspaces := []*types.Workspace{{ID: "w1", OrganizationID: "o1"}}

	tests := []struct {
		name       string
		method     string
		body       string
		anonymous  bool
		setupMocks func(*MockServiceInterface, *MockWorkspaceListerInterface)
		status     int
	}{
		{
			name:   "current",
			method: http.MethodGet,
			setupMocks: func(s *MockServiceInterface, l *MockWorkspaceListerInterface) {
				l.EXPECT().List(gomock.Any(), "u1", "o1").Return(workspaces, nil)
				s.EXPECT().Current(gomock.Any(), prefs, workspaces).Return(&Selection{Workspace: workspaces[0]}, nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "current outside the organization",
			method: http.MethodGet,
			setupMocks: func(s *MockServiceInterface, l *MockWorkspaceListerInterface) {
				l.EXPECT().List(gomock.Any(), "u1", "o1").Return(nil, apperror.PermissionDenied("not a member"))
			},
			status: http.StatusForbidden,
		},
		{
			name:   "select",
			method: http.MethodPut,
			body:   `{"workspace_id":"w1"}`,
			setupMocks: func(s *MockServiceInterface, l *MockWorkspaceListerInterface) {
				s.EXPECT().Select(gomock.Any(), prefs, "w1").Return(&Selection{Workspace: workspaces[0]}, nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "select all",
			method: http.MethodPut,
			body:   `{"workspace_id":"all"}`,
			setupMocks: func(s *MockServiceInterface, l *MockWorkspaceListerInterface) {
				s.EXPECT().Select(gomock.Any(), prefs, AllWorkspaces).Return(&Selection{All: true}, nil)
			},
			status: http.StatusOK,
		},
		{
			name:       "select without workspace",
			method:     http.MethodPut,
			body:       `{}`,
			setupMocks: func(*MockServiceInterface, *MockWorkspaceListerInterface) {},
			status:     http.StatusBadRequest,
		},
		{
			name:       "anonymous",
			method:     http.MethodGet,
			anonymous:  true,
			setupMocks: func(*MockServiceInterface, *MockWorkspaceListerInterface) {},
			status:     http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			lister := NewMockWorkspaceListerInterface(ctrl)
			tt.setupMocks(svc, lister)

			mux := chi.NewMux()
			NewAPI(svc, lister, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(tt.method, "/organizations/o1/workspace-selection", strings.NewReader(tt.body))

			ctx := context.Background()
			if !tt.anonymous {
				ctx = authentication.WithUserID(ctx, "u1")
			}

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req.WithContext(ctx))

			if rr.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rr.Code, rr.Body.String())
			}
		})
	}
}

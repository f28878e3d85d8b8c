// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspaces

import (
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
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		anonymous  bool
		setupMocks func(*MockServiceInterface)
		status     int
	}{
		{
			name:       "anonymous",
			method:     http.MethodGet,
			path:       "/organizations/o1/workspaces",
			anonymous:  true,
			setupMocks: func(*MockServiceInterface) {},
			status:     http.StatusUnauthorized,
		},
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/organizations/o1/workspaces",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().List(gomock.Any(), "u1", "o1").Return([]*types.Workspace{{ID: "w1"}}, nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/organizations/o1/workspaces",
			body:   `{"name":"Sales","slug":"sales"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Create(gomock.Any(), "u1", "o1", gomock.Any()).Return(&types.Workspace{ID: "w1"}, nil)
			},
			status: http.StatusCreated,
		},
		{
			name:   "create conflict",
			method: http.MethodPost,
			path:   "/organizations/o1/workspaces",
			body:   `{"name":"Sales","slug":"sales"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Create(gomock.Any(), "u1", "o1", gomock.Any()).Return(nil, apperror.Conflict("taken"))
			},
			status: http.StatusConflict,
		},
		{
			name:   "update",
			method: http.MethodPatch,
			path:   "/organizations/o1/workspaces/w1",
			body:   `{"name":"Sales EU"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Update(gomock.Any(), "u1", "o1", "w1", &UpdateRequest{Name: "Sales EU"}).Return(&types.Workspace{ID: "w1"}, nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "delete denied",
			method: http.MethodDelete,
			path:   "/organizations/o1/workspaces/w1",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Delete(gomock.Any(), "u1", "o1", "w1").Return(apperror.PermissionDenied("no"))
			},
			status: http.StatusForbidden,
		},
		{
			name:   "remove member",
			method: http.MethodDelete,
			path:   "/workspaces/w1/members/m1",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().RemoveMember(gomock.Any(), "u1", "w1", "m1").Return(nil)
			},
			status: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			tt.setupMocks(svc)

			mux := chi.NewMux()
			NewAPI(svc, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if !tt.anonymous {
				req = req.WithContext(authentication.WithUserID(req.Context(), "u1"))
			}

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rr.Code, rr.Body.String())
			}
		})
	}
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"encoding/json"
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
	"github.com/appfluzzio-bit/fluzz2/pkg/identity"
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
		code       string
	}{
		{
			name:       "anonymous create",
			method:     http.MethodPost,
			path:       "/organizations",
			body:       `{"name":"Acme"}`,
			anonymous:  true,
			setupMocks: func(*MockServiceInterface) {},
			status:     http.StatusUnauthorized,
			code:       "authentication_required",
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/organizations",
			body:   `{"name":"Acme","currency":"EUR"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Create(gomock.Any(), &types.User{ID: "u1", Email: "u1@x.com"}, &CreateRequest{Name: "Acme", Currency: "EUR"}).
					Return(&Onboarding{Organization: &types.Organization{ID: "o1"}}, nil)
			},
			status: http.StatusCreated,
		},
		{
			name:   "members denied",
			method: http.MethodGet,
			path:   "/organizations/o1/members",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Members(gomock.Any(), "u1", "o1").Return(nil, apperror.PermissionDenied("no"))
			},
			status: http.StatusForbidden,
			code:   "permission_denied",
		},
		{
			name:   "remove last owner",
			method: http.MethodDelete,
			path:   "/organizations/o1/members/m1",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().RemoveMember(gomock.Any(), "u1", "o1", "m1").Return(apperror.Conflict("last owner"))
			},
			status: http.StatusConflict,
			code:   "conflict",
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
				ctx := authentication.WithUserID(req.Context(), "u1")
				req = req.WithContext(identity.WithUser(ctx, &types.User{ID: "u1", Email: "u1@x.com"}))
			}

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rr.Code, rr.Body.String())
			}

			if tt.code == "" {
				return
			}

			var body struct {
				Success bool   `json:"success"`
				Code    string `json:"code"`
			}

			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("invalid body: %v", err)
			}

			if body.Success || body.Code != tt.code {
				t.Fatalf("unexpected body %+v", body)
			}
		})
	}
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"errors"
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
)

const testSecret = "hook-secret"

const tokenHookBody = `{"session":{"id_token":{"id_token_claims":{"sub":"u1"}},"subject":"u1"},"request":{"client_id":"app"}}`

func TestAPI(t *testing.T) {
	claims := []string{"o1", "o2"}

	tests := []struct {
		name       string
		path       string
		body       string
		secret     *string
		setupMocks func(*MockServiceInterface)
		status     int
		check      func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "registration upserts the profile",
			path: "/webhooks/registration",
			body: `{"id":"u1","traits":{"email":"ada@fluzz.io","name":"Ada"}}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().HandleRegistration(gomock.Any(), &KratosIdentity{ID: "u1", Traits: KratosTraits{Email: "ada@fluzz.io", Name: "Ada"}}).
					Return(&types.User{ID: "u1", Email: "ada@fluzz.io"}, nil)
			},
			status: http.StatusOK,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var env struct {
					Success bool        `json:"success"`
					Data    *types.User `json:"data"`
				}

				if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
					t.Fatalf("failed to decode envelope: %v", err)
				}

				if !env.Success || env.Data == nil || env.Data.ID != "u1" {
					t.Fatalf("unexpected envelope %+v", env)
				}
			},
		},
		{
			name:       "registration without secret",
			path:       "/webhooks/registration",
			body:       `{"id":"u1","traits":{"email":"evil@x.com"}}`,
			secret:     new(string),
			setupMocks: func(*MockServiceInterface) {},
			status:     http.StatusUnauthorized,
		},
		{
			name:       "token hook with wrong secret",
			path:       "/webhooks/token",
			body:       tokenHookBody,
			secret:     strPtr("guess"),
			setupMocks: func(*MockServiceInterface) {},
			status:     http.StatusUnauthorized,
		},
		{
			name:       "registration with malformed body",
			path:       "/webhooks/registration",
			body:       `{"id":`,
			setupMocks: func(*MockServiceInterface) {},
			status:     http.StatusBadRequest,
		},
		{
			name: "registration rejected",
			path: "/webhooks/registration",
			body: `{"id":"u1","traits":{}}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(nil, apperror.Validation("email is required"))
			},
			status: http.StatusBadRequest,
		},
		{
			name: "token hook answers without envelope",
			path: "/webhooks/token",
			body: tokenHookBody,
			setupMocks: func(s *MockServiceInterface) {
				resp := new(TokenHookResponse)
				resp.Session.IDToken = map[string]interface{}{OrganizationsClaim: claims}
				resp.Session.AccessToken = map[string]interface{}{OrganizationsClaim: claims}

				s.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(resp, nil)
			},
			status: http.StatusOK,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var raw map[string]json.RawMessage
				if err := json.NewDecoder(rr.Body).Decode(&raw); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}

				if _, ok := raw["success"]; ok {
					t.Fatalf("token hook response must not be enveloped")
				}

				if !strings.Contains(string(raw["session"]), `"organizations":["o1","o2"]`) {
					t.Fatalf("expected organizations claim, got %s", raw["session"])
				}
			},
		},
		{
			name: "token hook without subject",
			path: "/webhooks/token",
			body: `{"session":{}}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(nil, apperror.Validation("token hook request carries no subject"))
			},
			status: http.StatusBadRequest,
		},
		{
			name: "token hook store failure",
			path: "/webhooks/token",
			body: tokenHookBody,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(nil, apperror.Store(errors.New("connection reset")))
			},
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			tt.setupMocks(svc)

			mux := chi.NewMux()
			NewAPI(svc, testSecret, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			if tt.secret == nil {
				req.Header.Set(SecretHeader, testSecret)
			} else if *tt.secret != "" {
				req.Header.Set(SecretHeader, *tt.secret)
			}

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rr.Code, rr.Body.String())
			}

			if tt.check != nil {
				tt.check(t, rr)
			}
		})
	}
}

func TestAPIWithoutConfiguredSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux := chi.NewMux()
	NewAPI(NewMockServiceInterface(ctrl), "", tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/registration", strings.NewReader(`{"id":"u1"}`))
	req.Header.Set(SecretHeader, "")

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func strPtr(s string) *string {
	return &s
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appfluzzio-bit/fluzz2/internal/types"
	"github.com/appfluzzio-bit/fluzz2/pkg/authentication"
)

func TestAPIClientDo(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
		wantID  string
	}{
		{name: "data", status: http.StatusCreated, body: `{"success":true,"data":{"id":"i1","email":"a@b.co"}}`, wantID: "i1"},
		{name: "empty data", status: http.StatusOK, body: `{"success":true}`},
		{name: "api error", status: http.StatusConflict, body: `{"success":false,"error":"invite pending","code":"conflict"}`, wantErr: true},
		{name: "not json", status: http.StatusBadGateway, body: `<html>`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v0/organizations/o1/invites", r.URL.Path)
				assert.Equal(t, "tok", r.Header.Get(authentication.SessionTokenHeader))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			endpoint, sessionToken, accessToken, userID = srv.URL, "tok", "", ""

			out := new(types.Invite)
			err := newAPIClient().do(context.Background(), http.MethodPost, "/organizations/o1/invites", map[string]string{"email": "a@b.co"}, out)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, out.ID)
		})
	}
}

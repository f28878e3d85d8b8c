// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appfluzzio-bit/fluzz2/internal/logging"
	"github.com/appfluzzio-bit/fluzz2/internal/monitoring"
	"github.com/appfluzzio-bit/fluzz2/internal/tracing"
	"github.com/appfluzzio-bit/fluzz2/pkg/authentication"
)

func identityJSON(id, email string) map[string]interface{} {
	return map[string]interface{}{
		"id":         id,
		"schema_id":  "default",
		"schema_url": "http://kratos/schemas/default",
		"traits":     map[string]interface{}{"email": email, "name": "Ana"},
	}
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, srv.URL, "", tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClientGetIdentity(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/identities/u1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, identityJSON("u1", "ana@x.com"))
	})
	mux.HandleFunc("/admin/identities/missing", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"error": map[string]interface{}{"code": 404, "message": "not found"}})
	})

	c := newTestClient(t, mux)

	p, err := c.GetIdentity(t.Context(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", p.SubjectID)
	assert.Equal(t, "ana@x.com", p.Email)
	assert.Equal(t, "Ana", p.Claim("name"))

	_, err = c.GetIdentity(t.Context(), "missing")
	assert.True(t, errors.Is(err, ErrIdentityNotFound))
}

func TestClientCreateAccountConflict(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]interface{}{"error": map[string]interface{}{"code": 409, "message": "exists"}})
	}))

	_, err := c.CreateAccount(t.Context(), "ana@x.com", "secret-pass", nil)
	assert.True(t, errors.Is(err, ErrIdentityExists))
}

func TestClientCreateAccount(t *testing.T) {
	var body map[string]interface{}

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/identities", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusCreated, identityJSON("new-id", "ana@x.com"))
	}))

	id, err := c.CreateAccount(t.Context(), "ana@x.com", "secret-pass", map[string]interface{}{"name": "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "new-id", id)

	traits := body["traits"].(map[string]interface{})
	assert.Equal(t, "ana@x.com", traits["email"])
	assert.Equal(t, "Ana", traits["name"])
	assert.Equal(t, "default", body["schema_id"])
}

func TestClientSessionSubject(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("X-Session-Token") {
		case "active":
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"id":       "s1",
				"active":   true,
				"identity": identityJSON("u1", "ana@x.com"),
			})
		default:
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"error": map[string]interface{}{"code": 401, "message": "no session"}})
		}
	}))

	sub, err := c.SessionSubject(t.Context(), "active")
	require.NoError(t, err)
	assert.Equal(t, "u1", sub)

	_, err = c.SessionSubject(t.Context(), "stale")
	assert.Error(t, err)
}

func TestClientSignOutIgnoresUnknownSession(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": map[string]interface{}{"code": 400, "message": "bad token"}})
	}))

	assert.NoError(t, c.SignOut(t.Context(), "gone"))
}

func TestClientCurrentPrincipal(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, identityJSON("u1", "ana@x.com"))
	}))

	p, err := c.CurrentPrincipal(t.Context())
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = c.CurrentPrincipal(authentication.WithUserID(t.Context(), "u1"))
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", p.Email)
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/appfluzzio-bit/fluzz2/internal/identity"
	"github.com/appfluzzio-bit/fluzz2/pkg/authentication"
	"github.com/appfluzzio-bit/fluzz2/pkg/web"
)

const clientTimeout = 30 * time.Second

// envelope mirrors the response body written by every API handler
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Code    string          `json:"code,omitempty"`
}

type apiClient struct {
	baseURL string
	headers http.Header
	http    *http.Client
}

// newAPIClient builds a client from the persistent flags
func newAPIClient() *apiClient {
	base := endpoint
	if !strings.HasPrefix(base, "http") {
		base = "http://" + base
	}

	headers := make(http.Header)
	if sessionToken != "" {
		headers.Set(authentication.SessionTokenHeader, sessionToken)
	}

	if accessToken != "" {
		headers.Set("Authorization", "Bearer "+accessToken)
	}

	if userID != "" {
		headers.Set(identity.HeaderName, userID)
	}

	return &apiClient{
		baseURL: strings.TrimSuffix(base, "/") + web.APIPrefix,
		headers: headers,
		http:    &http.Client{Timeout: clientTimeout},
	}
}

func (c *apiClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader

	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}

		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	for k, v := range c.headers {
		req.Header[k] = v
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	env := new(envelope)
	if err := json.NewDecoder(resp.Body).Decode(env); err != nil {
		return fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		return fmt.Errorf("api error (status %d, %s): %s", resp.StatusCode, env.Code, env.Error)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

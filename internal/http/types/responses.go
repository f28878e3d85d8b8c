// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/appfluzzio-bit/fluzz2/internal/apperror"
	"github.com/appfluzzio-bit/fluzz2/internal/logging"
)

// Response is the envelope of every API reply, Data is set on success and
// Error with Code otherwise
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

func write(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteData writes a successful result
func WriteData(w http.ResponseWriter, status int, data any) {
	write(w, status, Response{Success: true, Data: data})
}

// WriteError maps err to its status code, store errors are logged with their cause
// and rendered with a generic message
func WriteError(w http.ResponseWriter, err error, logger logging.LoggerInterface) {
	kind := apperror.KindOf(err)

	if kind == apperror.KindStore {
		logger.Errorf("request failed: %v", errors.Unwrap(err))
	}

	write(w, apperror.HTTPStatus(kind), Response{Error: apperror.Message(err), Code: string(kind)})
}

// DecodeJSON reads a JSON body, malformed payloads are validation errors
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))

	if err := dec.Decode(v); err != nil {
		return apperror.Validation("invalid request body")
	}

	return nil
}

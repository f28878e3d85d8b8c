// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package apperror is the error taxonomy shared by the tenancy services. Every
// failure crossing a service boundary is an *Error carrying a Kind, the HTTP
// layer renders the Kind as the response code.
package apperror

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindAuthenticationRequired Kind = "authentication_required"
	KindPermissionDenied       Kind = "permission_denied"
	KindForbidden              Kind = "forbidden"
	KindValidation             Kind = "validation"
	KindConflict               Kind = "conflict"
	KindNotFound               Kind = "not_found"
	KindExpired                Kind = "expired"
	KindStore                  Kind = "store_error"
)

const genericStoreMessage = "something went wrong, please try again"

type Error struct {
	Kind    Kind
	Message string

	err error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func AuthenticationRequired() *Error {
	return New(KindAuthenticationRequired, "authentication required")
}

func PermissionDenied(message string) *Error {
	return New(KindPermissionDenied, message)
}

func Forbidden(message string) *Error {
	return New(KindForbidden, message)
}

func Validation(message string) *Error {
	return New(KindValidation, message)
}

func Conflict(message string) *Error {
	return New(KindConflict, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

func Expired(message string) *Error {
	return New(KindExpired, message)
}

// Store hides the cause behind a generic message, the cause stays reachable
// through errors.Unwrap for logging
func Store(err error) *Error {
	return &Error{Kind: KindStore, Message: genericStoreMessage, err: err}
}

// KindOf returns the kind of the first *Error in the chain, unknown errors are
// store errors
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindStore
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Message is the user facing message of err
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}

	return genericStoreMessage
}

func HTTPStatus(kind Kind) int {
	switch kind {
	case KindAuthenticationRequired:
		return http.StatusUnauthorized
	case KindPermissionDenied, KindForbidden:
		return http.StatusForbidden
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindExpired:
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

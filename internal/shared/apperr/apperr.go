// Package apperr defines the error taxonomy shared by usecases and transport.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error so the transport layer can map it to a status code
// without inspecting messages.
type Kind int

const (
	// KindInternal covers storage-layer and unexpected failures. It is the
	// zero value so unclassified errors default to it.
	KindInternal Kind = iota

	// KindValidation covers malformed or missing input fields. Always locally
	// correctable by the client.
	KindValidation

	// KindConflict covers uniqueness violations (duplicate username/email).
	KindConflict

	// KindAuthentication covers invalid credentials and invalid, expired, or
	// malformed tokens. Deliberately uninformative about which part of the
	// credential was wrong.
	KindAuthentication

	// KindNotFound covers resources that do not exist. A resource owned by a
	// different user reports the same kind, so callers cannot probe for the
	// existence of other users' resources.
	KindNotFound
)

// Error is a classified application error. Details optionally carries
// per-field messages for multi-field validation failures.
type Error struct {
	Kind    Kind
	Message string
	Details []string
	Err     error
}

// Error returns the human-readable message.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Validation creates a validation error carrying per-field details.
func Validation(message string, details ...string) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

// Conflict creates a uniqueness-violation error.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Authentication creates a credential/token failure error.
func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// NotFound creates a missing-or-not-owned resource error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Internal wraps an unexpected failure behind a generic message. The cause is
// preserved for logging but must not be exposed to production clients.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf reports the kind of err. Errors outside the taxonomy are Internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// DetailsOf returns the per-field details of err, if any.
func DetailsOf(err error) []string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Details
	}
	return nil
}

// MessageOf returns the client-safe message for err. Internal errors report a
// generic message regardless of the wrapped cause.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "internal server error"
}

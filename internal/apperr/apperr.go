// Package apperr defines the error kinds services return to handlers.
// Handlers map each kind to an HTTP status at the boundary instead of
// inspecting database or validation errors directly.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for status mapping.
type Kind int

const (
	// KindInternal covers persistence failures and anything unclassified.
	KindInternal Kind = iota
	// KindValidation covers missing or malformed request fields.
	KindValidation
	// KindAuth covers credential failures.
	KindAuth
	// KindNotFound covers lookups of unknown ids.
	KindNotFound
	// KindConflict covers uniqueness violations such as duplicate emails.
	KindConflict
)

// Error carries a user-facing message together with its kind. The wrapped
// cause, if any, is for logs only and never serialized.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation builds a KindValidation error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Auth builds a KindAuth error.
func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

// NotFound builds a KindNotFound error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict builds a KindConflict error.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Internal wraps a cause behind a generic user-facing message.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the kind from err, defaulting to KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf extracts the user-facing message from err. Unclassified errors
// yield the provided fallback so internal detail is never leaked.
func MessageOf(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return fallback
}

// Package errors defines typed errors with categories for user-friendly reporting.
// Each error carries a machine-readable kind and a human-displayable message,
// so commands can decide between showing the server's own message (login
// rejections carry one) and a generic fallback.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// AuthFailed indicates a login, registration, profile or password
	// operation was rejected; Message holds the user-displayable reason.
	AuthFailed Kind = "auth_failed"
	// RefreshFailed indicates the refresh token was rejected; the session
	// is no longer recoverable.
	RefreshFailed Kind = "refresh_failed"
	// NetworkFailed indicates a transport-level failure (timeout, no
	// connectivity).
	NetworkFailed Kind = "network_failed"
	// Unauthorized indicates a request was denied even after the single
	// refresh-and-retry pass.
	Unauthorized Kind = "unauthorized"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the kind of err when it carries one, or "" otherwise.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// MessageOf returns the displayable message of err, falling back to
// err.Error() for untyped errors.
func MessageOf(err error) string {
	var e *E
	if stderrors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy for the dashboard. Every failure a panel can surface maps
// onto exactly one of these; adapters translate transport-level failures
// into them and the web shell picks the user-facing message with errors.Is.
var (
	// ErrValidation marks input rejected before any network call.
	ErrValidation = errors.New("validation failed")

	// ErrNotAuthenticated means no usable session exists and the user
	// must sign in again.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidCredentials is the login-specific 401.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNoServerResponse means the request never produced an HTTP
	// response (network failure, refused connection, timeout).
	ErrNoServerResponse = errors.New("no server response")

	// ErrUnexpectedResponse means the server answered with a body the
	// client does not understand.
	ErrUnexpectedResponse = errors.New("unexpected server response")

	// ErrNotConfirmed blocks a destructive action the user has not
	// explicitly confirmed. No request is sent in that case.
	ErrNotConfirmed = errors.New("action not confirmed")
)

// ValidationError names the offending field. It unwraps to ErrValidation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ServerError carries a non-2xx status and the message the server attached
// to it, so the shell can show the server's own wording.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("server error (status %d): %s", e.StatusCode, e.Message)
}

package apiclient

import (
	"errors"
	"fmt"
)

// Kind sentinels for error classification. Every *Error unwraps to exactly
// one of these, so callers branch with errors.Is instead of inspecting a
// discriminant field.
var (
	// ErrTimeout means the per-call deadline fired before a response arrived.
	ErrTimeout = errors.New("apiclient: request timeout")

	// ErrUnauthorized means the backend rejected the session (401). The
	// credential source has already been cleared by the time the caller
	// sees this error.
	ErrUnauthorized = errors.New("apiclient: unauthorized")

	// ErrForbidden means the session is valid but lacks permission (403).
	ErrForbidden = errors.New("apiclient: forbidden")

	// ErrRequestFailed covers every other non-2xx status and transport
	// failure, after any retry budget is exhausted.
	ErrRequestFailed = errors.New("apiclient: request failed")
)

// Error is the structured failure raised for any non-2xx response or
// transport error. Message, Code, and Details are populated from the
// backend's JSON error body when it provides one.
type Error struct {
	Message string
	Status  int
	Code    string
	Details any

	kind error
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (status %d, code %s)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// Unwrap yields the kind sentinel so errors.Is works against ErrTimeout,
// ErrUnauthorized, ErrForbidden, and ErrRequestFailed.
func (e *Error) Unwrap() error {
	return e.kind
}

func newError(kind error, status int, message, code string, details any) *Error {
	return &Error{
		Message: message,
		Status:  status,
		Code:    code,
		Details: details,
		kind:    kind,
	}
}

// AsError extracts the structured error from err, if any.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsTimeout reports whether err is a per-call deadline failure.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsUnauthorized reports whether err is a rejected-session failure.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsForbidden reports whether err is a permission failure.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

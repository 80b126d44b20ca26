package core

import "fmt"

// Error kinds for the resume toolset. Each operation surfaces exactly one of
// these; callers classify with errors.As and render the message once, at the
// outermost layer.

// ParseError indicates a malformed request or response encoding.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

// ValidationError indicates a missing or invalid required field, or a bad
// operation or section name.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError indicates a referenced item or id is absent.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// AuthError indicates the login call was rejected.
type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("Authentication failed with status code %d", e.StatusCode)
}

// UpstreamError indicates a non-success status from a remote service call.
// Msg carries the operation-specific description; StatusCode and Body keep
// the raw evidence for callers that want it.
type UpstreamError struct {
	Msg        string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string { return e.Msg }

// NetworkError indicates a transport-level failure.
type NetworkError struct {
	Msg string
	Err error
}

func (e *NetworkError) Error() string { return e.Msg }

func (e *NetworkError) Unwrap() error { return e.Err }

// NewNetworkError wraps a transport failure with the standard message.
func NewNetworkError(err error) *NetworkError {
	return &NetworkError{Msg: fmt.Sprintf("Network error - %v", err), Err: err}
}

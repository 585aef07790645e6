package lastfm

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is returned when the API answers with a non-2xx status.
// The response body is not parsed in that case.
type HTTPError struct {
	StatusCode int    // HTTP status code
	Method     string // Last.fm API method that was called
}

// Error returns the error message.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("lastfm: HTTP %d for %s", e.StatusCode, e.Method)
}

// Is reports whether target is an *HTTPError with the same status code.
// A zero StatusCode in target matches any status.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}
	return t.StatusCode == 0 || e.StatusCode == t.StatusCode
}

// NotFound reports whether the status was 404.
func (e *HTTPError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Error represents a Last.fm API error.
//
// The Error type provides structured error information including
// the Last.fm error code and message.
type Error struct {
	Code    int    // Last.fm error code
	Message string // Error message from Last.fm
}

// Error returns the error message.
func (e *Error) Error() string {
	return fmt.Sprintf("lastfm: error %d: %s", e.Code, e.Message)
}

// Is checks if the target error is a Last.fm error.
//
// This allows errors.Is() to work with *Error types.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Common Last.fm error codes.
const (
	ErrCodeInvalidService      = 2
	ErrCodeInvalidMethod       = 3
	ErrCodeInvalidFormat       = 5
	ErrCodeInvalidParameters   = 6
	ErrCodeInvalidResourceSpec = 7
	ErrCodeOperationFailed     = 8
	ErrCodeInvalidAPIKey       = 10
	ErrCodeServiceOffline      = 11
	ErrCodeTempUnavailable     = 16
	ErrCodeSuspendedAPIKey     = 26
	ErrCodeRateLimitExceeded   = 29
)

// Predefined errors for common cases.
var (
	// ErrInvalidConfig is returned when client configuration is invalid.
	ErrInvalidConfig = errors.New("lastfm: invalid configuration")

	// ErrInvalidResponse is returned when a successful response body is
	// not JSON.
	ErrInvalidResponse = errors.New("lastfm: invalid response")

	// ErrInvalidPeriod is returned when a period token is not one of the
	// values Last.fm accepts.
	ErrInvalidPeriod = errors.New("lastfm: invalid period")

	// ErrInvalidKind is returned when a resource kind is not tracks,
	// artists or albums.
	ErrInvalidKind = errors.New("lastfm: invalid kind")
)

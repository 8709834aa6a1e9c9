package spotify

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Error kinds. Every error returned by this package matches exactly one of
// these through errors.Is.
var (
	// ErrConfiguration is returned when credentials are missing or the
	// client configuration is invalid.
	ErrConfiguration = errors.New("spotify: configuration error")

	// ErrAuthentication is returned when the token exchange fails or the
	// API rejects the bearer token (401/403).
	ErrAuthentication = errors.New("spotify: authentication failed")

	// ErrNotFound is returned for 404 responses and for names that
	// resolve to no search results.
	ErrNotFound = errors.New("spotify: not found")

	// ErrRateLimited is returned for 429 responses.
	ErrRateLimited = errors.New("spotify: rate limited")

	// ErrRemoteService is returned for 5xx and any other unexpected status.
	ErrRemoteService = errors.New("spotify: remote service error")

	// ErrResponseFormat is returned when a response body is not valid JSON
	// or does not have the expected shape.
	ErrResponseFormat = errors.New("spotify: malformed response")

	// ErrInvalidArgument is returned when a method is called with
	// arguments the API cannot accept (empty query, too many ids).
	ErrInvalidArgument = errors.New("spotify: invalid argument")
)

// Error is a categorized failure from the Spotify client.
//
// Use errors.Is with one of the Err* kinds to branch on the category, and
// errors.As to reach the status code or the Retry-After hint:
//
//	var apiErr *spotify.Error
//	if errors.As(err, &apiErr) && errors.Is(err, spotify.ErrRateLimited) {
//	    time.Sleep(apiErr.RetryAfter)
//	}
type Error struct {
	Kind       error         // One of the Err* sentinels
	StatusCode int           // HTTP status, 0 when no response was received
	Message    string        // Message from the API error body, if any
	RetryAfter time.Duration // Parsed Retry-After header on 429 responses
	Err        error         // Underlying cause, if any
}

// Error returns the error message.
func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is this error's kind.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Temporary returns true if the request may succeed when retried later.
//
// The client never retries on its own; this is a hint for callers that
// implement their own backoff. Rate limiting and 5xx responses are
// considered temporary.
func (e *Error) Temporary() bool {
	if e.Kind == ErrRateLimited {
		return true
	}
	return e.Kind == ErrRemoteService && e.StatusCode >= 500
}

// errorKindForStatus maps a non-2xx HTTP status to an error kind.
func errorKindForStatus(status int) error {
	switch {
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return ErrAuthentication
	default:
		return ErrRemoteService
	}
}

func configError(format string, args ...any) error {
	return &Error{Kind: ErrConfiguration, Message: fmt.Sprintf(format, args...)}
}

func invalidArgument(format string, args ...any) error {
	return &Error{Kind: ErrInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func formatError(cause error) error {
	return &Error{Kind: ErrResponseFormat, Err: cause}
}

package shelf

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnexpectedResponse wraps responses the client cannot make sense of,
// such as a download with no result header.
var ErrUnexpectedResponse = errors.New("unexpected response from server")

// APIError is a route's declared failure, decoded from the HTTP 409 error
// envelope. Err holds the route's typed error union and is exposed through
// Unwrap, so errors.As recovers the concrete type.
type APIError struct {
	// Summary is the server's human-readable error summary.
	Summary string
	Err     error
}

func (e *APIError) Error() string {
	if e.Summary != "" {
		return e.Summary
	}
	return e.Err.Error()
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// AuthError reports a rejected or expired access token (HTTP 401).
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("invalid authorization: %s", e.Message)
}

// BadRequestError reports a request the server could not parse (HTTP 400).
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("bad request: %s", e.Message)
}

// RateLimitError reports throttling (HTTP 429). RetryAfter is zero when
// the server did not say how long to back off.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
	}
	return "rate limited"
}

// ServerError reports a 5xx response.
type ServerError struct {
	Code    int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Code, e.Message)
}

// StatusError reports any other HTTP status the client does not expect.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %s", e.Status)
}

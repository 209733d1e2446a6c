package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for client state conditions.
var (
	// ErrClientClosed is returned when attempting to use a closed client.
	ErrClientClosed = errors.New("client is closed")
	// ErrNoCredentials is returned when a signed call is attempted without
	// API credentials configured.
	ErrNoCredentials = errors.New("no credentials configured")
)

// APIError is the single error kind raised for unsuccessful exchange
// responses. It carries the original HTTP status code and the parsed (or
// raw-wrapped) response body; callers inspect StatusCode to branch.
//
// Transport failures (DNS, connection refused, TLS) are not wrapped into
// APIError and propagate from the HTTP layer as distinct error values.
type APIError struct {
	// StatusCode is the HTTP status code from the response.
	StatusCode int `json:"status_code"`
	// Body is the decoded response body, or the raw-text fallback wrapper
	// when the body was not valid JSON.
	Body any `json:"body,omitempty"`
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	return fmt.Sprintf("bitvavo: request failed (code=%d): %v", e.StatusCode, e.Body)
}

// NewAPIError creates an APIError with the given status code and body.
func NewAPIError(statusCode int, body any) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Body:       body,
	}
}

// AsAPIError extracts an APIError from an error chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsAuthenticationError returns true if the error is an API failure with a
// 401 or 403 status. Authentication errors are not retryable; they indicate
// invalid credentials or a signature mismatch.
func IsAuthenticationError(err error) bool {
	if e, ok := AsAPIError(err); ok {
		return e.StatusCode == 401 || e.StatusCode == 403
	}
	return false
}

// IsRateLimitError returns true if the error is an API failure with a 429
// status.
func IsRateLimitError(err error) bool {
	if e, ok := AsAPIError(err); ok {
		return e.StatusCode == 429
	}
	return false
}

// IsServerError returns true if the error is an API failure with a 5xx
// status.
func IsServerError(err error) bool {
	if e, ok := AsAPIError(err); ok {
		return e.StatusCode >= 500
	}
	return false
}

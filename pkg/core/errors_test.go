package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	err := NewAPIError(400, map[string]any{"errorCode": float64(205), "error": "amount required"})

	assert.Contains(t, err.Error(), "code=400")
	assert.Contains(t, err.Error(), "amount required")
}

func TestAsAPIError(t *testing.T) {
	apiErr := NewAPIError(429, nil)
	wrapped := fmt.Errorf("create order: %w", apiErr)

	got, ok := AsAPIError(wrapped)
	require.True(t, ok)
	assert.Equal(t, 429, got.StatusCode)

	_, ok = AsAPIError(errors.New("plain"))
	assert.False(t, ok)
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		auth   bool
		rate   bool
		server bool
	}{
		{"unauthorized", NewAPIError(401, nil), true, false, false},
		{"forbidden", NewAPIError(403, nil), true, false, false},
		{"rate_limited", NewAPIError(429, nil), false, true, false},
		{"server_error", NewAPIError(500, nil), false, false, true},
		{"bad_request", NewAPIError(400, nil), false, false, false},
		{"transport", errors.New("connection refused"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.auth, IsAuthenticationError(tt.err))
			assert.Equal(t, tt.rate, IsRateLimitError(tt.err))
			assert.Equal(t, tt.server, IsServerError(tt.err))
		})
	}
}

func TestSentinelErrors(t *testing.T) {
	assert.True(t, errors.Is(fmt.Errorf("call: %w", ErrClientClosed), ErrClientClosed))
	assert.True(t, errors.Is(fmt.Errorf("sign: %w", ErrNoCredentials), ErrNoCredentials))
}

// internal/common/errors/errors_test.go
package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"upstream unavailable retries", NewUpstreamUnavailableError(errors.New("dial timeout")), true},
		{"session store failure retries", NewSessionStoreFailedError(errors.New("conn reset")), true},
		{"rejected credentials do not", NewUpstreamRejectedError("invalid credentials"), false},
		{"validation does not", NewValidationFailedError("bad email"), false},
		{"password mismatch does not", NewPasswordMismatchError(), false},
		{"plain error does not", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRetryable(tt.err))
		})
	}
}

func TestGetErrorCategory(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected string
	}{
		{ErrCodeSessionExpired, "AUTH/SESSION"},
		{ErrCodeAuthFailed, "AUTH/SESSION"},
		{ErrCodeUpstreamUnavailable, "UPSTREAM"},
		{ErrCodeValidationFailed, "VALIDATION"},
		{ErrCodePasswordMismatch, "VALIDATION"},
		{ErrCodeResumeTypeInvalid, "VALIDATION"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, GetErrorCategory(tt.code))
		})
	}
}

func TestStandardError_ErrorString(t *testing.T) {
	err := NewUpstreamRejectedError("Invalid credentials")

	assert.Contains(t, err.Error(), "UPSTREAM_REJECTED")
	assert.Contains(t, err.Error(), "Invalid credentials")
}

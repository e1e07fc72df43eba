// Package errors provides the standardized error shape shared by the gateway
// handlers, the session store, and the upstream API client.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Authentication / session
	ErrCodeAuthFailed     ErrorCode = "AUTH_FAILED"
	ErrCodeSessionExpired ErrorCode = "SESSION_EXPIRED"
	ErrCodeSessionMissing ErrorCode = "SESSION_MISSING"

	// Upstream portal API
	ErrCodeUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE"
	ErrCodeUpstreamRejected    ErrorCode = "UPSTREAM_REJECTED"
	ErrCodeUpstreamDecode      ErrorCode = "UPSTREAM_DECODE_FAILED"

	// Client-side validation (caught before any network call)
	ErrCodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	ErrCodePasswordMismatch  ErrorCode = "PASSWORD_MISMATCH"
	ErrCodeResumeTypeInvalid ErrorCode = "RESUME_TYPE_INVALID"

	// Session persistence
	ErrCodeSessionStoreFailed ErrorCode = "SESSION_STORE_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewAuthFailedError creates a non-retryable authentication error.
func NewAuthFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAuthFailed,
		Message:   "Authentication failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionExpiredError is raised when a stored token no longer authenticates.
func NewSessionExpiredError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionExpired,
		Message:   "Session has expired",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionMissingError is raised when a request carries no usable session.
func NewSessionMissingError() *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionMissing,
		Message:   "Not logged in",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamUnavailableError wraps a transport-level failure reaching the portal API.
func NewUpstreamUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamUnavailable,
		Message:   "Job portal API unreachable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamRejectedError wraps a success:false / status:"error" response body.
func NewUpstreamRejectedError(message string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamRejected,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamDecodeError wraps an unparseable upstream payload.
func NewUpstreamDecodeError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamDecode,
		Message:   "Malformed response from job portal API",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError creates a non-retryable form validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Submitted data failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPasswordMismatchError is raised before any network call when the reset
// form's password and confirmation differ.
func NewPasswordMismatchError() *StandardError {
	return &StandardError{
		Code:      ErrCodePasswordMismatch,
		Message:   "Passwords do not match",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewResumeTypeInvalidError is raised when an uploaded resume is not a PDF.
func NewResumeTypeInvalidError(contentType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeResumeTypeInvalid,
		Message:   "Please upload a PDF file",
		Details:   fmt.Sprintf("contentType: %s", contentType),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionStoreFailedError wraps a Redis failure while reading or writing session state.
func NewSessionStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionStoreFailed,
		Message:   "Session storage error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// IsRetryable reports whether err carries a retryable StandardError code.
// Page actions never retry automatically; this only informs logging and the
// startup dial loop.
func IsRetryable(err error) bool {
	se, ok := err.(*StandardError)
	return ok && se.Retryable
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "SESSION") || strings.Contains(codeStr, "AUTH"):
		return "AUTH/SESSION"
	case strings.Contains(codeStr, "UPSTREAM"):
		return "UPSTREAM"
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "MISMATCH") ||
		strings.Contains(codeStr, "INVALID"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}

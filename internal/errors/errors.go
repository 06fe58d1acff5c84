package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigRead    ErrorCode = "CONFIG-001"
	ErrCodeConfigInvalid ErrorCode = "CONFIG-002"

	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionWrite ErrorCode = "SESSION-001"
	ErrCodeSessionClear ErrorCode = "SESSION-002"

	// API errors (API-001 to API-099)
	ErrCodeAPIRequest   ErrorCode = "API-001"
	ErrCodeAPITransport ErrorCode = "API-002"
	ErrCodeAPIResponse  ErrorCode = "API-003"

	// View errors (VIEW-001 to VIEW-099)
	ErrCodeViewResolve ErrorCode = "VIEW-001"
	ErrCodeViewSubmit  ErrorCode = "VIEW-002"

	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeAuthLogin    ErrorCode = "AUTH-001"
	ErrCodeAuthRegister ErrorCode = "AUTH-002"
	ErrCodeAuthNoUser   ErrorCode = "AUTH-003"
)

// RentError represents an error with a stable code for logging and exit-code
// mapping. The Message is what the user sees; the Cause carries the
// underlying failure for wrapping.
type RentError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface
func (e *RentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *RentError) Unwrap() error {
	return e.Cause
}

// New creates a new RentError
func New(code ErrorCode, message string) *RentError {
	return &RentError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new RentError with a formatted message
func Newf(code ErrorCode, format string, args ...any) *RentError {
	return &RentError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a RentError wrapping an underlying cause
func Wrap(code ErrorCode, message string, cause error) *RentError {
	return &RentError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf returns the error code of err if it is (or wraps) a RentError,
// or the empty code otherwise.
func CodeOf(err error) ErrorCode {
	var re *RentError
	if errors.As(err, &re) {
		return re.Code
	}
	return ""
}

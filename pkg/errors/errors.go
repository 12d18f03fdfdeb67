package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Template errors
	ErrTemplateParse   ErrorCode = "TEMPLATE_PARSE"
	ErrRequiredMissing ErrorCode = "REQUIRED_MISSING"
	ErrMalformedNode   ErrorCode = "MALFORMED_NODE"

	// Style errors
	ErrStyleNotFound       ErrorCode = "STYLE_NOT_FOUND"
	ErrStyleDefaultMissing ErrorCode = "STYLE_DEFAULT_MISSING"

	// Header errors
	ErrHeaderNotFound ErrorCode = "HEADER_NOT_FOUND"

	// Output errors
	ErrFileWrite   ErrorCode = "FILE_WRITE"
	ErrEmptyOutput ErrorCode = "EMPTY_OUTPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// NfoError represents a structured error with code and details
type NfoError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *NfoError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *NfoError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *NfoError) Is(target error) bool {
	var targetErr *NfoError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new NfoError with the given code and message
func New(code ErrorCode, message string) *NfoError {
	return &NfoError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new NfoError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *NfoError {
	return &NfoError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an NfoError
func Wrap(err error, code ErrorCode, message string) *NfoError {
	if err == nil {
		return nil
	}
	return &NfoError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *NfoError {
	if err == nil {
		return nil
	}
	return &NfoError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *NfoError) WithDetail(key string, value interface{}) *NfoError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var nfoErr *NfoError
	if errors.As(err, &nfoErr) {
		return nfoErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an NfoError
func GetErrorCode(err error) ErrorCode {
	var nfoErr *NfoError
	if errors.As(err, &nfoErr) {
		return nfoErr.Code
	}
	return ErrUnknown
}

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
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Persistence errors
	ErrLocationNotFound ErrorCode = "LOCATION_NOT_FOUND"
	ErrSerialize        ErrorCode = "SERIALIZE"
	ErrDeserialize      ErrorCode = "DESERIALIZE"
	ErrIO               ErrorCode = "IO"
	ErrSaveNotFound     ErrorCode = "SAVE_NOT_FOUND"
	ErrSaveWriteFailed  ErrorCode = "SAVE_WRITE_FAILED"
	ErrDecode           ErrorCode = "DECODE"

	// Fetch errors
	ErrRequestCreate   ErrorCode = "REQUEST_CREATE"
	ErrRequestSend     ErrorCode = "REQUEST_SEND"
	ErrResponseType    ErrorCode = "RESPONSE_TYPE"
	ErrHTTPStatus      ErrorCode = "HTTP_STATUS"
	ErrResponseDecode  ErrorCode = "RESPONSE_DECODE"
	ErrUnknownEncoding ErrorCode = "UNKNOWN_ENCODING"
)

// LoadError represents a structured error with code and details
type LoadError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LoadError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LoadError) Is(target error) bool {
	var targetErr *LoadError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LoadError with the given code and message
func New(code ErrorCode, message string) *LoadError {
	return &LoadError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LoadError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LoadError {
	return &LoadError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LoadError
func Wrap(err error, code ErrorCode, message string) *LoadError {
	if err == nil {
		return nil
	}
	return &LoadError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LoadError {
	if err == nil {
		return nil
	}
	return &LoadError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LoadError) WithDetail(key string, value interface{}) *LoadError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LoadError
func GetErrorCode(err error) ErrorCode {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LoadError
func GetErrorDetails(err error) map[string]interface{} {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Details
	}
	return nil
}

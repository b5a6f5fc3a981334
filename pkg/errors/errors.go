package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Dependency graph errors
	ErrCircularDependency ErrorCode = "CIRCULAR_DEPENDENCY"
	ErrProfileNotFound    ErrorCode = "PROFILE_NOT_FOUND"
	ErrDependencyNotFound ErrorCode = "DEPENDENCY_NOT_FOUND"

	// Profile store errors
	ErrProfileIO    ErrorCode = "PROFILE_IO"
	ErrProfileParse ErrorCode = "PROFILE_PARSE"
)

// EnvmanError represents a structured error with code and details
type EnvmanError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *EnvmanError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *EnvmanError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *EnvmanError) Is(target error) bool {
	var targetErr *EnvmanError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new EnvmanError with the given code and message
func New(code ErrorCode, message string) *EnvmanError {
	return &EnvmanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new EnvmanError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *EnvmanError {
	return &EnvmanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an EnvmanError
func Wrap(err error, code ErrorCode, message string) *EnvmanError {
	if err == nil {
		return nil
	}
	return &EnvmanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *EnvmanError {
	if err == nil {
		return nil
	}
	return &EnvmanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *EnvmanError) WithDetail(key string, value interface{}) *EnvmanError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var envErr *EnvmanError
	if errors.As(err, &envErr) {
		return envErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an EnvmanError
func GetErrorCode(err error) ErrorCode {
	var envErr *EnvmanError
	if errors.As(err, &envErr) {
		return envErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an EnvmanError
func GetErrorDetails(err error) map[string]interface{} {
	var envErr *EnvmanError
	if errors.As(err, &envErr) {
		return envErr.Details
	}
	return nil
}

// NewCircularDependency creates a CIRCULAR_DEPENDENCY error carrying the
// ordered cycle path. The path starts and ends at the same profile.
func NewCircularDependency(path []string) *EnvmanError {
	return Newf(ErrCircularDependency,
		"Circular dependency detected: %s", strings.Join(path, " -> ")).
		WithDetail("cycle", path)
}

// NewProfileNotFound creates a PROFILE_NOT_FOUND error for the given name
func NewProfileNotFound(name string) *EnvmanError {
	return Newf(ErrProfileNotFound, "Profile '%s' not found.", name).
		WithDetail("profile", name)
}

// NewDependencyNotFound creates a DEPENDENCY_NOT_FOUND error for a profile
// that references a dependency with no stored record
func NewDependencyNotFound(parent, missing string) *EnvmanError {
	return Newf(ErrDependencyNotFound,
		"Profile '%s' references non-existent profile '%s'.", parent, missing).
		WithDetail("profile", parent).
		WithDetail("missing", missing)
}

// CyclePath extracts the ordered cycle path from a CIRCULAR_DEPENDENCY
// error anywhere in err's chain, or nil if there is none.
func CyclePath(err error) []string {
	var envErr *EnvmanError
	if !errors.As(err, &envErr) || envErr.Code != ErrCircularDependency {
		return nil
	}
	if path, ok := envErr.Details["cycle"].([]string); ok {
		return path
	}
	return nil
}

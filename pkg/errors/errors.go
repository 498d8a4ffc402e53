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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"
	ErrUsage    ErrorCode = "USAGE"
	ErrNoParent ErrorCode = "NO_PARENT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Resolution errors
	ErrTargetTooLong       ErrorCode = "TARGET_TOO_LONG"
	ErrNoDofile            ErrorCode = "NO_DOFILE"
	ErrDofileNotExecutable ErrorCode = "DOFILE_NOT_EXECUTABLE"

	// Recipe errors
	ErrRecipeStart  ErrorCode = "RECIPE_START"
	ErrRecipeFailed ErrorCode = "RECIPE_FAILED"

	// FileSystem errors
	ErrFileStat   ErrorCode = "FILE_STAT"
	ErrFileCreate ErrorCode = "FILE_CREATE"
	ErrFileRead   ErrorCode = "FILE_READ"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileSync   ErrorCode = "FILE_SYNC"
	ErrFileRename ErrorCode = "FILE_RENAME"
	ErrFileRemove ErrorCode = "FILE_REMOVE"
	ErrFileLock   ErrorCode = "FILE_LOCK"
)

// RedoError represents a structured error with code and details
type RedoError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RedoError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *RedoError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RedoError) Is(target error) bool {
	var targetErr *RedoError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RedoError with the given code and message
func New(code ErrorCode, message string) *RedoError {
	return &RedoError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RedoError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RedoError {
	return &RedoError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RedoError
func Wrap(err error, code ErrorCode, message string) *RedoError {
	if err == nil {
		return nil
	}
	return &RedoError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RedoError {
	if err == nil {
		return nil
	}
	return &RedoError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RedoError) WithDetail(key string, value interface{}) *RedoError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var redoErr *RedoError
	if errors.As(err, &redoErr) {
		return redoErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RedoError
func GetErrorCode(err error) ErrorCode {
	var redoErr *RedoError
	if errors.As(err, &redoErr) {
		return redoErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RedoError
func GetErrorDetails(err error) map[string]interface{} {
	var redoErr *RedoError
	if errors.As(err, &redoErr) {
		return redoErr.Details
	}
	return nil
}

// ExitCode maps an error to the process exit status of the redo commands.
// Usage errors exit 2; everything else, including a missing parent target,
// exits 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if IsErrorCode(err, ErrUsage) {
		return 2
	}
	return 1
}

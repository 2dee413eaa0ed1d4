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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Rule errors
	ErrRuleInvalid ErrorCode = "RULE_INVALID"

	// Document source errors
	ErrSourceAccess  ErrorCode = "SOURCE_ACCESS"
	ErrSourceFetch   ErrorCode = "SOURCE_FETCH"
	ErrDocumentParse ErrorCode = "DOCUMENT_PARSE"

	// Reporting errors
	ErrReportWrite ErrorCode = "REPORT_WRITE"

	// ErrLintFailed signals that at least one job failed a rule. The CLI maps
	// it to exit status 1 without printing it as an error.
	ErrLintFailed ErrorCode = "LINT_FAILED"
)

// LinterError represents a structured error with code and details
type LinterError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LinterError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LinterError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LinterError) Is(target error) bool {
	var targetErr *LinterError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LinterError with the given code and message
func New(code ErrorCode, message string) *LinterError {
	return &LinterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LinterError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LinterError {
	return &LinterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LinterError
func Wrap(err error, code ErrorCode, message string) *LinterError {
	if err == nil {
		return nil
	}
	return &LinterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LinterError {
	if err == nil {
		return nil
	}
	return &LinterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LinterError) WithDetail(key string, value interface{}) *LinterError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var linterErr *LinterError
	if errors.As(err, &linterErr) {
		return linterErr.Code == code
	}
	return false
}

// GetErrorCode returns the code of the first LinterError in err's chain, or
// ErrUnknown when there is none, as for cobra's own usage errors.
func GetErrorCode(err error) ErrorCode {
	var linterErr *LinterError
	if errors.As(err, &linterErr) {
		return linterErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LinterError
func GetErrorDetails(err error) map[string]interface{} {
	var linterErr *LinterError
	if errors.As(err, &linterErr) {
		return linterErr.Details
	}
	return nil
}

// Package errors provides unified error handling for enigmakit.
// It implements structured error types with error codes, contextual
// details, and retryable detection.
package errors

import (
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// InvalidSetting creates a new AppError for a malformed machine setting
// string. The construction attempt it aborts leaves no usable machine.
func InvalidSetting(field, reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidSetting, Message: fmt.Sprintf("Invalid %s setting: %s", field, reason),
		Retryable: false,
		Details:   map[string]any{"field": field},
	}
}

// InvalidCharacter creates a new AppError for a character with no
// alphabet position. Index is the character's position in the
// normalized message, or -1 when unknown.
func InvalidCharacter(char rune, index int) *AppError {
	details := map[string]any{"char": string(char)}
	if index >= 0 {
		details["index"] = index
	}
	return &AppError{
		Code: ErrCodeInvalidCharacter, Message: fmt.Sprintf("Character %q has no alphabet position.", char),
		Retryable: false, Details: details,
	}
}

// InvalidWiring creates a new AppError for a wiring table that is not a
// valid permutation of the alphabet.
func InvalidWiring(reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidWiring, Message: fmt.Sprintf("Invalid wiring: %s", reason),
		Retryable: false,
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Retryable: false, Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		Retryable: false,
	}
}

// Internal creates a new AppError for an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		Retryable: false, Cause: cause,
	}
}

package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors
const (
	// ErrCodeInvalidSetting indicates a machine setting string is malformed.
	ErrCodeInvalidSetting ErrorCode = "INVALID_SETTING"
	// ErrCodeInvalidWiring indicates a wiring table is not a valid permutation.
	ErrCodeInvalidWiring ErrorCode = "INVALID_WIRING"
)

// Input errors
const (
	// ErrCodeInvalidCharacter indicates a message character has no alphabet position.
	ErrCodeInvalidCharacter ErrorCode = "INVALID_CHARACTER"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Every cipher error is a deterministic precondition violation; the same
// input fails the same way on every run, so no code is retryable.
var retryableCodes = map[ErrorCode]bool{
	ErrCodeInvalidSetting:   false,
	ErrCodeInvalidWiring:    false,
	ErrCodeInvalidCharacter: false,
	ErrCodeInvalidInput:     false,
	ErrCodeInternal:         false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}

// Package errors provides unified error handling for enigmakit.
// It implements structured error types with machine-readable error
// codes, contextual details, and retryable detection.
package errors

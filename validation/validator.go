package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/kbukum/enigmakit/errors"
)

// Validator collects validation errors.
type Validator struct {
	errors []FieldError
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{
		errors: make([]FieldError, 0),
	}
}

// AddError adds a field error.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Validate returns an AppError if there are validation errors, nil otherwise.
func (v *Validator) Validate() *errors.AppError {
	if !v.HasErrors() {
		return nil
	}

	messages := make([]string, len(v.errors))
	for i, e := range v.errors {
		messages[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}

	appErr := errors.Validation(strings.Join(messages, "; "))
	appErr.Details = map[string]any{
		"fields": v.errors,
	}

	return appErr
}

// Required checks if a string is non-empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
	}
	return v
}

// Length checks if a string has exactly n characters.
func (v *Validator) Length(field, value string, n int) *Validator {
	if len([]rune(value)) != n {
		v.AddError(field, fmt.Sprintf("must be exactly %d characters", n))
	}
	return v
}

// Letters checks if a string contains only letters A-Z or a-z.
func (v *Validator) Letters(field, value string) *Validator {
	for _, r := range value {
		if !unicode.IsLetter(r) || r > unicode.MaxASCII {
			v.AddError(field, fmt.Sprintf("must contain only letters A-Z (found %q)", r))
			break
		}
	}
	return v
}

// Setting checks a machine setting string: required, exactly 3
// characters, letters only.
func (v *Validator) Setting(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
		return v
	}
	return v.Length(field, value, 3).Letters(field, value)
}

package apperrors

import (
	"fmt"
	"strings"
)

// FieldViolation describes one violated constraint on one field.
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationErrors collects every violated field of a submission so the
// caller can correct the whole payload in one round trip. It matches
// ErrValidation under errors.Is.
type ValidationErrors struct {
	Violations []FieldViolation
}

func (v *ValidationErrors) Error() string {
	if len(v.Violations) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, len(v.Violations))
	for i, fv := range v.Violations {
		parts[i] = fmt.Sprintf("%s: %s", fv.Field, fv.Reason)
	}
	return fmt.Sprintf("validation error: %s", strings.Join(parts, "; "))
}

func (v *ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Add records a violation.
func (v *ValidationErrors) Add(field, reason string) {
	v.Violations = append(v.Violations, FieldViolation{Field: field, Reason: reason})
}

// Addf records a violation with a formatted reason.
func (v *ValidationErrors) Addf(field, format string, args ...interface{}) {
	v.Add(field, fmt.Sprintf(format, args...))
}

// HasViolations reports whether any violation was recorded.
func (v *ValidationErrors) HasViolations() bool {
	return len(v.Violations) > 0
}

// ErrOrNil returns the collection as an error when it has violations, nil otherwise.
func (v *ValidationErrors) ErrOrNil() error {
	if v.HasViolations() {
		return v
	}
	return nil
}

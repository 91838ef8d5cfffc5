package shared

import (
	"fmt"
	"strings"
)

// ValidationResult carries the outcome of a non-fatal validation pass.
// Validators aggregate every violation they find rather than stopping at
// the first, so callers can surface all problems to the user at once.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// NewValidationResult creates a result with no violations.
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// AddError records a violation and marks the result invalid.
func (r *ValidationResult) AddError(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Valid = false
}

// Merge folds another result's violations into this one.
func (r *ValidationResult) Merge(other ValidationResult) {
	if len(other.Errors) > 0 {
		r.Errors = append(r.Errors, other.Errors...)
		r.Valid = false
	}
}

// ErrorMessage joins all violations into a single string, or returns ""
// when the result is valid.
func (r ValidationResult) ErrorMessage() string {
	if r.Valid {
		return ""
	}
	return strings.Join(r.Errors, "; ")
}

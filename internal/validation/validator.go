package validation

import (
	"strings"
)

// Default title length limits, used when no configuration is supplied.
const (
	DefaultTitleMinLength = 1
	DefaultTitleMaxLength = 255
)

// Validator provides common validation utilities
type Validator struct {
	titleMinLength int
	titleMaxLength int
}

// NewValidator creates a new validator instance with default limits
func NewValidator() *Validator {
	return &Validator{
		titleMinLength: DefaultTitleMinLength,
		titleMaxLength: DefaultTitleMaxLength,
	}
}

// NewValidatorWithLimits creates a new validator instance with explicit
// title length limits
func NewValidatorWithLimits(minLength, maxLength int) *Validator {
	return &Validator{
		titleMinLength: minLength,
		titleMaxLength: maxLength,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTitleLength checks if a title length is within the configured limits
func (v *Validator) IsValidTitleLength(title string) bool {
	length := len(strings.TrimSpace(title))
	return length >= v.titleMinLength && length <= v.titleMaxLength
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// TrimString trims surrounding whitespace and returns the cleaned string
func (v *Validator) TrimString(s string) string {
	return strings.TrimSpace(s)
}

// TitleMinLength returns the configured minimum title length
func (v *Validator) TitleMinLength() int {
	return v.titleMinLength
}

// TitleMaxLength returns the configured maximum title length
func (v *Validator) TitleMaxLength() int {
	return v.titleMaxLength
}

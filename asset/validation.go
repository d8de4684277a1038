package asset

import (
	"fmt"
	"regexp"
	"strings"
)

// ErrorCode classifies a validation failure
type ErrorCode string

const (
	ErrCodeRequired ErrorCode = "required"
	ErrCodeTooLong  ErrorCode = "too_long"
	ErrCodeInvalid  ErrorCode = "invalid"
)

// ValidationError describes a single invalid field
type ValidationError struct {
	Field   string
	Value   string
	Code    ErrorCode
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

const maxNameLength = 64

var colorCodePattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate checks an asset before it is saved.
// Returns the first failing field, or nil.
func Validate(a *Asset) *ValidationError {
	if NormalizeID(a.ID) == "" {
		return &ValidationError{Field: "id", Value: a.ID, Code: ErrCodeRequired, Message: "id is required"}
	}

	name := strings.TrimSpace(a.Name)
	if name == "" {
		return &ValidationError{Field: "name", Value: a.Name, Code: ErrCodeRequired, Message: "name is required"}
	}
	if len(name) > maxNameLength {
		return &ValidationError{
			Field:   "name",
			Value:   a.Name,
			Code:    ErrCodeTooLong,
			Message: fmt.Sprintf("name exceeds maximum length of %d characters", maxNameLength),
		}
	}

	if a.ColorCode != "" && !colorCodePattern.MatchString(a.ColorCode) {
		return &ValidationError{Field: "color", Value: a.ColorCode, Code: ErrCodeInvalid, Message: "color must look like #RRGGBB"}
	}
	return nil
}

package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidValue is the generic failure for a field with an unusable value.
	ErrInvalidValue = errors.New("invalid value")
)

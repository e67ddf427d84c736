package result

import "github.com/dmitrymomot/formatkit/pkg/validator"

// InvalidValueMessage is the message given to failures built from a Field.
const InvalidValueMessage = "Invalid value"

const invalidValueKey = "validation.invalid_value"

// ValidationFailure describes why one property failed validation.
type ValidationFailure struct {
	PropertyName string
	ErrorMessage string
}

// Field names a property that failed with the generic invalid-value message.
type Field string

// FailureItem is accepted by Failure: a ValidationFailure or a Field.
type FailureItem interface {
	toValidationError() validator.ValidationError
}

// ValidationFailure items carry no translation key, so Localize leaves
// their message as given.
func (f ValidationFailure) toValidationError() validator.ValidationError {
	return validator.ValidationError{
		Field:   f.PropertyName,
		Message: f.ErrorMessage,
	}
}

func (f Field) toValidationError() validator.ValidationError {
	return validator.ValidationError{
		Field:          string(f),
		Message:        InvalidValueMessage,
		TranslationKey: invalidValueKey,
		TranslationValues: map[string]any{
			"field": string(f),
		},
	}
}

func toFailure(e validator.ValidationError) ValidationFailure {
	return ValidationFailure{
		PropertyName: e.Field,
		ErrorMessage: e.Message,
	}
}

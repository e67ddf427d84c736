package result

import (
	"slices"

	"github.com/dmitrymomot/formatkit/pkg/validator"
)

// Result is the outcome of an operation: data on success, failures otherwise.
// Build it with Success, Empty, Failure, FailureFields or From.
//
// Failures are held as validator.ValidationErrors so that translation keys
// and values survive for Localize; Errors exposes only property and message.
type Result[T any] struct {
	succeeded bool
	data      T
	failures  validator.ValidationErrors
}

// Success wraps data in a successful Result.
func Success[T any](data T) Result[T] {
	return Result[T]{succeeded: true, data: data}
}

// Empty is a successful Result without data.
func Empty() Result[struct{}] {
	return Success(struct{}{})
}

// Failure builds a failed Result. Field items get InvalidValueMessage;
// ValidationFailure items are kept as they are. Order is preserved.
func Failure[T any](items ...FailureItem) Result[T] {
	failures := make(validator.ValidationErrors, 0, len(items))
	for _, item := range items {
		if item != nil {
			failures = append(failures, item.toValidationError())
		}
	}
	return Result[T]{failures: failures}
}

// FailureFields is Failure for plain property names.
func FailureFields[T any](fields ...string) Result[T] {
	items := make([]FailureItem, len(fields))
	for i, f := range fields {
		items[i] = Field(f)
	}
	return Failure[T](items...)
}

// From converts a (data, error) pair, typically from validator.Apply.
// A nil error gives Success(data). ValidationErrors become one failure per
// entry; any other error becomes a single failure with no property name.
func From[T any](data T, err error) Result[T] {
	if err == nil {
		return Success(data)
	}

	if verrs := validator.ExtractValidationErrors(err); len(verrs) > 0 {
		return Result[T]{failures: slices.Clone(verrs)}
	}

	return Failure[T](ValidationFailure{ErrorMessage: err.Error()})
}

func (r Result[T]) IsSuccess() bool {
	return r.succeeded
}

func (r Result[T]) IsFailure() bool {
	return !r.succeeded
}

// Errors returns a copy of the failures; empty, never nil, on success.
func (r Result[T]) Errors() []ValidationFailure {
	out := make([]ValidationFailure, len(r.failures))
	for i, e := range r.failures {
		out[i] = toFailure(e)
	}
	return out
}

// Data returns the data and true on success, or the zero value and false.
func (r Result[T]) Data() (T, bool) {
	if !r.succeeded {
		var zero T
		return zero, false
	}
	return r.data, true
}

// Err returns nil on success and validator.ValidationErrors otherwise, so a
// failed Result can be returned where an error is expected.
func (r Result[T]) Err() error {
	if r.succeeded {
		return nil
	}
	if len(r.failures) == 0 {
		return validator.ErrValidationFailed
	}
	return slices.Clone(r.failures)
}

// Localize returns a copy whose failure messages are translated into lang.
// Failures built from a ValidationFailure, or whose key the translator lacks,
// keep their message.
func (r Result[T]) Localize(tr validator.Translator, lang string) Result[T] {
	if r.succeeded || tr == nil || len(r.failures) == 0 {
		return r
	}
	return Result[T]{failures: r.failures.Translate(tr, lang)}
}

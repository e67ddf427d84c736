package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups non-nil errors under "errors", keyed by their position.
// Returns an empty Attr when every error is nil.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". Returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the package or subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Operation records the formatter or rule that ran, e.g. "tax_id".
func Operation(name string) slog.Attr {
	return slog.String("operation", name)
}

// InputLength records the size of an input without logging the value itself.
func InputLength(n int) slog.Attr {
	return slog.Int("input_length", n)
}

// Field records the name of a validated field.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

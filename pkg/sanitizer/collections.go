package sanitizer

import "strings"

// FilterEmpty removes whitespace-only entries.
func FilterEmpty(slice []string) []string {
	return Filter(slice, func(s string) bool {
		return strings.TrimSpace(s) != ""
	})
}

// Filter keeps the items for which keep returns true. The input is not modified.
func Filter[T any](slice []T, keep func(T) bool) []T {
	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}

// Compact drops zero values ("", 0, false, nil pointers) from a slice.
func Compact[T comparable](slice []T) []T {
	var zero T
	return Filter(slice, func(item T) bool {
		return item != zero
	})
}

// Flatten concatenates nested slices one level deep, keeping order.
func Flatten[T any](nested [][]T) []T {
	size := 0
	for _, inner := range nested {
		size += len(inner)
	}

	result := make([]T, 0, size)
	for _, inner := range nested {
		result = append(result, inner...)
	}
	return result
}

// Deduplicate preserves the first occurrence of each item.
func Deduplicate[T comparable](slice []T) []T {
	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))

	for _, item := range slice {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}

	return result
}

// CleanStringSlice trims entries, then drops blanks and duplicates.
func CleanStringSlice(slice []string) []string {
	trimmed := make([]string, len(slice))
	for i, item := range slice {
		trimmed[i] = strings.TrimSpace(item)
	}
	return Apply(trimmed, FilterEmpty, Deduplicate[string])
}

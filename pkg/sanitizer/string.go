package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsBlankPtr treats a nil pointer the same as a blank string.
func IsBlankPtr(s *string) bool {
	return s == nil || IsBlank(*s)
}

// ExtractDigits keeps only ASCII digits, preserving their order.
func ExtractDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// NormalizeWhitespace collapses runs of whitespace into a single space and trims.
func NormalizeWhitespace(s string) string {
	normalized := whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(normalized)
}

func RemoveNonAlphanumeric(s string) string {
	return nonAlphanumericRegex.ReplaceAllString(s, "")
}

// FoldWidth maps fullwidth and halfwidth forms to their canonical ASCII
// counterparts, so "１２３" becomes "123" before digit extraction.
func FoldWidth(s string) string {
	return width.Fold.String(s)
}

// RemoveAccents strips combining marks after canonical decomposition.
// Returns the input unchanged if the transformation fails.
func RemoveAccents(s string) string {
	// Transformers keep state between calls, so the chain is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizePlate reduces a vehicle plate to upper-case letters and digits.
// "abc-1234", " ABC 1234 " and "ＡＢＣ１２３４" all become "ABC1234".
func NormalizePlate(s string) string {
	return Apply(s,
		Trim,
		FoldWidth,
		RemoveAccents,
		func(v string) string { return plateSeparatorRegex.ReplaceAllString(v, "") },
		ToUpper,
	)
}

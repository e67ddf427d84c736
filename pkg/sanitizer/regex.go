package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Digit extraction. RE2 \D is ASCII-only, so non-ASCII digits are dropped too.
	nonDigitRegex = regexp.MustCompile(`\D`)

	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// Alphanumeric filtering
	nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)

	// Separators users put between plate groups
	plateSeparatorRegex = regexp.MustCompile(`[\s\-._/]`)
)

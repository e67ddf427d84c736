// Package sanitizer provides small, stateless helpers for cleaning user input
// before it is classified or formatted.
//
// The functions are grouped into a few areas:
//
//   - Strings – trimming, blank checks, digit extraction, width folding and
//     accent removal for values typed on mobile keyboards or pasted from
//     documents.
//
//   - Plates – NormalizePlate reduces a vehicle plate to bare upper-case
//     letters and digits so that pattern matching does not depend on how the
//     user separated the groups.
//
//   - Collections – filtering, compaction, flattening and deduplication of
//     slices.
//
// Apply and Compose build reusable pipelines out of any of the above:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.FoldWidth,
//	    sanitizer.ExtractDigits,
//	)
//
//	digits := clean(" １２３.456 ") // "123456"
//
// # Error handling
//
// None of the helpers returns an error. When a transformation fails they fall
// back to the original input.
//
// # Concurrency
//
// There is no package state besides pre-compiled regular expressions, so every
// helper is safe for concurrent use.
package sanitizer

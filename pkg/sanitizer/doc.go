// Package sanitizer provides small helpers for normalising loosely typed input
// before it reaches domain code.
//
// Registry records arrive as strings ("1500", "1500 kg", "", "Geen") and form
// posts carry whatever the user typed. The helpers in this package turn those
// values into something the domain can compare without guessing:
//
//   - Numeric: ClampMax, ZeroIfNegative and LeadingInt, a lenient integer parser that
//     reads the leading digits of a value and falls back to zero.
//
//   - Strings: trimming, case folding and whitespace normalisation.
//
// All functions are stateless and safe for concurrent use. The higher-order
// Apply and Compose helpers build sanitisation pipelines:
//
//	normalizeLabel := sanitizer.Compose(
//	    sanitizer.SingleLine,
//	    sanitizer.TrimToUpper,
//	)
//	label := normalizeLabel(" be\n") // "BE"
package sanitizer

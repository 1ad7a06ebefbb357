// Package fmglee formats strings from printf-style templates with typed,
// positional values.
//
// A template contains %s, %d, and %f placeholders. Values are supplied in
// order and matched left-to-right; a count or kind mismatch is an error
// rather than a partial result. The central entry point is [Format]:
//
//	s, err := fmglee.Format("%s is %d years old",
//		fmglee.Text("John"), fmglee.Int(42))
//	// "John is 42 years old"
//
// # Placeholders
//
//   - %s — text, matched by [Text]
//   - %d — integer, matched by [Int]
//   - %f and variants — float, matched by [Float]
//
// A % that starts no recognized placeholder is literal text, so
// "100% organic" formats as itself. At each % the longest match wins:
// "%,.2f" is one placeholder, not "%," followed by ".2f".
//
// # Float Modifiers
//
// A float placeholder takes an optional single-character digit-group
// delimiter and an optional single-digit precision:
//
//	%f      1234.5   -> "1234.5"
//	%,f     1234.5   -> "1,234.5"
//	%.2f    1234.567 -> "1234.56"
//	%,.0f   1234.5   -> "1,234"
//
// Precision truncates, it never rounds, and pads short fractions with
// zeros. The delimiter groups the integer part's digits in threes from
// the right; the sign of a negative value stays outside the grouping.
//
// # Builder
//
// [Formatter] collects values fluently and formats on demand:
//
//	fmglee.New("%s owes %,.2f").
//		Text("Ada").
//		Float(12345.678).
//		MustFormat() // "Ada owes 12,345.67"
//
// # Output
//
// [Fprint], [Print], and [Println] write the formatted string to a sink.
// They exist for callers who have already proven their template correct,
// so like [MustFormat] they panic on a formatting error.
//
// # Errors
//
// [Format] never panics. It wraps one of the exported sentinels, so
// callers can branch with [errors.Is]:
//
//   - [ErrNotEnoughValues] — fewer values than placeholders
//   - [ErrTooManyValues] — more values than placeholders
//   - [ErrIncorrectValueType] — value kind does not match its placeholder
//   - [ErrInvalidFloat] — float has no decimal rendering (NaN, ±Inf)
//   - [ErrInvalidInt] — precision token is not a number
//   - [ErrInvalidFloatFormatSpecifier] — unrecognized %...f modifier run
package fmglee

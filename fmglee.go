package fmglee

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNotEnoughValues             = errors.New("not enough values")
	ErrTooManyValues               = errors.New("too many values")
	ErrIncorrectValueType          = errors.New("incorrect value type")
	ErrInvalidFloat                = errors.New("invalid float")
	ErrInvalidInt                  = errors.New("invalid int")
	ErrInvalidFloatFormatSpecifier = errors.New("invalid float format specifier")
)

// Format substitutes values into tmpl's placeholders left-to-right and
// returns the result. The number of values must equal the number of
// placeholders, and each value's kind must match its placeholder: [Text]
// for %s, [Int] for %d, [Float] for %f and its delimiter/precision
// variants. A template with no placeholders and no values is returned
// unchanged.
func Format(tmpl string, values ...Value) (string, error) {
	toks := scan(tmpl)
	if len(toks) > len(values) {
		return "", fmt.Errorf("%w: %d placeholders, %d values", ErrNotEnoughValues, len(toks), len(values))
	}
	if len(values) > len(toks) {
		return "", fmt.Errorf("%w: %d placeholders, %d values", ErrTooManyValues, len(toks), len(values))
	}
	if len(toks) == 0 {
		return tmpl, nil
	}

	// Single pass over the spans between placeholders. Substituting by
	// recorded offset keeps duplicate placeholders filling left-to-right
	// and keeps rendered values out of later matching entirely.
	var b strings.Builder
	b.Grow(len(tmpl))
	pos := 0
	for i, tok := range toks {
		b.WriteString(tmpl[pos:tok.start])
		s, err := render(tok, values[i])
		if err != nil {
			return "", err
		}
		b.WriteString(s)
		pos = tok.start + len(tok.text)
	}
	b.WriteString(tmpl[pos:])
	return b.String(), nil
}

// render converts one value according to its placeholder.
func render(tok token, v Value) (string, error) {
	switch {
	case tok.kind == tokenText && v.kind == KindText:
		return v.text, nil
	case tok.kind == tokenInt && v.kind == KindInt:
		return strconv.Itoa(v.num), nil
	case tok.kind == tokenFloat && v.kind == KindFloat:
		return formatFloat(v.real, tok.text)
	default:
		return "", fmt.Errorf("%w: placeholder %q, got %s", ErrIncorrectValueType, tok.text, v)
	}
}

// MustFormat is like [Format] but panics on error. It is for templates
// and values the caller has already proven correct.
func MustFormat(tmpl string, values ...Value) string {
	s, err := Format(tmpl, values...)
	if err != nil {
		panic(err)
	}
	return s
}

// Fprint formats tmpl with values and writes the result to w. Like
// [MustFormat] it panics on a formatting error; only the writer's error,
// if any, is returned.
func Fprint(w io.Writer, tmpl string, values ...Value) error {
	_, err := io.WriteString(w, MustFormat(tmpl, values...))
	return err
}

// Print formats tmpl with values and writes the result to standard
// output. It panics on a formatting error, like [MustFormat].
func Print(tmpl string, values ...Value) error {
	return Fprint(os.Stdout, tmpl, values...)
}

// Println is [Print] with a trailing newline after the formatted result.
func Println(tmpl string, values ...Value) error {
	_, err := io.WriteString(os.Stdout, MustFormat(tmpl, values...)+"\n")
	return err
}

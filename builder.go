package fmglee

import "io"

// Formatter accumulates values for a template and formats them in the
// order they were appended:
//
//	s := fmglee.New("%s is %d years old").
//		Text("John").
//		Int(42).
//		MustFormat()
//
// A Formatter is not safe for concurrent use; build it in one goroutine
// and discard it after formatting.
type Formatter struct {
	tmpl   string
	values []Value
}

// New returns a Formatter for tmpl with no values appended yet.
func New(tmpl string) *Formatter {
	return &Formatter{tmpl: tmpl}
}

// Text appends a string value, matched by %s.
func (f *Formatter) Text(s string) *Formatter {
	f.values = append(f.values, Text(s))
	return f
}

// Int appends an integer value, matched by %d.
func (f *Formatter) Int(n int) *Formatter {
	f.values = append(f.values, Int(n))
	return f
}

// Float appends a float value, matched by %f and its variants.
func (f *Formatter) Float(v float64) *Formatter {
	f.values = append(f.values, Float(v))
	return f
}

// Format runs [Format] with the template and the appended values.
func (f *Formatter) Format() (string, error) {
	return Format(f.tmpl, f.values...)
}

// MustFormat runs [MustFormat] with the template and the appended values.
func (f *Formatter) MustFormat() string {
	return MustFormat(f.tmpl, f.values...)
}

// Fprint formats and writes the result to w, panicking on a formatting
// error like [Fprint].
func (f *Formatter) Fprint(w io.Writer) error {
	return Fprint(w, f.tmpl, f.values...)
}

// Print formats and writes the result to standard output.
func (f *Formatter) Print() error {
	return Print(f.tmpl, f.values...)
}

// Println formats and writes the result and a trailing newline to
// standard output.
func (f *Formatter) Println() error {
	return Println(f.tmpl, f.values...)
}

package fmglee

import (
	"fmt"
	"strconv"
)

// Kind identifies the payload carried by a [Value].
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Value is one substitution argument: text, an integer, or a float.
// Values are matched left-to-right against the template's placeholders,
// and each placeholder accepts exactly one kind.
type Value struct {
	kind Kind
	text string
	num  int
	real float64
}

// Text returns a Value carrying a string, matched by %s.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Int returns a Value carrying an integer, matched by %d.
func Int(n int) Value { return Value{kind: KindInt, num: n} }

// Float returns a Value carrying a float, matched by %f and its
// delimiter/precision variants.
func Float(v float64) Value { return Value{kind: KindFloat, real: v} }

// Kind returns the kind of payload v carries.
func (v Value) Kind() Kind { return v.kind }

// String renders the value constructor-style, e.g. Text("John").
// Used in [ErrIncorrectValueType] messages.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return fmt.Sprintf("Text(%q)", v.text)
	case KindInt:
		return "Int(" + strconv.Itoa(v.num) + ")"
	case KindFloat:
		return "Float(" + strconv.FormatFloat(v.real, 'g', -1, 64) + ")"
	default:
		return "Value(?)"
	}
}

package fmglee_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/sam-kenney/fmglee"
)

// TestFormatProperties checks the invariants that hold for all inputs, not
// just the pinned table cases.
func TestFormatProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("placeholder-free templates format to themselves", prop.ForAll(
		func(s string) bool {
			got, err := fmglee.Format(s)
			return err == nil && got == s
		},
		gen.AlphaString(),
	))

	properties.Property("%d agrees with strconv.Itoa", prop.ForAll(
		func(n int) bool {
			got, err := fmglee.Format("%d", fmglee.Int(n))
			return err == nil && got == strconv.Itoa(n)
		},
		gen.Int(),
	))

	properties.Property("text substitution preserves surrounding literals", prop.ForAll(
		func(a, b string) bool {
			got, err := fmglee.Format("[%s|%s]", fmglee.Text(a), fmglee.Text(b))
			return err == nil && got == "["+a+"|"+b+"]"
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("removing delimiters recovers the plain rendering", prop.ForAll(
		func(v float64) bool {
			plain, err := fmglee.Format("%f", fmglee.Float(v))
			if err != nil {
				return false
			}
			grouped, err := fmglee.Format("%,f", fmglee.Float(v))
			if err != nil {
				return false
			}
			return strings.ReplaceAll(grouped, ",", "") == plain
		},
		gen.Float64Range(-1e12, 1e12),
	))

	properties.Property("precision yields exactly n fractional digits", prop.ForAll(
		func(v float64, n int) bool {
			got, err := fmglee.Format("%."+strconv.Itoa(n)+"f", fmglee.Float(v))
			if err != nil {
				return false
			}
			if n == 0 {
				return !strings.Contains(got, ".")
			}
			_, frac, found := strings.Cut(got, ".")
			return found && len(frac) == n
		},
		gen.Float64Range(-1e6, 1e6),
		gen.IntRange(0, 9),
	))

	properties.TestingRun(t)
}

package fmglee

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// formatFloat renders v according to the modifier run between the '%' and
// the 'f' of placeholder ph: "" (plain), "c" (digit-group delimiter),
// ".N" (N fractional digits, truncated), or "c.N" (both).
func formatFloat(v float64, ph string) (string, error) {
	mid := ph[1 : len(ph)-1]

	var delim byte
	hasDelim := false
	prec := -1

	switch {
	case len(mid) == 0:
	case len(mid) == 1:
		delim, hasDelim = mid[0], true
	case len(mid) == 2 && mid[0] == '.':
		n, err := strconv.Atoi(mid[1:])
		if err != nil {
			return "", fmt.Errorf("%w: precision %q in %q", ErrInvalidInt, mid[1:], ph)
		}
		prec = n
	case len(mid) == 3 && mid[1] == '.':
		n, err := strconv.Atoi(mid[2:])
		if err != nil {
			return "", fmt.Errorf("%w: precision %q in %q", ErrInvalidInt, mid[2:], ph)
		}
		delim, hasDelim, prec = mid[0], true, n
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFloatFormatSpecifier, ph)
	}

	intPart, frac, err := splitFloat(v)
	if err != nil {
		return "", err
	}
	if hasDelim {
		intPart = delimit(intPart, delim)
	}
	if prec >= 0 {
		return withPrecision(intPart, frac, prec), nil
	}
	return intPart + "." + frac, nil
}

// splitFloat renders v as a plain decimal string and splits it at the
// decimal point. Whole values gain an explicit "0" fraction, so 1234.0
// splits into "1234" and "0". Non-finite values have no decimal
// rendering and fail.
func splitFloat(v float64) (intPart, frac string, err error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", "", fmt.Errorf("%w: %v has no decimal rendering", ErrInvalidFloat, v)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, frac, found := strings.Cut(s, ".")
	if !found {
		frac = "0"
	}
	if frac == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidFloat, s)
	}
	return intPart, frac, nil
}

// withPrecision truncates or zero-pads frac to n digits. Truncation keeps
// the first n digits as-is, never rounding. n == 0 drops the fractional
// part and the decimal point entirely.
func withPrecision(intPart, frac string, n int) string {
	if n == 0 {
		return intPart
	}
	if len(frac) >= n {
		frac = frac[:n]
	} else {
		frac += strings.Repeat("0", n-len(frac))
	}
	return intPart + "." + frac
}

// delimit inserts delim between groups of three digits of the integer
// part, counting from the right. A leading '-' stays outside the first
// group.
func delimit(intPart string, delim byte) string {
	sign, digits := "", intPart
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}
	var b strings.Builder
	b.Grow(len(intPart) + len(digits)/3)
	b.WriteString(sign)
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if i > 0 {
			b.WriteByte(delim)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

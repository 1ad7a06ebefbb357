package fmglee

// tokenKind classifies a scanned placeholder.
type tokenKind int

const (
	tokenText tokenKind = iota
	tokenInt
	tokenFloat
)

// token is one placeholder occurrence in a template.
type token struct {
	text  string // exact matched text, e.g. "%,.2f"
	kind  tokenKind
	start int // byte offset of the '%' in the template
}

// scan returns all placeholders in tmpl in document order. At each '%'
// the longest valid match wins, so "%,.2f" is a single placeholder. A '%'
// that starts no recognizable placeholder is left as literal text.
func scan(tmpl string) []token {
	var toks []token
	for i := 0; i < len(tmpl); {
		if tmpl[i] != '%' {
			i++
			continue
		}
		n, kind, ok := match(tmpl[i:])
		if !ok {
			i++
			continue
		}
		toks = append(toks, token{text: tmpl[i : i+n], kind: kind, start: i})
		i += n
	}
	return toks
}

// match reports the length and kind of the placeholder at the start of s,
// which begins with '%'. Candidate float forms are tried longest-first.
// A float-shaped run whose modifiers are not recognized is still matched,
// so that rendering can report the malformed specifier by its exact text
// rather than silently treating it as literal.
func match(s string) (int, tokenKind, bool) {
	malformed := 0
	for j := 4; j >= 1; j-- {
		if j >= len(s) || s[j] != 'f' {
			continue
		}
		mid := s[1:j]
		if !floatShaped(mid) {
			continue
		}
		if validModifiers(mid) {
			return j + 1, tokenFloat, true
		}
		if malformed == 0 {
			malformed = j + 1
		}
	}
	if malformed > 0 {
		return malformed, tokenFloat, true
	}
	if len(s) >= 2 {
		switch s[1] {
		case 's':
			return 2, tokenText, true
		case 'd':
			return 2, tokenInt, true
		}
	}
	return 0, 0, false
}

// floatShaped reports whether mid can sit between '%' and 'f' at all.
// Whitespace and '%' terminate a candidate run so that prose like
// "100% off" never scans as a placeholder.
func floatShaped(mid string) bool {
	for i := 0; i < len(mid); i++ {
		switch mid[i] {
		case '%', ' ', '\t', '\n', '\r':
			return false
		}
	}
	return true
}

// validModifiers reports whether mid is a recognized float modifier run:
// "" (plain), "c" (delimiter), ".N" (precision), or "c.N" (both), with N
// a single digit.
func validModifiers(mid string) bool {
	switch len(mid) {
	case 0:
		return true
	case 1:
		return true
	case 2:
		return mid[0] == '.' && isDigit(mid[1])
	case 3:
		return mid[1] == '.' && isDigit(mid[2])
	default:
		return false
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Placeholders returns the exact text of every placeholder in tmpl, in
// document order. Useful for validating a template ahead of formatting:
//
//	fmglee.Placeholders("%s owes %,.2f") // ["%s", "%,.2f"]
func Placeholders(tmpl string) []string {
	toks := scan(tmpl)
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = tok.text
	}
	return out
}

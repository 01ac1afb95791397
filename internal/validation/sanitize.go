package validation

import (
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips every HTML tag, drops unprintable runes and trims
// surrounding whitespace.
func SanitizeText(s string) string {
	return strings.TrimSpace(StripUnprintable(strictPolicy.Sanitize(s)))
}

// SanitizeOptional applies SanitizeText to a non-nil value; blank results become nil.
func SanitizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := SanitizeText(*s)
	if v == "" {
		return nil
	}
	return &v
}

// EscapeFormula prefixes values that spreadsheet software would evaluate.
func EscapeFormula(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	switch trimmed[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}

// StripUnprintable removes non-printable runes except common whitespace.
func StripUnprintable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		return -1
	}, s)
}

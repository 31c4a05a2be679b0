package textutil

import (
	"strings"
	"unicode"
)

// IsSpace reports whether r belongs to the whitespace class used for word
// splitting and squeezing.
func IsSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\uFEFF':
		return true
	}
	return unicode.IsSpace(r)
}

// Fields splits text around runs of whitespace. Leading and trailing
// whitespace never produces empty segments.
func Fields(text string) []string {
	return strings.FieldsFunc(text, IsSpace)
}

// RemoveExtraSpaces collapses every whitespace run into a single ASCII space
// and trims the ends.
func RemoveExtraSpaces(text string) string {
	return strings.Join(Fields(text), " ")
}

// StripSpaces removes all whitespace from text.
func StripSpaces(text string) string {
	return strings.Map(func(r rune) rune {
		if IsSpace(r) {
			return -1
		}
		return r
	}, text)
}

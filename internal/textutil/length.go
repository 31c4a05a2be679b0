package textutil

import "unicode/utf16"

// UTF16Len returns the length of s in UTF-16 code units, the unit browsers
// use for string length. Runes above U+FFFF count as two. Invalid UTF-8
// bytes decode to U+FFFD and count as one.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += UTF16Units(r)
	}
	return n
}

// UTF16Units reports how many UTF-16 code units r occupies.
func UTF16Units(r rune) int {
	if l := utf16.RuneLen(r); l > 0 {
		return l
	}
	return 1
}

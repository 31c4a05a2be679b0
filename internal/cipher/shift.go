package cipher

import "wordwiz/internal/textutil"

// ShiftEncrypt rotates every ASCII letter of text forward within its case
// block by the UTF-16 length of text. Other characters are left as-is.
func ShiftEncrypt(text string) string {
	return rotate(text, selfKey(text))
}

// ShiftDecrypt undoes ShiftEncrypt. Rotation preserves length, so the
// ciphertext yields the same key as the plaintext it came from.
func ShiftDecrypt(text string) string {
	return rotate(text, -selfKey(text))
}

func selfKey(text string) int {
	return textutil.UTF16Len(text)
}

// rotate works on bytes: ASCII letters are single bytes in UTF-8 and every
// other byte is copied, so malformed UTF-8 survives a round trip.
func rotate(text string, shift int) string {
	shift = ((shift % 26) + 26) % 26
	if shift == 0 {
		return text
	}
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out[i] = 'A' + (c-'A'+byte(shift))%26
		case c >= 'a' && c <= 'z':
			out[i] = 'a' + (c-'a'+byte(shift))%26
		default:
			out[i] = c
		}
	}
	return string(out)
}

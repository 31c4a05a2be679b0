package cipher

import (
	"encoding/base64"
	"fmt"
	"strings"

	"wordwiz/internal/textutil"
)

// EncodeSubstitution shifts every alphabet symbol of text by the keyword
// schedule and returns the result as standard padded Base64.
func EncodeSubstitution(text, keyword string) (string, error) {
	shifts, err := keySchedule(keyword)
	if err != nil {
		return "", err
	}
	out := substitute([]byte(text), shifts, 1)
	return base64.StdEncoding.EncodeToString(out), nil
}

// DecodeSubstitution reverses EncodeSubstitution. The blob is Base64-decoded
// first; whitespace and missing padding are tolerated.
func DecodeSubstitution(blob, keyword string) (string, error) {
	shifts, err := keySchedule(keyword)
	if err != nil {
		return "", err
	}
	raw, err := decodeBlob(blob)
	if err != nil {
		return "", err
	}
	return string(substitute(raw, shifts, -1)), nil
}

// keySchedule lower-cases the keyword and maps each of its UTF-16 code units
// to an alphabet index. Units outside the alphabet map to -1, so a rune above
// U+FFFF yields two -1 entries.
func keySchedule(keyword string) ([]int, error) {
	if keyword == "" {
		return nil, ErrInvalidKey
	}
	lowered := strings.ToLower(keyword)
	shifts := make([]int, 0, len(lowered))
	for _, r := range lowered {
		idx := IndexOf(r)
		for range textutil.UTF16Units(r) {
			shifts = append(shifts, idx)
		}
	}
	return shifts, nil
}

// substitute runs one pass over data. Only alphabet bytes are shifted, and
// only they advance the key cursor; every other byte (including each byte
// of a multi-byte UTF-8 sequence) is copied unchanged.
func substitute(data []byte, shifts []int, direction int) []byte {
	out := make([]byte, len(data))
	cursor := 0
	for i, b := range data {
		idx := -1
		if b < 128 {
			idx = int(alphabetIndex[b])
		}
		if idx < 0 {
			out[i] = b
			continue
		}
		shift := direction * shifts[cursor%len(shifts)]
		cursor++
		out[i] = Alphabet[(idx+shift+alphabetSize)%alphabetSize]
	}
	return out
}

func decodeBlob(blob string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			return -1
		}
		return r
	}, blob)
	if raw, err := base64.StdEncoding.DecodeString(cleaned); err == nil {
		return raw, nil
	}
	raw, err := base64.RawStdEncoding.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return raw, nil
}

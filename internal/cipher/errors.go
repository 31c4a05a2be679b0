package cipher

import "errors"

var (
	// ErrInvalidKey is returned when the substitution cipher is given an
	// empty keyword.
	ErrInvalidKey = errors.New("invalid key: keyword is required")
	// ErrMalformedInput is returned when a blob handed to DecodeSubstitution
	// is not valid Base64.
	ErrMalformedInput = errors.New("malformed input: not a valid encoded blob")
)

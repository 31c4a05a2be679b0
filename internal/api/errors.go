package api

import (
	"errors"

	"wordwiz/internal/cipher"
	"wordwiz/internal/language"
	"wordwiz/internal/textutil"
)

// Classify maps err to an ErrorKind.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.Is(err, cipher.ErrInvalidKey):
		return ErrorKindInvalidKey
	case errors.Is(err, cipher.ErrMalformedInput):
		return ErrorKindMalformedInput
	case errors.Is(err, textutil.ErrUnknownCase), errors.Is(err, ErrUnknownOperation),
		errors.Is(err, language.ErrUnknownLanguage), errors.Is(err, ErrEmptyInput):
		return ErrorKindInvalidArgument
	default:
		return ErrorKindInternal
	}
}

// FromError converts err to its transport form. A nil error yields nil.
func FromError(err error) *ErrorPayload {
	if err == nil {
		return nil
	}
	return &ErrorPayload{Kind: Classify(err), Message: err.Error()}
}

// Hint returns the next step a user should take after err.
func Hint(err error) string {
	switch Classify(err) {
	case ErrorKindInvalidKey:
		return "enter a keyword with --keyword, [cipher] keyword or WORDWIZ_KEYWORD"
	case ErrorKindMalformedInput:
		return "decrypt expects the Base64 text produced by encrypt"
	case ErrorKindInvalidArgument:
		if errors.Is(err, ErrEmptyInput) {
			return "pass text as arguments, with --file, or on stdin"
		}
		return "check the command arguments"
	default:
		return ""
	}
}

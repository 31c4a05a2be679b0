package api

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"wordwiz/internal/cipher"
	"wordwiz/internal/language"
	"wordwiz/internal/textstats"
	"wordwiz/internal/textutil"
)

var (
	// ErrUnknownOperation is returned by Transform for unsupported operations.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrEmptyInput is returned by RequireText for empty text.
	ErrEmptyInput = errors.New("no input text")
)

// RequireText rejects empty text for operations that need something to work on.
func RequireText(op Operation, text string) error {
	if text == "" {
		return fmt.Errorf("%s: %w", op, ErrEmptyInput)
	}
	return nil
}

// SubstitutionEncode runs the keyed substitution cipher and Base64-encodes the result.
func SubstitutionEncode(text, keyword string) (TransformResult, error) {
	out, err := cipher.EncodeSubstitution(text, keyword)
	if err != nil {
		return TransformResult{}, fmt.Errorf("encrypt: %w", err)
	}
	return newResult(OpEncrypt, text, out), nil
}

// SubstitutionDecode Base64-decodes text and reverses the keyed substitution cipher.
func SubstitutionDecode(text, keyword string) (TransformResult, error) {
	out, err := cipher.DecodeSubstitution(text, keyword)
	if err != nil {
		return TransformResult{}, fmt.Errorf("decrypt: %w", err)
	}
	return newResult(OpDecrypt, text, out), nil
}

// ShiftEncrypt applies the self-keyed shift cipher.
func ShiftEncrypt(text string) TransformResult {
	return newResult(OpObfuscate, text, cipher.ShiftEncrypt(text))
}

// ShiftDecrypt reverses ShiftEncrypt.
func ShiftDecrypt(text string) TransformResult {
	return newResult(OpReveal, text, cipher.ShiftDecrypt(text))
}

// TextStats summarizes text.
func TextStats(text string) Stats {
	s := textstats.Compute(text)
	return Stats{
		WordCount:   s.WordCount,
		LetterCount: s.LetterCount,
		ReadingTime: s.ReadingTime,
	}
}

// ConvertCase converts text to the named case mode using the rules of lang.
func ConvertCase(text, mode, lang string) (TransformResult, error) {
	caseMode, err := textutil.ParseCaseMode(mode)
	if err != nil {
		return TransformResult{}, err
	}
	tag, err := language.Resolve(lang)
	if err != nil {
		return TransformResult{}, err
	}
	out, err := textutil.ConvertCase(text, caseMode, tag)
	if err != nil {
		return TransformResult{}, err
	}
	return newResult(Operation(caseMode), text, out), nil
}

// RemoveExtraSpaces collapses whitespace runs and trims the ends.
func RemoveExtraSpaces(text string) TransformResult {
	return newResult(OpSqueeze, text, textutil.RemoveExtraSpaces(text))
}

// Transform dispatches req to the matching operation.
func Transform(req TransformRequest) (TransformResult, error) {
	switch req.Operation {
	case OpEncrypt:
		return SubstitutionEncode(req.Text, req.Keyword)
	case OpDecrypt:
		return SubstitutionDecode(req.Text, req.Keyword)
	case OpObfuscate:
		return ShiftEncrypt(req.Text), nil
	case OpReveal:
		return ShiftDecrypt(req.Text), nil
	case OpLower, OpUpper, OpTitle:
		return ConvertCase(req.Text, string(req.Operation), req.Language)
	case OpSqueeze:
		return RemoveExtraSpaces(req.Text), nil
	default:
		return TransformResult{}, fmt.Errorf("%w: %q", ErrUnknownOperation, req.Operation)
	}
}

func newResult(op Operation, in, out string) TransformResult {
	return TransformResult{
		Operation:   op,
		Output:      out,
		InputRunes:  utf8.RuneCountInString(in),
		OutputRunes: utf8.RuneCountInString(out),
	}
}

package textutil

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownCase is returned for case modes other than lower, upper and title.
var ErrUnknownCase = errors.New("unknown case mode")

// CaseMode names a case conversion.
type CaseMode string

const (
	CaseLower CaseMode = "lower"
	CaseUpper CaseMode = "upper"
	CaseTitle CaseMode = "title"
)

// ParseCaseMode accepts a mode name in any letter case.
func ParseCaseMode(value string) (CaseMode, error) {
	mode := CaseMode(strings.ToLower(strings.TrimSpace(value)))
	switch mode {
	case CaseLower, CaseUpper, CaseTitle:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCase, value)
	}
}

// ToLower lower-cases text using the rules of tag.
func ToLower(text string, tag language.Tag) string {
	return cases.Lower(tag).String(text)
}

// ToUpper upper-cases text using the rules of tag.
func ToUpper(text string, tag language.Tag) string {
	return cases.Upper(tag).String(text)
}

// ToTitle title-cases every word of text using the rules of tag.
func ToTitle(text string, tag language.Tag) string {
	return cases.Title(tag).String(text)
}

// ConvertCase applies mode to text.
func ConvertCase(text string, mode CaseMode, tag language.Tag) (string, error) {
	switch mode {
	case CaseLower:
		return ToLower(text, tag), nil
	case CaseUpper:
		return ToUpper(text, tag), nil
	case CaseTitle:
		return ToTitle(text, tag), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCase, mode)
	}
}

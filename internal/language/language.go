package language

import (
	"errors"
	"fmt"
	"strings"

	xlanguage "golang.org/x/text/language"
)

// named lists the languages users may refer to by English name or ISO 639
// code. Anything else must be a BCP 47 tag.
var named = []struct {
	tag     string   // ISO 639-1, also the x/text base tag
	display string   // English name
	aliases []string // ISO 639-2 codes and extra spellings
}{
	{"en", "English", []string{"eng", "english"}},
	{"es", "Spanish", []string{"spa", "spanish"}},
	{"fr", "French", []string{"fra", "fre", "french"}},
	{"de", "German", []string{"deu", "ger", "german"}},
	{"it", "Italian", []string{"ita", "italian"}},
	{"pt", "Portuguese", []string{"por", "portuguese"}},
	{"nl", "Dutch", []string{"nld", "dut", "dutch"}},
	{"tr", "Turkish", []string{"tur", "turkish"}},
	{"az", "Azerbaijani", []string{"aze", "azerbaijani", "azeri"}},
	{"lt", "Lithuanian", []string{"lit", "lithuanian"}},
	{"el", "Greek", []string{"ell", "gre", "greek"}},
	{"ru", "Russian", []string{"rus", "russian"}},
	{"pl", "Polish", []string{"pol", "polish"}},
	{"sv", "Swedish", []string{"swe", "swedish"}},
	{"ne", "Nepali", []string{"nep", "nepali"}},
	{"hi", "Hindi", []string{"hin", "hindi"}},
}

// ErrUnknownLanguage is returned by Resolve for values it cannot map.
var ErrUnknownLanguage = errors.New("unrecognized language")

// index maps every lower-cased tag and alias to its position in named.
var index = func() map[string]int {
	m := make(map[string]int, len(named)*4)
	for i, n := range named {
		m[n.tag] = i
		for _, a := range n.aliases {
			m[a] = i
		}
	}
	return m
}()

func isNeutral(value string) bool {
	switch strings.ToLower(value) {
	case "", "und", "none", "neutral":
		return true
	}
	return false
}

// Resolve maps value to a language tag. Unknown values that are not valid
// BCP 47 tags return an error.
func Resolve(value string) (xlanguage.Tag, error) {
	trimmed := strings.TrimSpace(value)
	if isNeutral(trimmed) {
		return xlanguage.Und, nil
	}
	if i, ok := index[strings.ToLower(trimmed)]; ok {
		return xlanguage.Make(named[i].tag), nil
	}
	tag, err := xlanguage.Parse(trimmed)
	if err != nil {
		return xlanguage.Und, fmt.Errorf("%w %q: %w", ErrUnknownLanguage, value, err)
	}
	return tag, nil
}

// Canonical returns the BCP 47 form of value ("turkish" becomes "tr"), or ""
// when value does not resolve.
func Canonical(value string) string {
	tag, err := Resolve(value)
	if err != nil {
		return ""
	}
	return tag.String()
}

// DisplayName returns the English name of value. Neutral values read as
// "Neutral"; unlisted input is upper-cased.
func DisplayName(value string) string {
	trimmed := strings.TrimSpace(value)
	if isNeutral(trimmed) {
		return "Neutral"
	}
	if i, ok := index[strings.ToLower(trimmed)]; ok {
		return named[i].display
	}
	return strings.ToUpper(trimmed)
}

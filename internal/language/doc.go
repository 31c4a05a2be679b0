// Package language resolves user supplied language names and codes into
// golang.org/x/text language tags.
//
// Case conversion is locale sensitive for a handful of languages (Turkish
// dotted i, Dutch ij, Greek accents), so the converter lets users name the
// language of their text. Accepted forms are English names ("turkish"),
// ISO 639-1 and ISO 639-2 codes, and any BCP 47 tag that x/text can parse.
// Empty input and "und" resolve to language.Und, which gives locale-neutral
// results.
package language

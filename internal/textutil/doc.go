// Package textutil provides the plain text transforms behind the WordWiz
// converter: case conversion and whitespace normalization.
//
// Whitespace follows the JavaScript \s class (unicode.IsSpace without U+0085,
// plus U+FEFF). Case conversion is locale aware through
// golang.org/x/text/cases; language.Und gives locale-independent results.
package textutil

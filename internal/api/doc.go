// Package api is the boundary between the WordWiz text core and whatever
// presents it (today the CLI). It exposes one function per user-facing
// operation and translates core results into transport-friendly DTOs.
//
// # Operations
//
// SubstitutionEncode / SubstitutionDecode: keyed substitution cipher with the
// Base64 outer layer. Both fail with ErrInvalidKey for an empty keyword;
// decode also fails with ErrMalformedInput.
//
// ShiftEncrypt / ShiftDecrypt: self-keyed Caesar rotation. Total.
//
// TextStats: word count, non-whitespace character count and reading time.
//
// ConvertCase / RemoveExtraSpaces: converter transforms. ConvertCase fails for
// unknown modes or languages.
//
// Transform dispatches a TransformRequest to the matching operation.
//
// # Errors
//
// Classify maps any returned error to a stable ErrorKind so callers can pick
// a user-facing message without string matching. Nothing in this package
// prints, logs or notifies; reporting belongs to the caller.
//
// # Design Notes
//
// DTOs use camelCase JSON tags. Rune counts are reported alongside outputs
// so callers can show sizes without re-decoding.
package api

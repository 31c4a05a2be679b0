// Package config loads, normalizes, and validates WordWiz configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the WORDWIZ_KEYWORD environment
// fallback for the substitution cipher keyword. The Config type centralizes
// every knob the CLI needs: logging, output rendering, and the default
// language used for case conversion.
//
// Always obtain settings through this package so commands receive trimmed,
// lower-cased enum values and clear validation errors.
package config

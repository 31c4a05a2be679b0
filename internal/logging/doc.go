// Package logging assembles structured slog loggers and formatting helpers used
// by the WordWiz CLI.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and tags every record with a per-invocation session identifier so
// lines written to a shared log file can be grouped. The package also provides
// a no-op logger for tests and masks cipher keywords in every handler.
//
// The text and cipher packages never log; only the command layer does.
package logging

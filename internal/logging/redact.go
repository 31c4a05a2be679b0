package logging

import "log/slog"

// FieldKeyword is the key under which a cipher keyword would be logged. Its
// value is always masked by both handlers.
const FieldKeyword = "keyword"

const redactedValue = "********"

// redact resolves a and masks secret values.
func redact(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()
	if a.Key == FieldKeyword && a.Value.Kind() != slog.KindGroup {
		if a.Value.Kind() == slog.KindString && a.Value.String() == "" {
			return a
		}
		a.Value = slog.StringValue(redactedValue)
	}
	return a
}

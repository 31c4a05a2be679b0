package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// FieldSessionID is the standardized structured logging key for the
// identifier shared by every line of one CLI invocation.
const FieldSessionID = "session_id"

// NewSessionID returns a fresh random session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// sessionHandler appends the session attribute after all other attributes of
// a record.
type sessionHandler struct {
	slog.Handler
	session slog.Attr
}

func withSession(h slog.Handler, sessionID string) slog.Handler {
	if sessionID == "" {
		return h
	}
	return sessionHandler{Handler: h, session: slog.String(FieldSessionID, sessionID)}
}

func (h sessionHandler) Handle(ctx context.Context, record slog.Record) error {
	record.AddAttrs(h.session)
	return h.Handler.Handle(ctx, record)
}

func (h sessionHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return sessionHandler{Handler: h.Handler.WithAttrs(attrs), session: h.session}
}

func (h sessionHandler) WithGroup(name string) slog.Handler {
	return sessionHandler{Handler: h.Handler.WithGroup(name), session: h.session}
}

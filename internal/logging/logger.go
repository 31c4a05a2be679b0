package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"wordwiz/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// OutputPaths lists "stderr", "stdout" or file paths. Defaults to stderr.
	OutputPaths []string
	// Writer, when non-nil, replaces OutputPaths.
	Writer      io.Writer
	SessionID   string
	Development bool
}

// New constructs a slog logger using the provided options. Debug level and
// development mode add the caller location to every record.
func New(opts Options) (*slog.Logger, error) {
	level := new(slog.LevelVar)
	level.Set(parseLevel(opts.Level))

	w := opts.Writer
	if w == nil {
		var err error
		if w, err = openWriters(opts.OutputPaths); err != nil {
			return nil, err
		}
	}

	addSource := opts.Development || level.Level() <= slog.LevelDebug

	var handler slog.Handler
	switch format := strings.ToLower(strings.TrimSpace(opts.Format)); format {
	case "json":
		handler = newJSONHandler(w, level, addSource)
	case "console", "":
		handler = newConsoleHandler(w, level, addSource)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	return slog.New(withSession(handler, opts.SessionID)), nil
}

// NewFromConfig creates a logger from the [logging] section. Logs always go
// to stderr so command output on stdout stays clean; logging.file receives a
// copy. A nil cfg yields a warn-level console logger.
func NewFromConfig(cfg *config.Config, sessionID string) (*slog.Logger, error) {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}

	paths := []string{"stderr"}
	if cfg.Logging.File != "" {
		paths = append(paths, cfg.Logging.File)
	}

	return New(Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: paths,
		SessionID:   sessionID,
	})
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// openWriters opens every distinct path and fans writes out to all of them.
// Log files are opened for append and their directories created.
func openWriters(paths []string) (io.Writer, error) {
	seen := make(map[string]bool, len(paths))
	var writers []io.Writer
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true

		switch p {
		case "stderr":
			writers = append(writers, os.Stderr)
		case "stdout":
			writers = append(writers, os.Stdout)
		default:
			if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
				return nil, fmt.Errorf("create log directory: %w", err)
			}
			f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, fmt.Errorf("open log file %s: %w", p, err)
			}
			writers = append(writers, f)
		}
	}

	switch len(writers) {
	case 0:
		return os.Stderr, nil
	case 1:
		return writers[0], nil
	default:
		return io.MultiWriter(writers...), nil
	}
}

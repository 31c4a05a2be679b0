package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wordwiz/internal/config"
	"wordwiz/internal/logging"
)

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "info"
	cfg.Logging.File = filepath.Join(t.TempDir(), "nested", "wordwiz.log")

	logger, err := logging.NewFromConfig(&cfg, "session-1")
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("transform complete", logging.Args(logging.String(logging.FieldOperation, "upper"))...)

	content, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	for _, want := range []string{"INFO upper – transform complete", "    - session_id: session-1"} {
		if !strings.Contains(string(content), want) {
			t.Fatalf("log file missing %q:\n%s", want, content)
		}
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message without caller")

	if strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", buf.String())
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message with caller")

	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestConsoleLoggerRendersComponent(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "cli").Warn("careful", logging.Args(logging.Int(logging.FieldInputRunes, 4))...)

	out := buf.String()
	if !strings.Contains(out, "WARN [cli] – careful") {
		t.Fatalf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "    - input_runes: 4") {
		t.Fatalf("missing field line: %q", out)
	}
}

func TestConsoleLoggerLiftsOperationIntoHeader(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger = logging.NewComponentLogger(logger, "cli").With(logging.String(logging.FieldOperation, "encrypt"))
	logger.Info("transform complete", logging.Args(logging.String(logging.FieldSource, "stdin"))...)

	out := buf.String()
	if !strings.Contains(out, "INFO [cli] encrypt – transform complete") {
		t.Fatalf("unexpected header: %q", out)
	}
	if strings.Contains(out, "- operation:") {
		t.Fatalf("operation should not be repeated as a field: %q", out)
	}
	if !strings.Contains(out, "    - source: stdin") {
		t.Fatalf("missing source field: %q", out)
	}
}

func TestConsoleLoggerQuotesAndGroups(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.WithGroup("input").Info("read", "text", "two words", "runes", 9)

	out := buf.String()
	for _, want := range []string{`    - input.text: "two words"`, "    - input.runes: 9"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}

func TestKeywordIsRedacted(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := logging.New(logging.Options{Format: format, Level: "info", Writer: &buf})
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}

			logger.Info("keyed", logging.Args(logging.String(logging.FieldKeyword, "hunter2"))...)

			out := buf.String()
			if strings.Contains(out, "hunter2") {
				t.Fatalf("keyword leaked: %q", out)
			}
			if !strings.Contains(out, "********") {
				t.Fatalf("expected masked keyword: %q", out)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered at warn level, got %q", buf.String())
	}
}

func TestJSONLoggerIncludesSessionID(t *testing.T) {
	var buf bytes.Buffer
	sessionID := logging.NewSessionID()
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf, SessionID: sessionID})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hello", logging.Args(logging.Bool("ok", true))...)

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, buf.String())
	}
	if payload["msg"] != "hello" || payload["level"] != "info" {
		t.Fatalf("unexpected payload: %v", payload)
	}
	if payload[logging.FieldSessionID] != sessionID {
		t.Fatalf("expected session id %q, got %v", sessionID, payload[logging.FieldSessionID])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("expected ts key: %v", payload)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml", Writer: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(t.Context(), 12) {
		t.Fatal("nop logger should never be enabled")
	}
	logging.ErrorWithContext(logger, "ignored", "test_event")
}

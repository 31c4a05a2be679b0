package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wordwiz/internal/api"
	"wordwiz/internal/cipher"
	"wordwiz/internal/config"
	"wordwiz/internal/testsupport"
)

type cliResult struct {
	stdout string
	stderr string
	err    error
}

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	t.Setenv("WORDWIZ_KEYWORD", "")
	t.Setenv("NO_COLOR", "")
	cfg := testsupport.NewConfig(t, opts...)
	return &cliTestEnv{
		cfg:        cfg,
		configPath: testsupport.WriteConfig(t, cfg),
		baseDir:    testsupport.BaseDir(cfg),
	}
}

func (e *cliTestEnv) run(t *testing.T, stdin io.Reader, args ...string) cliResult {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	cmd.SetIn(stdin)
	cmd.SetArgs(append([]string{"--config", e.configPath}, args...))
	err := cmd.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func (e *cliTestEnv) mustRun(t *testing.T, stdin io.Reader, args ...string) string {
	t.Helper()

	res := e.run(t, stdin, args...)
	if res.err != nil {
		t.Fatalf("wordwiz %s: %v (stderr %q)", strings.Join(args, " "), res.err, res.stderr)
	}
	return res.stdout
}

func TestStatsCommandText(t *testing.T) {
	env := setupCLITestEnv(t)

	got := env.mustRun(t, nil, "stats", "hello", "world")
	want := "Word count: 2\nLetter count: 10\nTime to read: < 1 minute\n"
	if got != want {
		t.Fatalf("stats output = %q, want %q", got, want)
	}
}

func TestStatsCommandAcceptsEmptyInput(t *testing.T) {
	env := setupCLITestEnv(t)

	got := env.mustRun(t, strings.NewReader(""), "stats")
	if !strings.Contains(got, "Word count: 0") || !strings.Contains(got, "Letter count: 0") {
		t.Fatalf("unexpected stats output: %q", got)
	}
}

func TestStatsCommandJSONFromFile(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithOutputFormat(config.OutputJSON))
	path := filepath.Join(env.baseDir, "essay.txt")
	testsupport.WriteFile(t, path, strings.Repeat("word ", 400)+"\n")

	got := env.mustRun(t, nil, "stats", "--file", path)
	var stats api.Stats
	if err := json.Unmarshal([]byte(got), &stats); err != nil {
		t.Fatalf("decode stats json %q: %v", got, err)
	}
	want := api.Stats{WordCount: 400, LetterCount: 1600, ReadingTime: "2 minute(s)"}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}
}

func TestStatsCommandTable(t *testing.T) {
	env := setupCLITestEnv(t)

	got := env.mustRun(t, nil, "--output", "table", "stats", "one two three")
	for _, want := range []string{"Metric", "Words", "Letters", "Reading time", "< 1 minute"} {
		if !strings.Contains(got, want) {
			t.Fatalf("table output missing %q:\n%s", want, got)
		}
	}
}

func TestTransformCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"lower", []string{"lower", "HeLLo", "World"}, "hello world"},
		{"upper", []string{"upper", "straße"}, "STRASSE"},
		{"upper turkish", []string{"upper", "--lang", "tr", "i"}, "İ"},
		{"title", []string{"title", "hello world"}, "Hello World"},
		{"squeeze", []string{"squeeze", "  a \t  b  "}, "a b"},
		{"encrypt", []string{"encrypt", "--keyword", "b", "a!a"}, "MSEx"},
		{"decrypt", []string{"decrypt", "-k", "b", "MSEx"}, "a!a"},
		{"obfuscate", []string{"obfuscate", "abc"}, "def"},
		{"reveal", []string{"reveal", "def"}, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := env.mustRun(t, nil, tt.args...)
			if got != tt.want+"\n" {
				t.Fatalf("output = %q, want %q", got, tt.want+"\n")
			}
		})
	}
}

func TestKeywordFallsBackToConfig(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithKeyword("Secret"))

	enc := strings.TrimSuffix(env.mustRun(t, nil, "encrypt", "Meet me at 10!"), "\n")
	dec := env.mustRun(t, nil, "decrypt", enc)
	if dec != "Meet me at 10!\n" {
		t.Fatalf("round trip = %q", dec)
	}
}

func TestLanguageFallsBackToConfig(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithLanguage("turkish"))

	if got := env.mustRun(t, nil, "upper", "i"); got != "İ\n" {
		t.Fatalf("upper = %q", got)
	}
}

func TestStdinInputDropsTrailingNewline(t *testing.T) {
	env := setupCLITestEnv(t)

	got := env.mustRun(t, strings.NewReader("abc\n"), "obfuscate")
	if got != "def\n" {
		t.Fatalf("obfuscate from stdin = %q, want %q", got, "def\n")
	}
	got = env.mustRun(t, strings.NewReader("line one\r\n"), "upper")
	if got != "LINE ONE\n" {
		t.Fatalf("upper from stdin = %q", got)
	}
}

func TestCipherCommandErrors(t *testing.T) {
	env := setupCLITestEnv(t)

	res := env.run(t, nil, "encrypt", "text")
	if !errors.Is(res.err, cipher.ErrInvalidKey) {
		t.Fatalf("encrypt without keyword: expected ErrInvalidKey, got %v", res.err)
	}

	res = env.run(t, nil, "decrypt", "-k", "b", "!!!!")
	if api.Classify(res.err) != api.ErrorKindMalformedInput {
		t.Fatalf("decrypt garbage classified as %q (%v)", api.Classify(res.err), res.err)
	}

	res = env.run(t, strings.NewReader(""), "obfuscate")
	if !errors.Is(res.err, api.ErrEmptyInput) {
		t.Fatalf("obfuscate without input: expected ErrEmptyInput, got %v", res.err)
	}
	if res.stdout != "" {
		t.Fatalf("expected no stdout on failure, got %q", res.stdout)
	}
}

func TestArgsAndFileAreExclusive(t *testing.T) {
	env := setupCLITestEnv(t)
	path := filepath.Join(env.baseDir, "in.txt")
	testsupport.WriteFile(t, path, "abc")

	res := env.run(t, nil, "obfuscate", "--file", path, "abc")
	if res.err == nil || !strings.Contains(res.err.Error(), "not both") {
		t.Fatalf("expected exclusivity error, got %v", res.err)
	}
}

func TestOutFlagWritesFile(t *testing.T) {
	env := setupCLITestEnv(t)
	dst := filepath.Join(env.baseDir, "out", "secret.txt")

	res := env.run(t, nil, "obfuscate", "--out", dst, "abc")
	if res.err != nil {
		t.Fatalf("obfuscate --out: %v", res.err)
	}
	if res.stdout != "" {
		t.Fatalf("expected empty stdout, got %q", res.stdout)
	}
	if !strings.Contains(res.stderr, "✓ wrote") || !strings.Contains(res.stderr, "3 characters") {
		t.Fatalf("unexpected status line: %q", res.stderr)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "def" {
		t.Fatalf("file content = %q, want %q", data, "def")
	}
}

func TestTransformJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t)

	got := env.mustRun(t, nil, "-o", "json", "encrypt", "-k", "b", "a!a")
	var res api.TransformResult
	if err := json.Unmarshal([]byte(got), &res); err != nil {
		t.Fatalf("decode json %q: %v", got, err)
	}
	if res.Operation != api.OpEncrypt || res.Output != "MSEx" || res.InputRunes != 3 || res.OutputRunes != 4 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestInvalidOutputFlag(t *testing.T) {
	env := setupCLITestEnv(t)

	res := env.run(t, nil, "--output", "yaml", "stats", "x")
	if res.err == nil || !strings.Contains(res.err.Error(), "invalid flag") {
		t.Fatalf("expected invalid flag error, got %v", res.err)
	}
}

func TestJSONOutputReportsClassifiedErrors(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithOutputFormat(config.OutputJSON))

	res := env.run(t, nil, "decrypt", "-k", "b", "!!!!")
	if !errors.Is(res.err, cipher.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", res.err)
	}
	if !isReported(res.err) {
		t.Fatalf("expected error to be marked as reported: %v", res.err)
	}
	if res.stdout != "" {
		t.Fatalf("expected no stdout on failure, got %q", res.stdout)
	}
	var payload api.ErrorPayload
	if err := json.Unmarshal([]byte(res.stderr), &payload); err != nil {
		t.Fatalf("decode error payload %q: %v", res.stderr, err)
	}
	if payload.Kind != api.ErrorKindMalformedInput || !strings.HasPrefix(payload.Message, "decrypt:") {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	res = env.run(t, strings.NewReader(""), "obfuscate")
	if err := json.Unmarshal([]byte(res.stderr), &payload); err != nil {
		t.Fatalf("decode error payload %q: %v", res.stderr, err)
	}
	if payload.Kind != api.ErrorKindInvalidArgument {
		t.Fatalf("empty input kind = %q, want %q", payload.Kind, api.ErrorKindInvalidArgument)
	}
}

func TestTextOutputLeavesErrorsToCaller(t *testing.T) {
	env := setupCLITestEnv(t)

	res := env.run(t, nil, "decrypt", "-k", "b", "!!!!")
	if res.err == nil || isReported(res.err) {
		t.Fatalf("expected unreported error, got %v", res.err)
	}
	if res.stderr != "" {
		t.Fatalf("expected nothing on stderr, got %q", res.stderr)
	}
}

package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"wordwiz/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose log file lives in a per-test temp
// directory. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Logging.File = filepath.Join(base, "logs", "wordwiz.log")
	cfgVal.Output.Color = config.ColorNever

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithKeyword sets the default cipher keyword on the test config.
func WithKeyword(keyword string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Cipher.Keyword = keyword
	}
}

// WithOutputFormat overrides the result format on the test config.
func WithOutputFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Format = format
	}
}

// WithLanguage overrides the case conversion language on the test config.
func WithLanguage(lang string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Text.Language = lang
	}
}

// WriteConfig serializes cfg to a TOML file inside the test temp tree and
// returns its path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(BaseDir(cfg), "wordwiz.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(filepath.Dir(cfg.Logging.File))
}

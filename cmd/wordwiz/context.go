package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"wordwiz/internal/config"
	"wordwiz/internal/logging"
)

type rootFlags struct {
	config   string
	logLevel string
	output   string
	color    string
}

type commandContext struct {
	flags *rootFlags

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce sync.Once
	logger     *slog.Logger
	sessionID  string
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{
		flags:     flags,
		sessionID: logging.NewSessionID(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		path := strings.TrimSpace(c.flags.config)
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyOverrides(cfg); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) applyOverrides(cfg *config.Config) error {
	if v := strings.ToLower(strings.TrimSpace(c.flags.logLevel)); v != "" {
		cfg.Logging.Level = v
	}
	if v := strings.ToLower(strings.TrimSpace(c.flags.output)); v != "" {
		cfg.Output.Format = v
	}
	if v := strings.ToLower(strings.TrimSpace(c.flags.color)); v != "" {
		cfg.Output.Color = v
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flag: %w", err)
	}
	return nil
}

// configValue returns the loaded config, or repository defaults when loading
// was skipped or failed.
func (c *commandContext) configValue() *config.Config {
	if cfg, err := c.ensureConfig(); err == nil && cfg != nil {
		return cfg
	}
	def := config.Default()
	return &def
}

func (c *commandContext) log() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			cfg = nil
		}
		logger, err := logging.NewFromConfig(cfg, c.sessionID)
		if err != nil {
			logger = logging.NewNop()
		}
		c.logger = logging.NewComponentLogger(logger, "cli")
	})
	return c.logger
}

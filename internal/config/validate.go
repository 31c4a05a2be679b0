package config

import (
	"fmt"

	"wordwiz/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateText(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if err := ValidateOutputFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color must be auto, always or never, got %q", c.Output.Color)
	}
	return nil
}

func (c *Config) validateText() error {
	if _, err := language.Resolve(c.Text.Language); err != nil {
		return fmt.Errorf("text.language: %w", err)
	}
	return nil
}

// ValidateOutputFormat reports whether format is a supported result format.
func ValidateOutputFormat(format string) error {
	switch format {
	case OutputText, OutputJSON, OutputTable:
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want text, json or table)", format)
	}
}

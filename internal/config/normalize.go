package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizeOutput()
	c.normalizeText()
	c.normalizeCipher()
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) == "" {
		c.Logging.File = ""
		return nil
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutput
	}
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultColor
	}
}

func (c *Config) normalizeText() {
	c.Text.Language = strings.TrimSpace(c.Text.Language)
	if c.Text.Language == "" {
		c.Text.Language = defaultLanguage
	}
}

// The keyword is not trimmed: spaces are legitimate key material.
func (c *Config) normalizeCipher() {
	if c.Cipher.Keyword == "" {
		if value, ok := os.LookupEnv(keywordEnvVar); ok {
			c.Cipher.Keyword = value
		}
	}
}

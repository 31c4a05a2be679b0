package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"wordwiz/internal/config"
	"wordwiz/internal/language"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Set cipher.keyword (or export WORDWIZ_KEYWORD) before using encrypt and decrypt.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out := cmd.OutOrStdout()
			checks := []check{{checkNote, "config", ctx.configPath}}
			if !ctx.configExists {
				checks = append(checks, check{checkWarn, "config", "not found; defaults were used"})
			}
			if cfg.Cipher.Keyword == "" {
				checks = append(checks, check{checkWarn, "keyword", "not set; encrypt and decrypt need --keyword"})
			} else {
				checks = append(checks, check{checkPass, "keyword", "set"})
			}
			checks = append(checks, check{checkPass, "settings", "valid"})
			writeChecks(out, shouldColorize(out, cfg.Output.Color), checks...)
			return nil
		},
	}
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			shown := *cfg
			if !reveal {
				shown = cfg.Redacted()
			}

			out := cmd.OutOrStdout()
			switch cfg.Output.Format {
			case config.OutputJSON:
				return writeJSON(out, configView(ctx, &shown))
			case config.OutputTable:
				fmt.Fprintln(out, renderTable([]string{"Setting", "Value"}, configRows(ctx, &shown), nil, terminalWidth(out)))
				return nil
			default:
				data, err := shown.Encode(true)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Show the cipher keyword instead of masking it")
	return cmd
}

type configSummary struct {
	Path         string `json:"path"`
	Exists       bool   `json:"exists"`
	LogFormat    string `json:"logFormat"`
	LogLevel     string `json:"logLevel"`
	LogFile      string `json:"logFile,omitempty"`
	OutputFormat string `json:"outputFormat"`
	Color        string `json:"color"`
	Language     string `json:"language"`
	LanguageTag  string `json:"languageTag"`
	LanguageName string `json:"languageName"`
	Keyword      string `json:"keyword"`
}

func configView(ctx *commandContext, cfg *config.Config) configSummary {
	return configSummary{
		Path:         ctx.configPath,
		Exists:       ctx.configExists,
		LogFormat:    cfg.Logging.Format,
		LogLevel:     cfg.Logging.Level,
		LogFile:      cfg.Logging.File,
		OutputFormat: cfg.Output.Format,
		Color:        cfg.Output.Color,
		Language:     cfg.Text.Language,
		LanguageTag:  language.Canonical(cfg.Text.Language),
		LanguageName: language.DisplayName(cfg.Text.Language),
		Keyword:      cfg.Cipher.Keyword,
	}
}

func configRows(ctx *commandContext, cfg *config.Config) [][]string {
	view := configView(ctx, cfg)
	path := view.Path
	if !view.Exists {
		path += " (not found)"
	}
	logFile := view.LogFile
	if logFile == "" {
		logFile = "-"
	}
	keyword := view.Keyword
	if keyword == "" {
		keyword = "-"
	}
	return [][]string{
		{"config", filepath.Clean(path)},
		{"logging.format", view.LogFormat},
		{"logging.level", view.LogLevel},
		{"logging.file", logFile},
		{"output.format", view.OutputFormat},
		{"output.color", view.Color},
		{"text.language", fmt.Sprintf("%s (%s, %s)", view.Language, view.LanguageTag, view.LanguageName)},
		{"cipher.keyword", keyword},
	}
}

package main

import (
	"github.com/spf13/cobra"

	"wordwiz/internal/api"
)

func newRootCommand() *cobra.Command {
	var flags rootFlags

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "wordwiz",
		Short:         "Word counter, case converter and toy ciphers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "", "Result format override (text, json, table)")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "", "Color mode override (auto, always, never)")

	rootCmd.AddCommand(newStatsCommand(ctx))
	rootCmd.AddCommand(newCaseCommand(ctx, api.OpLower, "Convert text to lowercase"))
	rootCmd.AddCommand(newCaseCommand(ctx, api.OpUpper, "Convert text to uppercase"))
	rootCmd.AddCommand(newCaseCommand(ctx, api.OpTitle, "Capitalize every word"))
	rootCmd.AddCommand(newSqueezeCommand(ctx))
	rootCmd.AddCommand(newKeyedCipherCommand(ctx, api.OpEncrypt, "Encrypt text with a keyword (Base64 output)"))
	rootCmd.AddCommand(newKeyedCipherCommand(ctx, api.OpDecrypt, "Decrypt Base64 text produced by encrypt"))
	rootCmd.AddCommand(newShiftCipherCommand(ctx, api.OpObfuscate, "Obfuscate a password with the length-keyed shift"))
	rootCmd.AddCommand(newShiftCipherCommand(ctx, api.OpReveal, "Reveal a password obfuscated by obfuscate"))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

package main

import (
	"github.com/spf13/cobra"

	"wordwiz/internal/api"
	"wordwiz/internal/logging"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "stats [TEXT...]",
		Short: "Count words and letters and estimate reading time",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			logger := ctx.log().With(logging.Operation("stats"))

			text, source, err := readInput(cmd, args, filePath)
			if err != nil {
				return reportFailure(cmd, cfg, err)
			}
			stats := api.TextStats(text)
			logger.Debug("text statistics computed", logging.Args(
				logging.Source(source),
				logging.Int("word_count", stats.WordCount),
				logging.Int("letter_count", stats.LetterCount),
			)...)
			return reportFailure(cmd, cfg, writeStats(cmd, cfg, stats))
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read text from a file")
	return cmd
}

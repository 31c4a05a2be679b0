package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"wordwiz/internal/api"
	"wordwiz/internal/config"
	"wordwiz/internal/fileutil"
	"wordwiz/internal/textutil"
)

const outputFileMode = 0o644

// writeTransformResult prints res in the configured format, or writes the
// bare output text to outPath and reports the destination on stderr.
func writeTransformResult(cmd *cobra.Command, cfg *config.Config, res api.TransformResult, outPath string) error {
	if outPath != "" {
		path, err := config.ExpandPath(outPath)
		if err != nil {
			return err
		}
		if err := fileutil.WriteText(path, res.Output, outputFileMode); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		errOut := cmd.ErrOrStderr()
		colorize := shouldColorize(errOut, cfg.Output.Color)
		noun := textutil.Ternary(res.OutputRunes == 1, "character", "characters")
		writeChecks(errOut, colorize, check{checkPass, "wrote", fmt.Sprintf("%d %s to %s", res.OutputRunes, noun, path)})
		return nil
	}

	out := cmd.OutOrStdout()
	switch cfg.Output.Format {
	case config.OutputJSON:
		return writeJSON(out, res)
	case config.OutputTable:
		rows := [][]string{
			{"Operation", string(res.Operation)},
			{"Input characters", strconv.Itoa(res.InputRunes)},
			{"Output characters", strconv.Itoa(res.OutputRunes)},
			{"Output", res.Output},
		}
		fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows, nil, terminalWidth(out)))
		return nil
	default:
		_, err := fmt.Fprintln(out, res.Output)
		return err
	}
}

func writeStats(cmd *cobra.Command, cfg *config.Config, stats api.Stats) error {
	out := cmd.OutOrStdout()
	switch cfg.Output.Format {
	case config.OutputJSON:
		return writeJSON(out, stats)
	case config.OutputTable:
		rows := [][]string{
			{"Words", strconv.Itoa(stats.WordCount)},
			{"Letters", strconv.Itoa(stats.LetterCount)},
			{"Reading time", stats.ReadingTime},
		}
		fmt.Fprintln(out, renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}, 0))
		return nil
	default:
		fmt.Fprintf(out, "Word count: %d\n", stats.WordCount)
		fmt.Fprintf(out, "Letter count: %d\n", stats.LetterCount)
		fmt.Fprintf(out, "Time to read: %s\n", stats.ReadingTime)
		return nil
	}
}

package main

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"wordwiz/internal/api"
	"wordwiz/internal/config"
	"wordwiz/internal/logging"
)

type transformFlags struct {
	file string
	out  string
}

func (f *transformFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Read text from a file")
	cmd.Flags().StringVar(&f.out, "out", "", "Write the result to a file instead of stdout")
}

func newCaseCommand(ctx *commandContext, op api.Operation, short string) *cobra.Command {
	var flags transformFlags
	var lang string

	cmd := &cobra.Command{
		Use:   string(op) + " [TEXT...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			if strings.TrimSpace(lang) == "" {
				lang = cfg.Text.Language
			}
			return runTransform(ctx, cmd, cfg, args, flags, api.TransformRequest{
				Operation: op,
				Language:  lang,
			}, false)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&lang, "lang", "", "Language for case rules (e.g. tr, de, turkish); defaults to text.language")
	return cmd
}

func newSqueezeCommand(ctx *commandContext) *cobra.Command {
	var flags transformFlags

	cmd := &cobra.Command{
		Use:   string(api.OpSqueeze) + " [TEXT...]",
		Short: "Collapse runs of whitespace and trim the ends",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(ctx, cmd, ctx.configValue(), args, flags, api.TransformRequest{
				Operation: api.OpSqueeze,
			}, false)
		},
	}

	flags.register(cmd)
	return cmd
}

func newKeyedCipherCommand(ctx *commandContext, op api.Operation, short string) *cobra.Command {
	var flags transformFlags
	var keyword string

	cmd := &cobra.Command{
		Use:   string(op) + " [TEXT...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			if !cmd.Flags().Changed("keyword") {
				keyword = cfg.Cipher.Keyword
			}
			return runTransform(ctx, cmd, cfg, args, flags, api.TransformRequest{
				Operation: op,
				Keyword:   keyword,
			}, true)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&keyword, "keyword", "k", "", "Cipher keyword; defaults to cipher.keyword or WORDWIZ_KEYWORD")
	return cmd
}

func newShiftCipherCommand(ctx *commandContext, op api.Operation, short string) *cobra.Command {
	var flags transformFlags

	cmd := &cobra.Command{
		Use:   string(op) + " [TEXT...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(ctx, cmd, ctx.configValue(), args, flags, api.TransformRequest{
				Operation: op,
			}, true)
		},
	}

	flags.register(cmd)
	return cmd
}

// runTransform reads the input, runs req through api.Transform and writes
// the result. Cipher commands pass requireText to reject empty input.
func runTransform(ctx *commandContext, cmd *cobra.Command, cfg *config.Config, args []string, flags transformFlags, req api.TransformRequest, requireText bool) error {
	err := transform(ctx, cmd, cfg, args, flags, req, requireText)
	return reportFailure(cmd, cfg, err)
}

func transform(ctx *commandContext, cmd *cobra.Command, cfg *config.Config, args []string, flags transformFlags, req api.TransformRequest, requireText bool) error {
	logger := ctx.log().With(logging.Operation(string(req.Operation)))

	text, source, err := readInput(cmd, args, flags.file)
	if err != nil {
		return err
	}
	if requireText {
		if err := api.RequireText(req.Operation, text); err != nil {
			logFailure(logger, err, source)
			return err
		}
	}
	req.Text = text

	res, err := api.Transform(req)
	if err != nil {
		logFailure(logger, err, source)
		return err
	}
	logger.Debug("transform complete", logging.Args(
		logging.Source(source),
		logging.Int(logging.FieldInputRunes, res.InputRunes),
		logging.Int(logging.FieldOutputRunes, res.OutputRunes),
		logging.Bool("valid_utf8", utf8.ValidString(res.Output)),
	)...)
	return writeTransformResult(cmd, cfg, res, strings.TrimSpace(flags.out))
}

func logFailure(logger *slog.Logger, err error, source string) {
	attrs := []logging.Attr{
		logging.Source(source),
		logging.Error(err),
	}
	if hint := api.Hint(err); hint != "" {
		attrs = append(attrs, logging.String(logging.FieldErrorHint, hint))
	}
	logging.ErrorWithContext(logger, "transform failed", string(api.Classify(err)), attrs...)
}

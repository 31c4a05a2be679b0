package main

import (
	"errors"

	"github.com/spf13/cobra"

	"wordwiz/internal/api"
	"wordwiz/internal/config"
)

// reportedError marks a failure that has already been written to stderr as
// a JSON error payload.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// reportFailure writes err to stderr as an api.ErrorPayload when the output
// format is JSON, so callers parsing JSON also get the error kind.
func reportFailure(cmd *cobra.Command, cfg *config.Config, err error) error {
	if err == nil || cfg == nil || cfg.Output.Format != config.OutputJSON {
		return err
	}
	if werr := writeJSON(cmd.ErrOrStderr(), api.FromError(err)); werr != nil {
		return err
	}
	return reportedError{err: err}
}

func isReported(err error) bool {
	var reported reportedError
	return errors.As(err, &reported)
}

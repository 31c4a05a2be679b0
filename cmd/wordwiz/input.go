package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"wordwiz/internal/config"
	"wordwiz/internal/fileutil"
)

const (
	sourceArgs  = "args"
	sourceFile  = "file"
	sourceStdin = "stdin"
	sourceNone  = "none"
)

// readInput resolves the text a command operates on. Positional arguments win,
// then --file, then standard input when it is not an interactive terminal.
// A single trailing line ending is dropped from file and stdin input.
func readInput(cmd *cobra.Command, args []string, filePath string) (string, string, error) {
	filePath = strings.TrimSpace(filePath)
	if len(args) > 0 {
		if filePath != "" {
			return "", "", errors.New("pass text either as arguments or with --file, not both")
		}
		return strings.Join(args, " "), sourceArgs, nil
	}

	if filePath != "" {
		path, err := config.ExpandPath(filePath)
		if err != nil {
			return "", "", err
		}
		text, err := fileutil.ReadText(path)
		if err != nil {
			return "", "", fmt.Errorf("read input file: %w", err)
		}
		return trimLineEnding(text), sourceFile, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return "", sourceNone, nil
	}
	text, err := fileutil.ReadTextFrom(in)
	if err != nil {
		return "", "", fmt.Errorf("read stdin: %w", err)
	}
	return trimLineEnding(text), sourceStdin, nil
}

func trimLineEnding(text string) string {
	if strings.HasSuffix(text, "\r\n") {
		return text[:len(text)-2]
	}
	return strings.TrimSuffix(text, "\n")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"wordwiz/internal/api"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) && !isReported(err) {
			fmt.Fprintln(os.Stderr, err)
			if hint := api.Hint(err); hint != "" {
				fmt.Fprintln(os.Stderr, "hint:", hint)
			}
		}
		os.Exit(1)
	}
}

// Package main is the entry point for the chart TUI.
// Chart plots a sliding window of random samples and scrolls it every tick.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mtclinton/tui-examples/internal/cli"
)

// Version information, overridden at build time with
// -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if !exitErr.Printed {
				fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr.Err)
			}
			os.Exit(exitErr.Code)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// PreflightError carries a message and suggested next steps.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
	Err      error
}

// Error implements error.
func (e *PreflightError) Error() string {
	if e == nil {
		return ""
	}

	parts := []string{e.Message}
	if e.Err != nil {
		parts[0] = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Hint != "" {
		parts = append(parts, "Hint: "+e.Hint)
	}
	if e.NextStep != "" {
		parts = append(parts, "Next: "+e.NextStep)
	}
	return strings.Join(parts, "\n")
}

// ttyCheck reports whether stdin and stdout are terminals. Tests swap it.
var ttyCheck = hasTTY

func runPreflight(cmd *cobra.Command) error {
	if !requiresTTY(cmd) {
		return nil
	}
	if !ttyCheck() {
		return &PreflightError{
			Message:  "chart requires an interactive terminal",
			Hint:     "Run chart directly in a terminal, not through a pipe or redirect",
			NextStep: "chart --help",
		}
	}
	return nil
}

func requiresTTY(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	return cmd.Parent() == nil
}

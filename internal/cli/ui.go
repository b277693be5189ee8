package cli

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"github.com/mtclinton/tui-examples/internal/charttui"
	"github.com/mtclinton/tui-examples/internal/config"
	"github.com/mtclinton/tui-examples/internal/window"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runChart launches the live chart.
func runChart(cmd *cobra.Command) error {
	cfg := GetConfig()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	var src rand.Source
	if cfg.Chart.Seed != 0 {
		src = rand.NewSource(cfg.Chart.Seed)
	}
	w := window.New(cfg.Chart.Capacity, window.NewUniform(cfg.Chart.SampleMax, src))

	sessionID := uuid.NewString()
	logger.Info().
		Str("session", sessionID).
		Int64("seed", cfg.Chart.Seed).
		Msg("starting chart")

	err := charttui.Run(cmd.Context(), w, charttui.Config{
		Title:        cfg.Chart.Title,
		TickInterval: cfg.Chart.TickInterval,
		XBounds:      config.Bounds(cfg.Chart.XBounds),
		YBounds:      config.Bounds(cfg.Chart.YBounds),
		MouseCapture: cfg.Chart.MouseCapture,
	})
	if err != nil {
		logger.Error().Str("session", sessionID).Err(err).Msg("chart failed")
	}
	return reportChartError(cmd.OutOrStdout(), err, cfg.Exit.PropagateErrors)
}

// reportChartError applies the exit policy for terminal failures. The
// terminal is already restored when this runs. By default the error is
// printed to out and swallowed, so the process still exits 0.
func reportChartError(out io.Writer, err error, propagate bool) error {
	if err == nil {
		return nil
	}

	var termErr *charttui.TerminalError
	if !errors.As(err, &termErr) {
		return err
	}
	if propagate {
		return &ExitError{Code: 1, Err: err}
	}

	fmt.Fprintln(out, err.Error())
	return nil
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

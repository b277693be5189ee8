// Package cli implements the chart command-line interface using Cobra.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/mtclinton/tui-examples/internal/config"
	"github.com/mtclinton/tui-examples/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile   string
	verbose   bool
	logLevel  string
	logFormat string
	tickRate  time.Duration
	seed      int64
	exitCode  bool

	// Global config loader and config
	configLoader *config.Loader
	appConfig    *config.Config
	logger       = zerolog.Nop()
	logFile      *os.File
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chart",
	Short: "Live sliding-window line chart in the terminal",
	Long: `Chart draws a line chart of the last ten samples and appends a new
random sample every tick, dropping the oldest one.

Press q to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChart(cmd)
	},
}

// Execute runs the root command
func Execute(version, commit, date string) error {
	rootCmd.Version = formatVersion(version, commit, date)
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	defer closeLogging()
	if err := rootCmd.Execute(); err != nil {
		return handleCLIError(err)
	}
	return nil
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := initConfig(cmd); err != nil {
			return err
		}
		return runPreflight(cmd)
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/chart/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "override logging format (json, console)")

	rootCmd.Flags().DurationVar(&tickRate, "tick", 0, "override the tick interval (e.g. 250ms)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "seed the sample generator for a reproducible run")
	rootCmd.Flags().BoolVar(&exitCode, "exit-code", false, "exit non-zero when the terminal fails")
}

// initConfig loads configuration using Viper with proper precedence:
// defaults < config file < env vars < CLI flags
func initConfig(cmd *cobra.Command) error {
	configLoader = config.NewLoader()

	if cfgFile != "" {
		configLoader.SetConfigFile(cfgFile)
	}

	var err error
	appConfig, err = configLoader.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	applyCLIOverrides(cmd)
	if err := appConfig.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if err := initLogging(); err != nil {
		return err
	}

	if cfgUsed := configLoader.ConfigFileUsed(); cfgUsed != "" {
		logger.Debug().Str("config_file", cfgUsed).Msg("loaded config file")
	}
	return nil
}

func applyCLIOverrides(cmd *cobra.Command) {
	flags := cmd.Flags()

	if flags.Changed("log-level") {
		appConfig.Logging.Level = logLevel
	} else if verbose {
		appConfig.Logging.Level = "debug"
	}

	if flags.Changed("log-format") {
		appConfig.Logging.Format = logFormat
	}

	if flags.Changed("tick") {
		appConfig.Chart.TickInterval = tickRate
	}
	if flags.Changed("seed") {
		appConfig.Chart.Seed = seed
	}
	if flags.Changed("exit-code") {
		appConfig.Exit.PropagateErrors = exitCode
	}
}

// initLogging sets up the logger based on configuration. The chart owns the
// terminal, so logs only go somewhere when logging.file is set.
func initLogging() error {
	logCfg := logging.Config{
		Level:        appConfig.Logging.Level,
		Format:       appConfig.Logging.Format,
		EnableCaller: appConfig.Logging.EnableCaller,
	}

	if appConfig.Logging.File != "" {
		f, err := logging.OpenFile(appConfig.Logging.File)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		closeLogging()
		logFile = f
		logCfg.Output = f
	}

	logging.Init(logCfg)
	logger = logging.Component("cli")
	return nil
}

func closeLogging() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// GetConfig returns the loaded configuration.
// Returns nil if called before initConfig.
func GetConfig() *config.Config {
	return appConfig
}

func formatVersion(version, commit, date string) string {
	return version + " (commit: " + commit + ", built: " + date + ")"
}

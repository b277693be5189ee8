// Package config handles chart configuration loading and validation.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration structure.
type Config struct {
	// Chart settings
	Chart ChartConfig `yaml:"chart" mapstructure:"chart"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`

	// Exit code policy
	Exit ExitConfig `yaml:"exit" mapstructure:"exit"`
}

// ChartConfig contains the live chart settings.
type ChartConfig struct {
	// Title is shown in the chart block border.
	Title string `yaml:"title" mapstructure:"title"`

	// TickInterval is how often a new sample is appended.
	TickInterval time.Duration `yaml:"tick_interval" mapstructure:"tick_interval"`

	// Capacity is the number of samples in the window.
	Capacity int `yaml:"capacity" mapstructure:"capacity"`

	// SampleMax is the exclusive upper bound of generated samples.
	SampleMax float64 `yaml:"sample_max" mapstructure:"sample_max"`

	// Seed fixes the random source. Zero seeds from the clock.
	Seed int64 `yaml:"seed" mapstructure:"seed"`

	XBounds []float64 `yaml:"x_bounds" mapstructure:"x_bounds"`
	YBounds []float64 `yaml:"y_bounds" mapstructure:"y_bounds"`

	// MouseCapture enables mouse reporting while the chart runs.
	MouseCapture bool `yaml:"mouse_capture" mapstructure:"mouse_capture"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level" mapstructure:"level"`

	// Format is the output format (json, console).
	Format string `yaml:"format" mapstructure:"format"`

	// File is an optional log file path. Logs are discarded when empty.
	File string `yaml:"file" mapstructure:"file"`

	// EnableCaller adds caller information to logs.
	EnableCaller bool `yaml:"enable_caller" mapstructure:"enable_caller"`
}

// ExitConfig controls how terminal errors map to the process exit code.
type ExitConfig struct {
	// PropagateErrors exits non-zero when the chart fails. By default the
	// error is printed to stdout and the process still exits 0.
	PropagateErrors bool `yaml:"propagate_errors" mapstructure:"propagate_errors"`
}

// DefaultConfig returns a Config with all default values.
func DefaultConfig() *Config {
	return &Config{
		Chart: ChartConfig{
			Title:        "Chart 2",
			TickInterval: 250 * time.Millisecond,
			Capacity:     10,
			SampleMax:    10,
			XBounds:      []float64{0, 5},
			YBounds:      []float64{0, 5},
			MouseCapture: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Chart.TickInterval <= 0 {
		return fmt.Errorf("chart.tick_interval must be greater than 0")
	}
	if c.Chart.Capacity < 1 {
		return fmt.Errorf("chart.capacity must be at least 1")
	}
	if c.Chart.SampleMax <= 0 {
		return fmt.Errorf("chart.sample_max must be greater than 0")
	}
	if err := validateBounds("chart.x_bounds", c.Chart.XBounds); err != nil {
		return err
	}
	if err := validateBounds("chart.y_bounds", c.Chart.YBounds); err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be one of console, json")
	}

	return nil
}

func validateBounds(key string, bounds []float64) error {
	if len(bounds) != 2 {
		return fmt.Errorf("%s must have exactly two values", key)
	}
	if bounds[0] >= bounds[1] {
		return fmt.Errorf("%s minimum must be less than maximum", key)
	}
	return nil
}

// Bounds returns b as a fixed pair. Call after Validate.
func Bounds(b []float64) [2]float64 {
	var out [2]float64
	copy(out[:], b)
	return out
}

type chartConfigYAML struct {
	Title        string    `yaml:"title"`
	TickInterval string    `yaml:"tick_interval"`
	Capacity     int       `yaml:"capacity"`
	SampleMax    float64   `yaml:"sample_max"`
	Seed         int64     `yaml:"seed"`
	XBounds      []float64 `yaml:"x_bounds,flow"`
	YBounds      []float64 `yaml:"y_bounds,flow"`
	MouseCapture bool      `yaml:"mouse_capture"`
}

// MarshalYAML writes the tick interval as a duration string so the output
// can be loaded back as a config file.
func (c ChartConfig) MarshalYAML() (interface{}, error) {
	return chartConfigYAML{
		Title:        c.Title,
		TickInterval: c.TickInterval.String(),
		Capacity:     c.Capacity,
		SampleMax:    c.SampleMax,
		Seed:         c.Seed,
		XBounds:      c.XBounds,
		YBounds:      c.YBounds,
		MouseCapture: c.MouseCapture,
	}, nil
}

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"info":    zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for input, want := range tests {
		require.Equal(t, want, ParseLevel(input), "level %q", input)
	}
}

func TestNewJSONFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Format: "json", Output: &buf})

	logger.Info().Msg("hidden")
	logger.Warn().Str("k", "v").Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "shown", entry["message"])
	require.Equal(t, "v", entry["k"])
	require.Equal(t, "warn", entry["level"])
}

func TestComponentTagsEntries(t *testing.T) {
	var buf bytes.Buffer
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	Init(Config{Level: "debug", Format: "json", Output: &buf})
	log := Component("charttui")
	log.Debug().Msg("tick")

	require.Contains(t, buf.String(), `"component":"charttui"`)
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "console", Output: &buf})
	logger.Info().Msg("hello")

	require.Contains(t, buf.String(), "hello")
	require.NotContains(t, buf.String(), `"message"`)
}

func TestOpenFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.log")

	for i := 0; i < 2; i++ {
		f, err := OpenFile(path)
		require.NoError(t, err)
		logger := New(Config{Level: "info", Format: "json", Output: f})
		logger.Info().Msg("line")
		require.NoError(t, f.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(string(data), `"message":"line"`))
}

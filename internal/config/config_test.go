package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestChartConfigYAMLRoundTrip(t *testing.T) {
	isolateHome(t)

	cfg := DefaultConfig()
	cfg.Chart.Seed = 42
	cfg.Chart.Title = "Round trip"

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v\n%s", err, data)
	}
	if loaded.Chart.TickInterval != cfg.Chart.TickInterval {
		t.Errorf("tick_interval = %v, want %v", loaded.Chart.TickInterval, cfg.Chart.TickInterval)
	}
	if loaded.Chart.Seed != 42 {
		t.Errorf("seed = %d, want 42", loaded.Chart.Seed)
	}
	if loaded.Chart.Title != "Round trip" {
		t.Errorf("title = %q, want 'Round trip'", loaded.Chart.Title)
	}
}

func TestBounds(t *testing.T) {
	if got := Bounds([]float64{1, 2}); got != [2]float64{1, 2} {
		t.Errorf("Bounds() = %v", got)
	}
}

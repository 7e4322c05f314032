package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg DropCatchConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultDropCatchConfig()) {
		t.Errorf("embedded defaults drifted from DefaultDropCatchConfig()\nyaml: %+v\ngo:   %+v", cfg, DefaultDropCatchConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultDropCatchConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("session:\n  duration_sec: 60\ndifficulty:\n  obstacle_step: 0.05\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDropCatch(path)
	if err != nil {
		t.Fatalf("LoadDropCatch() failed: %v", err)
	}

	if cfg.Session.DurationSec != 60 {
		t.Errorf("DurationSec = %d, expected 60", cfg.Session.DurationSec)
	}
	if cfg.Difficulty.ObstacleStep != 0.05 {
		t.Errorf("ObstacleStep = %g, expected 0.05", cfg.Difficulty.ObstacleStep)
	}
	// Untouched keys keep their defaults
	if cfg.Difficulty.InitialIntervalMs != 850 {
		t.Errorf("InitialIntervalMs = %g, expected default 850", cfg.Difficulty.InitialIntervalMs)
	}
	if cfg.Layout.EntitySize != "60px" {
		t.Errorf("EntitySize = %q, expected default 60px", cfg.Layout.EntitySize)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadDropCatch(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("session: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDropCatch(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("session:\n  duration_sec: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadDropCatch(invalid)
	if err == nil || !strings.Contains(err.Error(), "duration_sec") {
		t.Errorf("expected duration_sec validation error, got %v", err)
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultDropCatchConfig()
	cfg.Difficulty.InitialIntervalMs = 100 // below min 400
	cfg.Difficulty.MaxObstacleChance = 0.95
	cfg.Layout.UnitsPerCell = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := err.Error()
	for _, want := range []string{"initial_interval_ms", "max_obstacle_chance must not exceed 1", "units_per_cell"} {
		if !strings.Contains(msg, want) {
			t.Errorf("validation error missing %q:\n%s", want, msg)
		}
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePreset(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultDropCatchConfig()
	ApplyDropCatchPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable escalation")
	}

	cfg = DefaultDropCatchConfig()
	ApplyDropCatchPreset(&cfg, DifficultyNormal)
	if !reflect.DeepEqual(cfg, DefaultDropCatchConfig()) {
		t.Error("normal preset should keep the default tuning")
	}

	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyHard} {
		cfg = DefaultDropCatchConfig()
		ApplyDropCatchPreset(&cfg, preset)
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s preset produced invalid config: %v", preset, err)
		}
	}
}

func TestApplyPresetKeepsLoadedBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "narrow.yaml")
	data := []byte("difficulty:\n  min_interval_ms: 800\n  max_obstacle_chance: 0.10\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadDropCatch(path)
	if err != nil {
		t.Fatalf("LoadDropCatch() failed: %v", err)
	}

	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		t.Run(string(preset), func(t *testing.T) {
			cfg := loaded
			ApplyDropCatchPreset(&cfg, preset)
			if err := cfg.Validate(); err != nil {
				t.Errorf("%s preset produced invalid config: %v", preset, err)
			}
		})
	}

	cfg := loaded
	ApplyDropCatchPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialIntervalMs != 800 {
		t.Errorf("InitialIntervalMs = %g, expected 800", cfg.Difficulty.InitialIntervalMs)
	}
	if cfg.Difficulty.InitialObstacleChance != 0.10 {
		t.Errorf("InitialObstacleChance = %g, expected 0.10", cfg.Difficulty.InitialObstacleChance)
	}

	cfg = DefaultDropCatchConfig()
	ApplyDropCatchPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialIntervalMs != 700 || cfg.Difficulty.InitialObstacleChance != 0.12 {
		t.Errorf("hard on defaults = (%g, %g), expected (700, 0.12)",
			cfg.Difficulty.InitialIntervalMs, cfg.Difficulty.InitialObstacleChance)
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDropCatch loads Drop Catch configuration.
// Search order: customPath -> ~/.dropcatch/configs/dropcatch.yaml -> ./configs/dropcatch.yaml -> embedded default.
// Files are decoded over the defaults, so a file may override only a few keys.
func LoadDropCatch(customPath string) (DropCatchConfig, error) {
	cfg := DefaultDropCatchConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dropcatch.yaml"); userCfgPath != "" {
		if loaded, ok := decodeFile(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := decodeFile(filepath.Join("configs", "dropcatch.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDropCatchYAML, &cfg); err != nil {
		return DefaultDropCatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeFile reads an optional config file. Missing, malformed or invalid
// files are skipped so the next location in the search order is tried.
func decodeFile(path string) (DropCatchConfig, bool) {
	cfg := DefaultDropCatchConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dropcatch", "configs", filename)
}

// Validate reports every out-of-range value in the config.
func (c DropCatchConfig) Validate() error {
	var errs []error

	if c.Session.DurationSec <= 0 {
		errs = append(errs, fmt.Errorf("session.duration_sec must be positive, got %d", c.Session.DurationSec))
	}
	if c.Session.CountdownMs <= 0 {
		errs = append(errs, fmt.Errorf("session.countdown_ms must be positive, got %d", c.Session.CountdownMs))
	}

	if !isChance(c.Spawn.BigChance) {
		errs = append(errs, fmt.Errorf("spawn.big_chance must be in [0, 1], got %g", c.Spawn.BigChance))
	}
	if !isChance(c.Spawn.BadChance) {
		errs = append(errs, fmt.Errorf("spawn.bad_chance must be in [0, 1], got %g", c.Spawn.BadChance))
	}
	for name, k := range map[string]KindConfig{
		"big":      c.Spawn.Big,
		"obstacle": c.Spawn.Obstacle,
		"good":     c.Spawn.Good,
		"bad":      c.Spawn.Bad,
	} {
		if k.MinMs <= 0 || k.RandMs < 0 {
			errs = append(errs, fmt.Errorf("spawn.%s: min_ms must be positive and rand_ms non-negative", name))
		}
	}

	d := c.Difficulty
	if d.MinIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.min_interval_ms must be positive, got %g", d.MinIntervalMs))
	}
	if d.InitialIntervalMs < d.MinIntervalMs {
		errs = append(errs, fmt.Errorf("difficulty.initial_interval_ms (%g) is below min_interval_ms (%g)", d.InitialIntervalMs, d.MinIntervalMs))
	}
	if d.IntervalStepMs < 0 || d.ObstacleStep < 0 {
		errs = append(errs, errors.New("difficulty steps must not be negative"))
	}
	if !isChance(d.InitialObstacleChance) || !isChance(d.MaxObstacleChance) {
		errs = append(errs, errors.New("difficulty obstacle chances must be in [0, 1]"))
	}
	if d.InitialObstacleChance > d.MaxObstacleChance {
		errs = append(errs, fmt.Errorf("difficulty.initial_obstacle_chance (%g) exceeds max_obstacle_chance (%g)", d.InitialObstacleChance, d.MaxObstacleChance))
	}
	if c.Spawn.BigChance+d.MaxObstacleChance > 1 {
		errs = append(errs, fmt.Errorf("spawn.big_chance + difficulty.max_obstacle_chance must not exceed 1, got %g", c.Spawn.BigChance+d.MaxObstacleChance))
	}

	if c.Layout.ContainerWidth <= 0 {
		errs = append(errs, fmt.Errorf("layout.container_width must be positive, got %g", c.Layout.ContainerWidth))
	}
	if c.Layout.UnitsPerCell <= 0 {
		errs = append(errs, fmt.Errorf("layout.units_per_cell must be positive, got %g", c.Layout.UnitsPerCell))
	}

	return errors.Join(errs...)
}

func isChance(v float64) bool {
	return v >= 0 && v <= 1
}

package config

import (
	"fmt"
	"math"
)

// ParsePreset converts a CLI string into a DifficultyPreset.
// The empty string means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables escalation.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyDropCatchPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded tuning untouched. Hard never starts outside the
// loaded escalation bounds, so the first escalation cannot ease the game.
func ApplyDropCatchPreset(cfg *DropCatchConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	switch preset {
	case DifficultyEasy:
		cfg.Session.DurationSec = 45
		cfg.Difficulty.IntervalStepMs = 25
		cfg.Difficulty.ObstacleStep = 0.01
	case DifficultyHard:
		d := &cfg.Difficulty
		d.InitialIntervalMs = math.Max(d.MinIntervalMs, math.Min(d.InitialIntervalMs, 700))
		d.InitialObstacleChance = math.Min(d.MaxObstacleChance, math.Max(d.InitialObstacleChance, 0.12))
		cfg.Difficulty.ObstacleStep = 0.03
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/dropcatch.yaml
var defaultDropCatchYAML []byte

// DefaultDropCatchConfig returns the default Drop Catch configuration.
// It mirrors defaults/dropcatch.yaml and is used if the embedded file fails to parse.
func DefaultDropCatchConfig() DropCatchConfig {
	return DropCatchConfig{
		Session: SessionConfig{
			DurationSec: 30,
			CountdownMs: 1000,
		},
		Spawn: SpawnConfig{
			BigChance: 0.12,
			BadChance: 0.12,
			Big:       KindConfig{Value: 5, MinMs: 8000, RandMs: 3000},
			Obstacle:  KindConfig{Value: -2, MinMs: 5500, RandMs: 2500},
			Good:      KindConfig{Value: 1, MinMs: 6000, RandMs: 3000},
			Bad:       KindConfig{Value: -1, MinMs: 6000, RandMs: 3000},
		},
		Difficulty: DifficultyConfig{
			Enabled:               true,
			InitialIntervalMs:     850,
			MinIntervalMs:         400,
			IntervalStepMs:        50,
			InitialObstacleChance: 0.08,
			MaxObstacleChance:     0.35,
			ObstacleStep:          0.02,
		},
		Layout: LayoutConfig{
			ContainerWidth: 360,
			EntitySize:     "60px",
			BigDropSize:    "92px",
			UnitsPerCell:   20,
		},
		Feedback: FeedbackConfig{
			FloatTextMs:  900,
			ScorePulseMs: 300,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDropCatchYAML
}

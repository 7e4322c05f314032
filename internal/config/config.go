// Package config provides YAML-based tuning for Drop Catch: session length,
// spawn table, difficulty ramp, layout sizes, and feedback timings.
package config

// DropCatchConfig contains all tuning for the Drop Catch game.
type DropCatchConfig struct {
	Session    SessionConfig    `yaml:"session"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Layout     LayoutConfig     `yaml:"layout"`
	Feedback   FeedbackConfig   `yaml:"feedback"`
}

// SessionConfig defines round timing.
type SessionConfig struct {
	DurationSec int `yaml:"duration_sec"` // Countdown start value
	CountdownMs int `yaml:"countdown_ms"` // Countdown tick period
}

// KindConfig defines the point value and fall duration of one entity kind.
// Fall duration is MinMs plus a uniform draw in [0, RandMs).
type KindConfig struct {
	Value  int     `yaml:"value"`
	MinMs  float64 `yaml:"min_ms"`
	RandMs float64 `yaml:"rand_ms"`
}

// SpawnConfig defines the entity table used by the spawner.
type SpawnConfig struct {
	BigChance float64    `yaml:"big_chance"` // Fixed probability of a big drop
	BadChance float64    `yaml:"bad_chance"` // Share of regular drops that are bad
	Big       KindConfig `yaml:"big"`
	Obstacle  KindConfig `yaml:"obstacle"`
	Good      KindConfig `yaml:"good"`
	Bad       KindConfig `yaml:"bad"`
}

// DifficultyConfig defines the escalation applied per big-drop collection.
type DifficultyConfig struct {
	Enabled               bool    `yaml:"enabled"`
	InitialIntervalMs     float64 `yaml:"initial_interval_ms"`
	MinIntervalMs         float64 `yaml:"min_interval_ms"`
	IntervalStepMs        float64 `yaml:"interval_step_ms"`
	InitialObstacleChance float64 `yaml:"initial_obstacle_chance"`
	MaxObstacleChance     float64 `yaml:"max_obstacle_chance"`
	ObstacleStep          float64 `yaml:"obstacle_step"`
}

// LayoutConfig defines container and entity sizes in layout units.
// Sizes accept CSS-like strings ("60px", "clamp(56px, 8vw, 72px)").
type LayoutConfig struct {
	ContainerWidth float64 `yaml:"container_width"` // Fallback when the field width is unknown
	EntitySize     string  `yaml:"entity_size"`
	BigDropSize    string  `yaml:"big_drop_size"`
	UnitsPerCell   float64 `yaml:"units_per_cell"` // Layout units per terminal column
}

// FeedbackConfig defines presentation timings.
type FeedbackConfig struct {
	FloatTextMs  int `yaml:"float_text_ms"`
	ScorePulseMs int `yaml:"score_pulse_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

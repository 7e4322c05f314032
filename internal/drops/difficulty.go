package drops

import (
	"math"
	"time"
)

// DifficultyParams configures the escalation ramp.
type DifficultyParams struct {
	Enabled               bool
	InitialIntervalMs     float64
	MinIntervalMs         float64
	IntervalStepMs        float64
	InitialObstacleChance float64
	MaxObstacleChance     float64
	ObstacleStep          float64
}

// DefaultDifficultyParams returns the classic ramp: 850ms down to 400ms in
// 50ms steps, obstacle chance 0.08 up to 0.35 in 0.02 steps.
func DefaultDifficultyParams() DifficultyParams {
	return DifficultyParams{
		Enabled:               true,
		InitialIntervalMs:     850,
		MinIntervalMs:         400,
		IntervalStepMs:        50,
		InitialObstacleChance: 0.08,
		MaxObstacleChance:     0.35,
		ObstacleStep:          0.02,
	}
}

// DifficultyState is the current tuning of a session.
type DifficultyState struct {
	Level           uint
	SpawnIntervalMs float64
	ObstacleChance  float64
}

// SpawnInterval returns the spawn cadence as a duration.
func (d DifficultyState) SpawnInterval() time.Duration {
	return time.Duration(d.SpawnIntervalMs * float64(time.Millisecond))
}

// DifficultyController holds the mutable tuning parameters and escalates
// them each time a big drop is collected.
type DifficultyController struct {
	params DifficultyParams
	state  DifficultyState
}

// NewDifficultyController creates a controller in its reset state.
func NewDifficultyController(p DifficultyParams) *DifficultyController {
	c := &DifficultyController{params: p}
	c.Reset()
	return c
}

// Reset restores the initial tuning.
func (c *DifficultyController) Reset() {
	c.state = DifficultyState{
		Level:           0,
		SpawnIntervalMs: c.params.InitialIntervalMs,
		ObstacleChance:  c.params.InitialObstacleChance,
	}
}

// State returns a copy of the current tuning.
func (c *DifficultyController) State() DifficultyState {
	return c.state
}

// Escalates reports whether collections change the tuning at all.
func (c *DifficultyController) Escalates() bool {
	return c.params.Enabled
}

// OnBigDropCollected raises the level, bumps the obstacle chance and
// shortens the spawn interval, each clamped independently. It returns the
// new spawn interval so the caller can reschedule spawning.
// With escalation disabled the state is left untouched.
func (c *DifficultyController) OnBigDropCollected() float64 {
	if !c.params.Enabled {
		return c.state.SpawnIntervalMs
	}

	c.state.Level++
	c.state.ObstacleChance = math.Min(c.params.MaxObstacleChance, round3(c.state.ObstacleChance+c.params.ObstacleStep))
	c.state.SpawnIntervalMs = math.Max(c.params.MinIntervalMs, c.state.SpawnIntervalMs-c.params.IntervalStepMs)
	return c.state.SpawnIntervalMs
}

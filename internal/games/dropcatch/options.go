package dropcatch

import (
	"time"

	"github.com/vovakirdan/drop-catch/internal/config"
	"github.com/vovakirdan/drop-catch/internal/drops"
)

// sessionOptions converts the YAML tuning into session options.
func sessionOptions(cfg config.DropCatchConfig) drops.Options {
	return drops.Options{
		DurationSec: cfg.Session.DurationSec,
		Countdown:   time.Duration(cfg.Session.CountdownMs) * time.Millisecond,
		Spawn: drops.SpawnTable{
			BigChance:   cfg.Spawn.BigChance,
			BadChance:   cfg.Spawn.BadChance,
			Big:         kindSpec(cfg.Spawn.Big),
			Obstacle:    kindSpec(cfg.Spawn.Obstacle),
			Good:        kindSpec(cfg.Spawn.Good),
			Bad:         kindSpec(cfg.Spawn.Bad),
			EntitySize:  cfg.Layout.EntitySize,
			BigDropSize: cfg.Layout.BigDropSize,
		},
		Difficulty: drops.DifficultyParams{
			Enabled:               cfg.Difficulty.Enabled,
			InitialIntervalMs:     cfg.Difficulty.InitialIntervalMs,
			MinIntervalMs:         cfg.Difficulty.MinIntervalMs,
			IntervalStepMs:        cfg.Difficulty.IntervalStepMs,
			InitialObstacleChance: cfg.Difficulty.InitialObstacleChance,
			MaxObstacleChance:     cfg.Difficulty.MaxObstacleChance,
			ObstacleStep:          cfg.Difficulty.ObstacleStep,
		},
	}
}

func kindSpec(k config.KindConfig) drops.KindSpec {
	return drops.KindSpec{Value: k.Value, MinMs: k.MinMs, RandMs: k.RandMs}
}

package drops

import (
	"testing"
	"time"
)

func TestDifficultyInitialState(t *testing.T) {
	c := NewDifficultyController(DefaultDifficultyParams())
	want := DifficultyState{Level: 0, SpawnIntervalMs: 850, ObstacleChance: 0.08}
	if got := c.State(); got != want {
		t.Errorf("State() = %+v, expected %+v", got, want)
	}
	if got := c.State().SpawnInterval(); got != 850*time.Millisecond {
		t.Errorf("SpawnInterval() = %v, expected 850ms", got)
	}
}

func TestDifficultyBoundsAndMonotonic(t *testing.T) {
	c := NewDifficultyController(DefaultDifficultyParams())
	prev := c.State()

	for i := 1; i <= 100; i++ {
		returned := c.OnBigDropCollected()
		cur := c.State()

		if returned != cur.SpawnIntervalMs {
			t.Fatalf("step %d: returned interval %g != state %g", i, returned, cur.SpawnIntervalMs)
		}
		if cur.Level != uint(i) {
			t.Fatalf("step %d: level = %d", i, cur.Level)
		}
		if cur.ObstacleChance < 0.08 || cur.ObstacleChance > 0.35 {
			t.Fatalf("step %d: obstacle chance %g out of [0.08, 0.35]", i, cur.ObstacleChance)
		}
		if cur.SpawnIntervalMs < 400 || cur.SpawnIntervalMs > 850 {
			t.Fatalf("step %d: spawn interval %g out of [400, 850]", i, cur.SpawnIntervalMs)
		}
		if cur.ObstacleChance < prev.ObstacleChance {
			t.Fatalf("step %d: obstacle chance decreased %g -> %g", i, prev.ObstacleChance, cur.ObstacleChance)
		}
		if cur.SpawnIntervalMs > prev.SpawnIntervalMs {
			t.Fatalf("step %d: spawn interval increased %g -> %g", i, prev.SpawnIntervalMs, cur.SpawnIntervalMs)
		}
		prev = cur
	}

	if prev.ObstacleChance != 0.35 || prev.SpawnIntervalMs != 400 {
		t.Errorf("after 100 steps expected both clamps, got %+v", prev)
	}
}

func TestDifficultyOneBigDrop(t *testing.T) {
	c := NewDifficultyController(DefaultDifficultyParams())
	c.OnBigDropCollected()

	want := DifficultyState{Level: 1, SpawnIntervalMs: 800, ObstacleChance: 0.1}
	if got := c.State(); got != want {
		t.Errorf("State() = %+v, expected %+v", got, want)
	}
}

func TestDifficultyIndependentClamps(t *testing.T) {
	c := NewDifficultyController(DefaultDifficultyParams())
	for i := 0; i < 10; i++ {
		c.OnBigDropCollected()
	}

	got := c.State()
	if got.SpawnIntervalMs != 400 {
		t.Errorf("SpawnIntervalMs = %g, expected clamp at 400", got.SpawnIntervalMs)
	}
	if got.ObstacleChance != 0.28 {
		t.Errorf("ObstacleChance = %g, expected 0.28", got.ObstacleChance)
	}
	if got.Level != 10 {
		t.Errorf("Level = %d, expected 10", got.Level)
	}
}

func TestDifficultyReset(t *testing.T) {
	for _, steps := range []int{0, 1, 5, 14, 40} {
		c := NewDifficultyController(DefaultDifficultyParams())
		for i := 0; i < steps; i++ {
			c.OnBigDropCollected()
		}
		c.Reset()

		want := DifficultyState{Level: 0, SpawnIntervalMs: 850, ObstacleChance: 0.08}
		if got := c.State(); got != want {
			t.Errorf("after %d steps, Reset() left %+v, expected %+v", steps, got, want)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	p := DefaultDifficultyParams()
	p.Enabled = false
	c := NewDifficultyController(p)

	if c.Escalates() {
		t.Error("Escalates() should be false when disabled")
	}
	if got := c.OnBigDropCollected(); got != 850 {
		t.Errorf("OnBigDropCollected() = %g, expected unchanged 850", got)
	}
	if got := c.State(); got.Level != 0 || got.ObstacleChance != 0.08 {
		t.Errorf("disabled controller changed state: %+v", got)
	}
}

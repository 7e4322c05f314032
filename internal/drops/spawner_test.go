package drops

import (
	"math"
	"testing"
)

func TestSpawnKindPartition(t *testing.T) {
	d := DifficultyState{SpawnIntervalMs: 850, ObstacleChance: 0.08}

	tests := []struct {
		name  string
		draws []float64
		want  Kind
		value int
	}{
		{"lowest draw is big", []float64{0}, KindBig, 5},
		{"just under big chance", []float64{0.1199}, KindBig, 5},
		{"big chance boundary is obstacle", []float64{0.12}, KindObstacle, -2},
		{"just under obstacle slice", []float64{0.1999}, KindObstacle, -2},
		{"regular good", []float64{0.2, 0.12}, KindGood, 1},
		{"regular bad", []float64{0.2, 0.1199}, KindBad, -1},
		{"top draw good", []float64{0.9999, 0.5}, KindGood, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := &scriptedSource{vals: tc.draws, fallback: 0.5}
			e := NewSpawner(src, DefaultSpawnTable()).Spawn(d, 360)
			if e.Kind != tc.want {
				t.Errorf("Kind = %v, expected %v", e.Kind, tc.want)
			}
			if e.Value != tc.value {
				t.Errorf("Value = %d, expected %d", e.Value, tc.value)
			}
			if e.Label != tc.want.Label() {
				t.Errorf("Label = %q, expected %q", e.Label, tc.want.Label())
			}
		})
	}
}

func TestSpawnObstacleSliceFollowsDifficulty(t *testing.T) {
	sp := NewSpawner(&scriptedSource{fallback: 0.3}, DefaultSpawnTable())

	if e := sp.Spawn(DifficultyState{ObstacleChance: 0.08}, 360); e.Kind == KindObstacle {
		t.Error("draw 0.3 should not be an obstacle at chance 0.08")
	}
	if e := sp.Spawn(DifficultyState{ObstacleChance: 0.35}, 360); e.Kind != KindObstacle {
		t.Errorf("draw 0.3 should be an obstacle at chance 0.35, got %v", e.Kind)
	}
}

func TestSpawnDrawOrder(t *testing.T) {
	// kind, good/bad, position, duration
	src := &scriptedSource{vals: []float64{0.5, 0.9, 0.25, 0.5}}
	e := NewSpawner(src, DefaultSpawnTable()).Spawn(DifficultyState{ObstacleChance: 0.08}, 360)

	if e.Kind != KindGood {
		t.Fatalf("Kind = %v, expected good", e.Kind)
	}
	if e.X != 0.25*(360-60) {
		t.Errorf("X = %g, expected %g", e.X, 0.25*(360-60))
	}
	if e.FallDurationMs != 7500 {
		t.Errorf("FallDurationMs = %g, expected 7500", e.FallDurationMs)
	}
}

func TestSpawnDurationRanges(t *testing.T) {
	sp := NewSpawner(NewSource(99), DefaultSpawnTable())
	d := DifficultyState{ObstacleChance: 0.35}

	ranges := map[Kind][2]float64{
		KindBig:      {8000, 11000},
		KindObstacle: {5500, 8000},
		KindGood:     {6000, 9000},
		KindBad:      {6000, 9000},
	}
	seen := make(map[Kind]bool)

	for i := 0; i < 20000; i++ {
		e := sp.Spawn(d, 360)
		r := ranges[e.Kind]
		if e.FallDurationMs < r[0] || e.FallDurationMs > r[1] {
			t.Fatalf("%v duration %g outside [%g, %g]", e.Kind, e.FallDurationMs, r[0], r[1])
		}
		if e.FallDurationMs != math.Round(e.FallDurationMs) {
			t.Fatalf("duration %g is not whole milliseconds", e.FallDurationMs)
		}
		seen[e.Kind] = true
	}

	for k := range ranges {
		if !seen[k] {
			t.Errorf("kind %v never spawned", k)
		}
	}
}

func TestSpawnPlacement(t *testing.T) {
	sp := NewSpawner(NewSource(3), DefaultSpawnTable())
	d := DifficultyState{ObstacleChance: 0.08}

	for i := 0; i < 5000; i++ {
		e := sp.Spawn(d, 500)
		if e.X < 0 || e.X+e.Width > 500 {
			t.Fatalf("%v at x=%g width=%g escapes container 500", e.Kind, e.X, e.Width)
		}
		wantW := 60.0
		if e.Kind == KindBig {
			wantW = 92
		}
		if e.Width != wantW {
			t.Fatalf("%v width = %g, expected %g", e.Kind, e.Width, wantW)
		}
	}
}

func TestSpawnFallbacks(t *testing.T) {
	// Unknown container width falls back to 360
	src := &scriptedSource{vals: []float64{0.5, 0.5, 1}}
	e := NewSpawner(src, DefaultSpawnTable()).Spawn(DifficultyState{}, 0)
	if e.X != 300 {
		t.Errorf("X with unknown width = %g, expected 300 (360-60)", e.X)
	}

	// Container narrower than the entity pins it to the left edge
	src = &scriptedSource{vals: []float64{0, 0.9, 0.5}}
	e = NewSpawner(src, DefaultSpawnTable()).Spawn(DifficultyState{}, 50)
	if e.X != 0 {
		t.Errorf("X in narrow container = %g, expected 0", e.X)
	}

	// Unparseable sizes fall back to 60/92
	table := DefaultSpawnTable()
	table.EntitySize = "auto"
	table.BigDropSize = ""
	sp := NewSpawner(&scriptedSource{fallback: 0}, table)
	if e := sp.Spawn(DifficultyState{}, 360); e.Width != DefaultBigDropWidth {
		t.Errorf("big width fallback = %g, expected %g", e.Width, DefaultBigDropWidth)
	}
	sp = NewSpawner(&scriptedSource{fallback: 0.5}, table)
	if e := sp.Spawn(DifficultyState{}, 360); e.Width != DefaultEntityWidth {
		t.Errorf("entity width fallback = %g, expected %g", e.Width, DefaultEntityWidth)
	}

	// Configured sizes are parsed
	table.EntitySize = "clamp(40px, 5vw, 48px)"
	sp = NewSpawner(&scriptedSource{fallback: 0.5}, table)
	if e := sp.Spawn(DifficultyState{}, 360); e.Width != 40 {
		t.Errorf("parsed entity width = %g, expected 40", e.Width)
	}
}

func TestSpawnKindDistribution(t *testing.T) {
	const n = 200000
	d := DifficultyState{ObstacleChance: 0.08}
	sp := NewSpawner(NewSource(2024), DefaultSpawnTable())

	counts := make(map[Kind]int)
	for i := 0; i < n; i++ {
		counts[sp.Spawn(d, 360).Kind]++
	}

	expected := map[Kind]float64{
		KindBig:      0.12,
		KindObstacle: 0.08,
		KindGood:     0.80 * 0.88,
		KindBad:      0.80 * 0.12,
	}

	chi2 := 0.0
	for k, p := range expected {
		exp := p * n
		diff := float64(counts[k]) - exp
		chi2 += diff * diff / exp
	}

	// 3 degrees of freedom, p = 0.001
	if chi2 > 16.27 {
		t.Errorf("kind distribution does not match configured probabilities: chi2=%.2f counts=%v", chi2, counts)
	}
}

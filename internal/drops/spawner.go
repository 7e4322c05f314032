package drops

import "math"

// Fallback sizes in layout units, used when the container or entity
// size is unknown.
const (
	DefaultContainerWidth = 360.0
	DefaultEntityWidth    = 60.0
	DefaultBigDropWidth   = 92.0
)

// KindSpec is the value and fall-duration range of one entity kind.
// Duration is MinMs + u*RandMs with u uniform in [0, 1).
type KindSpec struct {
	Value  int
	MinMs  float64
	RandMs float64
}

// SpawnTable holds the fixed spawn parameters. The variable part
// (obstacle chance) comes from DifficultyState on each Spawn call.
type SpawnTable struct {
	BigChance float64
	BadChance float64
	Big       KindSpec
	Obstacle  KindSpec
	Good      KindSpec
	Bad       KindSpec

	EntitySize  string // CSS-like size for regular drops and obstacles
	BigDropSize string // CSS-like size for big drops
}

// DefaultSpawnTable returns the classic table.
func DefaultSpawnTable() SpawnTable {
	return SpawnTable{
		BigChance:   0.12,
		BadChance:   0.12,
		Big:         KindSpec{Value: 5, MinMs: 8000, RandMs: 3000},
		Obstacle:    KindSpec{Value: -2, MinMs: 5500, RandMs: 2500},
		Good:        KindSpec{Value: 1, MinMs: 6000, RandMs: 3000},
		Bad:         KindSpec{Value: -1, MinMs: 6000, RandMs: 3000},
		EntitySize:  "60px",
		BigDropSize: "92px",
	}
}

// Spawner decides kind, value, fall duration and horizontal placement
// of new entities.
type Spawner struct {
	src      Source
	table    SpawnTable
	width    float64
	bigWidth float64
}

// NewSpawner creates a spawner drawing from src.
func NewSpawner(src Source, table SpawnTable) *Spawner {
	s := &Spawner{src: src, table: table}
	s.width = ParseSize(table.EntitySize)
	if s.width <= 0 {
		s.width = DefaultEntityWidth
	}
	s.bigWidth = ParseSize(table.BigDropSize)
	if s.bigWidth <= 0 {
		s.bigWidth = DefaultBigDropWidth
	}
	return s
}

// Spawn creates one entity for the given difficulty and container width.
//
// A single draw r picks the kind: r < big chance is a big drop, the next
// obstacleChance slice is an obstacle, and the rest are regular drops split
// good/bad by a second draw. Position and duration are drawn after the kind.
func (s *Spawner) Spawn(d DifficultyState, containerWidth float64) SpawnedEntity {
	var e SpawnedEntity
	var spec KindSpec

	r := s.src.Float64()
	switch {
	case r < s.table.BigChance:
		e.Kind, spec = KindBig, s.table.Big
	case r < s.table.BigChance+d.ObstacleChance:
		e.Kind, spec = KindObstacle, s.table.Obstacle
	default:
		if s.src.Float64() < s.table.BadChance {
			e.Kind, spec = KindBad, s.table.Bad
		} else {
			e.Kind, spec = KindGood, s.table.Good
		}
	}
	e.Value = spec.Value
	e.Label = e.Kind.Label()

	if containerWidth <= 0 || math.IsNaN(containerWidth) {
		containerWidth = DefaultContainerWidth
	}
	e.Width = s.width
	if e.Kind == KindBig {
		e.Width = s.bigWidth
	}
	maxLeft := math.Max(0, containerWidth-e.Width)
	e.X = s.src.Float64() * maxLeft

	e.FallDurationMs = math.Round(uniform(s.src, spec.MinMs, spec.RandMs))
	return e
}

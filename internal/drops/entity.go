package drops

// Kind identifies what a falling entity is worth and how it looks.
type Kind uint8

const (
	KindGood     Kind = iota // Regular drop, positive
	KindBad                  // Regular drop, negative
	KindBig                  // Big drop, escalates difficulty when collected
	KindObstacle             // Storm obstacle, negative
)

// String returns a short identifier for logs.
func (k Kind) String() string {
	switch k {
	case KindGood:
		return "good"
	case KindBad:
		return "bad"
	case KindBig:
		return "big"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Label returns the accessibility label attached to entities of this kind.
func (k Kind) Label() string {
	switch k {
	case KindGood:
		return "Good drop"
	case KindBad:
		return "Bad drop"
	case KindBig:
		return "Big water drop"
	case KindObstacle:
		return "Storm obstacle"
	default:
		return ""
	}
}

// SpawnedEntity is one falling, clickable item. The session stamps ID and
// Generation; everything else comes from the spawner.
type SpawnedEntity struct {
	ID             uint64
	Generation     uint64
	Kind           Kind
	Value          int
	FallDurationMs float64
	X              float64 // Left edge in layout units
	Width          float64 // Width in layout units
	Label          string
}

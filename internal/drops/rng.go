// Package drops implements the Drop Catch control loop: the entity spawner,
// the difficulty controller, the score ledger, a virtual-clock scheduler and
// the session state machine that ties them together.
//
// The package knows nothing about terminals. Presentation is delegated to a
// Renderer supplied by the caller, which displays entities and reports
// collection and fall completion back through one-shot callbacks.
package drops

import (
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
)

// Source is a uniform random source in [0, 1).
// *rand.Rand satisfies it; tests substitute scripted sequences.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic Source for the given seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// uniform draws from [lo, lo+span).
func uniform(src Source, lo, span float64) float64 {
	return lo + src.Float64()*span
}

var (
	pxPattern  = regexp.MustCompile(`([\d.]+)px`)
	numPattern = regexp.MustCompile(`([\d.]+)`)
)

// ParseSize extracts a size from a CSS-like value such as "72px" or
// "clamp(56px, 8vw, 72px)". The first px value wins, then the first bare
// number. Anything unparseable yields 0 so callers can fall back to a default.
func ParseSize(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	m := pxPattern.FindStringSubmatch(value)
	if m == nil {
		m = numPattern.FindStringSubmatch(value)
	}
	if m == nil {
		return 0
	}

	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil || math.IsNaN(n) {
		return 0
	}
	return n
}

// round3 rounds to three decimal places.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

package drops

// Ledger accumulates signed score deltas. No bounds; the score may go negative.
type Ledger struct {
	score int
}

// Add accumulates delta into the score.
func (l *Ledger) Add(delta int) {
	l.score += delta
}

// Current returns the accumulated score.
func (l *Ledger) Current() int {
	return l.score
}

// Reset zeroes the score.
func (l *Ledger) Reset() {
	l.score = 0
}

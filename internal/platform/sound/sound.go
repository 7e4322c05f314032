// Package sound plays short synthesized cues for Drop Catch session events.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/drop-catch/internal/drops"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a named sound effect.
type Cue int

const (
	CueCollect  Cue = iota // Positive score change
	CuePenalty             // Negative score change
	CueEscalate            // Difficulty went up
	CueGameOver            // Countdown ran out
)

// tone describes a single frequency sweep.
type tone struct {
	from, to float64 // Hz
	length   time.Duration
	volume   float64
}

var cueTones = map[Cue]tone{
	CueCollect:  {from: 880, to: 1320, length: 90 * time.Millisecond, volume: 0.2},
	CuePenalty:  {from: 220, to: 150, length: 150 * time.Millisecond, volume: 0.25},
	CueEscalate: {from: 523, to: 1046, length: 220 * time.Millisecond, volume: 0.2},
	CueGameOver: {from: 440, to: 110, length: 500 * time.Millisecond, volume: 0.25},
}

// CueFor maps a session event to a cue. Events without a sound return false.
func CueFor(ev drops.Event) (Cue, bool) {
	switch ev.Kind {
	case drops.EventCollected:
		if ev.Entity.Value < 0 {
			return CuePenalty, true
		}
		return CueCollect, true
	case drops.EventEscalated:
		return CueEscalate, true
	case drops.EventEnded:
		return CueGameOver, true
	}
	return 0, false
}

// Player mixes cues into the system speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Nothing is audible until Initialize succeeds.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences all cues.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play starts a cue. It is a no-op before Initialize.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	t, ok := cueTones[c]
	if !ok {
		return
	}
	speaker.Lock()
	p.mixer.Add(newToneGenerator(sampleRate, t))
	speaker.Unlock()
}

// HandleEvent plays the cue for ev, if any.
func (p *Player) HandleEvent(ev drops.Event) {
	if c, ok := CueFor(ev); ok {
		p.Play(c)
	}
}

// toneGenerator streams a sine sweep with a linear fade-out.
type toneGenerator struct {
	sr    beep.SampleRate
	t     tone
	pos   int
	total int
	phase float64
}

func newToneGenerator(sr beep.SampleRate, t tone) *toneGenerator {
	return &toneGenerator{
		sr:    sr,
		t:     t,
		total: sr.N(t.length),
	}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.t.from + (g.t.to-g.t.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		v := g.t.volume * (1 - progress) * math.Sin(g.phase)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}

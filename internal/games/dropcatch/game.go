// Package dropcatch is the terminal front end of the Drop Catch minigame.
// Entities fall down a bordered field, mouse clicks collect them, and the
// HUD shows score, remaining time and difficulty level. The game logic
// itself lives in a drops.Session; this package only renders it and feeds
// it clicks and virtual time.
package dropcatch

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/drop-catch/internal/config"
	"github.com/vovakirdan/drop-catch/internal/core"
	"github.com/vovakirdan/drop-catch/internal/drops"
	"github.com/vovakirdan/drop-catch/internal/registry"
)

// Mode selects the game variant.
type Mode int

const (
	ModeClassic Mode = iota // Difficulty ramps up with every big drop
	ModeFixed               // Spawn cadence and obstacle chance never change
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var (
	logger    = log.New(io.Discard)
	eventHook func(drops.Event)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger sets the logger used for session events. nil discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetEventHook registers fn to receive every session event after it has
// been logged. Used for sound cues.
func SetEventHook(fn func(drops.Event)) {
	eventHook = fn
}

// Game implements registry.Game on top of a drops.Session.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.DropCatchConfig

	clock   *drops.ManualClock
	session *drops.Session
	field   *field

	tick   time.Duration // Virtual time per Step
	paused bool
}

// New creates a classic Drop Catch game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewFixed creates a Drop Catch game with escalation disabled.
func NewFixed() *Game {
	return &Game{mode: ModeFixed}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeFixed {
		return "dropcatch_fixed"
	}
	return "dropcatch"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeFixed {
		return "Drop Catch (Fixed)"
	}
	return "Drop Catch"
}

// Reset loads the tuning and creates a fresh idle session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDropCatch(configPath)
	if err != nil {
		logger.Warn("falling back to default config", "err", err)
		cfg = config.DefaultDropCatchConfig()
	}

	preset := difficultyPreset
	if g.mode == ModeFixed {
		preset = config.DifficultyFixed
	}
	config.ApplyDropCatchPreset(&cfg, preset)
	g.cfg = cfg

	g.tick = time.Duration(runtime.TickMillis() * float64(time.Millisecond))
	g.field = newField(cfg, newLayout(runtime.ScreenW, runtime.ScreenH))
	g.clock = drops.NewManualClock()

	opts := sessionOptions(cfg)
	opts.Observer = g.observe
	g.session = drops.NewSession(g.field, g.clock, drops.NewSource(runtime.Seed), opts)
	g.paused = false

	g.session.Reset()
}

// Resize adapts the layout to a new terminal size without touching the
// session. Falling entities keep their positions in layout units.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	if g.field != nil {
		g.field.layout = newLayout(w, h)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionReset) {
		g.paused = false
		g.session.Reset()
		g.field.pulseScore()
	}
	if in.Has(core.ActionStart) {
		g.start()
	}
	if in.Has(core.ActionPause) && g.session.Phase() == drops.PhaseRunning {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, p := range in.Clicks {
		g.click(p)
	}

	ms := float64(g.tick) / float64(time.Millisecond)
	g.field.advance(ms)
	g.clock.Advance(g.tick)

	return core.StepResult{State: g.State()}
}

func (g *Game) start() {
	if g.session.Phase() == drops.PhaseRunning {
		return
	}
	g.paused = false
	g.session.Start()
}

// click collects the topmost entity under p, or presses the start
// control when no round is running. Nothing is clickable while the
// window is too small to draw the field.
func (g *Game) click(p core.Point) {
	if g.field.layout.tooSmall() {
		return
	}
	if g.session.Phase() != drops.PhaseRunning {
		if g.buttonRect().ContainsPoint(p) {
			g.start()
		}
		return
	}
	if h, ok := g.field.hit(p); ok {
		g.field.collect(h)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	snap := g.session.Snapshot()
	return core.GameState{
		Score:    snap.Score,
		Running:  snap.Phase == drops.PhaseRunning,
		GameOver: snap.Phase == drops.PhaseEnded,
		Paused:   g.paused,
	}
}

// observe logs session events and forwards them to the event hook.
func (g *Game) observe(ev drops.Event) {
	switch ev.Kind {
	case drops.EventSpawned, drops.EventMissed:
		logger.Debug(ev.Kind.String(),
			"id", ev.Entity.ID,
			"kind", ev.Entity.Kind,
			"fall_ms", ev.Entity.FallDurationMs)
	case drops.EventCollected:
		logger.Debug("collected",
			"id", ev.Entity.ID,
			"kind", ev.Entity.Kind,
			"value", ev.Entity.Value,
			"score", ev.Score)
	case drops.EventEscalated:
		logger.Info("difficulty escalated",
			"level", ev.Difficulty.Level,
			"interval_ms", ev.Difficulty.SpawnIntervalMs,
			"obstacle_chance", ev.Difficulty.ObstacleChance)
	default:
		logger.Info("session "+ev.Kind.String(),
			"game", g.ID(),
			"generation", ev.Generation,
			"score", ev.Score)
	}

	if eventHook != nil {
		eventHook(ev)
	}
}

// Register the games with the registry
func init() {
	registry.Register("dropcatch", func() registry.Game {
		return New()
	})
	registry.Register("dropcatch_fixed", func() registry.Game {
		return NewFixed()
	})
}

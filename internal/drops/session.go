package drops

import (
	"cmp"
	"fmt"
	"slices"
	"time"
)

// Phase is the lifecycle stage of a session.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseEnded
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Handle identifies an entity on the renderer's side. Its meaning is
// private to the renderer; the session only stores and returns it.
type Handle uint64

// Callbacks are the one-shot notifications a renderer fires for an entity.
// Collected is for a pointer activation before the fall completes, Missed
// for a completed fall. At most one of them has any effect, at most once.
// Renderers must not invoke them from inside Render.
type Callbacks struct {
	Collected func()
	Missed    func()
}

// Renderer is the presentation collaborator driven by the session.
type Renderer interface {
	// ContainerWidth returns the field width in layout units, or 0 if unknown.
	ContainerWidth() float64
	// Render displays a new falling entity and returns its handle.
	Render(e SpawnedEntity, cb Callbacks) Handle
	// Destroy removes an entity immediately.
	Destroy(h Handle)
	// ShowDelta shows transient feedback for a point change at the entity.
	ShowDelta(h Handle, value int)
	// UpdateScoreDisplay is called once per score change.
	UpdateScoreDisplay(score int)
	// UpdateTimeDisplay is called once per countdown change.
	UpdateTimeDisplay(seconds int)
	// SessionEnded surfaces the final score when the countdown runs out.
	SessionEnded(finalScore int)
}

// SessionState is a snapshot of the session counters.
type SessionState struct {
	Phase            Phase
	Score            int
	TimeRemainingSec int
}

// EventKind classifies observer events.
type EventKind uint8

const (
	EventStarted EventKind = iota
	EventReset
	EventEnded
	EventSpawned
	EventCollected
	EventMissed
	EventEscalated
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventReset:
		return "reset"
	case EventEnded:
		return "ended"
	case EventSpawned:
		return "spawned"
	case EventCollected:
		return "collected"
	case EventMissed:
		return "missed"
	case EventEscalated:
		return "escalated"
	default:
		return "unknown"
	}
}

// Event is delivered to the optional observer after the session has
// applied the corresponding change.
type Event struct {
	Kind       EventKind
	Generation uint64
	Entity     SpawnedEntity // Spawned, Collected, Missed
	Score      int
	Difficulty DifficultyState
}

// Options configures a session.
type Options struct {
	DurationSec int
	Countdown   time.Duration
	Spawn       SpawnTable
	Difficulty  DifficultyParams
	Observer    func(Event)
}

// DefaultOptions returns the classic 30 second round.
func DefaultOptions() Options {
	return Options{
		DurationSec: 30,
		Countdown:   time.Second,
		Spawn:       DefaultSpawnTable(),
		Difficulty:  DefaultDifficultyParams(),
	}
}

type tracked struct {
	entity     SpawnedEntity
	handle     Handle
	registered bool
	consumed   bool
}

// Session is the game state machine: idle -> running -> ended.
// It owns the spawn and countdown tasks, the score ledger and the
// difficulty controller. Not safe for concurrent use; drive it from one
// goroutine together with its Scheduler.
type Session struct {
	renderer   Renderer
	sched      Scheduler
	spawner    *Spawner
	difficulty *DifficultyController
	ledger     Ledger
	opts       Options

	phase         Phase
	timeRemaining int
	generation    uint64
	nextID        uint64
	live          map[Handle]*tracked

	spawnTask     Task
	countdownTask Task
}

// NewSession creates an idle session. Nothing is sent to the renderer
// until the first Start or Reset.
func NewSession(r Renderer, sched Scheduler, src Source, opts Options) *Session {
	if opts.DurationSec <= 0 {
		opts.DurationSec = 30
	}
	if opts.Countdown <= 0 {
		opts.Countdown = time.Second
	}
	return &Session{
		renderer:      r,
		sched:         sched,
		spawner:       NewSpawner(src, opts.Spawn),
		difficulty:    NewDifficultyController(opts.Difficulty),
		opts:          opts,
		phase:         PhaseIdle,
		timeRemaining: opts.DurationSec,
		live:          make(map[Handle]*tracked),
	}
}

// Start begins a round from a clean state. It is a no-op while running.
func (s *Session) Start() {
	if s.phase == PhaseRunning {
		return
	}
	s.resetState()
	s.phase = PhaseRunning
	s.spawnTask = s.sched.Every(s.difficulty.State().SpawnInterval(), s.spawnTick)
	s.countdownTask = s.sched.Every(s.opts.Countdown, s.countdownTick)
	s.emit(Event{Kind: EventStarted})
}

// Reset stops any round and returns to idle with counters restored.
// It never starts a new round.
func (s *Session) Reset() {
	s.resetState()
	s.phase = PhaseIdle
	s.emit(Event{Kind: EventReset})
}

func (s *Session) resetState() {
	s.stopTasks()
	s.discardAll()
	s.generation++
	s.difficulty.Reset()
	s.ledger.Reset()
	s.timeRemaining = s.opts.DurationSec
	s.renderer.UpdateScoreDisplay(s.ledger.Current())
	s.renderer.UpdateTimeDisplay(s.timeRemaining)
}

func (s *Session) end() {
	s.stopTasks()
	s.discardAll()
	s.phase = PhaseEnded
	s.renderer.SessionEnded(s.ledger.Current())
	s.emit(Event{Kind: EventEnded})
}

func (s *Session) stopTasks() {
	if s.spawnTask != nil {
		s.spawnTask.Stop()
		s.spawnTask = nil
	}
	if s.countdownTask != nil {
		s.countdownTask.Stop()
		s.countdownTask = nil
	}
}

// discardAll destroys every live entity in spawn order and marks it consumed
// so its callbacks become no-ops.
func (s *Session) discardAll() {
	if len(s.live) == 0 {
		return
	}
	entries := make([]*tracked, 0, len(s.live))
	for _, tr := range s.live {
		entries = append(entries, tr)
	}
	slices.SortFunc(entries, func(a, b *tracked) int {
		return cmp.Compare(a.entity.ID, b.entity.ID)
	})
	for _, tr := range entries {
		tr.consumed = true
		s.renderer.Destroy(tr.handle)
	}
	clear(s.live)
}

func (s *Session) spawnTick() {
	if s.phase != PhaseRunning {
		return
	}

	e := s.spawner.Spawn(s.difficulty.State(), s.renderer.ContainerWidth())
	s.nextID++
	e.ID = s.nextID
	e.Generation = s.generation

	tr := &tracked{entity: e}
	h := s.renderer.Render(e, Callbacks{
		Collected: func() { s.collect(tr) },
		Missed:    func() { s.miss(tr) },
	})
	tr.handle = h
	tr.registered = true
	s.live[h] = tr

	s.emit(Event{Kind: EventSpawned, Entity: e})
}

func (s *Session) countdownTick() {
	if s.phase != PhaseRunning {
		return
	}
	s.timeRemaining--
	s.renderer.UpdateTimeDisplay(s.timeRemaining)
	if s.timeRemaining <= 0 {
		s.end()
	}
}

// accepts reports whether a callback for tr may still change state.
func (s *Session) accepts(tr *tracked) bool {
	return tr.registered &&
		!tr.consumed &&
		tr.entity.Generation == s.generation &&
		s.phase == PhaseRunning
}

func (s *Session) collect(tr *tracked) {
	if !s.accepts(tr) {
		return
	}
	tr.consumed = true
	delete(s.live, tr.handle)

	e := tr.entity
	s.ledger.Add(e.Value)
	s.renderer.UpdateScoreDisplay(s.ledger.Current())
	s.renderer.ShowDelta(tr.handle, e.Value)

	if e.Kind == KindBig && s.difficulty.Escalates() {
		s.difficulty.OnBigDropCollected()
		s.restartSpawner()
		s.emit(Event{Kind: EventEscalated, Entity: e})
	}

	s.renderer.Destroy(tr.handle)
	s.emit(Event{Kind: EventCollected, Entity: e})
}

func (s *Session) miss(tr *tracked) {
	if !s.accepts(tr) {
		return
	}
	tr.consumed = true
	delete(s.live, tr.handle)
	s.renderer.Destroy(tr.handle)
	s.emit(Event{Kind: EventMissed, Entity: tr.entity})
}

// restartSpawner replaces the spawn task at the current cadence.
func (s *Session) restartSpawner() {
	if s.spawnTask == nil {
		return
	}
	s.spawnTask.Stop()
	s.spawnTask = s.sched.Every(s.difficulty.State().SpawnInterval(), s.spawnTick)
}

func (s *Session) emit(ev Event) {
	if s.opts.Observer == nil {
		return
	}
	ev.Generation = s.generation
	ev.Score = s.ledger.Current()
	ev.Difficulty = s.difficulty.State()
	s.opts.Observer(ev)
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Snapshot returns phase, score and remaining time.
func (s *Session) Snapshot() SessionState {
	return SessionState{
		Phase:            s.phase,
		Score:            s.ledger.Current(),
		TimeRemainingSec: s.timeRemaining,
	}
}

// Difficulty returns the current tuning.
func (s *Session) Difficulty() DifficultyState {
	return s.difficulty.State()
}

// LiveCount returns the number of entities still falling.
func (s *Session) LiveCount() int {
	return len(s.live)
}

// Generation returns the reset counter. Entities stamped with an older
// generation are stale.
func (s *Session) Generation() uint64 {
	return s.generation
}

// StatusLabel is the text of the start control for the current phase.
func (s *Session) StatusLabel() string {
	switch s.phase {
	case PhaseRunning:
		return "Playing..."
	case PhaseEnded:
		return fmt.Sprintf("Play Again (Score: %d)", s.ledger.Current())
	default:
		return "Start Game"
	}
}

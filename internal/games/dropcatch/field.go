package dropcatch

import (
	"fmt"
	"math"
	"slices"

	"github.com/vovakirdan/drop-catch/internal/config"
	"github.com/vovakirdan/drop-catch/internal/core"
	"github.com/vovakirdan/drop-catch/internal/drops"
)

// Minimum terminal size for a playable field.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// layout splits the screen into HUD, field and control rows.
//
//	row 0        HUD (score, time, level)
//	rows 1..h-3  bordered field
//	row h-2      start control
//	row h-1      key hints
type layout struct {
	screenW, screenH int
	box              core.Rect // Field border
	field            core.Rect // Cells where entities fall
}

func newLayout(w, h int) layout {
	box := core.NewRect(0, 1, w, h-3)
	return layout{
		screenW: w,
		screenH: h,
		box:     box,
		field:   box.Inset(1),
	}
}

func (l layout) tooSmall() bool {
	return l.screenW < MinScreenW || l.screenH < MinScreenH
}

// sprite is the on-screen state of one falling entity.
type sprite struct {
	handle  drops.Handle
	entity  drops.SpawnedEntity
	cb      drops.Callbacks
	elapsed float64 // Milliseconds since Render
}

// floatText is a rising "+N" / "-N" label left behind by a collection.
type floatText struct {
	x, y      int
	text      string
	color     core.Color
	remaining float64
}

// field implements drops.Renderer in terminal cells.
type field struct {
	layout       layout
	unitsPerCell float64
	fallbackW    float64
	floatMs      float64
	pulseMs      float64

	next    drops.Handle
	sprites map[drops.Handle]*sprite
	floats  []floatText

	score    int
	timeLeft int
	pulse    float64 // Remaining score highlight in milliseconds
	final    int
}

func newField(cfg config.DropCatchConfig, l layout) *field {
	upc := cfg.Layout.UnitsPerCell
	if upc <= 0 {
		upc = 1
	}
	return &field{
		layout:       l,
		unitsPerCell: upc,
		fallbackW:    cfg.Layout.ContainerWidth,
		floatMs:      float64(cfg.Feedback.FloatTextMs),
		pulseMs:      float64(cfg.Feedback.ScorePulseMs),
		sprites:      make(map[drops.Handle]*sprite),
		timeLeft:     cfg.Session.DurationSec,
	}
}

// ContainerWidth returns the field width in layout units.
func (f *field) ContainerWidth() float64 {
	if f.layout.field.W <= 0 {
		return f.fallbackW
	}
	return float64(f.layout.field.W) * f.unitsPerCell
}

// Render registers a new falling entity.
func (f *field) Render(e drops.SpawnedEntity, cb drops.Callbacks) drops.Handle {
	f.next++
	f.sprites[f.next] = &sprite{handle: f.next, entity: e, cb: cb}
	return f.next
}

// Destroy removes an entity immediately.
func (f *field) Destroy(h drops.Handle) {
	delete(f.sprites, h)
}

// ShowDelta leaves a floating value label where the entity was.
func (f *field) ShowDelta(h drops.Handle, value int) {
	s, ok := f.sprites[h]
	if !ok {
		return
	}
	r := f.rect(s)
	text := fmt.Sprintf("%+d", value)
	color := core.ColorBrightGreen
	if value < 0 {
		color = core.ColorBrightRed
	}
	f.floats = append(f.floats, floatText{
		x:         r.X + (r.W-len(text))/2,
		y:         r.Y,
		text:      text,
		color:     color,
		remaining: f.floatMs,
	})
}

// UpdateScoreDisplay stores the score and pulses the HUD when it changes.
func (f *field) UpdateScoreDisplay(score int) {
	if score != f.score {
		f.pulseScore()
	}
	f.score = score
}

// pulseScore highlights the score in the HUD.
func (f *field) pulseScore() {
	f.pulse = f.pulseMs
}

// UpdateTimeDisplay stores the remaining seconds.
func (f *field) UpdateTimeDisplay(seconds int) {
	f.timeLeft = seconds
}

// SessionEnded stores the final score for the end-of-round overlay.
func (f *field) SessionEnded(finalScore int) {
	f.final = finalScore
	f.pulseScore()
}

// advance moves time forward for falls and feedback. Entities whose fall
// has completed report a miss, oldest first.
func (f *field) advance(dt float64) {
	f.pulse = max(0, f.pulse-dt)

	kept := f.floats[:0]
	for _, ft := range f.floats {
		ft.remaining -= dt
		if ft.remaining > 0 {
			kept = append(kept, ft)
		}
	}
	f.floats = kept

	var landed []drops.Handle
	for h, s := range f.sprites {
		s.elapsed += dt
		if s.elapsed >= s.entity.FallDurationMs {
			landed = append(landed, h)
		}
	}
	slices.Sort(landed)
	for _, h := range landed {
		s, ok := f.sprites[h]
		if !ok {
			continue
		}
		s.cb.Missed()
		// A rejected miss still ends the fall.
		delete(f.sprites, h)
	}
}

// hit returns the topmost entity under p. Newer entities are drawn above
// older ones.
func (f *field) hit(p core.Point) (drops.Handle, bool) {
	var best drops.Handle
	found := false
	for h, s := range f.sprites {
		if !f.rect(s).ContainsPoint(p) {
			continue
		}
		if !found || h > best {
			best, found = h, true
		}
	}
	return best, found
}

// collect fires the collection callback of h.
func (f *field) collect(h drops.Handle) {
	s, ok := f.sprites[h]
	if !ok {
		return
	}
	s.cb.Collected()
}

// handles returns live handles in draw order.
func (f *field) handles() []drops.Handle {
	hs := make([]drops.Handle, 0, len(f.sprites))
	for h := range f.sprites {
		hs = append(hs, h)
	}
	slices.Sort(hs)
	return hs
}

// cells converts a width in layout units to terminal columns.
func (f *field) cells(units float64) int {
	w := int(math.Round(units / f.unitsPerCell))
	return core.Clamp(w, 1, max(1, f.layout.field.W))
}

// rect returns the screen rectangle currently covered by s.
func (f *field) rect(s *sprite) core.Rect {
	fr := f.layout.field
	w := f.cells(s.entity.Width)

	col := int(s.entity.X / f.unitsPerCell)
	col = core.Clamp(col, 0, max(0, fr.W-w))

	progress := 1.0
	if s.entity.FallDurationMs > 0 {
		progress = core.ClampF(s.elapsed/s.entity.FallDurationMs, 0, 1)
	}
	row := int(progress * float64(max(0, fr.H-1)))

	return core.NewRect(fr.X+col, fr.Y+row, w, 1)
}

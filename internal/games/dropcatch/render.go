package dropcatch

import (
	"fmt"

	"github.com/vovakirdan/drop-catch/internal/core"
	"github.com/vovakirdan/drop-catch/internal/drops"
)

// spriteStyle describes how one entity kind is drawn: bracket ends, a
// filler, a centre glyph and a color.
type spriteStyle struct {
	open, close, fill, mid rune
	color                  core.Color
}

var spriteStyles = map[drops.Kind]spriteStyle{
	drops.KindGood:     {'(', ')', ' ', 'o', core.ColorBrightCyan},
	drops.KindBad:      {'(', ')', ' ', 'x', core.ColorYellow},
	drops.KindBig:      {'(', ')', '~', 'O', core.ColorBrightBlue},
	drops.KindObstacle: {'[', ']', '#', '#', core.ColorRed},
}

// spriteText renders a kind at the given width in cells.
func spriteText(k drops.Kind, w int) string {
	st := spriteStyles[k]
	if w <= 1 {
		return string(st.mid)
	}
	runes := make([]rune, w)
	for i := range runes {
		runes[i] = st.fill
	}
	runes[0] = st.open
	runes[w-1] = st.close
	if w >= 3 {
		runes[w/2] = st.mid
	}
	return string(runes)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.field == nil {
		return
	}

	l := g.field.layout
	if l.tooSmall() {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(l.box, core.ColorBlue)
	g.renderSprites(dst)
	g.renderFloats(dst)
	g.renderButton(dst)
	dst.DrawTextColored(1, l.screenH-1, "Enter start  R reset  P pause  Q quit  click drops", core.ColorGray)
	g.renderOverlay(dst)
}

// renderHUD draws score, remaining time and difficulty level.
func (g *Game) renderHUD(dst *core.Screen) {
	f := g.field

	scoreColor := core.ColorWhite
	if f.pulse > 0 {
		scoreColor = core.ColorBrightGreen
		if f.score < 0 {
			scoreColor = core.ColorBrightRed
		}
	}
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", f.score), scoreColor)

	timeColor := core.ColorWhite
	if f.timeLeft <= 5 && g.session.Phase() == drops.PhaseRunning {
		timeColor = core.ColorBrightRed
	}
	timeText := fmt.Sprintf("Time: %ds", f.timeLeft)
	dst.DrawTextColored((dst.Width()-len(timeText))/2, 0, timeText, timeColor)

	levelText := fmt.Sprintf("Level: %d", g.session.Difficulty().Level)
	if g.mode == ModeFixed || !g.cfg.Difficulty.Enabled {
		levelText = "Fixed"
	}
	dst.DrawTextColored(dst.Width()-len(levelText)-1, 0, levelText, core.ColorCyan)
}

// renderSprites draws falling entities, oldest first.
func (g *Game) renderSprites(dst *core.Screen) {
	f := g.field
	for _, h := range f.handles() {
		s := f.sprites[h]
		r := f.rect(s)
		st := spriteStyles[s.entity.Kind]
		dst.DrawTextColored(r.X, r.Y, spriteText(s.entity.Kind, r.W), st.color)
	}
}

// renderFloats draws delta labels, rising two rows over their lifetime.
func (g *Game) renderFloats(dst *core.Screen) {
	f := g.field
	fr := f.layout.field
	for _, ft := range f.floats {
		rise := 0
		if f.floatMs > 0 {
			rise = int(2 * (1 - ft.remaining/f.floatMs))
		}
		y := ft.y - rise
		if y < fr.Y {
			y = fr.Y
		}
		x := core.Clamp(ft.x, fr.X, max(fr.X, fr.Right()-len(ft.text)))
		dst.DrawTextColored(x, y, ft.text, ft.color)
	}
}

// buttonText returns the start control as drawn.
func (g *Game) buttonText() string {
	return "[ " + g.session.StatusLabel() + " ]"
}

// buttonRect returns the clickable area of the start control.
func (g *Game) buttonRect() core.Rect {
	text := g.buttonText()
	l := g.field.layout
	return core.NewRect((l.screenW-len(text))/2, l.screenH-2, len(text), 1)
}

func (g *Game) renderButton(dst *core.Screen) {
	r := g.buttonRect()
	color := core.ColorBrightGreen
	if g.session.Phase() == drops.PhaseRunning {
		color = core.ColorGray
	}
	dst.DrawTextColored(r.X, r.Y, g.buttonText(), color)
}

// renderOverlay draws the idle legend, pause box and end-of-round box.
func (g *Game) renderOverlay(dst *core.Screen) {
	if g.paused {
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
		return
	}

	switch g.session.Phase() {
	case drops.PhaseIdle:
		g.renderLegend(dst)
	case drops.PhaseEnded:
		subtitle := fmt.Sprintf("Final score: %d  |  Press ENTER to play again", g.field.final)
		g.drawCenteredBox(dst, "TIME'S UP", subtitle)
	}
}

// renderLegend explains the entity kinds before the first round.
func (g *Game) renderLegend(dst *core.Screen) {
	fr := g.field.layout.field
	sp := g.cfg.Spawn

	lines := []struct {
		kind  drops.Kind
		width int
		value int
	}{
		{drops.KindGood, 3, sp.Good.Value},
		{drops.KindBad, 3, sp.Bad.Value},
		{drops.KindBig, 5, sp.Big.Value},
		{drops.KindObstacle, 3, sp.Obstacle.Value},
	}

	y := fr.Y + fr.H/2 - len(lines)/2 - 1
	dst.DrawTextCentered(y-1, "Catch the falling drops!")
	for i, ln := range lines {
		text := fmt.Sprintf("%-5s %-14s %+d", spriteText(ln.kind, ln.width), ln.kind.Label(), ln.value)
		dst.DrawTextColored((dst.Width()-len(text))/2, y+1+i, text, spriteStyles[ln.kind].color)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(core.Max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r, core.ColorWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+max(0, (boxW-len(subtitle))/2), boxY+3, subtitle)
}

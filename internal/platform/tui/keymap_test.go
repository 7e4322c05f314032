package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/drop-catch/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{"space starts", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionStart, false},
		{"r resets", runeKey('r'), core.ActionReset, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"b goes back", runeKey('b'), core.ActionBack, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"other keys ignored", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	press := tea.MouseMsg{X: 7, Y: 4, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	if !km.MapMouseToFrame(press, &frame) {
		t.Fatal("left press not mapped")
	}

	ignored := []tea.MouseMsg{
		{X: 1, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease},
		{X: 1, Y: 1, Button: tea.MouseButtonRight, Action: tea.MouseActionPress},
		{X: 1, Y: 1, Button: tea.MouseButtonNone, Action: tea.MouseActionMotion},
	}
	for _, msg := range ignored {
		if km.MapMouseToFrame(msg, &frame) {
			t.Errorf("mapped %+v as a click", msg)
		}
	}

	if len(frame.Clicks) != 1 || frame.Clicks[0] != (core.Point{X: 7, Y: 4}) {
		t.Errorf("Clicks = %v, expected [{7 4}]", frame.Clicks)
	}
}

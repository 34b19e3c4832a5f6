package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/match-cards/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"vim down", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, core.ActionDown, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"vim right", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")}, core.ActionRight, false},
		{"space picks", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionPick, false},
		{"enter picks", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPick, false},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit, true},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyDown}, &frame) {
		t.Error("down must not quit")
	}
	if !frame.Has(core.ActionDown) {
		t.Error("down not set on frame")
	}
	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEsc}, &frame) {
		t.Error("esc must quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not be queued as game input")
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.MouseMsg
		ok   bool
	}{
		{"left press", tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true},
		{"left release", tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, false},
		{"right press", tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, false},
		{"motion", tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			ok := km.MapMouseToFrame(tt.msg, &frame)
			if ok != tt.ok {
				t.Fatalf("MapMouseToFrame() = %v, want %v", ok, tt.ok)
			}
			if ok && (len(frame.Clicks) != 1 || frame.Clicks[0] != (core.Point{X: 12, Y: 7})) {
				t.Errorf("Clicks = %v", frame.Clicks)
			}
			if !ok && len(frame.Clicks) != 0 {
				t.Errorf("unexpected clicks %v", frame.Clicks)
			}
		})
	}
}

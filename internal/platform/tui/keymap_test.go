package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/geometry-fighter/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		action   core.Action
		wantQuit bool
	}{
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"space taps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionTap, false},
		{"enter taps", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionTap, false},
		{"f toggles stats", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}}, core.ActionStats, false},
		{"x does nothing", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.wantQuit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.action, tc.wantQuit)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	press := tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if p, ok := km.MapMouse(press); !ok || p != (core.Point{X: 12, Y: 7}) {
		t.Errorf("MapMouse(left press) = %+v, %v", p, ok)
	}

	release := tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if _, ok := km.MapMouse(release); ok {
		t.Error("a release is not a tap")
	}

	right := tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if _, ok := km.MapMouse(right); ok {
		t.Error("right clicks are not taps")
	}
}

func TestMapKeyToFrameTapsAtCursor(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	cursor := core.Point{X: 3, Y: 9}

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, cursor, &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}}, cursor, &frame)

	if len(frame.Taps) != 1 || frame.Taps[0] != cursor {
		t.Errorf("Taps = %v, expected one tap at %+v", frame.Taps, cursor)
	}
	if !frame.Has(core.ActionStats) {
		t.Error("expected the stats action")
	}
}

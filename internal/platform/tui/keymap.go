package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/geometry-fighter/internal/core"
)

// KeyMapper translates Bubble Tea input messages to game actions.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	case " ", "enter":
		return core.ActionTap, false
	case "f":
		return core.ActionStats, false
	}
	return core.ActionNone, false
}

// MapMouse reports the cell a left click landed on.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.Point, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.Point{}, false
	}
	return core.Point{X: msg.X, Y: msg.Y}, true
}

// MapKeyToFrame updates an input frame based on a key message.
// Keyboard taps land on the last known cursor cell.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, cursor core.Point, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionTap:
		frame.Tap(cursor)
	default:
		frame.Set(action)
	}
	return isQuit
}

package core

// Action represents a semantic platform action, abstracted from key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionTap          // Space, Enter - tap at the cursor
	ActionStats        // F - toggle the statistics line
	ActionQuit         // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTap:
		return "Tap"
	case ActionStats:
		return "Stats"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input received between two frame ticks.
// Taps are kept in arrival order and applied before the next tick runs.
type InputFrame struct {
	Actions map[Action]bool
	Taps    []Point
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Tap queues a tap at the given screen cell.
func (f *InputFrame) Tap(p Point) {
	f.Taps = append(f.Taps, p)
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Taps = f.Taps[:0]
}

package game

// Mode is the top-level phase of a session.
type Mode int

const (
	ModeTapToPlay Mode = iota // Title splash, waiting for the start tap
	ModePlaying               // Shapes spawn and taps are resolved
	ModeGameOver              // Game over splash, taps ignored
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeTapToPlay:
		return "TapToPlay"
	case ModePlaying:
		return "Playing"
	case ModeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is an input to the mode machine.
type Event int

const (
	EventTap          Event = iota // Player tapped anywhere
	EventLastLifeLost              // A hazard took the last life
	EventDelayElapsed              // The game over delay ran out
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventTap:
		return "Tap"
	case EventLastLifeLost:
		return "LastLifeLost"
	case EventDelayElapsed:
		return "DelayElapsed"
	default:
		return "Unknown"
	}
}

// Next returns the mode reached from m on event e.
// Every pair is defined; pairs that do not apply leave the mode unchanged.
func (m Mode) Next(e Event) Mode {
	switch m {
	case ModeTapToPlay:
		if e == EventTap {
			return ModePlaying
		}
	case ModePlaying:
		if e == EventLastLifeLost {
			return ModeGameOver
		}
	case ModeGameOver:
		if e == EventDelayElapsed {
			return ModeTapToPlay
		}
	}
	return m
}

// State holds the scoring and mode of a session.
type State struct {
	Score int
	Lives int
	Best  int
	Mode  Mode

	// ResetAt is when GameOver returns to TapToPlay. Only meaningful in
	// ModeGameOver.
	ResetAt float64
}

// NewState returns the initial title-screen state.
func NewState(best int) State {
	if best < 0 {
		best = 0
	}
	return State{Mode: ModeTapToPlay, Best: best}
}

// Start begins a round. Returns false if the current mode does not accept
// a start tap.
func (s *State) Start(lives int) bool {
	next := s.Mode.Next(EventTap)
	if s.Mode != ModeTapToPlay || next != ModePlaying {
		return false
	}
	s.Mode = next
	s.Score = 0
	s.Lives = lives
	s.ResetAt = 0
	return true
}

// AddPoint credits one point.
func (s *State) AddPoint() {
	s.Score++
}

// LoseLife takes one life and reports whether none are left.
func (s *State) LoseLife() bool {
	s.Lives--
	return s.Lives <= 0
}

// End moves Playing to GameOver, folds the round into Best and schedules
// the return to the title. Returns false if not playing.
func (s *State) End(now, delay float64) bool {
	if s.Mode != ModePlaying {
		return false
	}
	s.Mode = s.Mode.Next(EventLastLifeLost)
	s.Best = max(s.Best, s.Score)
	s.ResetAt = now + delay
	return true
}

// DelayElapsed reports whether the game over delay has run out at now.
func (s State) DelayElapsed(now float64) bool {
	return s.Mode == ModeGameOver && now >= s.ResetAt
}

// ReturnToTitle moves GameOver to TapToPlay.
func (s *State) ReturnToTitle() {
	s.Mode = s.Mode.Next(EventDelayElapsed)
	s.ResetAt = 0
}

// HUD projects the state for display.
func (s State) HUD() HUD {
	return HUD{Score: s.Score, Lives: max(s.Lives, 0), Best: s.Best}
}

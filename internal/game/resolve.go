package game

import "github.com/vovakirdan/geometry-fighter/internal/core"

// Outcome classifies what a tap did.
type Outcome int

const (
	OutcomeNone  Outcome = iota // Missed, hit a fixture, or tap ignored
	OutcomeStart                // Started a round from the title
	OutcomeGood                 // Collected a good shape
	OutcomeBad                  // Hit a hazard
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeStart:
		return "Start"
	case OutcomeGood:
		return "Good"
	case OutcomeBad:
		return "Bad"
	default:
		return "Unknown"
	}
}

// Effect reports the result of a tap.
type Effect struct {
	Outcome  Outcome
	Object   GameObject // The resolved shape, for Good and Bad
	Position core.Vec3  // Last known position of the resolved shape
	GameOver bool       // The tap ended the round
}

// ResolveTap applies a hit-test result while playing. At most one object is
// resolved. Misses, unknown or already removed ids, HUD and splash entries
// have no effect.
func (s *Session) ResolveTap(hit ObjectID, ok bool) Effect {
	if !ok || s.state.Mode != ModePlaying {
		return Effect{}
	}

	obj, found := s.objects[hit]
	if !found || !obj.Alive || !obj.Tag.Spawned() {
		return Effect{}
	}

	effect := Effect{Object: *obj}

	switch obj.Tag {
	case TagGood:
		s.state.AddPoint()
		s.audio.Play(SoundExplodeGood)
		effect.Outcome = OutcomeGood
	case TagBad:
		out := s.state.LoseLife()
		s.audio.Play(SoundExplodeBad)
		s.presenter.ShakeCamera()
		effect.Outcome = OutcomeBad
		effect.GameOver = out
	}

	pos, _ := s.physics.Position(hit)
	rot, _ := s.physics.Rotation(hit)
	effect.Position = pos
	s.presenter.Explode(Explosion{
		Kind:     obj.Kind,
		Color:    obj.Color,
		Position: pos,
		Rotation: rot,
	})
	s.remove(hit)

	s.logger.Debug("tap resolved",
		"id", hit,
		"tag", obj.Tag,
		"score", s.state.Score,
		"lives", s.state.Lives,
	)

	if effect.GameOver {
		s.endRound()
	}
	return effect
}

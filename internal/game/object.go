// Package game implements the Geometry Fighter core: spawning launched
// shapes, resolving taps against them, sweeping shapes that fell out of the
// world and driving the TapToPlay/Playing/GameOver mode machine.
//
// The package owns no physics, rendering, audio or storage. It talks to
// those through the interfaces in ports.go.
package game

import (
	"github.com/vovakirdan/geometry-fighter/internal/core"
	"github.com/vovakirdan/geometry-fighter/internal/shape"
)

// ObjectID identifies an entry in the session's scene set.
type ObjectID uint64

// Tag is the role of a scene entry, fixed when the entry is created.
type Tag int

const (
	TagGood   Tag = iota // Tapping scores a point
	TagBad               // Tapping costs a life
	TagHUD               // Score line, ignored by taps
	TagSplash            // Title/game over overlay, ignored by taps
)

// String returns a human-readable name for the tag.
func (t Tag) String() string {
	switch t {
	case TagGood:
		return "Good"
	case TagBad:
		return "Bad"
	case TagHUD:
		return "HUD"
	case TagSplash:
		return "Splash"
	default:
		return "Unknown"
	}
}

// Spawned reports whether entries with this tag are launched shapes.
func (t Tag) Spawned() bool {
	return t == TagGood || t == TagBad
}

// TagForColor classifies a shape by its material color.
// Black is the hazard sentinel; every other color is collectible.
func TagForColor(c core.Color) Tag {
	if c == core.ColorBlack {
		return TagBad
	}
	return TagGood
}

// GameObject describes one entry in the scene set.
// Position and rotation live in the physics world and are read on demand.
type GameObject struct {
	ID        ObjectID
	Kind      shape.Kind
	Color     core.Color
	Tag       Tag
	Impulse   core.Vec3 // Launch impulse applied once at spawn
	ImpulseAt core.Vec3 // Local point the impulse was applied at
	Alive     bool
}

// Package shape enumerates the geometry kinds that can be spawned.
package shape

import "math/rand"

// Kind identifies one of the spawnable geometries.
type Kind int

const (
	Box Kind = iota
	Sphere
	Pyramid
	Torus
	Capsule
	Cylinder
	Cone
	Tube

	// Count is the number of kinds.
	Count = int(Tube) + 1
)

// All returns every kind in declaration order.
func All() []Kind {
	kinds := make([]Kind, Count)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Random returns a kind drawn uniformly from the catalog.
func Random(rng *rand.Rand) Kind {
	return Kind(rng.Intn(Count))
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k >= Box && k <= Tube
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Box:
		return "box"
	case Sphere:
		return "sphere"
	case Pyramid:
		return "pyramid"
	case Torus:
		return "torus"
	case Capsule:
		return "capsule"
	case Cylinder:
		return "cylinder"
	case Cone:
		return "cone"
	case Tube:
		return "tube"
	default:
		return "unknown"
	}
}

// Size holds the bounding dimensions of a kind in world units.
type Size struct {
	Width  float64
	Height float64
}

// Dimensions returns the bounding size of the kind's geometry.
func (k Kind) Dimensions() Size {
	switch k {
	case Box, Pyramid:
		return Size{Width: 1.0, Height: 1.0}
	case Sphere:
		return Size{Width: 1.0, Height: 1.0}
	case Torus:
		// ring 0.5 + pipe 0.25 on each side
		return Size{Width: 1.5, Height: 0.5}
	case Capsule:
		return Size{Width: 0.6, Height: 2.5}
	case Cylinder:
		return Size{Width: 0.6, Height: 2.5}
	case Cone, Tube:
		return Size{Width: 1.0, Height: 1.0}
	default:
		return Size{Width: 1.0, Height: 1.0}
	}
}

// Round reports whether the kind is best approximated by a circle.
func (k Kind) Round() bool {
	return k == Sphere || k == Torus || k == Tube
}

// Glyph returns the character used to draw the kind in the terminal.
func (k Kind) Glyph() rune {
	switch k {
	case Box:
		return '■'
	case Sphere:
		return '●'
	case Pyramid:
		return '▲'
	case Torus:
		return '◎'
	case Capsule:
		return '▮'
	case Cylinder:
		return '▯'
	case Cone:
		return '◭'
	case Tube:
		return '○'
	default:
		return '?'
	}
}

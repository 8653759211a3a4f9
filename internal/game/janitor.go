package game

import (
	"slices"

	"github.com/vovakirdan/geometry-fighter/internal/core"
)

// PositionFunc reports where the simulation currently has an object.
type PositionFunc func(id ObjectID) (core.Vec3, bool)

// Sweep returns the ids of every live shape whose height is below
// threshold, in ascending id order. HUD and splash entries are never swept,
// and neither are shapes the simulation has no position for.
func Sweep(objects map[ObjectID]*GameObject, position PositionFunc, threshold float64) []ObjectID {
	var fallen []ObjectID
	for id, obj := range objects {
		if !obj.Alive || !obj.Tag.Spawned() {
			continue
		}
		pos, ok := position(id)
		if !ok {
			continue
		}
		if pos.Y < threshold {
			fallen = append(fallen, id)
		}
	}
	slices.Sort(fallen)
	return fallen
}

// Package physics simulates falling shapes with a Chipmunk2D space.
// The game plays in the XY plane; Z is always zero.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/geometry-fighter/internal/config"
	"github.com/vovakirdan/geometry-fighter/internal/core"
	"github.com/vovakirdan/geometry-fighter/internal/game"
	"github.com/vovakirdan/geometry-fighter/internal/shape"
)

// Shapes never collide with each other, only with tap queries.
const shapeGroup uint = 1

type entry struct {
	body  *cp.Body
	shape *cp.Shape
}

// World owns the cp space and maps object ids to bodies.
type World struct {
	space   *cp.Space
	mass    float64
	entries map[game.ObjectID]entry
}

// NewWorld creates an empty space with the configured gravity.
func NewWorld(cfg config.WorldConfig) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})

	mass := cfg.BodyMass
	if mass <= 0 {
		mass = 1
	}

	return &World{
		space:   space,
		mass:    mass,
		entries: make(map[game.ObjectID]entry),
	}
}

// AddBody creates a dynamic body sized after the shape kind.
// Adding an id twice replaces the previous body.
func (w *World) AddBody(id game.ObjectID, kind shape.Kind, pos core.Vec3) {
	w.RemoveBody(id)

	size := kind.Dimensions()
	var body *cp.Body
	var collider *cp.Shape
	if kind.Round() {
		r := size.Width / 2
		body = cp.NewBody(w.mass, cp.MomentForCircle(w.mass, 0, r, cp.Vector{}))
		collider = cp.NewCircle(body, r, cp.Vector{})
	} else {
		body = cp.NewBody(w.mass, cp.MomentForBox(w.mass, size.Width, size.Height))
		collider = cp.NewBox(body, size.Width, size.Height, 0)
	}
	collider.SetFilter(cp.NewShapeFilter(shapeGroup, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES))

	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	body.UserData = id

	w.space.AddBody(body)
	w.space.AddShape(collider)
	w.entries[id] = entry{body: body, shape: collider}
}

// ApplyImpulse pushes a body at a point in its local frame.
func (w *World) ApplyImpulse(id game.ObjectID, impulse, at core.Vec3) {
	e, ok := w.entries[id]
	if !ok {
		return
	}
	e.body.ApplyImpulseAtLocalPoint(cp.Vector{X: impulse.X, Y: impulse.Y}, cp.Vector{X: at.X, Y: at.Y})
}

// Position returns the body's center of gravity.
func (w *World) Position(id game.ObjectID) (core.Vec3, bool) {
	e, ok := w.entries[id]
	if !ok {
		return core.Vec3{}, false
	}
	p := e.body.Position()
	return core.Vec3{X: p.X, Y: p.Y}, true
}

// Rotation returns the body's spin around the view axis.
func (w *World) Rotation(id game.ObjectID) (core.Rotation, bool) {
	e, ok := w.entries[id]
	if !ok {
		return core.Rotation{}, false
	}
	return core.Rotation{Axis: core.Vec3{Z: 1}, Angle: e.body.Angle()}, true
}

// RemoveBody drops a body and its collider. Unknown ids are ignored.
func (w *World) RemoveBody(id game.ObjectID) {
	e, ok := w.entries[id]
	if !ok {
		return
	}
	w.space.RemoveShape(e.shape)
	w.space.RemoveBody(e.body)
	delete(w.entries, id)
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	if dt <= 0 || math.IsNaN(dt) {
		return
	}
	w.space.Step(dt)
}

// Pick returns the body whose collider is nearest to p within reach.
func (w *World) Pick(p core.Vec3, reach float64) (game.ObjectID, bool) {
	if len(w.entries) == 0 {
		return 0, false
	}
	info := w.space.PointQueryNearest(cp.Vector{X: p.X, Y: p.Y}, reach, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return 0, false
	}
	id, ok := info.Shape.Body().UserData.(game.ObjectID)
	if !ok {
		return 0, false
	}
	if _, live := w.entries[id]; !live {
		return 0, false
	}
	return id, true
}

// Len returns the number of live bodies.
func (w *World) Len() int {
	return len(w.entries)
}

package tui

import (
	"github.com/vovakirdan/geometry-fighter/internal/core"
	"github.com/vovakirdan/geometry-fighter/internal/game"
)

// Picker finds the simulated body nearest a world point.
type Picker interface {
	Pick(p core.Vec3, reach float64) (game.ObjectID, bool)
}

// HitTester resolves taps against the overlay first, then the world.
type HitTester struct {
	scene    *Scene
	view     *Viewport
	world    Picker
	reach    float64
	hudID    game.ObjectID
	splashID game.ObjectID
}

// NewHitTester creates a hit tester. reach is the extra world distance a
// tap may miss a shape by.
func NewHitTester(scene *Scene, view *Viewport, world Picker, reach float64) *HitTester {
	return &HitTester{scene: scene, view: view, world: world, reach: reach}
}

// SetFixtures registers the ids reported for overlay hits.
func (h *HitTester) SetFixtures(hud, splash game.ObjectID) {
	h.hudID = hud
	h.splashID = splash
}

// HitTest returns the entry under the tapped cell.
func (h *HitTester) HitTest(p core.Point) (game.ObjectID, bool) {
	if h.scene.Splash() != game.SplashNone && splashRect(h.view.Cols, h.view.Rows).Contains(p) {
		return h.splashID, h.splashID != 0
	}
	if hudRect(h.view.Cols).Contains(p) {
		return h.hudID, h.hudID != 0
	}
	// A cell is much taller than it is wide, so allow half a row of slack.
	reach := h.reach + h.view.CellHeight()/2
	return h.world.Pick(h.view.ToWorld(p), reach)
}

package game

import (
	"errors"
	"testing"

	"github.com/vovakirdan/geometry-fighter/internal/config"
	"github.com/vovakirdan/geometry-fighter/internal/core"
	"github.com/vovakirdan/geometry-fighter/internal/shape"
)

type impulseCall struct {
	id      ObjectID
	impulse core.Vec3
	at      core.Vec3
}

// fakePhysics keeps bodies where tests put them.
type fakePhysics struct {
	positions map[ObjectID]core.Vec3
	kinds     map[ObjectID]shape.Kind
	impulses  []impulseCall
	removed   []ObjectID
}

func newFakePhysics() *fakePhysics {
	return &fakePhysics{
		positions: make(map[ObjectID]core.Vec3),
		kinds:     make(map[ObjectID]shape.Kind),
	}
}

func (p *fakePhysics) AddBody(id ObjectID, kind shape.Kind, pos core.Vec3) {
	p.positions[id] = pos
	p.kinds[id] = kind
}

func (p *fakePhysics) ApplyImpulse(id ObjectID, impulse, at core.Vec3) {
	p.impulses = append(p.impulses, impulseCall{id: id, impulse: impulse, at: at})
}

func (p *fakePhysics) Position(id ObjectID) (core.Vec3, bool) {
	pos, ok := p.positions[id]
	return pos, ok
}

func (p *fakePhysics) Rotation(id ObjectID) (core.Rotation, bool) {
	if _, ok := p.positions[id]; !ok {
		return core.Rotation{}, false
	}
	return core.Rotation{Axis: core.Vec3{Z: 1}, Angle: 0.5}, true
}

func (p *fakePhysics) RemoveBody(id ObjectID) {
	if _, ok := p.positions[id]; !ok {
		return
	}
	delete(p.positions, id)
	delete(p.kinds, id)
	p.removed = append(p.removed, id)
}

// fakeHits returns whatever the test aimed at.
type fakeHits struct {
	target ObjectID
	ok     bool
	calls  int
}

func (h *fakeHits) HitTest(core.Point) (ObjectID, bool) {
	h.calls++
	return h.target, h.ok
}

func (h *fakeHits) aim(id ObjectID) {
	h.target, h.ok = id, true
}

func (h *fakeHits) miss() {
	h.target, h.ok = 0, false
}

type recordingAudio struct {
	played []Sound
}

func (a *recordingAudio) Play(s Sound) {
	a.played = append(a.played, s)
}

func (a *recordingAudio) count(s Sound) int {
	n := 0
	for _, p := range a.played {
		if p == s {
			n++
		}
	}
	return n
}

type recordingPresenter struct {
	hud        HUD
	hudUpdates int
	splash     Splash
	explosions []Explosion
	shakes     int
}

func (p *recordingPresenter) UpdateHUD(h HUD)     { p.hud = h; p.hudUpdates++ }
func (p *recordingPresenter) ShowSplash(s Splash) { p.splash = s }
func (p *recordingPresenter) Explode(e Explosion) { p.explosions = append(p.explosions, e) }
func (p *recordingPresenter) ShakeCamera()        { p.shakes++ }

type countingScores struct {
	best    int
	loadErr error
	saveErr error
	saves   []int
}

func (c *countingScores) LoadBestScore() (int, error) {
	return c.best, c.loadErr
}

func (c *countingScores) SaveBestScore(best int) error {
	c.saves = append(c.saves, best)
	if c.saveErr != nil {
		return c.saveErr
	}
	c.best = best
	return nil
}

var errDisk = errors.New("disk unavailable")

type harness struct {
	session   *Session
	physics   *fakePhysics
	hits      *fakeHits
	audio     *recordingAudio
	presenter *recordingPresenter
	scores    *countingScores
}

func newHarness(t *testing.T, mutate func(*config.GameConfig)) *harness {
	t.Helper()

	cfg := config.DefaultGameConfig()
	if mutate != nil {
		mutate(&cfg)
	}

	h := &harness{
		physics:   newFakePhysics(),
		hits:      &fakeHits{},
		audio:     &recordingAudio{},
		presenter: &recordingPresenter{},
		scores:    &countingScores{},
	}

	s, err := NewSession(cfg, 42, Deps{
		Physics:   h.physics,
		Hits:      h.hits,
		Audio:     h.audio,
		Presenter: h.presenter,
		Scores:    h.scores,
	})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	h.session = s
	return h
}

// startRound taps through the title screen.
func (h *harness) startRound(t *testing.T) {
	t.Helper()
	if eff := h.session.Tap(core.Point{}); eff.Outcome != OutcomeStart {
		t.Fatalf("start tap outcome = %v, expected Start", eff.Outcome)
	}
}

// place puts a shape with the given tag directly into the scene.
func (h *harness) place(tag Tag, pos core.Vec3) ObjectID {
	id := h.session.nextID()
	color := core.ColorRed
	if tag == TagBad {
		color = core.ColorBlack
	}
	h.session.objects[id] = &GameObject{ID: id, Kind: shape.Box, Color: color, Tag: tag, Alive: true}
	h.physics.AddBody(id, shape.Box, pos)
	return id
}

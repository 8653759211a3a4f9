package tui

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/geometry-fighter/internal/core"
	"github.com/vovakirdan/geometry-fighter/internal/game"
)

// Effect tuning.
const (
	particlesPerBurst = 12
	particleTTL       = 0.6 // seconds
	particleSpeed     = 4.0 // world units per second
	shakeDuration     = 0.3 // seconds
	particleGravity   = -9.8
	trailTTL          = 0.25 // seconds
	trailGlyph        = '.'
)

type particle struct {
	pos   core.Vec3
	vel   core.Vec3
	ttl   float64
	color core.Color
	glyph rune
	// Trail marks stay where they were dropped.
	still bool
}

// Scene holds everything drawn on top of the simulation: the HUD,
// the splash overlay, explosion particles, shape trails and camera shake.
// It implements game.Presenter.
type Scene struct {
	hud       game.HUD
	splash    game.Splash
	particles []particle
	shake     float64
	rng       *rand.Rand
}

// NewScene creates an empty scene. The seed drives particle directions.
func NewScene(seed int64) *Scene {
	return &Scene{rng: rand.New(rand.NewSource(seed))}
}

// UpdateHUD stores the values shown on the HUD row.
func (s *Scene) UpdateHUD(h game.HUD) {
	s.hud = h
}

// ShowSplash selects the overlay.
func (s *Scene) ShowSplash(sp game.Splash) {
	s.splash = sp
}

// Explode bursts particles outward from the shape's last position.
// Particles start along the shape's spin so the burst follows its rotation.
func (s *Scene) Explode(e game.Explosion) {
	glyph := '*'
	if e.Color == core.ColorBlack {
		glyph = '#'
	}
	for i := 0; i < particlesPerBurst; i++ {
		angle := e.Rotation.Angle + 2*math.Pi*float64(i)/particlesPerBurst
		speed := particleSpeed * (0.5 + s.rng.Float64())
		s.particles = append(s.particles, particle{
			pos:   e.Position,
			vel:   core.Vec3{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			ttl:   particleTTL,
			color: e.Color,
			glyph: glyph,
		})
	}
}

// Trail drops a fading mark in each live shape's color where its body is
// now. Called once per frame, the marks line up behind moving shapes.
func (s *Scene) Trail(shapes []game.GameObject, bodies Bodies) {
	for _, obj := range shapes {
		if !obj.Alive {
			continue
		}
		pos, ok := bodies.Position(obj.ID)
		if !ok {
			continue
		}
		s.particles = append(s.particles, particle{
			pos:   pos,
			ttl:   trailTTL,
			color: obj.Color,
			glyph: trailGlyph,
			still: true,
		})
	}
}

// ShakeCamera starts a short screen shake.
func (s *Scene) ShakeCamera() {
	s.shake = shakeDuration
}

// Advance moves particles and winds down the shake.
func (s *Scene) Advance(dt float64) {
	live := s.particles[:0]
	for _, p := range s.particles {
		p.ttl -= dt
		if p.ttl <= 0 {
			continue
		}
		if !p.still {
			p.vel.Y += particleGravity * dt
			p.pos = p.pos.Add(p.vel.Scale(dt))
		}
		live = append(live, p)
	}
	s.particles = live

	s.shake = max(s.shake-dt, 0)
}

// ShakeOffset returns the current camera displacement in cells.
func (s *Scene) ShakeOffset() core.Point {
	if s.shake <= 0 {
		return core.Point{}
	}
	return core.Point{X: s.rng.Intn(3) - 1, Y: s.rng.Intn(3) - 1}
}

// HUD returns the last pushed HUD values.
func (s *Scene) HUD() game.HUD {
	return s.hud
}

// Splash returns the visible overlay.
func (s *Scene) Splash() game.Splash {
	return s.splash
}

// Shaking reports whether the camera is shaking.
func (s *Scene) Shaking() bool {
	return s.shake > 0
}

// Particles returns the number of live particles.
func (s *Scene) Particles() int {
	return len(s.particles)
}

// hudRect is the row reserved for the HUD.
func hudRect(cols int) core.Rect {
	return core.NewRect(0, 0, cols, 1)
}

// splashRect is the box the splash overlay occupies.
func splashRect(cols, rows int) core.Rect {
	w := min(40, cols)
	h := min(7, rows)
	return core.NewRect((cols-w)/2, (rows-h)/2, w, h)
}

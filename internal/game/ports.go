package game

import (
	"github.com/vovakirdan/geometry-fighter/internal/core"
	"github.com/vovakirdan/geometry-fighter/internal/shape"
)

// Physics is the simulation that owns shape bodies.
// The core only adds, pushes, queries and removes bodies.
type Physics interface {
	// AddBody creates a dynamic body for the shape at pos.
	AddBody(id ObjectID, kind shape.Kind, pos core.Vec3)

	// ApplyImpulse applies an instantaneous impulse at a body-local point.
	ApplyImpulse(id ObjectID, impulse, at core.Vec3)

	// Position returns the simulated position of a body.
	Position(id ObjectID) (core.Vec3, bool)

	// Rotation returns the simulated orientation of a body.
	Rotation(id ObjectID) (core.Rotation, bool)

	// RemoveBody deletes a body. Unknown ids are ignored.
	RemoveBody(id ObjectID)
}

// HitTester maps a screen tap to the nearest scene entry under it.
type HitTester interface {
	HitTest(p core.Point) (ObjectID, bool)
}

// Sound names one of the game's sound effects.
type Sound int

const (
	SoundSpawnGood Sound = iota
	SoundSpawnBad
	SoundExplodeGood
	SoundExplodeBad
	SoundGameOver
)

// Sounds lists every sound effect.
var Sounds = []Sound{SoundSpawnGood, SoundSpawnBad, SoundExplodeGood, SoundExplodeBad, SoundGameOver}

// String returns the sound's tag.
func (s Sound) String() string {
	switch s {
	case SoundSpawnGood:
		return "SpawnGood"
	case SoundSpawnBad:
		return "SpawnBad"
	case SoundExplodeGood:
		return "ExplodeGood"
	case SoundExplodeBad:
		return "ExplodeBad"
	case SoundGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Audio plays sound effects.
type Audio interface {
	Play(s Sound)
}

// Splash selects the full-screen overlay.
type Splash int

const (
	SplashNone Splash = iota
	SplashTapToPlay
	SplashGameOver
)

// String returns a human-readable name for the splash.
func (s Splash) String() string {
	switch s {
	case SplashNone:
		return "None"
	case SplashTapToPlay:
		return "TapToPlay"
	case SplashGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// HUD is the read-only projection of the game state shown to the player.
type HUD struct {
	Score int
	Lives int
	Best  int
}

// Explosion describes a burst effect for a removed shape.
type Explosion struct {
	Kind     shape.Kind
	Color    core.Color
	Position core.Vec3
	Rotation core.Rotation
}

// Presenter draws everything that is not simulated.
type Presenter interface {
	UpdateHUD(h HUD)
	ShowSplash(s Splash)
	Explode(e Explosion)
	ShakeCamera()
}

// ScoreStore persists the best score between runs.
type ScoreStore interface {
	LoadBestScore() (int, error)
	SaveBestScore(best int) error
}

type nopAudio struct{}

func (nopAudio) Play(Sound) {}

type nopPresenter struct{}

func (nopPresenter) UpdateHUD(HUD)     {}
func (nopPresenter) ShowSplash(Splash) {}
func (nopPresenter) Explode(Explosion) {}
func (nopPresenter) ShakeCamera()      {}

// MemoryScores keeps the best score in memory only.
type MemoryScores struct {
	Best int
}

// LoadBestScore returns the stored value.
func (m *MemoryScores) LoadBestScore() (int, error) {
	return m.Best, nil
}

// SaveBestScore replaces the stored value.
func (m *MemoryScores) SaveBestScore(best int) error {
	m.Best = best
	return nil
}

package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/geometry-fighter/internal/config"
	"github.com/vovakirdan/geometry-fighter/internal/core"
	"github.com/vovakirdan/geometry-fighter/internal/shape"
)

// SpawnTimer holds the time after which the next shape may spawn.
type SpawnTimer struct {
	Next float64
}

// Spawner decides when a shape is launched and rolls its properties.
type Spawner struct {
	rng     *rand.Rand
	cfg     config.SpawnConfig
	palette []core.Color
}

// NewSpawner creates a spawner with its own seeded RNG.
func NewSpawner(cfg config.SpawnConfig, seed int64) (*Spawner, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	if len(palette) == 0 {
		return nil, fmt.Errorf("game: spawner needs at least one good color")
	}
	return &Spawner{
		rng:     rand.New(rand.NewSource(seed)),
		cfg:     cfg,
		palette: palette,
	}, nil
}

// TrySpawn launches a shape if now is past the timer.
// The returned object has no ID yet; the session assigns one when it adds
// the object to the scene. On spawn the timer moves to now plus a random
// interval.
func (sp *Spawner) TrySpawn(now float64, timer *SpawnTimer) (GameObject, bool) {
	if now <= timer.Next {
		return GameObject{}, false
	}

	color := sp.pickColor()
	obj := GameObject{
		Kind:  shape.Random(sp.rng),
		Color: color,
		Tag:   TagForColor(color),
		Impulse: core.Vec3{
			X: sp.cfg.ImpulseX.Sample(sp.rng),
			Y: sp.cfg.ImpulseY.Sample(sp.rng),
		},
		ImpulseAt: core.Vec3{X: sp.cfg.ImpulseAt.X, Y: sp.cfg.ImpulseAt.Y, Z: sp.cfg.ImpulseAt.Z},
		Alive:     true,
	}

	timer.Next = now + sp.cfg.Interval.Sample(sp.rng)
	return obj, true
}

// pickColor returns black with probability BadChance, otherwise a uniform
// choice from the good palette.
func (sp *Spawner) pickColor() core.Color {
	if sp.rng.Float64() < sp.cfg.BadChance {
		return core.ColorBlack
	}
	return sp.palette[sp.rng.Intn(len(sp.palette))]
}

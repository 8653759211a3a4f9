// Package config provides YAML-based configuration loading for the game's
// fixed tuning values.
package config

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/geometry-fighter/internal/core"
)

// GameConfig contains all tuning for a Geometry Fighter session.
type GameConfig struct {
	Spawn SpawnConfig `yaml:"spawn"`
	Rules RulesConfig `yaml:"rules"`
	World WorldConfig `yaml:"world"`
	Audio AudioConfig `yaml:"audio"`
}

// Range is a closed interval sampled uniformly.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Sample draws a value uniformly from [Min, Max].
func (r Range) Sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Vec is a YAML-friendly 3D vector.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// SpawnConfig defines how shapes are launched.
type SpawnConfig struct {
	Interval    Range    `yaml:"interval"`     // Seconds until the next spawn
	ImpulseX    Range    `yaml:"impulse_x"`    // Horizontal launch impulse
	ImpulseY    Range    `yaml:"impulse_y"`    // Vertical launch impulse
	ImpulseAt   Vec      `yaml:"impulse_at"`   // Local point the impulse is applied at
	BadChance   float64  `yaml:"bad_chance"`   // Probability a shape is painted black
	GoodPalette []string `yaml:"good_palette"` // Color names for good shapes
}

// RulesConfig defines scoring and round flow.
type RulesConfig struct {
	StartLives    int     `yaml:"start_lives"`
	GameOverDelay float64 `yaml:"game_over_delay"` // Seconds before returning to the title
	CleanupY      float64 `yaml:"cleanup_y"`       // Shapes below this height are removed
}

// WorldConfig defines the physics world and the visible area.
type WorldConfig struct {
	Gravity   float64 `yaml:"gravity"`
	BodyMass  float64 `yaml:"body_mass"`
	ViewMinX  float64 `yaml:"view_min_x"`
	ViewMaxX  float64 `yaml:"view_max_x"`
	ViewMinY  float64 `yaml:"view_min_y"`
	ViewMaxY  float64 `yaml:"view_max_y"`
	HitRadius float64 `yaml:"hit_radius"` // Extra reach for taps, world units
}

// AudioConfig defines synthesized sound output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
}

// Validate checks that all ranges and probabilities are usable.
func (c GameConfig) Validate() error {
	var errs []error

	ranges := []struct {
		name string
		r    Range
	}{
		{"spawn.interval", c.Spawn.Interval},
		{"spawn.impulse_x", c.Spawn.ImpulseX},
		{"spawn.impulse_y", c.Spawn.ImpulseY},
	}
	for _, r := range ranges {
		if r.r.Min > r.r.Max {
			errs = append(errs, fmt.Errorf("%s: min %.2f exceeds max %.2f", r.name, r.r.Min, r.r.Max))
		}
	}
	if c.Spawn.Interval.Min <= 0 {
		errs = append(errs, errors.New("spawn.interval: min must be positive"))
	}
	if c.Spawn.BadChance < 0 || c.Spawn.BadChance > 1 {
		errs = append(errs, fmt.Errorf("spawn.bad_chance: %.2f outside [0, 1]", c.Spawn.BadChance))
	}
	if len(c.Spawn.GoodPalette) == 0 {
		errs = append(errs, errors.New("spawn.good_palette: at least one color required"))
	}
	if _, err := c.Spawn.Palette(); err != nil {
		errs = append(errs, err)
	}
	if c.Rules.StartLives <= 0 {
		errs = append(errs, errors.New("rules.start_lives: must be positive"))
	}
	if c.Rules.GameOverDelay < 0 {
		errs = append(errs, errors.New("rules.game_over_delay: must not be negative"))
	}
	if c.World.BodyMass <= 0 {
		errs = append(errs, errors.New("world.body_mass: must be positive"))
	}
	if c.World.ViewMinX >= c.World.ViewMaxX || c.World.ViewMinY >= c.World.ViewMaxY {
		errs = append(errs, errors.New("world: view bounds are empty"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume: %.2f outside [0, 1]", c.Audio.Volume))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// Palette resolves the good palette names. Black is rejected because it
// marks hazards.
func (s SpawnConfig) Palette() ([]core.Color, error) {
	colors := make([]core.Color, 0, len(s.GoodPalette))
	for _, name := range s.GoodPalette {
		c, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("spawn.good_palette: unknown color %q", name)
		}
		if c == core.ColorBlack {
			return nil, errors.New("spawn.good_palette: black is reserved for hazards")
		}
		colors = append(colors, c)
	}
	return colors, nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/geofighter.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in tuning, matching the embedded YAML.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Spawn: SpawnConfig{
			Interval:  Range{Min: 0.2, Max: 1.5},
			ImpulseX:  Range{Min: -2, Max: 2},
			ImpulseY:  Range{Min: 10, Max: 18},
			ImpulseAt: Vec{X: 0.05, Y: 0.05, Z: 0.05},
			BadChance: 0.125,
			GoodPalette: []string{
				"red", "green", "blue", "yellow", "cyan", "magenta", "white",
			},
		},
		Rules: RulesConfig{
			StartLives:    3,
			GameOverDelay: 5.0,
			CleanupY:      -2.0,
		},
		World: WorldConfig{
			Gravity:   -9.8,
			BodyMass:  1.0,
			ViewMinX:  -8,
			ViewMaxX:  8,
			ViewMinY:  -2,
			ViewMaxY:  12,
			HitRadius: 0.4,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.6,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}

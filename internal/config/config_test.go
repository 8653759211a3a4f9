package config

import (
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/geometry-fighter/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("embedded YAML diverges from DefaultGameConfig():\n%+v\n%+v", cfg, DefaultGameConfig())
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("rules:\n  start_lives: 5\nspawn:\n  bad_chance: 0.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Rules.StartLives != 5 {
		t.Errorf("StartLives = %d, expected 5", cfg.Rules.StartLives)
	}
	if cfg.Spawn.BadChance != 0.5 {
		t.Errorf("BadChance = %f, expected 0.5", cfg.Spawn.BadChance)
	}
	// Untouched values keep their defaults
	if cfg.Rules.GameOverDelay != 5.0 {
		t.Errorf("GameOverDelay = %f, expected default 5", cfg.Rules.GameOverDelay)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom file")
	}
	if !strings.Contains(err.Error(), "config:") {
		t.Errorf("error should carry package prefix, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"inverted interval", func(c *GameConfig) { c.Spawn.Interval = Range{Min: 2, Max: 1} }},
		{"zero interval", func(c *GameConfig) { c.Spawn.Interval = Range{Min: 0, Max: 1} }},
		{"inverted impulse", func(c *GameConfig) { c.Spawn.ImpulseY = Range{Min: 18, Max: 10} }},
		{"bad chance above one", func(c *GameConfig) { c.Spawn.BadChance = 1.5 }},
		{"bad chance negative", func(c *GameConfig) { c.Spawn.BadChance = -0.1 }},
		{"empty palette", func(c *GameConfig) { c.Spawn.GoodPalette = nil }},
		{"black in palette", func(c *GameConfig) { c.Spawn.GoodPalette = []string{"red", "black"} }},
		{"unknown color", func(c *GameConfig) { c.Spawn.GoodPalette = []string{"mauve"} }},
		{"no lives", func(c *GameConfig) { c.Rules.StartLives = 0 }},
		{"negative delay", func(c *GameConfig) { c.Rules.GameOverDelay = -1 }},
		{"massless", func(c *GameConfig) { c.World.BodyMass = 0 }},
		{"empty view", func(c *GameConfig) { c.World.ViewMaxX = c.World.ViewMinX }},
		{"loud", func(c *GameConfig) { c.Audio.Volume = 2 }},
	}

	if err := DefaultGameConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should reject the config")
			}
		})
	}
}

func TestRangeSample(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	r := Range{Min: 0.2, Max: 1.5}

	for i := 0; i < 1000; i++ {
		v := r.Sample(rng)
		if !r.Contains(v) {
			t.Fatalf("Sample() = %f outside [%f, %f]", v, r.Min, r.Max)
		}
	}
}

func TestPaletteResolvesNames(t *testing.T) {
	colors, err := DefaultGameConfig().Spawn.Palette()
	if err != nil {
		t.Fatalf("Palette() failed: %v", err)
	}
	if len(colors) != 7 {
		t.Fatalf("expected 7 colors, got %d", len(colors))
	}
	for _, c := range colors {
		if c == core.ColorBlack {
			t.Error("good palette must not contain black")
		}
	}
}

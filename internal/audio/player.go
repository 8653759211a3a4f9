package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/geometry-fighter/internal/config"
	"github.com/vovakirdan/geometry-fighter/internal/game"
)

// Player mixes sound effects into the system speaker.
// Until Init succeeds every Play is a no-op, so the game runs silently
// on machines without an audio device.
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      map[game.Sound]int
	logger      *log.Logger
}

// NewPlayer creates a player for the audio config.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	return &Player{
		rate:   beep.SampleRate(rate),
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		muted:  !cfg.Enabled,
		played: make(map[game.Sound]int),
		logger: logger,
	}
}

// Init opens the speaker. Calling it again is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts a sound effect. Overlapping sounds are mixed.
func (p *Player) Play(s game.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.played[s]++
	if !p.initialized || p.muted {
		return
	}
	st := Build(s, p.rate, p.volume)
	if st == nil {
		if p.logger != nil {
			p.logger.Warn("unknown sound", "sound", int(s))
		}
		return
	}

	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// SetMuted silences or restores playback.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports whether playback is silenced.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Played returns how many times s was requested, audible or not.
func (p *Player) Played(s game.Sound) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[s]
}

// Close stops every playing sound.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/geometry-fighter/internal/game"
)

const (
	spawnDuration   = 120 * time.Millisecond
	popDuration     = 220 * time.Millisecond
	crashDuration   = 350 * time.Millisecond
	gameOverNote    = 260 * time.Millisecond
	shortAttack     = 5 * time.Millisecond
	shortRelease    = 60 * time.Millisecond
	longRelease     = 200 * time.Millisecond
	gameOverRelease = 120 * time.Millisecond
)

// Descending minor triad for the game over jingle.
var gameOverNotes = []float64{659.25, 523.25, 440.0}

// Build returns a fresh streamer for the sound at the given master volume.
// Unknown sounds return nil.
func Build(s game.Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case game.SoundSpawnGood:
		osc := NewSlide(440, 880, spawnDuration, WaveSine, rate)
		st = NewEnvelope(osc, spawnDuration, shortAttack, shortRelease, rate)
	case game.SoundSpawnBad:
		osc := NewSlide(220, 110, spawnDuration, WaveSquare, rate)
		st = newVolume(NewEnvelope(osc, spawnDuration, shortAttack, shortRelease, rate), 0.5)
	case game.SoundExplodeGood:
		fund := NewEnvelope(NewOscillator(880, popDuration, WaveSine, rate), popDuration, shortAttack, longRelease, rate)
		over := NewEnvelope(NewOscillator(1760, popDuration, WaveSine, rate), popDuration, shortAttack, shortRelease, rate)
		st = beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	case game.SoundExplodeBad:
		noise := NewEnvelope(NewOscillator(0, crashDuration, WaveNoise, rate), crashDuration, shortAttack, longRelease, rate)
		rumble := NewEnvelope(NewSlide(120, 40, crashDuration, WaveSaw, rate), crashDuration, shortAttack, longRelease, rate)
		st = beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.4))
	case game.SoundGameOver:
		st = gameOverJingle(rate)
	default:
		return nil
	}
	if st == nil {
		return nil
	}
	return newVolume(st, volume)
}

func gameOverJingle(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(gameOverNotes))
	for _, freq := range gameOverNotes {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			// SineTone rejects pitches above Nyquist for low sample rates.
			tone = NewOscillator(freq, gameOverNote, WaveSine, rate)
		}
		note := beep.Take(rate.N(gameOverNote), tone)
		notes = append(notes, NewEnvelope(note, gameOverNote, shortAttack, gameOverRelease, rate))
	}
	return beep.Seq(notes...)
}

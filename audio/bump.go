// Package audio plays the walker's sound effects.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const (
	sampleRate = beep.SampleRate(44100)

	bumpFrequency = 110.0
	bumpLength    = 120 * time.Millisecond
	bumpVolume    = -2.5
)

// Bump plays a short low tone when the player walks into a wall.
// Without an audio device every call is a no-op.
type Bump struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
	logger  zerolog.Logger
}

// NewBump opens the speaker when enabled. Failing to open it is logged and
// leaves the sink silent.
func NewBump(enabled bool, logger zerolog.Logger) *Bump {
	b := &Bump{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
	if !enabled {
		return b
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		logger.Warn().Err(err).Msg("Audio unavailable, continuing without sound")
		return b
	}

	speaker.Play(b.mixer)
	b.enabled = true
	return b
}

// Enabled reports whether sounds reach the speaker.
func (b *Bump) Enabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enabled
}

// PlayBump queues the bump tone without blocking.
func (b *Bump) PlayBump() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.enabled {
		return
	}

	tone, err := bumpTone(sampleRate)
	if err != nil {
		b.logger.Error().Err(err).Msg("Failed to build bump tone")
		return
	}

	speaker.Lock()
	b.mixer.Add(tone)
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (b *Bump) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.enabled {
		return
	}

	speaker.Clear()
	speaker.Close()
	b.enabled = false
}

func bumpTone(sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, bumpFrequency)
	if err != nil {
		return nil, err
	}

	return &effects.Volume{
		Streamer: beep.Take(sr.N(bumpLength), sine),
		Base:     2,
		Volume:   bumpVolume,
	}, nil
}

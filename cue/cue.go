// Package cue renders short audio chimes when stack items settle into place.
// Each item gets its own pitch so a full scroll plays a rising phrase.
// Speaker playback lives in cue/device.
package cue

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Tone defaults
const (
	DefaultSampleRate = 44100
	DefaultBaseFreq   = 523.25 // C5
	DefaultVolume     = 0.4
	DefaultDuration   = 350 * time.Millisecond
	DefaultAttack     = 5 * time.Millisecond
	DefaultRelease    = 300 * time.Millisecond
)

// pentatonic degrees in semitones above the base
var pentatonic = [...]int{0, 2, 4, 7, 9}

// Config controls chime synthesis
type Config struct {
	Enabled    bool
	SampleRate int
	BaseFreq   float64
	Volume     float64 // linear gain in [0,1]
	Duration   time.Duration
}

// DefaultConfig returns an enabled chime configuration
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		SampleRate: DefaultSampleRate,
		BaseFreq:   DefaultBaseFreq,
		Volume:     DefaultVolume,
		Duration:   DefaultDuration,
	}
}

// Normalized fills unset fields with defaults and clamps the volume to [0,1]
func (c Config) Normalized() Config {
	d := DefaultConfig()
	if c.SampleRate <= 0 {
		c.SampleRate = d.SampleRate
	}
	if !(c.BaseFreq > 0) {
		c.BaseFreq = d.BaseFreq
	}
	if c.Duration <= 0 {
		c.Duration = d.Duration
	}
	c.Volume = math.Min(math.Max(c.Volume, 0), 1)
	return c
}

// Pitch returns the chime frequency for item i, walking a major pentatonic scale
func Pitch(base float64, i int) float64 {
	if i < 0 {
		i = 0
	}
	octave := i / len(pentatonic)
	semis := pentatonic[i%len(pentatonic)] + 12*octave
	return base * math.Pow(2, float64(semis)/12)
}

// Chime builds the settle sound for item i
func Chime(cfg Config, i int) beep.Streamer {
	cfg = cfg.Normalized()
	rate := beep.SampleRate(cfg.SampleRate)
	freq := Pitch(cfg.BaseFreq, i)
	release := min(DefaultRelease, cfg.Duration)

	fund := NewEnvelope(NewOscillator(freq, cfg.Duration, WaveSine, rate), cfg.Duration, DefaultAttack, release, rate)
	// Overtone decays faster
	over := NewEnvelope(NewOscillator(freq*2, cfg.Duration, WaveTriangle, rate), cfg.Duration, DefaultAttack, release/2, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.75),
		newVolume(over, 0.25),
	)
	return newVolume(mixed, cfg.Volume)
}

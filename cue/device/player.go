// Package device plays cue chimes through the system speaker.
package device

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/scrollstack/cue"
)

// Player plays settle chimes through the system speaker
type Player struct {
	mu          sync.Mutex
	cfg         cue.Config
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player; Init must succeed before anything is audible
func NewPlayer(cfg cue.Config) *Player {
	return &Player{cfg: cfg.Normalized(), mixer: &beep.Mixer{}}
}

// Init opens the speaker. Disabled players stay silent and never touch the device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether Play produces sound
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Configure swaps tone settings for subsequent chimes.
// The speaker stays open at its sample rate and Enabled is fixed at construction.
func (p *Player) Configure(cfg cue.Config) {
	p.mu.Lock()
	defer p.mu.Unlock()

	cfg = cfg.Normalized()
	cfg.SampleRate = p.cfg.SampleRate
	cfg.Enabled = p.cfg.Enabled
	p.cfg = cfg
}

// Config returns the active tone settings
func (p *Player) Config() cue.Config {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg
}

// Play queues the chime for each settled item
func (p *Player) Play(items ...int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || len(items) == 0 {
		return
	}

	speaker.Lock()
	for _, i := range items {
		p.mixer.Add(cue.Chime(p.cfg, i))
	}
	speaker.Unlock()
}

// Close stops playback and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}

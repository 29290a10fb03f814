// Package scroll turns wheel and key input over a tall virtual section into the
// normalized progress signal consumed by the timeline.
package scroll

import (
	"math"

	"github.com/lixenwraith/scrollstack/interp"
)

// Defaults for a terminal section
const (
	DefaultMultiplier = 4.0
	DefaultSmoothing  = 0.1
	DefaultWheelRows  = 3.0
	DefaultSnap       = 0.5
)

// Config holds section geometry and easing
type Config struct {
	Multiplier float64 // section height in viewports
	Smoothing  float64 // fraction of the remaining distance covered per Step, (0,1]
	WheelRows  float64 // rows per wheel notch
	Snap       float64 // distance in rows under which Step lands on target
}

// DefaultConfig returns the reference section setup
func DefaultConfig() Config {
	return Config{
		Multiplier: DefaultMultiplier,
		Smoothing:  DefaultSmoothing,
		WheelRows:  DefaultWheelRows,
		Snap:       DefaultSnap,
	}
}

// Tracker tracks the scroll position of a section pinned to the viewport.
// Progress runs from 0 when the section top meets the viewport top to 1 when the
// section bottom meets the viewport bottom.
type Tracker struct {
	cfg      Config
	viewport int

	target  float64 // rows, where input wants to be
	current float64 // rows, eased toward target
}

// NewTracker creates a tracker for a viewport of the given height in rows
func NewTracker(viewport int, cfg Config) *Tracker {
	if !(cfg.Multiplier >= 1) {
		cfg.Multiplier = DefaultMultiplier
	}
	if !(cfg.Smoothing > 0 && cfg.Smoothing <= 1) {
		cfg.Smoothing = DefaultSmoothing
	}
	if !(cfg.WheelRows > 0) {
		cfg.WheelRows = DefaultWheelRows
	}
	if !(cfg.Snap >= 0) {
		cfg.Snap = DefaultSnap
	}
	return &Tracker{cfg: cfg, viewport: max(viewport, 1)}
}

// --- Geometry ---

// SectionHeight returns the section height in rows
func (t *Tracker) SectionHeight() float64 {
	return t.cfg.Multiplier * float64(t.viewport)
}

// Range returns the scrollable distance in rows
func (t *Tracker) Range() float64 {
	return math.Max(t.SectionHeight()-float64(t.viewport), 0)
}

// Resize changes the viewport height, keeping progress stable
func (t *Tracker) Resize(viewport int) {
	pTarget, pCurrent := t.fraction(t.target), t.fraction(t.current)
	t.viewport = max(viewport, 1)
	t.target = pTarget * t.Range()
	t.current = pCurrent * t.Range()
}

// --- Input ---

// ScrollBy moves the target by rows, clamped to the section
func (t *Tracker) ScrollBy(rows float64) {
	t.target = t.clamp(t.target + rows)
}

// Wheel moves the target by notches of WheelRows; positive scrolls down
func (t *Tracker) Wheel(notches int) {
	t.ScrollBy(float64(notches) * t.cfg.WheelRows)
}

// PageDown moves the target by one viewport
func (t *Tracker) PageDown() { t.ScrollBy(float64(t.viewport)) }

// PageUp moves the target back by one viewport
func (t *Tracker) PageUp() { t.ScrollBy(-float64(t.viewport)) }

// ScrollTo sets the target to a progress value
func (t *Tracker) ScrollTo(progress float64) {
	t.target = interp.Clamp01(progress) * t.Range()
}

// Jump sets target and current to a progress value with no easing
func (t *Tracker) Jump(progress float64) {
	t.ScrollTo(progress)
	t.current = t.target
}

// --- Frame update ---

// Step eases current toward target by one frame, returns true if current moved
func (t *Tracker) Step() bool {
	d := t.target - t.current
	if d == 0 {
		return false
	}
	if math.Abs(d) <= t.cfg.Snap {
		t.current = t.target
		return true
	}
	t.current += d * t.cfg.Smoothing
	return true
}

// --- Queries ---

// Progress returns the eased scroll progress in [0,1]
func (t *Tracker) Progress() float64 { return t.fraction(t.current) }

// TargetProgress returns the progress input is heading to
func (t *Tracker) TargetProgress() float64 { return t.fraction(t.target) }

// Settled reports whether easing has reached the target
func (t *Tracker) Settled() bool { return t.current == t.target }

// Offset returns the eased position in rows
func (t *Tracker) Offset() float64 { return t.current }

func (t *Tracker) fraction(rows float64) float64 {
	r := t.Range()
	if r <= 0 {
		return 0
	}
	return interp.Clamp01(rows / r)
}

func (t *Tracker) clamp(rows float64) float64 {
	return math.Min(math.Max(rows, 0), t.Range())
}

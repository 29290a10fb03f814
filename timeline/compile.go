package timeline

import (
	"fmt"

	"github.com/lixenwraith/scrollstack/interp"
	"github.com/lixenwraith/scrollstack/palette"
)

// Geometry is the slot layout walked by the color compiler
type Geometry struct {
	Items         int
	StaggerBuffer int
	EntryFraction float64
	Space         Space
	TrailHold     float64
	TrailEnd      float64
}

// TotalSlots returns Items * StaggerBuffer
func (g Geometry) TotalSlots() int { return g.Items * g.StaggerBuffer }

// Stop is a color breakpoint before palette resolution: scroll position and palette index
type Stop struct {
	At    float64
	Index int
}

// Collision records a stop pinned forward to keep the domain non-decreasing
type Collision struct {
	Stop int     // position in the stop list
	Want float64 // domain the layout asked for
	Got  float64 // domain actually used
}

func (c Collision) String() string {
	return fmt.Sprintf("stop %d: wanted %.6f, pinned to %.6f", c.Stop, c.Want, c.Got)
}

// stopList appends stops while enforcing a non-decreasing domain
type stopList struct {
	stops      []Stop
	collisions []Collision
}

func (l *stopList) push(at float64, index int) {
	if n := len(l.stops); n > 0 && at < l.stops[n-1].At {
		prev := l.stops[n-1].At
		l.collisions = append(l.collisions, Collision{Stop: n, Want: at, Got: prev})
		at = prev
	}
	l.stops = append(l.stops, Stop{At: at, Index: index})
}

func (l *stopList) last() Stop { return l.stops[len(l.stops)-1] }

// CompileStops lays out the color breakpoints for a palette of colorCount entries.
//
// Each item after the first contributes a hold stop at its entry start carrying the
// previous item's color and a ramp stop at its entry end carrying its own, so every
// crossfade runs exactly while the matching item slides in. Colors beyond Items form an
// outro ramp toward the final color; the table is always closed at progress 1.
func CompileStops(g Geometry, colorCount int) ([]Stop, []Collision) {
	l := &stopList{stops: make([]Stop, 0, 2*g.Items+3)}
	lastColor := max(colorCount-1, 0)
	total := g.TotalSlots()

	l.push(0, 0)

	for i := 1; i < g.Items; i++ {
		w := EntryWindow(i*g.StaggerBuffer, total, g.EntryFraction, g.Space).Scroll
		l.push(w.Start, i-1)
		l.push(w.End, i)
	}

	if colorCount > g.Items {
		holdAt := l.last().At + g.TrailHold
		if holdAt < g.TrailEnd {
			l.push(holdAt, g.Items-1)
			l.push(g.TrailEnd, lastColor)
		}
	}

	if l.last().At < 1 {
		l.push(1, lastColor)
	}

	return l.stops, l.collisions
}

// ResolveStops turns stops into a color table, indices resolved clamp-to-last against colors
func ResolveStops(stops []Stop, colors palette.Palette, fallback palette.RGB) (*interp.Table[palette.RGB], error) {
	domain := make([]float64, len(stops))
	values := make([]palette.RGB, len(stops))
	for i, s := range stops {
		domain[i] = s.At
		values[i] = colors.At(s.Index, fallback)
	}
	return palette.NewTable(domain, values)
}

// CompileColorTimeline builds the breakpoint table of one global color property
func CompileColorTimeline(g Geometry, colors palette.Palette, fallback palette.RGB) (*interp.Table[palette.RGB], []Collision, error) {
	if g.Items < 1 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrNoItems, g.Items)
	}
	if g.StaggerBuffer < 1 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrStaggerBuffer, g.StaggerBuffer)
	}
	if !openUnit(g.EntryFraction) {
		return nil, nil, fmt.Errorf("%w: color entry fraction %v", ErrEntryFraction, g.EntryFraction)
	}

	if err := checkColors("timeline", colors, fallback); err != nil {
		return nil, nil, err
	}

	stops, collisions := CompileStops(g, len(colors))
	tbl, err := ResolveStops(stops, colors, fallback)
	if err != nil {
		return nil, nil, fmt.Errorf("compiling color timeline: %w", err)
	}
	return tbl, collisions, nil
}

// checkColors rejects palettes or fallbacks holding non-finite or out of range channels
func checkColors(name string, colors palette.Palette, fallback palette.RGB) error {
	for i, c := range colors {
		if !c.Valid() {
			return fmt.Errorf("%w: %s color %d is %+v", palette.ErrBadColor, name, i, c)
		}
	}
	if !fallback.Valid() {
		return fmt.Errorf("%w: %s fallback is %+v", palette.ErrBadColor, name, fallback)
	}
	return nil
}

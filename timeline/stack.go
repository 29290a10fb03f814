package timeline

import (
	"fmt"

	"github.com/lixenwraith/scrollstack/interp"
	"github.com/lixenwraith/scrollstack/palette"
)

// GlobalState is the section-wide render input at one progress value
type GlobalState struct {
	Background   palette.RGB
	Title        palette.RGB
	TitleOpacity float64
}

// Stack is a compiled, immutable timeline for a fixed set of items.
// All evaluation methods are pure and safe for concurrent use.
type Stack struct {
	params Params
	space  Space
	total  int

	windows []WindowPair // transform windows, EntryFraction

	stops      []Stop
	collisions []Collision

	background   *interp.Table[palette.RGB]
	title        *interp.Table[palette.RGB]
	titleOpacity *interp.Table[float64]
}

// New validates p and compiles every table of the stack
func New(p Params) (*Stack, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p = p.clone()

	s := &Stack{
		params:  p,
		space:   p.Space(),
		total:   p.TotalSlots(),
		windows: make([]WindowPair, p.Items),
	}

	for i := range s.windows {
		s.windows[i] = EntryWindow(p.Slot(i), s.total, p.EntryFraction, s.space)
	}

	// Title shares the background's stop layout so both crossfade together
	s.stops, s.collisions = CompileStops(p.colorGeometry(), len(p.Background))

	var err error
	if s.background, err = ResolveStops(s.stops, p.Background, p.BackgroundFallback); err != nil {
		return nil, fmt.Errorf("background timeline: %w", err)
	}
	if s.title, err = ResolveStops(s.stops, p.Title, p.TitleFallback); err != nil {
		return nil, fmt.Errorf("title timeline: %w", err)
	}
	if s.titleOpacity, err = interp.NewScalar([]float64{0, p.TitleFadeEnd}, []float64{1, p.TitleFadeTo}); err != nil {
		return nil, fmt.Errorf("title opacity: %w", err)
	}

	return s, nil
}

// Len returns the item count
func (s *Stack) Len() int { return s.params.Items }

// Params returns a copy of the configuration the stack was built from
func (s *Stack) Params() Params { return s.params.clone() }

// Space returns the card/scroll coordinate mapping
func (s *Stack) Space() Space { return s.space }

// TotalSlots returns the activation slot count
func (s *Stack) TotalSlots() int { return s.total }

// Window returns the transform entry window of item i
func (s *Stack) Window(i int) WindowPair { return s.windows[i] }

// Stops returns a copy of the shared color stop layout
func (s *Stack) Stops() []Stop {
	out := make([]Stop, len(s.stops))
	copy(out, s.stops)
	return out
}

// Collisions returns stops that were pinned to keep the color domain ordered
func (s *Stack) Collisions() []Collision {
	out := make([]Collision, len(s.collisions))
	copy(out, s.collisions)
	return out
}

// BackgroundTable returns the compiled background color table
func (s *Stack) BackgroundTable() *interp.Table[palette.RGB] { return s.background }

// TitleTable returns the compiled title color table
func (s *Stack) TitleTable() *interp.Table[palette.RGB] { return s.title }

// CardProgress converts raw scroll progress into card space
func (s *Stack) CardProgress(raw float64) float64 { return s.space.ToCard(raw) }

// Global evaluates the section-wide state at raw scroll progress
func (s *Stack) Global(raw float64) GlobalState {
	raw = interp.Clamp01(raw)
	return GlobalState{
		Background:   s.background.At(raw),
		Title:        s.title.At(raw),
		TitleOpacity: s.titleOpacity.At(raw),
	}
}

// Item evaluates item i at raw scroll progress; i must be in [0, Len())
func (s *Stack) Item(raw float64, i int) ItemState {
	return DeriveItemState(s.space.ToCard(raw), s.windows[i].Card, s.params.Slot(i), s.total, s.params.Style)
}

// Items evaluates every item into dst, reusing its capacity
func (s *Stack) Items(raw float64, dst []ItemState) []ItemState {
	dst = dst[:0]
	card := s.space.ToCard(raw)
	for i, w := range s.windows {
		dst = append(dst, DeriveItemState(card, w.Card, s.params.Slot(i), s.total, s.params.Style))
	}
	return dst
}

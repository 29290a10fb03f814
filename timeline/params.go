package timeline

import (
	"fmt"
	"math"

	"github.com/lixenwraith/scrollstack/palette"
)

// Defaults matching the reference deck layout
const (
	DefaultStaggerBuffer      = 1
	DefaultEntryFraction      = 0.4
	DefaultColorEntryFraction = 0.6
	DefaultStartOffset        = 0.2
	DefaultTrailHold          = 0.1
	DefaultTrailEnd           = 0.98
	DefaultTitleFadeEnd       = 0.15
	DefaultTitleFadeTo        = 0.2

	DefaultLargeOffset = 800.0
	DefaultShrinkStep  = 0.05
	DefaultBaseOrder   = 10
)

// Style holds the per-item transform constants
type Style struct {
	LargeOffset float64 // vertical displacement before entry, in consumer units
	ShrinkStep  float64 // scale lost per slot remaining after an item's own
	BaseOrder   int     // z-order of slot 0
}

// Params is the full configuration of one stack
type Params struct {
	Items         int
	StaggerBuffer int

	EntryFraction      float64 // share of a slot spent entering, per-item transforms
	ColorEntryFraction float64 // share of a slot spent crossfading, global colors
	StartOffset        float64 // scroll progress at which card space begins

	// Outro for background lists longer than Items: hold the last item color for
	// TrailHold past the last entry, then ramp to the final color by TrailEnd
	TrailHold float64
	TrailEnd  float64

	TitleFadeEnd float64 // raw progress at which the title reaches TitleFadeTo
	TitleFadeTo  float64

	Background         palette.Palette
	Title              palette.Palette
	BackgroundFallback palette.RGB
	TitleFallback      palette.RGB

	Style Style
}

// DefaultParams returns the reference configuration for n items
func DefaultParams(n int) Params {
	return Params{
		Items:              n,
		StaggerBuffer:      DefaultStaggerBuffer,
		EntryFraction:      DefaultEntryFraction,
		ColorEntryFraction: DefaultColorEntryFraction,
		StartOffset:        DefaultStartOffset,
		TrailHold:          DefaultTrailHold,
		TrailEnd:           DefaultTrailEnd,
		TitleFadeEnd:       DefaultTitleFadeEnd,
		TitleFadeTo:        DefaultTitleFadeTo,
		Background:         palette.DefaultBackground.Clone(),
		Title:              palette.DefaultTitle.Clone(),
		BackgroundFallback: palette.White,
		TitleFallback:      palette.Black,
		Style: Style{
			LargeOffset: DefaultLargeOffset,
			ShrinkStep:  DefaultShrinkStep,
			BaseOrder:   DefaultBaseOrder,
		},
	}
}

// Validate reports the first configuration error
func (p Params) Validate() error {
	if p.Items < 1 {
		return fmt.Errorf("%w: got %d", ErrNoItems, p.Items)
	}
	if p.StaggerBuffer < 1 {
		return fmt.Errorf("%w: got %d", ErrStaggerBuffer, p.StaggerBuffer)
	}
	if !openUnit(p.EntryFraction) {
		return fmt.Errorf("%w: entry fraction %v", ErrEntryFraction, p.EntryFraction)
	}
	if !openUnit(p.ColorEntryFraction) {
		return fmt.Errorf("%w: color entry fraction %v", ErrEntryFraction, p.ColorEntryFraction)
	}
	if !(p.StartOffset >= 0 && p.StartOffset < 1) {
		return fmt.Errorf("%w: got %v", ErrStartOffset, p.StartOffset)
	}
	if !(p.TrailHold >= 0) || math.IsInf(p.TrailHold, 0) || !(p.TrailEnd > 0 && p.TrailEnd <= 1) {
		return fmt.Errorf("%w: hold %v, end %v", ErrTrail, p.TrailHold, p.TrailEnd)
	}
	if !(p.TitleFadeEnd > 0 && p.TitleFadeEnd <= 1) || !(p.TitleFadeTo >= 0 && p.TitleFadeTo <= 1) {
		return fmt.Errorf("%w: end %v, to %v", ErrTitleFade, p.TitleFadeEnd, p.TitleFadeTo)
	}
	if !finiteNonNeg(p.Style.LargeOffset) || !finiteNonNeg(p.Style.ShrinkStep) {
		return fmt.Errorf("%w: offset %v, shrink %v", ErrStyle, p.Style.LargeOffset, p.Style.ShrinkStep)
	}
	if err := checkColors("background", p.Background, p.BackgroundFallback); err != nil {
		return err
	}
	if err := checkColors("title", p.Title, p.TitleFallback); err != nil {
		return err
	}
	return nil
}

// TotalSlots returns Items * StaggerBuffer
func (p Params) TotalSlots() int { return p.Items * p.StaggerBuffer }

// Slot returns the activation slot of item i
func (p Params) Slot(i int) int { return i * p.StaggerBuffer }

// Space returns the coordinate mapping defined by StartOffset
func (p Params) Space() Space { return Space{Offset: p.StartOffset} }

// colorGeometry is the geometry the color compiler walks
func (p Params) colorGeometry() Geometry {
	return Geometry{
		Items:         p.Items,
		StaggerBuffer: p.StaggerBuffer,
		EntryFraction: p.ColorEntryFraction,
		Space:         p.Space(),
		TrailHold:     p.TrailHold,
		TrailEnd:      p.TrailEnd,
	}
}

func (p Params) clone() Params {
	p.Background = p.Background.Clone()
	p.Title = p.Title.Clone()
	return p
}

func openUnit(v float64) bool { return v > 0 && v < 1 }

func finiteNonNeg(v float64) bool { return v >= 0 && !math.IsInf(v, 0) }

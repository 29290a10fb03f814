// Package palette holds the color value type used by the timeline, its parsing and the
// clamp-to-last lookup over color lists.
package palette

import (
	"github.com/lixenwraith/scrollstack/interp"
)

// Palette is an ordered color list indexed by item
type Palette []RGB

// At returns p[i] with the index clamped into the list.
// Indices past the end resolve to the last color, negative indices to the first,
// and an empty palette always yields fallback.
func (p Palette) At(i int, fallback RGB) RGB {
	if len(p) == 0 {
		return fallback
	}
	if i < 0 {
		return p[0]
	}
	if i >= len(p) {
		return p[len(p)-1]
	}
	return p[i]
}

// Clone returns an independent copy
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	out := make(Palette, len(p))
	copy(out, p)
	return out
}

// Strings formats every color as rgb(r, g, b)
func (p Palette) Strings() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.CSS()
	}
	return out
}

// NewTable builds a color breakpoint table
func NewTable(domain []float64, values []RGB) (*interp.Table[RGB], error) {
	return interp.New(domain, values, Lerp)
}

// Deck colors, section background and title ink from the reference layout
var (
	Cream  = RGB{R: 250, G: 243, B: 225}
	Ink    = RGB{R: 34, G: 34, B: 34}
	Orange = RGB{R: 250, G: 129, B: 18}
	Umber  = RGB{R: 48, G: 39, B: 34}

	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{R: 0, G: 0, B: 0}
)

// Default lists for a section with no configured colors
var (
	DefaultBackground = Palette{Cream, Ink, Orange, Umber}
	DefaultTitle      = Palette{Ink, Cream, Ink, Cream}
)

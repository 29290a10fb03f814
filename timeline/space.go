package timeline

import (
	"github.com/lixenwraith/scrollstack/interp"
)

// Space converts between the two coordinate systems of a stack.
//
// Card space is the logical entry timeline: item slots are laid out uniformly over [0,1]
// and per-item transforms are evaluated there. Scroll space is the physical progress
// reported by the scroll source; card space occupies its [Offset,1] tail so the first item
// does not wait behind dead scroll distance. Global colors are compiled in scroll space.
type Space struct {
	Offset float64
}

// ToScroll maps a card-space position into scroll space
func (s Space) ToScroll(card float64) float64 {
	return s.Offset + card*(1-s.Offset)
}

// ToCard maps scroll progress into card space, clamped to [0,1]
func (s Space) ToCard(scroll float64) float64 {
	return interp.Clamp01((scroll - s.Offset) / (1 - s.Offset))
}

// NormalizeCardProgress rescales raw scroll progress into the card entry range
func NormalizeCardProgress(raw, startOffset float64) float64 {
	return Space{Offset: startOffset}.ToCard(raw)
}

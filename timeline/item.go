package timeline

import (
	"github.com/lixenwraith/scrollstack/interp"
)

// ItemState is the per-item render input at one progress value
type ItemState struct {
	OffsetY float64 // displacement below the resting position
	Scale   float64
	Opacity float64
	ZOrder  int // static paint order, higher draws on top
}

// DeriveItemState evaluates one item at cardProgress, a card-space value.
// The item slides and fades in across its own window and keeps shrinking from its
// start to the end of the timeline; earlier slots end smaller.
func DeriveItemState(cardProgress float64, w Window, slot, totalSlots int, s Style) ItemState {
	finalScale := 1 - float64(totalSlots-1-slot)*s.ShrinkStep

	return ItemState{
		OffsetY: interp.Segment(cardProgress, w.Start, w.End, s.LargeOffset, 0),
		Scale:   interp.Segment(cardProgress, w.Start, 1, 1, finalScale),
		Opacity: interp.Segment(cardProgress, w.Start, w.End, 0, 1),
		ZOrder:  s.BaseOrder + slot,
	}
}

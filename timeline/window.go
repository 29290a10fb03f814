package timeline

// Window is the [Start,End] progress range over which one item enters
type Window struct {
	Start, End float64
}

// Width returns End-Start
func (w Window) Width() float64 { return w.End - w.Start }

// Contains reports whether p lies within the window, bounds included
func (w Window) Contains(p float64) bool { return p >= w.Start && p <= w.End }

// WindowPair is one entry window expressed in both coordinate spaces
type WindowPair struct {
	Card   Window // per-item transform math
	Scroll Window // global color breakpoints
}

// EntryWindow computes the entry window of the item occupying slot out of totalSlots.
// The item spends entryFraction of one slot animating in and the rest holding.
func EntryWindow(slot, totalSlots int, entryFraction float64, space Space) WindowPair {
	slotDuration := 1 / float64(totalSlots)
	card := Window{
		Start: float64(slot) / float64(totalSlots),
	}
	card.End = card.Start + slotDuration*entryFraction

	return WindowPair{
		Card: card,
		Scroll: Window{
			Start: space.ToScroll(card.Start),
			End:   space.ToScroll(card.End),
		},
	}
}

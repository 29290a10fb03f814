package timeline

// Settled returns the items whose entry completed between two progress samples,
// i.e. whose card-space window end lies in (prev, cur]. Scrolling backwards settles nothing.
func (s *Stack) Settled(prev, cur float64) []int {
	from, to := s.space.ToCard(prev), s.space.ToCard(cur)
	if to <= from {
		return nil
	}

	var out []int
	for i, w := range s.windows {
		if w.Card.End > from && w.Card.End <= to {
			out = append(out, i)
		}
	}
	return out
}

// Active returns the highest item that has started entering at raw progress, or -1
func (s *Stack) Active(raw float64) int {
	card := s.space.ToCard(raw)
	active := -1
	for i, w := range s.windows {
		if card > w.Card.Start {
			active = i
		}
	}
	return active
}

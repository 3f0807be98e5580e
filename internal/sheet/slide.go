package sheet

// slideOffset maps top to [-1, 1]: 1 at MinOffset, 0 at MaxOffset and -1 at
// the bottom of the parent. A degenerate range maps to 0.
func slideOffset(g Geometry, top int) float64 {
	if top > g.MaxOffset {
		span := g.ParentHeight - g.MaxOffset
		if span == 0 {
			return 0
		}
		return float64(g.MaxOffset-top) / float64(span)
	}
	span := g.MaxOffset - g.MinOffset
	if span == 0 {
		return 0
	}
	return float64(g.MaxOffset-top) / float64(span)
}

func (s *Sheet) dispatchSlide() {
	if s.callbacks.Slide != nil {
		s.callbacks.Slide(slideOffset(s.geom, s.top))
	}
}

package sheet

import "math"

// shouldHide reports whether a release at top with velocity vy hides the
// sheet. The decision uses the position the sheet would coast to.
func (s *Sheet) shouldHide(top int, vy float64) bool {
	if s.cfg.SkipCollapsed {
		return true
	}
	g := s.geom
	if top < g.MaxOffset {
		return false
	}
	projected := float64(top) + vy*hideFriction
	if g.PeekHeight <= 0 {
		return projected > float64(g.MaxOffset)
	}
	return math.Abs(projected-float64(g.MaxOffset))/float64(g.PeekHeight) > hideThreshold
}

// releaseTarget picks where a drag released at top with velocity vy comes
// to rest. A tie between Expanded and Anchor goes to Expanded, a tie
// between Anchor and Collapsed goes to Collapsed.
func (s *Sheet) releaseTarget(top int, vy float64) (int, State) {
	g := s.geom
	toMin := absInt(top - g.MinOffset)
	toAnchor := absInt(top - g.AnchorOffset)
	toMax := absInt(top - g.MaxOffset)

	switch {
	case s.cfg.Hideable && s.shouldHide(top, vy):
		return g.ParentHeight, StateHidden
	case vy < 0:
		if toMin <= toAnchor {
			return g.MinOffset, StateExpanded
		}
		return g.AnchorOffset, StateAnchor
	case vy == 0:
		if toMin <= toAnchor {
			return g.MinOffset, StateExpanded
		}
		if toAnchor < toMax {
			return g.AnchorOffset, StateAnchor
		}
		return g.MaxOffset, StateCollapsed
	default:
		return g.MaxOffset, StateCollapsed
	}
}

type restingPosition struct {
	top   int
	state State
}

// nearest returns the candidate closest to top. Ties go to the earlier
// candidate.
func nearest(top int, candidates ...restingPosition) restingPosition {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if absInt(top-c.top) < absInt(top-best.top) {
			best = c
		}
	}
	return best
}

func (s *Sheet) restingPositions(states ...State) []restingPosition {
	out := make([]restingPosition, 0, len(states))
	for _, st := range states {
		top, _ := s.geom.offsetFor(st, true)
		out = append(out, restingPosition{top: top, state: st})
	}
	return out
}

package sheet

// StartNestedScroll is called when the scrolling view starts a scroll. The
// sheet takes part in vertical scrolls only.
func (s *Sheet) StartNestedScroll(axes Axes) bool {
	s.lastNestedDy = 0
	s.nestedScrolled = false
	return axes&AxisVertical != 0
}

// NestedPreScroll offers a scroll delta to the sheet before target applies
// it. dy is positive when the content moves towards its end, which pulls the
// sheet up. It returns the part of dy the sheet consumed.
func (s *Sheet) NestedPreScroll(target ScrollingView, dx, dy int) int {
	if !s.measured || target == nil || target != s.scrollChild {
		return 0
	}
	g := s.geom
	top := s.top
	next := top - dy
	consumed := 0

	switch {
	case dy > 0:
		if next < g.MinOffset {
			consumed = top - g.MinOffset
			s.setTop(g.MinOffset)
			s.setStateInternal(StateExpanded)
		} else {
			consumed = dy
			s.setTop(next)
			s.setStateInternal(StateDragging)
		}
	case dy < 0:
		if target.CanScrollUp() {
			break
		}
		switch {
		case next <= g.MaxOffset:
			consumed = dy
			s.setTop(next)
			s.setStateInternal(StateDragging)
		case s.cfg.Hideable:
			limit := min(next, g.ParentHeight)
			consumed = top - limit
			s.setTop(limit)
			s.setStateInternal(StateDragging)
		default:
			consumed = top - g.MaxOffset
			s.setTop(g.MaxOffset)
			s.setStateInternal(StateCollapsed)
		}
	}

	s.lastNestedDy = dy
	if consumed != 0 {
		s.nestedScrolled = true
	}
	return consumed
}

// StopNestedScroll is called when the scrolling view's scroll ends. A
// sheet moved by the scroll settles at a resting position chosen by the
// scroll direction.
func (s *Sheet) StopNestedScroll(target ScrollingView) {
	if !s.measured {
		return
	}
	if s.top == s.geom.MinOffset {
		s.setStateInternal(StateExpanded)
		return
	}
	if target == nil || target != s.scrollChild || !s.nestedScrolled {
		return
	}

	var dest restingPosition
	switch {
	case s.lastNestedDy > 0:
		dest = nearest(s.top, s.restingPositions(StateExpanded, StateAnchor)...)
	case s.cfg.Hideable && s.shouldHide(s.top, s.nestedVelocity()):
		dest = restingPosition{top: s.geom.ParentHeight, state: StateHidden}
	case s.lastNestedDy == 0:
		dest = nearest(s.top, s.restingPositions(StateExpanded, StateAnchor, StateCollapsed)...)
	default:
		dest = nearest(s.top, s.restingPositions(StateAnchor, StateCollapsed)...)
	}

	s.settle(dest.state, s.helper.smoothSlideTo(dest.top))
	s.nestedScrolled = false
}

// NestedPreFling reports whether the sheet consumes a fling of target. Only
// an expanded sheet lets the scrolling view fling.
func (s *Sheet) NestedPreFling(target ScrollingView, vx, vy float64) bool {
	return target != nil && target == s.scrollChild && s.state != StateExpanded
}

// setTop moves the panel outside of a drag, stopping any settle first.
func (s *Sheet) setTop(top int) {
	s.helper.stopSettling()
	if top == s.top {
		return
	}
	s.movePanel(top)
}

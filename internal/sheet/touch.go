package sheet

import "math"

// InterceptTouch observes an event before the panel content sees it and
// returns true when the sheet takes over the gesture.
func (s *Sheet) InterceptTouch(ev Event) bool {
	if !s.host.Shown() || !s.measured {
		s.ignoreEvents = true
		return false
	}
	if ev.Action == ActionDown {
		s.resetGesture()
	}
	s.tracker.Add(ev.Time, ev.Y)

	switch ev.Action {
	case ActionUp, ActionCancel:
		s.touchingScrollChild = false
		s.activePointer = NoPointer
		if s.ignoreEvents {
			s.ignoreEvents = false
			return false
		}
	case ActionDown:
		s.initialY = ev.Y
		if s.scrollChildContains(ev.X, ev.Y) {
			s.activePointer = ev.Pointer
			s.touchingScrollChild = true
		}
		s.ignoreEvents = s.activePointer == NoPointer && !s.panelContains(ev.X, ev.Y)
	}

	if !s.ignoreEvents && s.helper.shouldIntercept(ev) {
		return true
	}
	// A vertical drag on the panel chrome, outside the scrolling view.
	return ev.Action == ActionMove &&
		s.scrollChild != nil &&
		!s.ignoreEvents &&
		s.state != StateDragging &&
		!s.scrollChildContains(ev.X, ev.Y) &&
		math.Abs(s.initialY-ev.Y) > float64(s.cfg.TouchSlop)
}

// Touch handles an event of a gesture the sheet owns. It returns whether
// the sheet wants the rest of the gesture.
func (s *Sheet) Touch(ev Event) bool {
	if !s.host.Shown() || !s.measured {
		return false
	}
	if s.state == StateDragging && ev.Action == ActionDown {
		return true
	}
	s.helper.processTouch(ev)
	if ev.Action == ActionDown {
		s.resetGesture()
	}
	s.tracker.Add(ev.Time, ev.Y)

	if ev.Action == ActionMove && !s.ignoreEvents &&
		math.Abs(s.initialY-ev.Y) > float64(s.cfg.TouchSlop) {
		s.helper.captureView(ev.Pointer)
	}
	wants := !s.ignoreEvents
	if ev.Action == ActionUp || ev.Action == ActionCancel {
		s.touchingScrollChild = false
		s.activePointer = NoPointer
		s.ignoreEvents = false
	}
	return wants
}

func (s *Sheet) resetGesture() {
	s.activePointer = NoPointer
	s.touchingScrollChild = false
	s.tracker.Reset()
}

func (s *Sheet) panelContains(x, y float64) bool {
	if !s.measured {
		return false
	}
	return x >= 0 && x < float64(s.geom.ParentWidth) &&
		y >= float64(s.top) && y < float64(s.top+s.geom.PanelHeight)
}

func (s *Sheet) scrollChildContains(x, y float64) bool {
	if s.scrollChild == nil {
		return false
	}
	b := s.scrollChild.Bounds()
	py := y - float64(s.top)
	return x >= float64(b.Min.X) && x < float64(b.Max.X) &&
		py >= float64(b.Min.Y) && py < float64(b.Max.Y)
}

// nestedVelocity is the pointer velocity used when a nested scroll stops.
// Once the pointer is up no velocity is known.
func (s *Sheet) nestedVelocity() float64 {
	if s.activePointer == NoPointer {
		return 0
	}
	last, ok := s.tracker.Last()
	if !ok {
		return 0
	}
	return clampVelocity(s.tracker.Velocity(last), 0, s.cfg.MaxFlingVelocity)
}

// dragTarget implementation.

func (s *Sheet) tryCaptureView(p PointerID) bool {
	if s.state == StateDragging || s.touchingScrollChild {
		return false
	}
	if s.state == StateExpanded && s.activePointer == p &&
		s.scrollChild != nil && s.scrollChild.CanScrollUp() {
		return false
	}
	return true
}

func (s *Sheet) panelTop() int {
	return s.top
}

func (s *Sheet) movePanel(top int) {
	s.top = top
	s.dispatchSlide()
}

func (s *Sheet) clampPanelTop(top int) int {
	return s.geom.clampTop(top, s.cfg.Hideable)
}

func (s *Sheet) verticalDragRange() int {
	return s.geom.dragRange(s.cfg.Hideable)
}

func (s *Sheet) dragStateChanged(st dragState) {
	if st == dragDragging {
		s.setStateInternal(StateDragging)
	}
}

func (s *Sheet) viewReleased(vy float64) {
	top, target := s.releaseTarget(s.top, vy)
	s.settle(target, s.helper.settleCapturedViewAt(top, vy))
}

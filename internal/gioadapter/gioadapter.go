// Package gioadapter connects a sheet to a gio window: it converts gio
// pointer events and routes them the way the sheet expects.
package gioadapter

import (
	"math"
	"time"

	"gioui.org/io/pointer"

	"github.com/llehouerou/anchorsheet/internal/sheet"
)

// ScrollStopDelay is how long a wheel scroll may pause before it is
// considered finished.
const ScrollStopDelay = 150 * time.Millisecond

// Convert maps a gio pointer event to a sheet event. Kinds the sheet has no
// use for report false.
func Convert(e pointer.Event) (sheet.Event, bool) {
	ev := sheet.Event{
		Pointer: sheet.PointerID(e.PointerID),
		X:       float64(e.Position.X),
		Y:       float64(e.Position.Y),
		Time:    e.Time,
	}
	switch e.Kind {
	case pointer.Press:
		ev.Action = sheet.ActionDown
	case pointer.Drag:
		ev.Action = sheet.ActionMove
	case pointer.Release:
		ev.Action = sheet.ActionUp
	case pointer.Cancel:
		ev.Action = sheet.ActionCancel
	default:
		return sheet.Event{}, false
	}
	return ev, true
}

// ScrollDelta returns the vertical distance of a scroll event in pixels.
func ScrollDelta(e pointer.Event) (int, bool) {
	if e.Kind != pointer.Scroll {
		return 0, false
	}
	dy := int(math.Round(float64(e.Scroll.Y)))
	return dy, dy != 0
}

// Router delivers the events of pointer gestures to a sheet.
type Router struct {
	Sheet sheet.TouchHandler

	active  bool
	toSheet bool
}

// Route delivers ev. contentTakesDown tells whether inner content consumes
// the event when it is a down; it is ignored otherwise. Route reports
// whether the sheet owns the gesture after ev.
func (r *Router) Route(ev sheet.Event, contentTakesDown bool) bool {
	if ev.Action == sheet.ActionDown {
		if r.active {
			cancel := ev
			cancel.Action = sheet.ActionCancel
			r.Route(cancel, false)
		}
		r.active = true
		r.toSheet = r.Sheet.InterceptTouch(ev)
		if !r.toSheet && !contentTakesDown {
			r.toSheet = r.Sheet.Touch(ev)
		}
		return r.toSheet
	}
	if !r.active {
		return false
	}

	owned := r.toSheet
	if owned {
		r.Sheet.Touch(ev)
	} else if r.Sheet.InterceptTouch(ev) {
		r.toSheet = true
		owned = true
	}
	if ev.Action == sheet.ActionUp || ev.Action == sheet.ActionCancel {
		r.active = false
		r.toSheet = false
	}
	return owned
}

// Active reports whether a gesture is in progress.
func (r *Router) Active() bool {
	return r.active
}

// NestedScroll feeds wheel and touchpad scrolls of a scrolling view through
// a sheet. Scrolls have no explicit end, so one is finished after
// ScrollStopDelay without a delta.
type NestedScroll struct {
	Sheet  sheet.NestedScroller
	Target sheet.ScrollingView

	active bool
	last   time.Duration
}

// Scroll offers dy to the sheet at time now and returns what is left for
// the target to scroll.
func (n *NestedScroll) Scroll(dy int, now time.Duration) int {
	if !n.active {
		if !n.Sheet.StartNestedScroll(sheet.AxisVertical) {
			return dy
		}
		n.active = true
	}
	n.last = now
	return dy - n.Sheet.NestedPreScroll(n.Target, 0, dy)
}

// Due returns the time at which the current scroll ends, if one is active.
func (n *NestedScroll) Due() (time.Duration, bool) {
	return n.last + ScrollStopDelay, n.active
}

// Tick ends the scroll when it has paused long enough. It reports whether
// the scroll ended.
func (n *NestedScroll) Tick(now time.Duration) bool {
	if !n.active || now-n.last < ScrollStopDelay {
		return false
	}
	n.Stop(0)
	return true
}

// Stop ends the scroll. vy is the fling velocity the target would start
// with; Stop reports whether the sheet consumed the fling.
func (n *NestedScroll) Stop(vy float64) bool {
	if !n.active {
		return false
	}
	consumed := vy != 0 && n.Sheet.NestedPreFling(n.Target, 0, vy)
	n.Sheet.StopNestedScroll(n.Target)
	n.active = false
	return consumed
}

// Active reports whether a scroll is in progress.
func (n *NestedScroll) Active() bool {
	return n.active
}

package sheet

import (
	"math"
	"time"
)

type dragState int

const (
	dragIdle dragState = iota
	dragDragging
	dragSettling
)

// dragTarget is the view side of a dragHelper. Only the vertical axis moves.
type dragTarget interface {
	tryCaptureView(p PointerID) bool
	panelContains(x, y float64) bool
	panelTop() int
	movePanel(top int)
	clampPanelTop(top int) int
	verticalDragRange() int
	dragStateChanged(st dragState)
	viewReleased(vy float64)
}

type pointerMotion struct {
	initialY float64
	lastY    float64
}

// dragHelper turns pointer events into drags and settles of a single panel.
type dragHelper struct {
	target      dragTarget
	touchSlop   float64
	minVelocity float64
	maxVelocity float64
	// settleSize scales settle durations, normally the parent width.
	settleSize int
	now        func() time.Duration

	state             dragState
	captured          bool
	active            PointerID
	motion            map[PointerID]*pointerMotion
	tracker           VelocityTracker
	scroller          scroller
	releaseInProgress bool
}

func newDragHelper(target dragTarget, cfg Config, now func() time.Duration) *dragHelper {
	return &dragHelper{
		target:      target,
		touchSlop:   float64(cfg.TouchSlop),
		minVelocity: cfg.MinFlingVelocity,
		maxVelocity: cfg.MaxFlingVelocity,
		now:         now,
		active:      NoPointer,
		motion:      make(map[PointerID]*pointerMotion),
	}
}

// cancel forgets the pointers and velocity of the current gesture.
func (h *dragHelper) cancel() {
	h.active = NoPointer
	clear(h.motion)
	h.tracker.Reset()
}

func (h *dragHelper) setState(st dragState) {
	if h.state == st {
		return
	}
	h.state = st
	h.target.dragStateChanged(st)
	if st == dragIdle {
		h.captured = false
	}
}

func (h *dragHelper) saveInitial(ev Event) {
	h.motion[ev.Pointer] = &pointerMotion{initialY: ev.Y, lastY: ev.Y}
}

// captureView captures the panel for pointer p without asking the target.
func (h *dragHelper) captureView(p PointerID) {
	h.captured = true
	h.active = p
	h.setState(dragDragging)
}

func (h *dragHelper) tryCaptureForDrag(p PointerID) bool {
	if h.captured && h.active == p {
		return true
	}
	if p != NoPointer && h.target.tryCaptureView(p) {
		h.captureView(p)
		return true
	}
	return false
}

func (h *dragHelper) pastSlop(dy float64) bool {
	return h.target.verticalDragRange() > 0 && math.Abs(dy) > h.touchSlop
}

// shouldIntercept feeds an event seen before the panel content and reports
// whether a drag has started.
func (h *dragHelper) shouldIntercept(ev Event) bool {
	if ev.Action == ActionDown {
		h.cancel()
	}
	h.tracker.Add(ev.Time, ev.Y)

	switch ev.Action {
	case ActionDown:
		h.saveInitial(ev)
		if h.state == dragSettling && h.target.panelContains(ev.X, ev.Y) {
			h.tryCaptureForDrag(ev.Pointer)
		}
	case ActionMove:
		m, ok := h.motion[ev.Pointer]
		if !ok {
			break
		}
		dy := ev.Y - m.initialY
		slopped := h.target.panelContains(ev.X, ev.Y) && h.pastSlop(dy)
		if slopped {
			// A drag that cannot move the panel is left to the content.
			top := h.target.panelTop()
			if h.target.clampPanelTop(top+int(dy)) == top {
				break
			}
		}
		m.lastY = ev.Y
		if slopped {
			h.tryCaptureForDrag(ev.Pointer)
		}
	case ActionUp, ActionCancel:
		h.cancel()
	}
	return h.state == dragDragging
}

// processTouch feeds an event once the gesture belongs to the panel.
func (h *dragHelper) processTouch(ev Event) {
	if ev.Action == ActionDown {
		h.cancel()
	}
	h.tracker.Add(ev.Time, ev.Y)

	switch ev.Action {
	case ActionDown:
		h.saveInitial(ev)
		if h.target.panelContains(ev.X, ev.Y) {
			h.tryCaptureForDrag(ev.Pointer)
		}
	case ActionMove:
		m, ok := h.motion[ev.Pointer]
		if !ok {
			break
		}
		if h.state == dragDragging {
			if ev.Pointer != h.active {
				break
			}
			dy := int(ev.Y - m.lastY)
			h.dragBy(dy)
			m.lastY += float64(dy)
			break
		}
		dy := ev.Y - m.initialY
		m.lastY = ev.Y
		if h.target.panelContains(ev.X, ev.Y) && h.pastSlop(dy) {
			h.tryCaptureForDrag(ev.Pointer)
		}
	case ActionUp:
		if h.state == dragDragging {
			h.release(clampVelocity(h.tracker.Velocity(ev.Time), h.minVelocity, h.maxVelocity))
		}
		h.cancel()
	case ActionCancel:
		if h.state == dragDragging {
			h.release(0)
		}
		h.cancel()
	}
}

func (h *dragHelper) dragBy(dy int) {
	if dy == 0 {
		return
	}
	top := h.target.panelTop()
	if next := h.target.clampPanelTop(top + dy); next != top {
		h.target.movePanel(next)
	}
}

func (h *dragHelper) release(vy float64) {
	h.releaseInProgress = true
	h.target.viewReleased(vy)
	h.releaseInProgress = false
	if h.state == dragDragging {
		h.setState(dragIdle)
	}
}

// settleCapturedViewAt animates the released panel to top. It may only be
// called from viewReleased.
func (h *dragHelper) settleCapturedViewAt(top int, vy float64) bool {
	if !h.releaseInProgress {
		panic("sheet: settleCapturedViewAt called outside of a release")
	}
	return h.forceSettle(top, vy)
}

// smoothSlideTo animates the panel to top outside of a gesture.
func (h *dragHelper) smoothSlideTo(top int) bool {
	h.captured = true
	h.active = NoPointer
	ok := h.forceSettle(top, 0)
	if !ok && h.state == dragIdle {
		h.captured = false
	}
	return ok
}

func (h *dragHelper) forceSettle(top int, vy float64) bool {
	start := h.target.panelTop()
	dy := top - start
	if dy == 0 {
		h.scroller.abort()
		h.setState(dragIdle)
		return false
	}
	d := settleDuration(dy, vy, h.target.verticalDragRange(), h.settleSize)
	h.scroller.startScroll(start, dy, h.now(), d)
	h.setState(dragSettling)
	return true
}

// continueSettling advances a settle to time now and reports whether it
// needs more frames.
func (h *dragHelper) continueSettling(now time.Duration) bool {
	if h.state != dragSettling {
		return false
	}
	more := h.scroller.computeOffset(now)
	y := h.scroller.currY
	if y != h.target.panelTop() {
		h.target.movePanel(y)
	}
	if more && y == h.scroller.finalY {
		h.scroller.abort()
		more = false
	}
	if !more {
		h.setState(dragIdle)
	}
	return h.state == dragSettling
}

// stopSettling leaves the panel where it is.
func (h *dragHelper) stopSettling() {
	if h.state == dragSettling {
		h.scroller.abort()
		h.setState(dragIdle)
	}
}

package sheet

import (
	"fmt"
	"time"
)

// Sheet is the behavior of a bottom sheet with an anchor position.
type Sheet struct {
	cfg       Config
	host      Host
	callbacks Callbacks
	now       func() time.Duration

	state    State
	top      int
	geom     Geometry
	measured bool
	// layoutPending is set between RequestLayout and the next Measure.
	layoutPending bool
	pendingState  State

	content     View
	scrollChild ScrollingView

	helper  *dragHelper
	tracker VelocityTracker

	// gesture state
	activePointer       PointerID
	initialY            float64
	ignoreEvents        bool
	touchingScrollChild bool

	// nested scroll state
	lastNestedDy   int
	nestedScrolled bool

	// settle state
	settlePending bool
	settleTarget  State
}

// Option configures a Sheet.
type Option func(*Sheet)

// WithCallbacks sets the notification callbacks.
func WithCallbacks(cb Callbacks) Option {
	return func(s *Sheet) { s.callbacks = cb }
}

// WithClock replaces the monotonic clock used to time settle animations.
func WithClock(now func() time.Duration) Option {
	return func(s *Sheet) { s.now = now }
}

// WithState sets the initial state. Transient and unknown states become
// Collapsed.
func WithState(st State) Option {
	return func(s *Sheet) { s.state = RestoreState(int(st)) }
}

// New returns a collapsed sheet. Invalid config values fall back to their
// defaults; use Config.Validate to report them.
func New(cfg Config, host Host, opts ...Option) *Sheet {
	if host == nil {
		host = nopHost{}
	}
	start := time.Now()
	s := &Sheet{
		cfg:           cfg.normalized(),
		host:          host,
		now:           func() time.Duration { return time.Since(start) },
		state:         StateCollapsed,
		activePointer: NoPointer,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.helper = newDragHelper(s, s.cfg, func() time.Duration { return s.now() })
	return s
}

// SetCallbacks replaces the notification callbacks.
func (s *Sheet) SetCallbacks(cb Callbacks) {
	s.callbacks = cb
}

// SetContent sets the panel content and looks up its nested scrolling view.
func (s *Sheet) SetContent(root View) {
	s.content = root
	s.scrollChild = FindScrollingView(root)
}

// ScrollChild returns the nested scrolling view of the content, if any.
func (s *Sheet) ScrollChild() ScrollingView {
	return s.scrollChild
}

// Measure lays the sheet out in a parent of the given size. It recomputes
// the geometry and moves the panel to the offset of a resting state; during
// a drag or settle the panel keeps its position.
func (s *Sheet) Measure(parentWidth, parentHeight, panelHeight int) {
	s.geom = measureGeometry(parentWidth, parentHeight, panelHeight, s.cfg)
	s.helper.settleSize = s.geom.ParentWidth

	switch s.state {
	case StateDragging, StateSettling:
		if !s.measured {
			s.top = s.geom.MaxOffset
		}
	case StateHidden:
		// A hidden state on a sheet that is no longer hideable rests collapsed.
		if s.cfg.Hideable {
			s.top = s.geom.ParentHeight
		} else {
			s.top = s.geom.MaxOffset
		}
	default:
		s.top, _ = s.geom.offsetFor(s.state, s.cfg.Hideable)
	}

	s.measured = true
	s.layoutPending = false
	if s.content != nil {
		s.scrollChild = FindScrollingView(s.content)
	}

	if st := s.pendingState; st != 0 {
		s.pendingState = 0
		s.startSettling(st)
	}
}

// Measured reports whether Measure was called at least once.
func (s *Sheet) Measured() bool {
	return s.measured
}

// Geometry returns the offsets computed by the last Measure.
func (s *Sheet) Geometry() Geometry {
	return s.geom
}

// Top returns the current top offset of the panel.
func (s *Sheet) Top() int {
	return s.top
}

// SlideOffset returns the slide offset of the current position.
func (s *Sheet) SlideOffset() float64 {
	return slideOffset(s.geom, s.top)
}

// State returns the current state.
func (s *Sheet) State() State {
	return s.state
}

// SetState moves the sheet to a resting state. Before the first Measure
// the state is stored without animation or callback. While a layout is
// pending the request is applied after it. Otherwise the sheet settles to
// the state's offset.
//
// Hidden on a sheet that is not hideable is ignored. SetState panics for
// Dragging, Settling and unknown states once the sheet has been measured.
func (s *Sheet) SetState(st State) {
	if st == s.state || st == StateHidden && !s.cfg.Hideable {
		return
	}
	if !s.measured {
		switch {
		case st == StateCollapsed, st == StateExpanded, st == StateAnchor,
			st == StateForceHidden, st == StateHidden && s.cfg.Hideable:
			s.state = st
		}
		return
	}
	if s.layoutPending {
		s.pendingState = st
		return
	}
	s.startSettling(st)
}

// PanelOffset returns the offset of the current state, or of Collapsed
// while dragging or settling. ForceHidden reports the collapsed offset the
// sheet returns to, not the off-screen position it rests at.
func (s *Sheet) PanelOffset() int {
	switch {
	case s.state == StateExpanded:
		return s.geom.MinOffset
	case s.state == StateAnchor:
		return s.geom.AnchorOffset
	case s.state == StateHidden && s.cfg.Hideable:
		return s.geom.ParentHeight
	default:
		return s.geom.MaxOffset
	}
}

// PeekHeight returns the configured peek height, or PeekHeightAuto.
func (s *Sheet) PeekHeight() int {
	return s.cfg.PeekHeight
}

// SetPeekHeight changes the collapsed peek height. PeekHeightAuto switches
// to the automatic height; other negative values count as zero. A collapsed
// sheet is laid out again.
func (s *Sheet) SetPeekHeight(px int) {
	if px != PeekHeightAuto {
		px = max(px, 0)
	}
	if px == s.cfg.PeekHeight {
		return
	}
	s.cfg.PeekHeight = px
	if s.measured {
		s.geom = measureGeometry(s.geom.ParentWidth, s.geom.ParentHeight, s.geom.PanelHeight, s.cfg)
		if s.state == StateCollapsed {
			s.requestLayout()
		}
	}
}

// AnchorThreshold returns the anchor position as a fraction of the parent
// height.
func (s *Sheet) AnchorThreshold() float64 {
	return s.cfg.AnchorThreshold
}

// SetAnchorThreshold moves the anchor. It returns ErrAnchorThreshold for
// values outside (0, 1].
func (s *Sheet) SetAnchorThreshold(t float64) error {
	if !validAnchorThreshold(t) {
		return fmt.Errorf("%w: %v", ErrAnchorThreshold, t)
	}
	s.cfg.AnchorThreshold = t
	if s.measured {
		s.geom.AnchorOffset = anchorOffset(s.geom.ParentHeight, t, s.geom.MinOffset, s.geom.MaxOffset)
		if s.state == StateAnchor {
			s.requestLayout()
		}
	}
	return nil
}

// Hideable reports whether the user can swipe the sheet away.
func (s *Sheet) Hideable() bool {
	return s.cfg.Hideable
}

// SetHideable sets whether the user can swipe the sheet away.
func (s *Sheet) SetHideable(v bool) {
	s.cfg.Hideable = v
}

// SkipCollapsed reports whether a release hides a hideable sheet instead of
// collapsing it.
func (s *Sheet) SkipCollapsed() bool {
	return s.cfg.SkipCollapsed
}

// SetSkipCollapsed sets whether a release hides a hideable sheet instead of
// collapsing it.
func (s *Sheet) SetSkipCollapsed(v bool) {
	s.cfg.SkipCollapsed = v
}

// Config returns the current settings.
func (s *Sheet) Config() Config {
	return s.cfg
}

func (s *Sheet) requestLayout() {
	s.layoutPending = true
	s.host.RequestLayout()
}

// setStateInternal changes the state and notifies on actual changes only.
func (s *Sheet) setStateInternal(st State) {
	if s.state == st {
		return
	}
	s.state = st
	if s.callbacks.StateChanged != nil {
		s.callbacks.StateChanged(st)
	}
}

func (s *Sheet) startSettling(st State) {
	top, ok := s.geom.offsetFor(st, s.cfg.Hideable)
	if !ok {
		panic(fmt.Sprintf("sheet: illegal state argument: %v", st))
	}
	s.settle(st, s.helper.smoothSlideTo(top))
}

// settle enters Settling towards target when the panel is animating, and
// target directly otherwise.
func (s *Sheet) settle(target State, animating bool) {
	if !animating {
		s.settlePending = false
		s.setStateInternal(target)
		return
	}
	s.settleTarget = target
	s.settlePending = true
	s.setStateInternal(StateSettling)
	s.host.ScheduleFrame()
}

// Frame advances a settle animation. Hosts call it for every frame they
// scheduled; calls without a pending settle do nothing.
func (s *Sheet) Frame() {
	if !s.settlePending {
		return
	}
	if s.state != StateSettling {
		// A drag took over.
		s.settlePending = false
		return
	}
	if s.helper.continueSettling(s.now()) {
		s.host.ScheduleFrame()
		return
	}
	s.settlePending = false
	s.setStateInternal(s.settleTarget)
}

// Settling reports whether a settle animation is waiting for frames.
func (s *Sheet) Settling() bool {
	return s.settlePending
}

type nopHost struct{}

func (nopHost) Shown() bool    { return true }
func (nopHost) ScheduleFrame() {}
func (nopHost) RequestLayout() {}

package sheet

import (
	"image"
	"time"
)

// PointerID identifies a pointer across the events of a gesture.
type PointerID int

// NoPointer is the pointer id used when no pointer is tracked.
const NoPointer PointerID = -1

// Action is the kind of a pointer event.
type Action int

const (
	ActionDown Action = iota
	ActionMove
	ActionUp
	ActionCancel
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionDown:
		return "Down"
	case ActionMove:
		return "Move"
	case ActionUp:
		return "Up"
	case ActionCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// Event is a pointer event in parent coordinates. Time is taken from any
// monotonic clock, as long as all events of a sheet share it.
type Event struct {
	Action  Action
	Pointer PointerID
	X, Y    float64
	Time    time.Duration
}

// Axes is a set of scroll axes.
type Axes int

const (
	AxisHorizontal Axes = 1 << iota
	AxisVertical
)

// Host is the environment a sheet lives in.
type Host interface {
	// Shown reports whether the panel is currently visible to the user.
	Shown() bool
	// ScheduleFrame asks for Frame to be called on the next frame.
	ScheduleFrame()
	// RequestLayout asks for Measure to be called again.
	RequestLayout()
}

// View is a node of the panel content tree.
type View interface {
	NestedScrollingEnabled() bool
	Children() []View
}

// ScrollingView is a view that scrolls vertically and takes part in nested
// scrolling. Implementations are compared by identity and should be pointer
// types.
type ScrollingView interface {
	View
	// Bounds is the view rectangle relative to the panel's top left corner.
	Bounds() image.Rectangle
	// CanScrollUp reports whether the content can still scroll towards its
	// start.
	CanScrollUp() bool
}

// Callbacks receive sheet notifications. Nil fields are skipped.
type Callbacks struct {
	// StateChanged fires whenever the state value changes.
	StateChanged func(State)
	// Slide fires whenever the top offset changes. The offset is 1 at
	// MinOffset, 0 at MaxOffset and -1 at the bottom of the parent.
	Slide func(offset float64)
}

// Measurer is implemented by behaviors that react to layout.
type Measurer interface {
	Measure(parentWidth, parentHeight, panelHeight int)
}

// TouchHandler is implemented by behaviors that take part in pointer
// dispatch.
type TouchHandler interface {
	InterceptTouch(ev Event) bool
	Touch(ev Event) bool
}

// NestedScroller is implemented by behaviors that consume scroll deltas
// before a nested scrolling view does.
type NestedScroller interface {
	StartNestedScroll(axes Axes) bool
	NestedPreScroll(target ScrollingView, dx, dy int) (consumedDy int)
	StopNestedScroll(target ScrollingView)
	NestedPreFling(target ScrollingView, vx, vy float64) bool
}

// StateHolder is implemented by behaviors with a persistable state.
type StateHolder interface {
	State() State
	SetState(st State)
	Save(super []byte) SavedState
	Restore(ss SavedState) []byte
}

// Behavior is the full set of hooks a host drives.
type Behavior interface {
	Measurer
	TouchHandler
	NestedScroller
	StateHolder
	Frame()
}

var _ Behavior = (*Sheet)(nil)

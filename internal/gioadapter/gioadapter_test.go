package gioadapter

import (
	"image"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/anchorsheet/internal/sheet"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		kind pointer.Kind
		want sheet.Action
		ok   bool
	}{
		{pointer.Press, sheet.ActionDown, true},
		{pointer.Drag, sheet.ActionMove, true},
		{pointer.Release, sheet.ActionUp, true},
		{pointer.Cancel, sheet.ActionCancel, true},
		{pointer.Move, 0, false},
		{pointer.Scroll, 0, false},
		{pointer.Enter, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			ev, ok := Convert(pointer.Event{
				Kind:      tt.kind,
				PointerID: 3,
				Position:  f32.Pt(12, 340.5),
				Time:      25 * time.Millisecond,
			})
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.want, ev.Action)
			assert.Equal(t, sheet.PointerID(3), ev.Pointer)
			assert.InDelta(t, 12, ev.X, 1e-9)
			assert.InDelta(t, 340.5, ev.Y, 1e-9)
			assert.Equal(t, 25*time.Millisecond, ev.Time)
		})
	}
}

func TestScrollDelta(t *testing.T) {
	dy, ok := ScrollDelta(pointer.Event{Kind: pointer.Scroll, Scroll: f32.Pt(0, 39.6)})
	assert.True(t, ok)
	assert.Equal(t, 40, dy)

	_, ok = ScrollDelta(pointer.Event{Kind: pointer.Scroll, Scroll: f32.Pt(30, 0.2)})
	assert.False(t, ok, "horizontal only")

	_, ok = ScrollDelta(pointer.Event{Kind: pointer.Press})
	assert.False(t, ok)
}

type fakeTouch struct {
	interceptOn map[sheet.Action]bool
	touchOn     map[sheet.Action]bool
	intercepted []sheet.Action
	touched     []sheet.Action
}

func (f *fakeTouch) InterceptTouch(ev sheet.Event) bool {
	f.intercepted = append(f.intercepted, ev.Action)
	return f.interceptOn[ev.Action]
}

func (f *fakeTouch) Touch(ev sheet.Event) bool {
	f.touched = append(f.touched, ev.Action)
	return f.touchOn[ev.Action]
}

func at(a sheet.Action) sheet.Event {
	return sheet.Event{Action: a, Y: 100}
}

func TestRouter_ContentDownNotTouched(t *testing.T) {
	h := &fakeTouch{touchOn: map[sheet.Action]bool{sheet.ActionDown: true}}
	r := &Router{Sheet: h}

	assert.False(t, r.Route(at(sheet.ActionDown), true))
	assert.True(t, r.Active())
	assert.Empty(t, h.touched)

	assert.False(t, r.Route(at(sheet.ActionUp), false))
	assert.False(t, r.Active())
	assert.Equal(t, []sheet.Action{sheet.ActionDown, sheet.ActionUp}, h.intercepted)
}

func TestRouter_InterceptTakesRestOfGesture(t *testing.T) {
	h := &fakeTouch{}
	r := &Router{Sheet: h}

	r.Route(at(sheet.ActionDown), true)
	assert.False(t, r.Route(at(sheet.ActionMove), false))

	h.interceptOn = map[sheet.Action]bool{sheet.ActionMove: true}
	assert.True(t, r.Route(at(sheet.ActionMove), false))
	assert.True(t, r.Route(at(sheet.ActionMove), false))
	assert.True(t, r.Route(at(sheet.ActionUp), false))

	assert.Equal(t, []sheet.Action{sheet.ActionDown, sheet.ActionMove, sheet.ActionMove}, h.intercepted)
	assert.Equal(t, []sheet.Action{sheet.ActionMove, sheet.ActionUp}, h.touched)
	assert.False(t, r.Active())
}

func TestRouter_LostReleaseCancels(t *testing.T) {
	h := &fakeTouch{touchOn: map[sheet.Action]bool{sheet.ActionDown: true}}
	r := &Router{Sheet: h}

	require.True(t, r.Route(at(sheet.ActionDown), false))
	require.True(t, r.Route(at(sheet.ActionDown), false))
	assert.Equal(t, []sheet.Action{sheet.ActionDown, sheet.ActionCancel, sheet.ActionDown}, h.touched)
}

func TestRouter_IgnoresEventsOutsideGesture(t *testing.T) {
	h := &fakeTouch{}
	r := &Router{Sheet: h}

	assert.False(t, r.Route(at(sheet.ActionMove), false))
	assert.Empty(t, h.intercepted)
	assert.Empty(t, h.touched)
}

type list struct {
	bounds image.Rectangle
}

func (l *list) NestedScrollingEnabled() bool { return true }
func (l *list) Children() []sheet.View       { return nil }
func (l *list) Bounds() image.Rectangle      { return l.bounds }
func (l *list) CanScrollUp() bool            { return false }

type panel struct {
	children []sheet.View
}

func (p *panel) NestedScrollingEnabled() bool { return false }
func (p *panel) Children() []sheet.View       { return p.children }

func newSheet(t *testing.T, now *time.Duration) (*sheet.Sheet, *list) {
	t.Helper()
	cfg := sheet.DefaultConfig()
	cfg.PeekHeight = 100
	cfg.AnchorThreshold = 0.8
	s := sheet.New(cfg, nil, sheet.WithClock(func() time.Duration { return *now }))
	l := &list{bounds: image.Rect(0, 50, 400, 1000)}
	s.SetContent(&panel{children: []sheet.View{l}})
	s.Measure(400, 1000, 1000)
	require.Equal(t, 900, s.Top())
	return s, l
}

func TestRouter_DragsSheet(t *testing.T) {
	var now time.Duration
	s, _ := newSheet(t, &now)
	r := &Router{Sheet: s}

	down, ok := Convert(pointer.Event{Kind: pointer.Press, Position: f32.Pt(10, 920)})
	require.True(t, ok)
	require.True(t, r.Route(down, false))

	y := float32(920)
	for i := 1; i <= 8; i++ {
		y -= 100
		ev, _ := Convert(pointer.Event{
			Kind:     pointer.Drag,
			Position: f32.Pt(10, y),
			Time:     time.Duration(i) * 10 * time.Millisecond,
		})
		assert.True(t, r.Route(ev, false))
	}
	assert.Equal(t, 100, s.Top())

	up, _ := Convert(pointer.Event{Kind: pointer.Release, Position: f32.Pt(10, y), Time: 85 * time.Millisecond})
	r.Route(up, false)

	for i := 0; i < 200 && s.Settling(); i++ {
		now += 16 * time.Millisecond
		s.Frame()
	}
	assert.Equal(t, sheet.StateExpanded, s.State())
	assert.Equal(t, 0, s.Top())
}

type fakeNested struct {
	start    bool
	consume  int
	fling    bool
	stops    int
	flingsAt []float64
}

func (f *fakeNested) StartNestedScroll(sheet.Axes) bool { return f.start }

func (f *fakeNested) NestedPreScroll(_ sheet.ScrollingView, _, dy int) int {
	return min(dy, f.consume)
}

func (f *fakeNested) StopNestedScroll(sheet.ScrollingView) { f.stops++ }

func (f *fakeNested) NestedPreFling(_ sheet.ScrollingView, _, vy float64) bool {
	f.flingsAt = append(f.flingsAt, vy)
	return f.fling
}

func TestNestedScroll_StopsAfterPause(t *testing.T) {
	f := &fakeNested{start: true, consume: 4}
	n := &NestedScroll{Sheet: f, Target: &list{}}

	assert.Equal(t, 6, n.Scroll(10, 0))
	assert.Equal(t, 0, n.Scroll(3, 100*time.Millisecond))
	due, ok := n.Due()
	require.True(t, ok)
	assert.Equal(t, 250*time.Millisecond, due)

	assert.False(t, n.Tick(200*time.Millisecond))
	assert.True(t, n.Tick(250*time.Millisecond))
	assert.False(t, n.Active())
	assert.Equal(t, 1, f.stops)
	assert.Empty(t, f.flingsAt, "a pause is not a fling")
}

func TestNestedScroll_NotStarted(t *testing.T) {
	f := &fakeNested{consume: 4}
	n := &NestedScroll{Sheet: f, Target: &list{}}

	assert.Equal(t, 10, n.Scroll(10, 0))
	assert.False(t, n.Active())
	assert.False(t, n.Stop(500))
	assert.Zero(t, f.stops)
}

func TestNestedScroll_StopOffersFling(t *testing.T) {
	f := &fakeNested{start: true, fling: true}
	n := &NestedScroll{Sheet: f, Target: &list{}}

	n.Scroll(5, 0)
	assert.True(t, n.Stop(-800))
	assert.Equal(t, []float64{-800}, f.flingsAt)
	assert.Equal(t, 1, f.stops)
}

func TestNestedScroll_RealSheetPullsUp(t *testing.T) {
	var now time.Duration
	s, l := newSheet(t, &now)
	n := &NestedScroll{Sheet: s, Target: l}

	assert.Equal(t, 0, n.Scroll(40, 0))
	assert.Equal(t, 860, s.Top())
	assert.Equal(t, sheet.StateDragging, s.State())

	n.Tick(ScrollStopDelay)
	for i := 0; i < 200 && s.Settling(); i++ {
		now += 16 * time.Millisecond
		s.Frame()
	}
	assert.True(t, s.State().IsResting())
}

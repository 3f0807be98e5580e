package sheet

import (
	"image"
	"testing"
	"time"
)

const (
	testWidth  = 400
	testHeight = 1000
	frameStep  = 16 * time.Millisecond
)

type fakeHost struct {
	hidden  bool
	frames  int
	layouts int
}

func (h *fakeHost) Shown() bool    { return !h.hidden }
func (h *fakeHost) ScheduleFrame() { h.frames++ }
func (h *fakeHost) RequestLayout() { h.layouts++ }

type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Now() time.Duration { return c.now }

type fakeView struct {
	nested   bool
	children []View
}

func (v *fakeView) NestedScrollingEnabled() bool { return v.nested }
func (v *fakeView) Children() []View             { return v.children }

type fakeScroll struct {
	fakeView
	bounds image.Rectangle
	canUp  bool
}

func (v *fakeScroll) Bounds() image.Rectangle { return v.bounds }
func (v *fakeScroll) CanScrollUp() bool       { return v.canUp }

type recorder struct {
	states []State
	slides []float64
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		StateChanged: func(st State) { r.states = append(r.states, st) },
		Slide:        func(off float64) { r.slides = append(r.slides, off) },
	}
}

type fixture struct {
	sheet  *Sheet
	host   *fakeHost
	clock  *fakeClock
	rec    *recorder
	scroll *fakeScroll
}

// testConfig gives min 0, anchor 800 and max 900 in a 400x1000 parent with
// a full height panel.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.PeekHeight = 100
	cfg.AnchorThreshold = 0.8
	return cfg
}

func newFixture(t *testing.T, cfg Config, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		host:  &fakeHost{},
		clock: &fakeClock{},
		rec:   &recorder{},
		scroll: &fakeScroll{
			fakeView: fakeView{nested: true},
			bounds:   image.Rect(0, 50, testWidth, testHeight),
		},
	}
	opts = append([]Option{WithCallbacks(f.rec.callbacks()), WithClock(f.clock.Now)}, opts...)
	f.sheet = New(cfg, f.host, opts...)
	f.sheet.SetContent(&fakeView{children: []View{f.scroll}})
	f.sheet.Measure(testWidth, testHeight, testHeight)
	return f
}

// settle runs frames until the sheet stops animating.
func (f *fixture) settle(t *testing.T) {
	t.Helper()
	for range 200 {
		if !f.sheet.Settling() {
			return
		}
		f.clock.now += frameStep
		f.sheet.Frame()
	}
	t.Fatal("sheet did not settle")
}

func (f *fixture) event(a Action, y float64, at time.Duration) Event {
	return Event{Action: a, Pointer: 0, X: 10, Y: y, Time: at}
}

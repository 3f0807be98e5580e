// Command gio-sheet shows a sheet in a desktop window. Drag the panel or
// scroll its list with the wheel.
package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/llehouerou/anchorsheet/internal/gioadapter"
	"github.com/llehouerou/anchorsheet/internal/sheet"
)

const (
	headerHeight = 72
	rowHeight    = 48
	itemCount    = 60
)

var (
	bgColor     = color.NRGBA{R: 0xe8, G: 0xea, B: 0xed, A: 0xff}
	panelColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	handleColor = color.NRGBA{R: 0xbd, G: 0xc1, B: 0xc6, A: 0xff}
	dividerGray = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

func main() {
	go func() {
		w := new(app.Window)
		w.Option(app.Title("Anchor sheet"))
		w.Option(app.Size(unit.Dp(420), unit.Dp(760)))

		if err := run(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// host records the requests the sheet makes between frames.
type host struct {
	frame  bool
	layout bool
}

func (h *host) Shown() bool    { return true }
func (h *host) ScheduleFrame() { h.frame = true }
func (h *host) RequestLayout() { h.layout = true }

// listView is the scrolling list of the panel, in pixels.
type listView struct {
	bounds image.Rectangle
	offset int
}

func (l *listView) NestedScrollingEnabled() bool { return true }
func (l *listView) Children() []sheet.View       { return nil }
func (l *listView) Bounds() image.Rectangle      { return l.bounds }
func (l *listView) CanScrollUp() bool            { return l.offset > 0 }

// ScrollBy scrolls by dy pixels and returns the distance scrolled.
func (l *listView) ScrollBy(dy int) int {
	limit := max(itemCount*rowHeight-l.bounds.Dy(), 0)
	next := min(max(l.offset+dy, 0), limit)
	moved := next - l.offset
	l.offset = next
	return moved
}

type panelView struct {
	list *listView
}

func (p *panelView) NestedScrollingEnabled() bool { return false }
func (p *panelView) Children() []sheet.View       { return []sheet.View{p.list} }

type viewer struct {
	theme  *material.Theme
	sheet  *sheet.Sheet
	host   *host
	list   *listView
	router gioadapter.Router
	nested gioadapter.NestedScroll

	start    time.Time
	now      time.Duration
	slide    float64
	size     image.Point
	listDrag bool
	lastY    float64
}

func run(w *app.Window) error {
	v := &viewer{
		theme: material.NewTheme(),
		host:  &host{},
		list:  &listView{},
		start: time.Now(),
	}
	v.theme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	cfg := sheet.DefaultConfig()
	cfg.Hideable = true
	v.sheet = sheet.New(cfg, v.host,
		sheet.WithClock(func() time.Duration { return v.now }),
		sheet.WithCallbacks(sheet.Callbacks{
			StateChanged: func(st sheet.State) { log.Printf("sheet: %s", st) },
			Slide:        func(offset float64) { v.slide = offset },
		}),
	)
	v.sheet.SetContent(&panelView{list: v.list})
	v.router.Sheet = v.sheet
	v.nested.Sheet = v.sheet
	v.nested.Target = v.list

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := layout.Context{
				Ops:         &ops,
				Constraints: layout.Exact(e.Size),
				Metric:      e.Metric,
				Now:         e.Now,
				Source:      e.Source,
			}
			ops.Reset()

			v.now = e.Now.Sub(v.start)
			v.measure(e.Size)
			v.handleInput(gtx)
			v.tick()
			v.layout(gtx)
			v.invalidate(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (v *viewer) measure(size image.Point) {
	if size == v.size && !v.host.layout {
		return
	}
	v.size = size
	v.host.layout = false
	v.list.bounds = image.Rect(0, headerHeight, size.X, size.Y)
	v.sheet.Measure(size.X, size.Y, size.Y)
}

// tick serves the frame the sheet asked for and ends a paused scroll.
func (v *viewer) tick() {
	v.nested.Tick(v.now)
	if v.host.frame {
		v.host.frame = false
		v.sheet.Frame()
	}
}

func (v *viewer) invalidate(gtx layout.Context) {
	if v.host.frame {
		gtx.Execute(op.InvalidateCmd{})
		return
	}
	if due, ok := v.nested.Due(); ok {
		gtx.Execute(op.InvalidateCmd{At: v.start.Add(due)})
	}
}

func (v *viewer) handleInput(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  v,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: math.MinInt32, Max: math.MaxInt32},
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			v.pointer(pe)
		}
	}
}

func (v *viewer) pointer(pe pointer.Event) {
	if dy, ok := gioadapter.ScrollDelta(pe); ok {
		if int(pe.Position.Y) >= v.sheet.Top() {
			v.list.ScrollBy(v.nested.Scroll(dy, v.now))
		}
		return
	}

	ev, ok := gioadapter.Convert(pe)
	if !ok {
		return
	}
	switch ev.Action {
	case sheet.ActionDown:
		v.listDrag = v.listContains(ev.X, ev.Y)
		v.lastY = ev.Y
		if v.router.Route(ev, v.listDrag) {
			v.listDrag = false
		}
	case sheet.ActionMove:
		dy := int(math.Round(v.lastY - ev.Y))
		v.lastY = ev.Y
		if v.router.Route(ev, false) {
			if v.listDrag {
				v.nested.Stop(0)
				v.listDrag = false
			}
			return
		}
		if v.listDrag && dy != 0 {
			v.list.ScrollBy(v.nested.Scroll(dy, v.now))
		}
	default:
		v.router.Route(ev, false)
		if v.listDrag {
			v.nested.Stop(0)
			v.listDrag = false
		}
	}
}

func (v *viewer) listContains(x, y float64) bool {
	p := image.Pt(int(x), int(y)-v.sheet.Top())
	return p.In(v.list.bounds)
}

func (v *viewer) layout(gtx layout.Context) {
	paint.Fill(gtx.Ops, bgColor)

	area := clip.Rect(image.Rectangle{Max: v.size}).Push(gtx.Ops)
	event.Op(gtx.Ops, v)
	area.Pop()

	v.label(gtx, image.Pt(gtx.Dp(16), gtx.Dp(16)), "Drag the sheet or scroll its list", handleColor)

	// The base darkens as the sheet opens past its peek.
	if v.slide > 0 {
		paint.Fill(gtx.Ops, color.NRGBA{A: uint8(v.slide * 0x60)})
	}

	if !v.sheet.Measured() || v.sheet.Top() >= v.size.Y {
		return
	}
	defer op.Offset(image.Pt(0, v.sheet.Top())).Push(gtx.Ops).Pop()

	r := gtx.Dp(12)
	panel := clip.RRect{Rect: image.Rectangle{Max: v.size}, NE: r, NW: r}.Push(gtx.Ops)
	paint.Fill(gtx.Ops, panelColor)

	hw := gtx.Dp(36)
	handle := image.Rect((v.size.X-hw)/2, gtx.Dp(8), (v.size.X+hw)/2, gtx.Dp(12))
	paint.FillShape(gtx.Ops, handleColor, clip.UniformRRect(handle, gtx.Dp(2)).Op(gtx.Ops))

	title := fmt.Sprintf("%s  %+.2f", v.sheet.State(), v.sheet.SlideOffset())
	v.label(gtx, image.Pt(gtx.Dp(16), gtx.Dp(24)), title, color.NRGBA{A: 0xff})

	v.layoutList(gtx)
	panel.Pop()
}

func (v *viewer) layoutList(gtx layout.Context) {
	b := v.list.bounds
	defer clip.Rect(b).Push(gtx.Ops).Pop()

	first := v.list.offset / rowHeight
	for i := first; i < itemCount; i++ {
		y := b.Min.Y + i*rowHeight - v.list.offset
		if y >= b.Max.Y {
			break
		}
		divider := image.Rect(gtx.Dp(16), y+rowHeight-1, b.Max.X, y+rowHeight)
		paint.FillShape(gtx.Ops, dividerGray, clip.Rect(divider).Op())
		v.label(gtx, image.Pt(gtx.Dp(16), y+rowHeight/3), fmt.Sprintf("Place %d", i+1), color.NRGBA{A: 0xde})
	}
}

func (v *viewer) label(gtx layout.Context, at image.Point, s string, c color.NRGBA) {
	defer op.Offset(at).Push(gtx.Ops).Pop()
	gtx.Constraints.Min = image.Point{}
	l := material.Body1(v.theme, s)
	l.Color = c
	l.Layout(gtx)
}

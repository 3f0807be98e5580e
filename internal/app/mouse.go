package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/anchorsheet/internal/sheet"
	"github.com/llehouerou/anchorsheet/internal/ui/sheetview"
)

// wheelStep is the number of rows one wheel notch scrolls.
const wheelStep = 2

// gesture tracks where the events of the current button gesture go.
type gesture struct {
	active bool
	// toSheet routes the rest of the gesture to Sheet.Touch.
	toSheet bool
	// inList is set when the list took the down; its drags scroll it.
	inList bool
	onBase bool
	moved  bool
	lastY  int
}

// nestedScroll tracks a scroll of the list that the sheet takes part in.
type nestedScroll struct {
	active bool
	gen    int
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		if msg.Action != tea.MouseActionPress || !m.panelContainsCell(msg.X, msg.Y) {
			return nil
		}
		dy := wheelStep
		if msg.Button == tea.MouseButtonWheelUp {
			dy = -wheelStep
		}
		return m.scrollList(dy)
	}

	ev, ok := m.pointerEvent(msg)
	if !ok {
		return nil
	}
	switch ev.Action {
	case sheet.ActionDown:
		return m.pointerDown(ev, msg.Y)
	case sheet.ActionMove:
		m.pointerMove(ev, msg.Y)
	case sheet.ActionUp:
		return m.pointerUp(ev, msg.Y)
	}
	return nil
}

// pointerEvent converts a left button mouse message. Motion without a
// pressed button is ignored.
func (m *Model) pointerEvent(msg tea.MouseMsg) (sheet.Event, bool) {
	ev := sheet.Event{
		Pointer: 0,
		X:       float64(msg.X),
		Y:       float64(msg.Y),
		Time:    m.clock(),
	}
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		ev.Action = sheet.ActionDown
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		ev.Action = sheet.ActionMove
	case msg.Action == tea.MouseActionRelease:
		ev.Action = sheet.ActionUp
	default:
		return sheet.Event{}, false
	}
	return ev, true
}

func (m *Model) pointerDown(ev sheet.Event, y int) tea.Cmd {
	g := m.gesture
	if g.active {
		// The release of the previous gesture was lost.
		cancel := ev
		cancel.Action = sheet.ActionCancel
		m.endGesture(cancel)
	}
	*g = gesture{active: true, lastY: y}

	if m.Sheet.InterceptTouch(ev) {
		g.toSheet = true
		return nil
	}
	if m.listContainsCell(int(ev.X), y) {
		g.inList = true
		return nil
	}
	g.toSheet = m.Sheet.Touch(ev)
	g.onBase = !g.toSheet && !m.panelContainsCell(int(ev.X), y)
	return nil
}

func (m *Model) pointerMove(ev sheet.Event, y int) {
	g := m.gesture
	if !g.active {
		return
	}
	dy := g.lastY - y
	g.lastY = y
	if dy != 0 {
		g.moved = true
	}

	if g.toSheet {
		m.Sheet.Touch(ev)
		return
	}
	if m.Sheet.InterceptTouch(ev) {
		if g.inList {
			m.stopNested()
			g.inList = false
		}
		g.toSheet = true
		return
	}
	if g.inList && dy != 0 {
		m.dragList(dy)
	}
}

func (m *Model) pointerUp(ev sheet.Event, y int) tea.Cmd {
	g := *m.gesture
	if !g.active {
		return nil
	}
	m.endGesture(ev)

	switch {
	case g.moved || g.toSheet:
		return nil
	case g.inList:
		row := y - m.Sheet.Top() - sheetview.HeaderRows
		if i := m.Panel.List().ItemAt(row); i >= 0 {
			m.Selected = i
			m.setState(sheet.StateAnchor)
		}
	case g.onBase:
		m.baseClicked()
	}
	return nil
}

// endGesture delivers the final event of a gesture and resets the routing.
func (m *Model) endGesture(ev sheet.Event) {
	g := m.gesture
	if g.toSheet {
		m.Sheet.Touch(ev)
	} else {
		m.Sheet.InterceptTouch(ev)
	}
	if g.inList {
		m.stopNested()
	}
	*g = gesture{}
}

// baseClicked mirrors a tap on the content under the sheet: it brings a
// collapsed or hidden sheet to the anchor and collapses an open one.
func (m *Model) baseClicked() {
	switch m.Sheet.State() {
	case sheet.StateAnchor, sheet.StateExpanded:
		m.setState(sheet.StateCollapsed)
	case sheet.StateCollapsed, sheet.StateHidden, sheet.StateForceHidden:
		m.setState(sheet.StateAnchor)
	}
}

// scrollList scrolls the list by dy rows through the sheet, ending the
// scroll after a pause.
func (m *Model) scrollList(dy int) tea.Cmd {
	if !m.Sheet.Measured() {
		return nil
	}
	m.nestedPreScroll(dy)
	m.nested.gen++
	return ScrollStopCmd(m.nested.gen)
}

// dragList scrolls the list for a drag that started on it. The scroll ends
// with the gesture.
func (m *Model) dragList(dy int) {
	m.nestedPreScroll(dy)
	m.nested.gen++
}

func (m *Model) nestedPreScroll(dy int) {
	list := m.Panel.List()
	if !m.nested.active {
		if !m.Sheet.StartNestedScroll(sheet.AxisVertical) {
			list.ScrollBy(dy)
			return
		}
		m.nested.active = true
	}
	consumed := m.Sheet.NestedPreScroll(list, 0, dy)
	list.ScrollBy(dy - consumed)
}

func (m *Model) handleScrollStop(msg ScrollStopMsg) {
	if msg.Gen == m.nested.gen {
		m.stopNested()
	}
}

func (m *Model) stopNested() {
	if !m.nested.active {
		return
	}
	m.nested.active = false
	m.Sheet.StopNestedScroll(m.Panel.List())
}

func (m *Model) panelContainsCell(x, y int) bool {
	top := m.Sheet.Top()
	return x >= 0 && x < m.dims.Width &&
		y >= top && y < top+m.dims.PanelHeight && m.dims.InParent(y)
}

func (m *Model) listContainsCell(x, y int) bool {
	b := m.Panel.List().Bounds()
	py := y - m.Sheet.Top()
	return m.dims.InParent(y) &&
		x >= b.Min.X && x < b.Max.X && py >= b.Min.Y && py < b.Max.Y
}

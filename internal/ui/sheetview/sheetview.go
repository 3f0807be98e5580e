// Package sheetview renders the sliding panel: its frame, the drag handle,
// a title row and a nested scrolling list.
package sheetview

import (
	"image"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/anchorsheet/internal/sheet"
	"github.com/llehouerou/anchorsheet/internal/ui/styles"
)

// HeaderRows is the number of panel rows above the list: the frame's top
// border, the handle and the title.
const HeaderRows = 3

// Model is the panel content. It is the root of the sheet's view tree.
type Model struct {
	width  int
	height int
	title  string
	state  sheet.State
	offset float64
	moving bool

	header *header
	list   *List
}

// New creates a panel with the given title.
func New(title string) *Model {
	return &Model{
		title:  title,
		state:  sheet.StateCollapsed,
		header: &header{},
		list:   &List{vp: viewport.New(0, 0), enabled: true},
	}
}

// SetSize lays the panel out. height is the full panel height, of which
// only the upper part may be on screen.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 0)
	m.height = max(height, 0)

	inner := max(m.width-2, 0)
	m.list.vp.Width = inner
	m.list.vp.Height = max(m.height-HeaderRows, 0)
	m.list.bounds = image.Rect(1, HeaderRows, 1+inner, max(m.height, HeaderRows))
	m.list.refresh()
}

// SetItems replaces the list content.
func (m *Model) SetItems(items []string) {
	m.list.items = items
	m.list.refresh()
}

// SetSheet updates what the chrome shows about the sheet.
func (m *Model) SetSheet(st sheet.State, offset float64) {
	m.state = st
	m.offset = offset
	m.moving = st == sheet.StateDragging || st == sheet.StateSettling
}

// List returns the nested scrolling list.
func (m *Model) List() *List {
	return m.list
}

// NestedScrollingEnabled implements sheet.View.
func (m *Model) NestedScrollingEnabled() bool { return false }

// Children implements sheet.View.
func (m *Model) Children() []sheet.View {
	return []sheet.View{m.header, m.list}
}

// View renders all rows of the panel.
func (m *Model) View() string {
	if m.width < 2 || m.height == 0 {
		return ""
	}
	inner := m.width - 2
	rows := []string{
		styles.Handle(inner, m.offset),
		m.titleRow(inner),
	}
	if m.list.vp.Height > 0 {
		rows = append(rows, m.list.vp.View())
	}
	out := styles.PanelStyle(m.moving).Width(inner).Render(strings.Join(rows, "\n"))
	if m.height < HeaderRows {
		lines := strings.Split(out, "\n")
		out = strings.Join(lines[:min(m.height, len(lines))], "\n")
	}
	return out
}

func (m *Model) titleRow(width int) string {
	s := styles.T().S()
	label := " " + strings.ToLower(m.state.String())
	avail := width - runewidth.StringWidth(label)
	if avail <= 0 {
		return runewidth.Truncate(label, width, "")
	}
	title := runewidth.Truncate(m.title, avail, "…")
	gap := strings.Repeat(" ", avail-runewidth.StringWidth(title))
	return styles.ApplyBoldGradient(title, styles.T().Primary, styles.T().Secondary) +
		gap + s.State.Render(label)
}

type header struct{}

func (*header) NestedScrollingEnabled() bool { return false }
func (*header) Children() []sheet.View       { return nil }

// List is the nested scrolling list of the panel. It implements
// sheet.ScrollingView.
type List struct {
	vp      viewport.Model
	items   []string
	bounds  image.Rectangle
	enabled bool
}

var _ sheet.ScrollingView = (*List)(nil)

// NestedScrollingEnabled implements sheet.View.
func (l *List) NestedScrollingEnabled() bool { return l.enabled }

// SetNestedScrollingEnabled turns nested scrolling on or off.
func (l *List) SetNestedScrollingEnabled(v bool) { l.enabled = v }

// Children implements sheet.View.
func (l *List) Children() []sheet.View { return nil }

// Bounds implements sheet.ScrollingView.
func (l *List) Bounds() image.Rectangle { return l.bounds }

// CanScrollUp implements sheet.ScrollingView.
func (l *List) CanScrollUp() bool { return l.vp.YOffset > 0 }

// Offset returns the index of the first visible item.
func (l *List) Offset() int { return l.vp.YOffset }

// ScrollBy scrolls by dy rows, positive towards the end, and returns the
// rows actually scrolled.
func (l *List) ScrollBy(dy int) int {
	before := l.vp.YOffset
	l.vp.SetYOffset(before + dy)
	return l.vp.YOffset - before
}

// ItemAt returns the index of the item at a row relative to the list's
// first visible row, or -1.
func (l *List) ItemAt(row int) int {
	if row < 0 || row >= l.vp.Height {
		return -1
	}
	i := l.vp.YOffset + row
	if i >= len(l.items) {
		return -1
	}
	return i
}

func (l *List) refresh() {
	lines := make([]string, len(l.items))
	for i, item := range l.items {
		lines[i] = runewidth.Truncate(item, l.vp.Width, "…")
	}
	l.vp.SetContent(strings.Join(lines, "\n"))
}

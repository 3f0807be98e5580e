// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/anchorsheet/internal/ui/overlay"
	"github.com/llehouerou/anchorsheet/internal/ui/styles"
)

// View renders the base view, the sheet over it and the status line.
func (m Model) View() string {
	if m.dims.Width == 0 {
		return ""
	}
	if m.dims.TooSmall() {
		return styles.T().S().Warning.Render("Terminal too small")
	}

	body := overlay.Place(m.renderBase(), m.Panel.View(), m.Sheet.Top(), m.dims.Width, m.dims.ParentHeight)
	if m.Notification != nil {
		body = overlay.Compose(body, m.renderNotification(), m.dims.Width)
	}
	return body + "\n" + m.renderStatus()
}

// renderBase draws the content under the sheet with markers at the resting
// offsets.
func (m Model) renderBase() string {
	s := styles.T().S()
	g := m.Sheet.Geometry()
	w := m.dims.Width

	rows := make([]string, m.dims.ParentHeight)
	for i := range rows {
		rows[i] = s.Map.Render(dots(w, i))
	}

	h := help.New()
	rows[0] = ansi.Truncate(" "+h.ShortHelpView(m.keys.ShortHelp()), w, "")
	if len(rows) > 1 {
		rows[1] = s.Subtle.Render(ansi.Truncate(" click here to anchor or collapse, drag the handle, scroll the list", w, ""))
	}

	marker := func(row int, label string) {
		if row > 1 && row < len(rows) {
			rows[row] = s.Muted.Render(ruler(w, label))
		}
	}
	marker(g.AnchorOffset, "anchor")
	marker(g.MaxOffset, "peek")
	return strings.Join(rows, "\n")
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	g := m.Sheet.Geometry()

	left := s.State.Render(strings.ToLower(m.Sheet.State().String())) +
		s.Muted.Render(fmt.Sprintf("  top %d/%d  slide %+.2f", m.Sheet.Top(), g.ParentHeight, m.Sheet.SlideOffset()))
	if m.Sheet.Hideable() {
		left += s.Subtle.Render("  hideable")
	}
	if m.Sheet.SkipCollapsed() {
		left += s.Subtle.Render("  skip-collapsed")
	}
	if m.Selected >= 0 {
		left += s.Base.Render(fmt.Sprintf("  #%d", m.Selected+1))
	}

	right := ""
	if m.LastChange != nil {
		right = s.Subtle.Render(fmt.Sprintf("%s %s ",
			strings.ToLower(m.LastChange.State.String()), humanize.Time(m.LastChange.At)))
	}

	gap := m.dims.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return ansi.Truncate(left, m.dims.Width, "")
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderNotification() string {
	t := styles.T()
	text := " " + m.Notification.Message + " "
	style := lipgloss.NewStyle().Foreground(t.FgBase).Background(t.BgBase).Bold(true)
	if strings.HasPrefix(m.Notification.Message, "Failed") {
		style = style.Foreground(t.Error)
	}
	text = ansi.Truncate(text, m.dims.Width-2, "…")
	pad := max(m.dims.Width-ansi.StringWidth(text)-1, 0)
	return strings.Repeat(" ", pad) + style.Render(text)
}

func dots(width, row int) string {
	var b strings.Builder
	for x := range width {
		if (x+row*3)%8 == 0 {
			b.WriteString("·")
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func ruler(width int, label string) string {
	label = " " + label + " "
	n := width - ansi.StringWidth(label)
	if n < 2 {
		return ansi.Truncate(label, width, "")
	}
	return strings.Repeat("┈", n-2) + label + "┈┈"
}

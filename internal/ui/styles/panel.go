package styles

import "github.com/charmbracelet/lipgloss"

var (
	restingPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true, true, false, true).
				BorderForeground(T().Border)

	movingPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true, true, false, true).
				BorderForeground(T().BorderFocus)
)

// PanelStyle returns the sheet frame style. A panel that is being dragged
// or is settling gets the accent border. The bottom border is left out so
// the frame can run off the bottom of the parent.
func PanelStyle(moving bool) lipgloss.Style {
	if moving {
		return movingPanelStyle
	}
	return restingPanelStyle
}

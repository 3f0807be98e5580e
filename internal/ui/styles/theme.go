package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles of the sheet demo.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - expanded handle, moving panel border
	Secondary lipgloss.Color // Gold/orange - anchor marker

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase  lipgloss.Color // Panel backgrounds
	BgMuted lipgloss.Color // Base view under the panel

	// Borders
	Border      lipgloss.Color // Resting panel border
	BorderFocus lipgloss.Color // Border while dragging or settling

	// Status colors
	Error   lipgloss.Color // Red - errors
	Warning lipgloss.Color // Yellow/orange - warnings

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // Default text
	Muted   lipgloss.Style // Dimmed text
	Subtle  lipgloss.Style // Very dim text
	State   lipgloss.Style // Sheet state label
	Map     lipgloss.Style // Base view background
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	// Bright purple accent
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	// Backgrounds
	BgBase:  lipgloss.Color("#1a1a1a"),
	BgMuted: lipgloss.Color("#262626"),

	// Borders
	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	// Status
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	return &Styles{
		Base:   lipgloss.NewStyle().Foreground(t.FgBase),
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		State: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true),
		Map: lipgloss.NewStyle().
			Background(t.BgMuted).
			Foreground(t.FgSubtle),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

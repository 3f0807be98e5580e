package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyBoldGradient renders bold text with a horizontal color gradient,
// one step per grapheme cluster.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Bold(true).Foreground(from).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		c := blend(from, to, float64(i)/last)
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(c).Render(cluster))
	}
	return b.String()
}

// SlideColor returns the color at a slide offset between from (offset 0
// and below, collapsed or lower) and to (offset 1, expanded).
func SlideColor(offset float64, from, to lipgloss.Color) lipgloss.Color {
	switch {
	case offset <= 0:
		return from
	case offset >= 1:
		return to
	}
	return blend(from, to, offset)
}

// Handle renders the drag handle centered in width columns, colored by the
// slide offset.
func Handle(width int, offset float64) string {
	const bar = "━━━━━━━━"
	if width <= 0 {
		return ""
	}
	barWidth := min(uniseg.StringWidth(bar), width)
	pad := (width - barWidth) / 2
	c := SlideColor(offset, T().FgSubtle, T().Primary)
	return strings.Repeat(" ", pad) +
		lipgloss.NewStyle().Foreground(c).Render(strings.Repeat("━", barWidth)) +
		strings.Repeat(" ", width-pad-barWidth)
}

// blend mixes from and to in HCL space, t in [0, 1].
func blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	c1, _ := colorful.MakeColor(toColor(from))
	c2, _ := colorful.MakeColor(toColor(to))
	return lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
}

// toColor parses a #rrggbb color. ANSI colors map to a neutral gray.
func toColor(c lipgloss.Color) color.Color {
	if s := string(c); len(s) == 7 && s[0] == '#' {
		if col, err := colorful.Hex(s); err == nil {
			return col
		}
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

// Package overlay composes a sliding panel over a base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place draws panel over base with the panel's first row at row top.
// Rows of the panel that fall outside [0, height) are cut, so a panel that
// slid partly below the bottom edge shows only its upper rows. Panel rows
// replace base rows entirely. The result has exactly height rows, each
// padded or truncated to width columns.
// This function is ANSI-aware and handles styled text correctly.
func Place(base, panel string, top, width, height int) string {
	if height <= 0 {
		return ""
	}
	rows := fit(strings.Split(base, "\n"), width, height)

	if panel != "" {
		for i, line := range strings.Split(panel, "\n") {
			row := top + i
			if row < 0 {
				continue
			}
			if row >= height {
				break
			}
			rows[row] = fitLine(line, width)
		}
	}

	return strings.Join(rows, "\n")
}

// Compose overlays content on top of a base view.
// Non-space characters in overlay replace the base at the same position.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		startCol := len(plain) - len(strings.TrimLeft(plain, " "))
		endCol := startCol + ansi.StringWidth(strings.TrimSpace(plain))
		content := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := fitLine(baseLines[i], width)
		line := ansi.Cut(baseLine, 0, startCol) + content
		if endCol < width {
			line += ansi.Cut(baseLine, endCol, width)
		}
		baseLines[i] = line
	}

	return strings.Join(baseLines, "\n")
}

func fit(lines []string, width, height int) []string {
	out := make([]string, height)
	for i := range out {
		if i < len(lines) {
			out[i] = fitLine(lines[i], width)
		} else {
			out[i] = strings.Repeat(" ", max(width, 0))
		}
	}
	return out
}

// fitLine pads or truncates a styled line to width columns.
func fitLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(line)
	switch {
	case w > width:
		return ansi.Truncate(line, width, "")
	case w < width:
		return line + strings.Repeat(" ", width-w)
	default:
		return line
	}
}

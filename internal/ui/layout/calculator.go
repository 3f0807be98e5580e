// Package layout provides pure functions for terminal dimension calculations.
package layout

// StatusBarHeight is the height of the status line below the sheet parent.
const StatusBarHeight = 1

// MinParentHeight is the smallest parent the sheet is laid out in.
const MinParentHeight = 4

// Dims is the terminal area split between the sheet parent and the status
// line. The parent starts at row 0, so terminal rows inside it are parent
// coordinates.
type Dims struct {
	Width        int
	ParentHeight int
	PanelHeight  int
	StatusRow    int
}

// Calculate splits a terminal of the given size. The panel is as tall as
// its parent.
func Calculate(width, height int) Dims {
	parent := ParentHeight(height)
	return Dims{
		Width:        max(width, 0),
		ParentHeight: parent,
		PanelHeight:  parent,
		StatusRow:    parent,
	}
}

// ParentHeight returns the rows left for the sheet parent.
func ParentHeight(windowHeight int) int {
	return max(windowHeight-StatusBarHeight, 0)
}

// TooSmall reports whether the terminal cannot host the sheet.
func (d Dims) TooSmall() bool {
	return d.ParentHeight < MinParentHeight || d.Width < 10
}

// InParent reports whether a terminal row belongs to the sheet parent.
func (d Dims) InParent(row int) bool {
	return row >= 0 && row < d.ParentHeight
}

// VisibleRows returns how many panel rows are on screen for a panel whose
// top is at top.
func (d Dims) VisibleRows(top int) int {
	if top >= d.ParentHeight {
		return 0
	}
	return min(d.ParentHeight-max(top, 0), d.PanelHeight)
}

package sheet

// Geometry is the result of measuring a sheet inside its parent. Offsets are
// top edge positions of the panel in parent coordinates; 0 is the top of the
// parent.
type Geometry struct {
	ParentWidth  int
	ParentHeight int
	PanelHeight  int
	// PeekHeight is the effective peek height, resolved when automatic.
	PeekHeight int

	MinOffset    int // fully expanded
	MaxOffset    int // collapsed
	AnchorOffset int
}

// measureGeometry derives the offsets for the given dimensions. Negative
// dimensions are treated as zero.
//
// The invariant 0 <= MinOffset <= AnchorOffset <= MaxOffset <= ParentHeight
// holds for every input.
func measureGeometry(parentWidth, parentHeight, panelHeight int, cfg Config) Geometry {
	parentWidth = max(parentWidth, 0)
	parentHeight = max(parentHeight, 0)
	panelHeight = max(panelHeight, 0)

	peek := cfg.PeekHeight
	if peek == PeekHeightAuto {
		peek = autoPeekHeight(cfg.PeekHeightMin, parentWidth, parentHeight)
	}
	peek = max(peek, 0)

	g := Geometry{
		ParentWidth:  parentWidth,
		ParentHeight: parentHeight,
		PanelHeight:  panelHeight,
		PeekHeight:   peek,
	}
	g.MinOffset = max(0, parentHeight-panelHeight)
	g.MaxOffset = min(max(parentHeight-peek, g.MinOffset), parentHeight)
	g.AnchorOffset = anchorOffset(parentHeight, cfg.AnchorThreshold, g.MinOffset, g.MaxOffset)
	return g
}

// autoPeekHeight leaves the area above the 16:9 keyline visible.
func autoPeekHeight(peekMin, parentWidth, parentHeight int) int {
	return max(peekMin, parentHeight-parentWidth*9/16)
}

func anchorOffset(parentHeight int, threshold float64, minOffset, maxOffset int) int {
	return clampInt(int(float64(parentHeight)*threshold), minOffset, maxOffset)
}

// offsetFor returns the resting top offset of st. It returns false for
// transient states and for Hidden when the sheet is not hideable.
func (g Geometry) offsetFor(st State, hideable bool) (int, bool) {
	switch st {
	case StateExpanded:
		return g.MinOffset, true
	case StateAnchor:
		return g.AnchorOffset, true
	case StateCollapsed:
		return g.MaxOffset, true
	case StateHidden:
		if hideable {
			return g.ParentHeight, true
		}
	case StateForceHidden:
		return g.ParentHeight, true
	}
	return 0, false
}

// dragLimit is the lowest top a drag may reach.
func (g Geometry) dragLimit(hideable bool) int {
	if hideable {
		return g.ParentHeight
	}
	return g.MaxOffset
}

func (g Geometry) clampTop(top int, hideable bool) int {
	return clampInt(top, g.MinOffset, g.dragLimit(hideable))
}

func (g Geometry) dragRange(hideable bool) int {
	return g.dragLimit(hideable) - g.MinOffset
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

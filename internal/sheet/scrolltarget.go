package sheet

// FindScrollingView returns the first view in depth first order, starting
// at root, that has nested scrolling enabled. It returns nil if there is
// none.
func FindScrollingView(root View) ScrollingView {
	if root == nil {
		return nil
	}
	if root.NestedScrollingEnabled() {
		if sv, ok := root.(ScrollingView); ok {
			return sv
		}
	}
	for _, child := range root.Children() {
		if sv := FindScrollingView(child); sv != nil {
			return sv
		}
	}
	return nil
}

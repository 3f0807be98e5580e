// Package sheet implements the interaction physics of a draggable bottom
// sheet with an anchor position.
//
// A Sheet tracks the top edge of a panel that slides over its parent. It
// rests in one of the states Expanded, Anchor, Collapsed, Hidden or
// ForceHidden and passes through Dragging and Settling while the user moves
// it or while it animates to a resting position.
//
// The package knows nothing about rendering. A host measures the parent and
// the panel, forwards pointer and nested scroll events, calls Frame when a
// frame it scheduled is due and reads Top to position the panel. All methods
// must be called from the host's event loop; a Sheet is not safe for
// concurrent use.
//
// Event routing expected from a host:
//
//   - every event of a gesture goes through InterceptTouch until it returns
//     true; from then on the rest of the gesture goes to Touch
//   - a down that no inner content consumes is also passed to Touch
//   - scroll deltas of the nested scrolling view go through
//     StartNestedScroll, NestedPreScroll and StopNestedScroll before the
//     view applies what was left unconsumed
package sheet

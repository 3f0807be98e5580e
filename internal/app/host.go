package app

import (
	"github.com/llehouerou/anchorsheet/internal/sheet"
)

// host connects the sheet to the bubbletea loop. The sheet calls it from
// inside Update; the requests are served once the handler returns.
type host struct {
	hidden          bool
	frameRequested  bool
	frameInFlight   bool
	layoutRequested bool
	changes         []sheet.State
}

func (h *host) Shown() bool    { return !h.hidden }
func (h *host) ScheduleFrame() { h.frameRequested = true }
func (h *host) RequestLayout() { h.layoutRequested = true }

func (h *host) callbacks() sheet.Callbacks {
	return sheet.Callbacks{
		StateChanged: func(st sheet.State) { h.changes = append(h.changes, st) },
	}
}

// takeChanges returns and clears the state changes seen since the last call.
func (h *host) takeChanges() []sheet.State {
	out := h.changes
	h.changes = nil
	return out
}

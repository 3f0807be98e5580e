// internal/app/app.go
package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/anchorsheet/internal/config"
	"github.com/llehouerou/anchorsheet/internal/errmsg"
	"github.com/llehouerou/anchorsheet/internal/sheet"
	"github.com/llehouerou/anchorsheet/internal/state"
	"github.com/llehouerou/anchorsheet/internal/ui/layout"
	"github.com/llehouerou/anchorsheet/internal/ui/sheetview"
)

// SheetName is the key the sheet state is stored under.
const SheetName = "main"

// Options configures a Model.
type Options struct {
	Sheet        sheet.Config
	InitialState sheet.State
	UI           config.UIConfig
	// StateMgr restores and saves the sheet. Nil disables persistence.
	StateMgr state.Interface
	// Clock is the monotonic clock shared by pointer events and the sheet.
	// Nil uses the time since New.
	Clock func() time.Duration
}

// Model is the root application model: a base view with a sheet over it.
type Model struct {
	Sheet    *sheet.Sheet
	Panel    *sheetview.Model
	StateMgr state.Interface

	host    *host
	clock   func() time.Duration
	fps     int
	dims    layout.Dims
	gesture *gesture
	nested  *nestedScroll
	keys    KeyMap

	// restoreOffset is the list offset applied after the first layout.
	restoreOffset int
	Selected      int
	LastChange    *state.Transition
	Notification  *Notification
	nextNoteID    int64
}

// New creates the model. A saved sheet state takes precedence over
// opts.InitialState.
func New(opts Options) Model {
	clock := opts.Clock
	if clock == nil {
		start := time.Now()
		clock = func() time.Duration { return time.Since(start) }
	}

	h := &host{}
	panel := sheetview.New("Nearby places")
	panel.SetItems(demoItems(opts.UI.ContentLines))

	st := opts.InitialState
	if st == 0 {
		st = sheet.StateCollapsed
	}
	sh := sheet.New(opts.Sheet, h,
		sheet.WithClock(clock),
		sheet.WithState(st),
		sheet.WithCallbacks(h.callbacks()),
	)
	sh.SetContent(panel)

	m := Model{
		Sheet:    sh,
		Panel:    panel,
		StateMgr: opts.StateMgr,
		host:     h,
		clock:    clock,
		fps:      opts.UI.FPS,
		gesture:  &gesture{},
		nested:   &nestedScroll{},
		keys:     DefaultKeyMap(),
		Selected: -1,
	}
	if m.fps <= 0 {
		m.fps = config.DefaultFPS
	}

	m.restore()
	panel.SetSheet(sh.State(), 0)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.Notification != nil {
		return NotificationClearCmd(m.Notification.ID)
	}
	return nil
}

// restore loads the saved sheet state and the most recent transition.
func (m *Model) restore() {
	if m.StateMgr == nil {
		return
	}
	rec, err := m.StateMgr.GetSheet(SheetName)
	if err != nil {
		m.notify(errmsg.Format(errmsg.OpSheetRestore, err))
		return
	}
	if rec != nil {
		m.restoreOffset = decodeSuper(m.Sheet.Restore(rec.Saved))
	}

	history, err := m.StateMgr.History(SheetName, 1)
	if err != nil {
		m.notify(errmsg.Format(errmsg.OpHistoryLoad, err))
		return
	}
	if len(history) > 0 {
		m.LastChange = &history[0]
	}
}

// Dims returns the current terminal layout.
func (m Model) Dims() layout.Dims {
	return m.dims
}

func demoItems(n int) []string {
	if n <= 0 {
		n = config.DefaultContentLines
	}
	kinds := []string{"Café", "Museum", "Park", "Bakery", "Library", "Station", "Market", "Gallery"}
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("%3d  %s %d", i+1, kinds[i%len(kinds)], i/len(kinds)+1)
	}
	return items
}

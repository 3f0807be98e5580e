// internal/app/update.go
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/anchorsheet/internal/errmsg"
	"github.com/llehouerou/anchorsheet/internal/sheet"
	"github.com/llehouerou/anchorsheet/internal/state"
	"github.com/llehouerou/anchorsheet/internal/ui/layout"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.saveSheet()
			return m, tea.Quit
		}
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case FrameMsg:
		m.host.frameInFlight = false
		m.Sheet.Frame()

	case ScrollStopMsg:
		m.handleScrollStop(msg)

	case ConfigReloadedMsg:
		cmd = m.handleConfigReloaded(msg)

	case NotificationClearMsg:
		if m.Notification != nil && m.Notification.ID == msg.ID {
			m.Notification = nil
		}
	}

	return m, tea.Batch(cmd, m.serveHost())
}

// serveHost answers the layout and frame requests the sheet made during
// the last handler and reacts to its state changes.
func (m *Model) serveHost() tea.Cmd {
	var cmds []tea.Cmd

	if m.host.layoutRequested {
		m.host.layoutRequested = false
		m.measure()
	}

	if changes := m.host.takeChanges(); len(changes) > 0 {
		cmds = append(cmds, m.stateChanged(changes))
	}
	m.Panel.SetSheet(m.Sheet.State(), m.Sheet.SlideOffset())

	if m.host.frameRequested {
		m.host.frameRequested = false
		if !m.host.frameInFlight {
			m.host.frameInFlight = true
			cmds = append(cmds, FrameCmd(m.fps))
		}
	}

	return tea.Batch(cmds...)
}

func (m *Model) resize(width, height int) {
	m.dims = layout.Calculate(width, height)
	m.host.hidden = m.dims.TooSmall()
	m.measure()
}

func (m *Model) measure() {
	m.Panel.SetSize(m.dims.Width, m.dims.PanelHeight)
	m.Sheet.Measure(m.dims.Width, m.dims.ParentHeight, m.dims.PanelHeight)
	if m.restoreOffset > 0 {
		m.Panel.List().ScrollBy(m.restoreOffset)
		m.restoreOffset = 0
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Expand):
		m.setState(sheet.StateExpanded)
	case key.Matches(msg, m.keys.Anchor):
		m.setState(sheet.StateAnchor)
	case key.Matches(msg, m.keys.Collapse):
		m.setState(sheet.StateCollapsed)
	case key.Matches(msg, m.keys.Hide):
		if !m.Sheet.Hideable() {
			return m.notify("Sheet is not hideable (H to toggle)")
		}
		m.setState(sheet.StateHidden)
	case key.Matches(msg, m.keys.ForceHide):
		m.setState(sheet.StateForceHidden)
	case key.Matches(msg, m.keys.Hideable):
		m.Sheet.SetHideable(!m.Sheet.Hideable())
		return m.notify(onOff("Hideable", m.Sheet.Hideable()))
	case key.Matches(msg, m.keys.SkipCollapsed):
		m.Sheet.SetSkipCollapsed(!m.Sheet.SkipCollapsed())
		return m.notify(onOff("Skip collapsed", m.Sheet.SkipCollapsed()))
	case key.Matches(msg, m.keys.ScrollDown):
		return m.scrollList(1)
	case key.Matches(msg, m.keys.ScrollUp):
		return m.scrollList(-1)
	}
	return nil
}

// setState moves the sheet to a resting state unless a gesture owns it.
func (m *Model) setState(st sheet.State) {
	if m.Sheet.State() == sheet.StateDragging {
		return
	}
	if st == sheet.StateHidden && !m.Sheet.Hideable() {
		return
	}
	m.Sheet.SetState(st)
}

// stateChanged records the resting states among changes and saves the
// sheet if it rests.
func (m *Model) stateChanged(changes []sheet.State) tea.Cmd {
	var failed error
	for _, st := range changes {
		if !st.IsResting() {
			continue
		}
		m.LastChange = &state.Transition{State: st, At: time.Now()}
		if m.StateMgr == nil {
			continue
		}
		if err := m.StateMgr.RecordTransition(SheetName, st); err != nil {
			failed = err
		}
	}
	if m.Sheet.State().IsResting() {
		m.saveSheet()
	}
	if failed != nil {
		return m.notify(errmsg.Format(errmsg.OpHistoryRecord, failed))
	}
	return nil
}

func (m *Model) handleConfigReloaded(msg ConfigReloadedMsg) tea.Cmd {
	if msg.Err != nil {
		return m.notify(errmsg.Format(errmsg.OpConfigReload, msg.Err))
	}
	sc, err := msg.Config.SheetConfig()
	if err != nil {
		return m.notify(errmsg.Format(errmsg.OpConfigReload, err))
	}

	m.Sheet.SetHideable(sc.Hideable)
	m.Sheet.SetSkipCollapsed(sc.SkipCollapsed)
	m.Sheet.SetPeekHeight(sc.PeekHeight)
	if err := m.Sheet.SetAnchorThreshold(sc.AnchorThreshold); err != nil {
		return m.notify(errmsg.Format(errmsg.OpAnchorThreshold, err))
	}
	m.fps = msg.Config.GetUIConfig().FPS
	return m.notify("Config reloaded")
}

// notify shows a message in the corner for NotificationDuration.
func (m *Model) notify(text string) tea.Cmd {
	m.nextNoteID++
	m.Notification = &Notification{ID: m.nextNoteID, Message: text}
	return NotificationClearCmd(m.nextNoteID)
}

func onOff(label string, v bool) string {
	if v {
		return label + ": on"
	}
	return label + ": off"
}

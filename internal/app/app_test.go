package app

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/anchorsheet/internal/config"
	"github.com/llehouerou/anchorsheet/internal/sheet"
	"github.com/llehouerou/anchorsheet/internal/state"
	"github.com/llehouerou/anchorsheet/internal/ui/testutil"
)

// Terminal of 80x24: parent 23 rows, expanded at 0, anchor at 11, peek at 20.
const (
	termWidth    = 80
	termHeight   = 24
	anchorTop    = 11
	collapsedTop = 20
)

type clock struct{ now time.Duration }

func (c *clock) read() time.Duration { return c.now }

func (c *clock) advance(d time.Duration) { c.now += d }

func testOptions(c *clock, mgr state.Interface) Options {
	return Options{
		Sheet: sheet.Config{
			PeekHeight:       3,
			PeekHeightMin:    3,
			AnchorThreshold:  0.5,
			TouchSlop:        1,
			MinFlingVelocity: 5,
			MaxFlingVelocity: 400,
		},
		UI:       config.UIConfig{FPS: 60, ContentLines: 50},
		StateMgr: mgr,
		Clock:    c.read,
	}
}

func newHarness(t *testing.T, mgr state.Interface) (*testutil.Harness, *clock) {
	t.Helper()
	c := &clock{}
	h := testutil.NewHarness(New(testOptions(c, mgr)))
	h.Resize(termWidth, termHeight)
	return h, c
}

func model(h *testutil.Harness) Model {
	return h.Model().(Model)
}

// settle delivers frames until the sheet stops animating.
func settle(t *testing.T, h *testutil.Harness, c *clock) {
	t.Helper()
	for range 20 {
		if !model(h).Sheet.Settling() {
			return
		}
		c.advance(time.Second)
		h.SendMsg(FrameMsg{})
	}
	t.Fatal("sheet did not settle")
}

func TestNew_CollapsedAfterResize(t *testing.T) {
	h, _ := newHarness(t, nil)
	m := model(h)

	assert.Equal(t, sheet.StateCollapsed, m.Sheet.State())
	assert.Equal(t, collapsedTop, m.Sheet.Top())
	assert.Equal(t, anchorTop, m.Sheet.Geometry().AnchorOffset)

	view := h.View()
	assert.Contains(t, testutil.Row(view, collapsedTop+2), "Nearby places")
	assert.Contains(t, testutil.Row(view, termHeight-1), "collapsed")
}

func TestNew_InitialState(t *testing.T) {
	c := &clock{}
	opts := testOptions(c, nil)
	opts.InitialState = sheet.StateExpanded
	h := testutil.NewHarness(New(opts))
	h.Resize(termWidth, termHeight)

	assert.Equal(t, sheet.StateExpanded, model(h).Sheet.State())
	assert.Equal(t, 0, model(h).Sheet.Top())
}

func TestView_EmptyBeforeResize(t *testing.T) {
	m := New(testOptions(&clock{}, nil))
	assert.Empty(t, m.View())
}

func TestView_TooSmall(t *testing.T) {
	h, _ := newHarness(t, nil)
	h.Resize(80, 3)
	assert.Contains(t, testutil.StripANSI(h.View()), "Terminal too small")
}

func TestKey_AnchorSettles(t *testing.T) {
	mgr := state.NewMock()
	h, c := newHarness(t, mgr)

	cmd := h.SendKey("a")
	require.NotNil(t, cmd, "a settle needs frames")
	assert.Equal(t, sheet.StateSettling, model(h).Sheet.State())

	settle(t, h, c)
	m := model(h)
	assert.Equal(t, sheet.StateAnchor, m.Sheet.State())
	assert.Equal(t, anchorTop, m.Sheet.Top())

	rec, _ := mgr.GetSheet(SheetName)
	require.NotNil(t, rec)
	assert.Equal(t, int(sheet.StateAnchor), rec.Saved.State)

	history, _ := mgr.History(SheetName, 1)
	require.Len(t, history, 1)
	assert.Equal(t, sheet.StateAnchor, history[0].State)
	require.NotNil(t, m.LastChange)
	assert.Equal(t, sheet.StateAnchor, m.LastChange.State)
}

func TestKey_Expand(t *testing.T) {
	h, c := newHarness(t, nil)
	h.SendKey("e")
	settle(t, h, c)
	assert.Equal(t, sheet.StateExpanded, model(h).Sheet.State())
	assert.Equal(t, 0, model(h).Sheet.Top())
}

func TestKey_HideRequiresHideable(t *testing.T) {
	h, c := newHarness(t, nil)

	h.SendKey("h")
	m := model(h)
	assert.Equal(t, sheet.StateCollapsed, m.Sheet.State())
	require.NotNil(t, m.Notification)
	assert.Contains(t, m.Notification.Message, "not hideable")

	h.SendKey("H")
	assert.True(t, model(h).Sheet.Hideable())
	h.SendKey("h")
	settle(t, h, c)
	assert.Equal(t, sheet.StateHidden, model(h).Sheet.State())
	assert.Equal(t, termHeight-1, model(h).Sheet.Top())
}

func TestKey_ForceHide(t *testing.T) {
	h, c := newHarness(t, nil)
	h.SendKey("f")
	settle(t, h, c)
	assert.Equal(t, sheet.StateForceHidden, model(h).Sheet.State())
	assert.Equal(t, termHeight-1, model(h).Sheet.Top())
}

func TestKey_ToggleSkipCollapsed(t *testing.T) {
	h, _ := newHarness(t, nil)
	h.SendKey("S")
	assert.True(t, model(h).Sheet.SkipCollapsed())
	assert.Equal(t, "Skip collapsed: on", model(h).Notification.Message)
}

func TestKey_QuitSavesSheet(t *testing.T) {
	mgr := state.NewMock()
	h, _ := newHarness(t, mgr)

	cmd := h.SendKey("q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 1, mgr.Saves())
}

func TestBaseClick_AnchorsThenCollapses(t *testing.T) {
	h, c := newHarness(t, nil)

	h.Press(5, 5)
	h.Release(5, 5)
	settle(t, h, c)
	assert.Equal(t, sheet.StateAnchor, model(h).Sheet.State())

	h.Press(5, 5)
	h.Release(5, 5)
	settle(t, h, c)
	assert.Equal(t, sheet.StateCollapsed, model(h).Sheet.State())
}

func TestDragHandle_ReleasesToAnchor(t *testing.T) {
	h, c := newHarness(t, nil)

	// Steady upward drag of four rows per event.
	h.Press(40, collapsedTop+1)
	c.advance(16 * time.Millisecond)
	h.Motion(40, 17)
	assert.Equal(t, sheet.StateDragging, model(h).Sheet.State())
	assert.Equal(t, 16, model(h).Sheet.Top())

	c.advance(16 * time.Millisecond)
	h.Motion(40, 13)
	assert.Equal(t, 12, model(h).Sheet.Top())

	c.advance(16 * time.Millisecond)
	h.Release(40, 9)
	settle(t, h, c)
	assert.Equal(t, sheet.StateAnchor, model(h).Sheet.State())
	assert.Equal(t, anchorTop, model(h).Sheet.Top())
}

func TestDragHandle_TapKeepsState(t *testing.T) {
	h, _ := newHarness(t, nil)

	h.Press(40, collapsedTop+1)
	h.Release(40, collapsedTop+1)
	assert.Equal(t, sheet.StateCollapsed, model(h).Sheet.State())
	assert.Equal(t, collapsedTop, model(h).Sheet.Top())
}

func TestListClick_SelectsItem(t *testing.T) {
	h, c := newHarness(t, nil)
	h.SendKey("a")
	settle(t, h, c)

	// The list starts three rows below the panel top.
	h.Press(10, anchorTop+4)
	h.Release(10, anchorTop+4)
	assert.Equal(t, 1, model(h).Selected)
	assert.Contains(t, testutil.Row(h.View(), termHeight-1), "#2")
}

func TestWheel_PullsSheetUp(t *testing.T) {
	h, c := newHarness(t, nil)

	cmd := h.Wheel(40, collapsedTop+1, false)
	require.NotNil(t, cmd)
	m := model(h)
	assert.Equal(t, sheet.StateDragging, m.Sheet.State())
	assert.Equal(t, collapsedTop-wheelStep, m.Sheet.Top())
	assert.Equal(t, 0, m.Panel.List().Offset(), "the sheet consumed the scroll")

	h.SendMsg(ScrollStopMsg{Gen: 1})
	settle(t, h, c)
	assert.Equal(t, sheet.StateAnchor, model(h).Sheet.State())
}

func TestWheel_ExpandedScrollsList(t *testing.T) {
	h, c := newHarness(t, nil)
	h.SendKey("e")
	settle(t, h, c)

	h.Wheel(40, 10, false)
	m := model(h)
	assert.Equal(t, 0, m.Sheet.Top())
	assert.Equal(t, wheelStep, m.Panel.List().Offset())

	h.SendMsg(ScrollStopMsg{Gen: 1})
	assert.Equal(t, sheet.StateExpanded, model(h).Sheet.State())
}

func TestWheel_StaleStopIgnored(t *testing.T) {
	h, _ := newHarness(t, nil)

	h.Wheel(40, collapsedTop+1, false)
	h.Wheel(40, collapsedTop-1, false)
	h.SendMsg(ScrollStopMsg{Gen: 1})
	assert.Equal(t, sheet.StateDragging, model(h).Sheet.State(), "a newer wheel event is pending")

	h.SendMsg(ScrollStopMsg{Gen: 2})
	assert.Equal(t, sheet.StateSettling, model(h).Sheet.State())
}

func TestWheel_OutsidePanelIgnored(t *testing.T) {
	h, _ := newHarness(t, nil)
	assert.Nil(t, h.Wheel(40, 2, false))
	assert.Equal(t, sheet.StateCollapsed, model(h).Sheet.State())
}

func TestRestore_FromStateManager(t *testing.T) {
	mgr := state.NewMock()
	mgr.SetSheet(&state.SheetRecord{
		Name:  SheetName,
		Saved: sheet.SavedState{State: int(sheet.StateExpanded), Super: encodeSuper(5)},
	})
	_ = mgr.RecordTransition(SheetName, sheet.StateExpanded)

	h, _ := newHarness(t, mgr)
	m := model(h)
	assert.Equal(t, sheet.StateExpanded, m.Sheet.State())
	assert.Equal(t, 0, m.Sheet.Top())
	assert.Equal(t, 5, m.Panel.List().Offset())
	require.NotNil(t, m.LastChange)
	assert.Equal(t, sheet.StateExpanded, m.LastChange.State)
}

func TestRestore_TransientStateCollapses(t *testing.T) {
	mgr := state.NewMock()
	mgr.SetSheet(&state.SheetRecord{Name: SheetName, Saved: sheet.SavedState{State: int(sheet.StateSettling)}})

	h, _ := newHarness(t, mgr)
	assert.Equal(t, sheet.StateCollapsed, model(h).Sheet.State())
}

func TestConfigReloaded(t *testing.T) {
	h, _ := newHarness(t, nil)

	h.SendMsg(ConfigReloadedMsg{Config: &config.Config{
		Sheet: config.SheetConfig{Hideable: true, AnchorThreshold: 0.8, PeekHeight: "5"},
	}})
	m := model(h)
	assert.True(t, m.Sheet.Hideable())
	assert.Equal(t, 18, m.Sheet.Geometry().AnchorOffset)
	assert.Equal(t, 18, m.Sheet.Top(), "a collapsed sheet moves to the new peek height")
	require.NotNil(t, m.Notification)
	assert.Equal(t, "Config reloaded", m.Notification.Message)
}

func TestConfigReloaded_Errors(t *testing.T) {
	h, _ := newHarness(t, nil)

	h.SendMsg(ConfigReloadedMsg{Err: errors.New("bad toml")})
	assert.Equal(t, "Failed to reload config: bad toml", model(h).Notification.Message)

	h.SendMsg(ConfigReloadedMsg{Config: &config.Config{Sheet: config.SheetConfig{AnchorThreshold: 2}}})
	assert.Contains(t, model(h).Notification.Message, "Failed to reload config")
	assert.InDelta(t, 0.5, model(h).Sheet.AnchorThreshold(), 1e-9)
}

func TestNotificationClear(t *testing.T) {
	h, _ := newHarness(t, nil)
	h.SendKey("H")
	id := model(h).Notification.ID

	h.SendMsg(NotificationClearMsg{ID: id + 1})
	assert.NotNil(t, model(h).Notification, "a newer notification is not cleared")
	h.SendMsg(NotificationClearMsg{ID: id})
	assert.Nil(t, model(h).Notification)
}

func TestSuperRoundTrip(t *testing.T) {
	assert.Equal(t, 42, decodeSuper(encodeSuper(42)))
	assert.Equal(t, 0, decodeSuper(encodeSuper(-3)))
	assert.Equal(t, 0, decodeSuper(nil))
}

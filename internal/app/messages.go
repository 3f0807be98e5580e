// Package app is the terminal host of the sheet.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/anchorsheet/internal/config"
)

// FrameMsg drives settle animations.
type FrameMsg struct{}

// ScrollStopMsg ends a wheel scroll when no wheel event followed within
// ScrollStopDelay.
type ScrollStopMsg struct {
	Gen int
}

// ConfigReloadedMsg carries a configuration reloaded by the file watcher.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// Notification represents a temporary notification message.
type Notification struct {
	ID      int64
	Message string
}

// NotificationClearMsg is sent to clear a specific notification after a delay.
type NotificationClearMsg struct {
	ID int64
}

// NotificationDuration is how long notifications are displayed.
const NotificationDuration = 3 * time.Second

// ScrollStopDelay is the wheel pause that ends a nested scroll.
const ScrollStopDelay = 150 * time.Millisecond

// NotificationClearCmd returns a command that clears the notification after a delay.
func NotificationClearCmd(id int64) tea.Cmd {
	return tea.Tick(NotificationDuration, func(time.Time) tea.Msg {
		return NotificationClearMsg{ID: id}
	})
}

// FrameCmd returns a command that delivers the next frame at fps.
func FrameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(time.Time) tea.Msg {
		return FrameMsg{}
	})
}

// ScrollStopCmd returns a command that ends the scroll of generation gen.
func ScrollStopCmd(gen int) tea.Cmd {
	return tea.Tick(ScrollStopDelay, func(time.Time) tea.Msg {
		return ScrollStopMsg{Gen: gen}
	})
}

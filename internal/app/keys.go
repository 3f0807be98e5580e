// internal/app/keys.go
package app

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the key bindings of the host.
type KeyMap struct {
	Expand        key.Binding
	Anchor        key.Binding
	Collapse      key.Binding
	Hide          key.Binding
	ForceHide     key.Binding
	Hideable      key.Binding
	SkipCollapsed key.Binding
	ScrollDown    key.Binding
	ScrollUp      key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Expand:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "expand")),
		Anchor:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "anchor")),
		Collapse:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "collapse")),
		Hide:          key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hide")),
		ForceHide:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "force hide")),
		Hideable:      key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "toggle hideable")),
		SkipCollapsed: key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "toggle skip collapsed")),
		ScrollDown:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "scroll down")),
		ScrollUp:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "scroll up")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Expand, k.Anchor, k.Collapse, k.Hide, k.Quit}
}

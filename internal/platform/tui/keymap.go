package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	SoftDrop   key.Binding
	HardDrop   key.Binding
	RotateCW   key.Binding
	RotateCCW  key.Binding
	Hold       key.Binding
	Restart    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
	Help       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.HardDrop, k.RotateCW, k.Hold, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.SoftDrop, k.HardDrop},
		{k.RotateCW, k.RotateCCW, k.Hold},
		{k.Restart, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "soft drop"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys("up", "k", "enter"),
			key.WithHelp("↑/k", "hard drop"),
		),
		RotateCW: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "rotate"),
		),
		RotateCCW: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "rotate ccw"),
		),
		Hold: key.NewBinding(
			key.WithKeys(" ", "c"),
			key.WithHelp("space/c", "hold"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// Action translates a key message to a game action.
// Keys that are not game actions (help, screenshot) return ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.SoftDrop):
		return core.ActionSoftDrop
	case key.Matches(msg, k.HardDrop):
		return core.ActionHardDrop
	case key.Matches(msg, k.RotateCW):
		return core.ActionRotateCW
	case key.Matches(msg, k.RotateCCW):
		return core.ActionRotateCCW
	case key.Matches(msg, k.Hold):
		return core.ActionHold
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

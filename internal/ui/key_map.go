package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/callx/internal/columns"
)

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	pageUp    key.Binding
	pageDown  key.Binding
	toggle    key.Binding
	moveUp    key.Binding
	moveDown  key.Binding
	tab       key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	cancel    key.Binding
	columns   key.Binding
	quit      key.Binding
	forceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		pageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		pageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		toggle:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle")),
		moveUp:    key.NewBinding(key.WithKeys("-", "K"), key.WithHelp("-/K", "move up")),
		moveDown:  key.NewBinding(key.WithKeys("+", "J"), key.WithHelp("+/J", "move down")),
		tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "buttons")),
		left:      key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "prev button")),
		right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next button")),
		enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		cancel:    key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "cancel")),
		columns:   key.NewBinding(key.WithKeys("f3", "c"), key.WithHelp("F3/c", "columns")),
		quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// actions maps a key press to candidate panel actions in priority order.
//
// A key bound to several actions lets the panel pick whichever applies to its current mode.
func (k keyMap) actions(msg tea.KeyMsg) []columns.Action {
	switch {
	case key.Matches(msg, k.up):
		return []columns.Action{columns.NavigateUp}
	case key.Matches(msg, k.down):
		return []columns.Action{columns.NavigateDown}
	case key.Matches(msg, k.pageUp):
		return []columns.Action{columns.PageUp}
	case key.Matches(msg, k.pageDown):
		return []columns.Action{columns.PageDown}
	case key.Matches(msg, k.toggle):
		return []columns.Action{columns.Toggle, columns.Select}
	case key.Matches(msg, k.moveUp):
		return []columns.Action{columns.MoveUp}
	case key.Matches(msg, k.moveDown):
		return []columns.Action{columns.MoveDown}
	case key.Matches(msg, k.tab):
		return []columns.Action{columns.ModeSwitch}
	case key.Matches(msg, k.left):
		return []columns.Action{columns.FocusLeft}
	case key.Matches(msg, k.right):
		return []columns.Action{columns.FocusRight}
	case key.Matches(msg, k.enter):
		return []columns.Action{columns.Confirm}
	case key.Matches(msg, k.cancel):
		return []columns.Action{columns.Cancel}
	default:
		return nil
	}
}

func (k keyMap) callListHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.columns, k.quit}
}

func (k keyMap) panelHelp() []key.Binding {
	return []key.Binding{k.toggle, k.moveUp, k.moveDown, k.tab, k.enter, k.cancel}
}

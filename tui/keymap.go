package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keymap defines the keyboard interactions of the session.
type keymap struct {
	print, fail, undo, help, quit key.Binding
}

func newKeymap() *keymap {
	return &keymap{
		print: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "print layer"),
		),
		fail: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "print error"),
		),
		undo: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "undo layer"),
		),
		help: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "more"),
		),
		quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c", "ctrl+d"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func (k *keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.print, k.fail, k.help, k.quit}
}

func (k *keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.print, k.fail, k.undo},
		{k.help, k.quit},
	}
}

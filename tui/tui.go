// Package tui provides the full-screen interactive printer session.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Depth overrides the configured rollback depth when positive.
	Depth int
}

// Run initializes and executes the Bubble Tea application loop.
func Run(options *Options) error {
	_, err := tea.NewProgram(newBubble(options), tea.WithAltScreen()).Run()
	return err
}

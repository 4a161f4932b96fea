package style

import "github.com/charmbracelet/lipgloss"

// Palette defines the application's color scheme.
var (
	Overlay = lipgloss.Color("#6c7086")
	Peach   = lipgloss.Color("#fab387")

	AccentColor = Peach
	FaintColor  = Overlay
)

// Package icon provides a multi-variant rendering engine for UI symbols and feedback indicators.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII or Unicode squares
// depending on user preference.
package icon

import (
	"github.com/printstack/printstack/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a UI symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Layer
	Alert
	Undo
	Lua
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "✅", nerd: "", plain: "✓", squares: "▣"},
	Fail:     {emoji: "💀", nerd: "", plain: "✖", squares: "▨"},
	Progress: {emoji: "⏳", nerd: "", plain: "...", squares: "▧"},
	Layer:    {emoji: "🧱", nerd: "", plain: "+", squares: "■"},
	Alert:    {emoji: "🚨", nerd: "", plain: "!", squares: "▲"},
	Undo:     {emoji: "↩️", nerd: "", plain: "<", squares: "◀"},
	Lua:      {emoji: "🌙", nerd: "", plain: "Lua", squares: "◉"},
}

// Get returns the rendered string for i in the configured variant.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.Get()
}

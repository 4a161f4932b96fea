package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/printstack/printstack/icon"
	"github.com/printstack/printstack/key"
	"github.com/printstack/printstack/style"
	"github.com/spf13/viper"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *bubble) View() string {
	lines := []string{
		b.notifier.View(style.Title(viper.GetString(key.PrinterName)), style.Fg(style.FaintColor)),
		"",
		b.viewStack(),
		"",
		b.inputC.View(),
		"",
	}

	for _, line := range b.narration.Lines() {
		lines = append(lines, style.Faint(b.wrap(line)))
	}

	if viper.GetBool(key.TUIShowHelp) {
		lines = append(lines, "", b.helpC.View(b.keymap))
	}

	return paddingStyle.Render(strings.Join(lines, "\n"))
}

func (b *bubble) viewStack() string {
	layers := b.printer.Layers()
	if len(layers) == 0 {
		return style.Faint("(Empty Stack)")
	}

	rendered := make([]string, len(layers))
	for i, l := range layers {
		line := b.wrap(fmt.Sprintf("%s %s", icon.Get(icon.Layer), l))
		if i == 0 {
			rendered[i] = style.Top(line)
		} else {
			rendered[i] = line
		}
	}

	return strings.Join(rendered, "\n")
}

// wrap breaks s to fit the window; before the first resize nothing is wrapped.
func (b *bubble) wrap(s string) string {
	if b.width <= 4 {
		return s
	}
	return wrap.String(s, b.width-4)
}

package tui

import (
	"fmt"
	"strings"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/printstack/printstack/internal/ui"
	"github.com/printstack/printstack/util"
)

func (b *bubble) Init() tea.Cmd {
	return nil
}

func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if cmd := b.notifier.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.print):
			content := strings.TrimSpace(b.inputC.Value())
			if content == "" {
				return b, tea.Batch(cmds...)
			}
			b.printer.AddLayer(content)
			b.inputC.SetValue("")
			return b, tea.Batch(cmds...)
		case bubblesKey.Matches(msg, b.keymap.fail):
			rec := b.printer.HandleError()
			note := fmt.Sprintf("removed %s", util.Quantify(len(rec.Removed), "layer", "layers"))
			return b, tea.Batch(append(cmds, ui.Notify(note))...)
		case bubblesKey.Matches(msg, b.keymap.undo):
			if b.printer.Undo().IsAbsent() {
				cmds = append(cmds, ui.Notify("nothing to undo"))
			}
			return b, tea.Batch(cmds...)
		case bubblesKey.Matches(msg, b.keymap.help):
			b.helpC.ShowAll = !b.helpC.ShowAll
			return b, tea.Batch(cmds...)
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	cmds = append(cmds, cmd)

	return b, tea.Batch(cmds...)
}

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/printstack/printstack/internal/ui"
	"github.com/printstack/printstack/key"
	"github.com/printstack/printstack/printer"
	"github.com/printstack/printstack/util"
	"github.com/spf13/viper"
)

// narrationLines is how many lines of printer narration stay visible.
const narrationLines = 6

type bubble struct {
	printer   *printer.Printer
	narration *narration

	keymap   *keymap
	inputC   textinput.Model
	helpC    help.Model
	notifier *ui.Model

	width, height int
}

func newBubble(options *Options) *bubble {
	narration := newNarration(narrationLines)

	opts := []printer.Option{printer.WithOutput(narration)}
	if options != nil && options.Depth > 0 {
		opts = append(opts, printer.WithRollbackDepth(options.Depth))
	}

	input := textinput.New()
	input.Prompt = viper.GetString(key.TUIPromptString)
	input.Placeholder = "Layer content..."
	input.Focus()

	helpC := help.New()
	helpC.ShowAll = false

	b := &bubble{
		printer:   printer.New(opts...),
		narration: narration,
		keymap:    newKeymap(),
		inputC:    input,
		helpC:     helpC,
		notifier:  &ui.Model{},
	}

	if width, height, err := util.TerminalSize(); err == nil {
		b.resize(width, height)
	}

	return b
}

func (b *bubble) resize(width, height int) {
	b.width, b.height = width, height
	b.inputC.Width = util.Max(0, width-len(b.inputC.Prompt)-1)
	b.helpC.Width = width
}

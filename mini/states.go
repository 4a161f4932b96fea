package mini

import (
	"fmt"

	"github.com/printstack/printstack/icon"
	"github.com/printstack/printstack/key"
	"github.com/printstack/printstack/layer"
	"github.com/printstack/printstack/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

type state int

const (
	menuState state = iota + 1
	addLayerState
	inspectState
	layerState
	quitState
)

const (
	optionPrint   = "Print layer"
	optionShow    = "Show progress"
	optionFail    = "Simulate print error"
	optionUndo    = "Undo last layer"
	optionInspect = "Inspect layers"
	optionQuit    = "Quit"
	optionBack    = "Back"
)

func (m *mini) handleMenuState() error {
	title := fmt.Sprintf("%s (%s)", viper.GetString(key.PrinterName), util.Quantify(len(m.printer.Layers()), "layer", "layers"))

	choice, err := m.prompt.Select(title, []string{
		optionPrint,
		optionShow,
		optionFail,
		optionUndo,
		optionInspect,
		optionQuit,
	})
	if err != nil {
		return err
	}

	switch choice {
	case optionPrint:
		m.newState(addLayerState)
	case optionShow:
		m.printer.ShowProgress()
	case optionFail:
		m.printer.HandleError()
	case optionUndo:
		if m.printer.Undo().IsAbsent() {
			fmt.Fprintf(m.out, "%s Nothing to undo\n", icon.Get(icon.Fail))
		}
	case optionInspect:
		m.newState(inspectState)
	case optionQuit:
		m.newState(quitState)
	}

	return nil
}

func (m *mini) handleAddLayerState() error {
	content, err := m.prompt.Input("Layer content")
	if err != nil {
		return err
	}

	if content != "" {
		m.printer.AddLayer(content)
	}

	m.previousState()
	return nil
}

func (m *mini) handleInspectState() error {
	layers := m.printer.Layers()
	if len(layers) == 0 {
		fmt.Fprintf(m.out, "%s Nothing printed yet\n", icon.Get(icon.Fail))
		m.previousState()
		return nil
	}

	options := append(lo.Map(layers, func(l *layer.Layer, _ int) string {
		return l.String()
	}), optionBack)

	choice, err := m.prompt.Select("Layers (top first)", options)
	if err != nil {
		return err
	}

	if choice == optionBack {
		m.previousState()
		return nil
	}

	m.inspected = choice
	m.newState(layerState)
	return nil
}

func (m *mini) handleLayerState() error {
	l, ok := lo.Find(m.printer.Layers(), func(l *layer.Layer) bool {
		return l.String() == m.inspected
	})

	if ok {
		fmt.Fprintf(m.out, "%s #%d %s\n", icon.Get(icon.Layer), l.Number, l.Content)
		if top, ok := m.printer.Top().Get(); ok && top == l {
			fmt.Fprintln(m.out, "  on top, removed first on a print error")
		}
	}

	m.previousState()
	return nil
}

// Package mini implements a lightweight, prompt-driven printer session.
package mini

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/printstack/printstack/printer"
	"github.com/printstack/printstack/stack"
)

type Options struct {
	Out io.Writer
}

type mini struct {
	state         state
	statesHistory stack.Stack[state]

	printer *printer.Printer
	prompt  prompter
	out     io.Writer

	inspected string
}

func newMini(p prompter, out io.Writer) *mini {
	return &mini{
		state:   menuState,
		printer: printer.New(printer.WithOutput(out)),
		prompt:  p,
		out:     out,
	}
}

// previousState restores the state that was active before the current one.
func (m *mini) previousState() {
	if s, ok := m.statesHistory.Pop().Get(); ok {
		m.state = s
	}
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	m.statesHistory.Push(m.state)
	m.state = s
}

// Run starts the session and blocks until the user quits.
func Run(options *Options) error {
	out := options.Out
	if out == nil {
		out = os.Stdout
	}

	err := newMini(surveyPrompter{}, out).loop()
	if errors.Is(err, errInterrupt) {
		return nil
	}
	return err
}

func (m *mini) loop() error {
	for m.state != quitState {
		if err := m.handleState(); err != nil {
			return err
		}
	}

	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case menuState:
		return m.handleMenuState()
	case addLayerState:
		return m.handleAddLayerState()
	case inspectState:
		return m.handleInspectState()
	case layerState:
		return m.handleLayerState()
	default:
		return fmt.Errorf("unknown state %d", m.state)
	}
}

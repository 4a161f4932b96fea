// Package printer simulates a 3D printer that deposits layers on a stack and
// discards the most recent ones when a print error is detected.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/printstack/printstack/key"
	"github.com/printstack/printstack/layer"
	"github.com/printstack/printstack/log"
	"github.com/printstack/printstack/stack"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// DefaultRollbackDepth is used when printer.rollback_depth is not configured.
const DefaultRollbackDepth = 2

// Printer owns a stack of printed layers. It is not safe for concurrent use.
type Printer struct {
	layers *stack.Stack[*layer.Layer]
	count  int
	depth  int
	out    io.Writer
}

// Option configures a Printer.
type Option func(*Printer)

// WithOutput sets the writer receiving the console narration.
func WithOutput(w io.Writer) Option {
	return func(p *Printer) {
		p.out = w
	}
}

// WithRollbackDepth sets how many layers HandleError discards.
func WithRollbackDepth(depth int) Option {
	return func(p *Printer) {
		p.depth = depth
	}
}

// New returns an idle printer. Unless overridden, narration is discarded and
// the rollback depth comes from the printer.rollback_depth setting.
func New(opts ...Option) *Printer {
	p := &Printer{
		layers: stack.New[*layer.Layer](),
		depth:  DefaultRollbackDepth,
		out:    io.Discard,
	}

	if viper.IsSet(key.PrinterRollbackDepth) {
		p.depth = viper.GetInt(key.PrinterRollbackDepth)
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.depth < 0 {
		p.depth = 0
	}

	return p
}

// AddLayer prints the next layer and pushes it on the stack.
func (p *Printer) AddLayer(content string) *layer.Layer {
	p.count++
	l := layer.New(p.count, content)

	p.say("--> Printing: %s", l)
	p.layers.Push(l)

	log.WithFields(log.Fields{"number": l.Number, "content": l.Content}).Debug("layer printed")
	return l
}

// ShowProgress writes the layer stack, top first, to the narration writer.
func (p *Printer) ShowProgress() {
	_ = stack.Fprint(p.out, p.layers)
}

// Progress returns the text ShowProgress writes.
func (p *Printer) Progress() string {
	return stack.Render(p.layers)
}

// Undo discards the most recent layer only, returning it if there was one.
func (p *Printer) Undo() mo.Option[*layer.Layer] {
	removed := p.layers.Pop()
	if l, ok := removed.Get(); ok {
		p.say("<-- Removing layer: %s", l)
		p.resync()
	}
	return removed
}

// Top returns the most recent valid layer.
func (p *Printer) Top() mo.Option[*layer.Layer] {
	return p.layers.Top()
}

// Layers returns the printed layers from top to bottom.
func (p *Printer) Layers() []*layer.Layer {
	return p.layers.Items()
}

// Count returns the number assigned to the most recent layer.
func (p *Printer) Count() int {
	return p.count
}

// Depth returns how many layers HandleError discards.
func (p *Printer) Depth() int {
	return p.depth
}

// resync makes the next layer number follow the current top.
func (p *Printer) resync() {
	p.count = 0
	if top, ok := p.layers.Top().Get(); ok {
		p.count = top.Number
	}
}

func (p *Printer) say(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = io.WriteString(p.out, msg)
}

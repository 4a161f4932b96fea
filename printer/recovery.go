package printer

import (
	"github.com/printstack/printstack/layer"
	"github.com/printstack/printstack/log"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Recovery describes what HandleError did.
type Recovery struct {
	// Removed holds the discarded layers, most recent first.
	Removed []*layer.Layer
	// Stable is the layer printing resumes from, absent when the print restarts from scratch.
	Stable mo.Option[*layer.Layer]
}

// Exhausted reports whether the stack ran out before the rollback depth was reached.
func (r Recovery) Exhausted(depth int) bool {
	return len(r.Removed) < depth
}

// HandleError simulates a print error: up to Depth layers are discarded and
// the layer counter is rewound to the last stable layer, or to zero.
func (p *Printer) HandleError() Recovery {
	p.say("\n ALERT: Print error detected !")

	var rec Recovery
	for i := 0; i < p.depth; i++ {
		removed, ok := p.layers.Pop().Get()
		if !ok {
			p.say("No more layers to remove.")
			break
		}

		p.say("<-- Removing defective layer: %s", removed)
		rec.Removed = append(rec.Removed, removed)
	}

	p.resync()
	rec.Stable = p.layers.Top()

	if top, ok := rec.Stable.Get(); ok {
		p.say("System stabilized. Last valid layer: %s", top)
	} else {
		p.say("System stabilized. Printing restarted from scratch.")
	}

	log.WithFields(log.Fields{
		"removed": lo.Map(rec.Removed, func(l *layer.Layer, _ int) int { return l.Number }),
		"resume":  p.count,
	}).Warn("print error handled")

	return rec
}

package tui

import "strings"

// narration is the printer's output writer in the TUI. It keeps only the
// last limit lines, without the stack listing ShowProgress writes.
type narration struct {
	limit   int
	lines   []string
	pending string
}

func newNarration(limit int) *narration {
	return &narration{limit: limit, lines: make([]string, 0, limit)}
}

func (n *narration) Write(p []byte) (int, error) {
	text := n.pending + string(p)
	end := strings.LastIndexByte(text, '\n')
	n.pending = text[end+1:]

	for _, line := range strings.Split(text[:end+1], "\n") {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "  |") || strings.HasPrefix(line, "---") {
			continue
		}
		n.lines = append(n.lines, line)
	}

	if over := len(n.lines) - n.limit; over > 0 {
		n.lines = append(n.lines[:0], n.lines[over:]...)
	}

	return len(p), nil
}

// Lines returns the retained lines, oldest first.
func (n *narration) Lines() []string {
	return n.lines
}

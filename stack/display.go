package stack

import (
	"fmt"
	"io"
	"strings"
)

const (
	displayHeader = "Current Stack State (Top -> Bottom):"
	displayEmpty  = "  (Empty Stack)"
	displayRule   = 30
)

// Fprint writes a human-readable rendering of s to w, from top to bottom.
func Fprint[T any](w io.Writer, s *Stack[T]) error {
	_, err := io.WriteString(w, Render(s))
	return err
}

// Render returns the text written by Fprint.
func Render[T any](s *Stack[T]) string {
	var b strings.Builder

	b.WriteString("\n" + displayHeader + "\n")
	if s.IsEmpty() {
		b.WriteString(displayEmpty + "\n")
	} else {
		for _, item := range s.Items() {
			fmt.Fprintf(&b, "  | %v |\n", item)
		}
	}
	b.WriteString(strings.Repeat("-", displayRule) + "\n")

	return b.String()
}

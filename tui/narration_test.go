package tui

import (
	"fmt"
	"io"
	"testing"

	"github.com/printstack/printstack/printer"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNarration(t *testing.T) {
	Convey("Given a narration keeping three lines", t, func() {
		n := newNarration(3)

		Convey("Only the latest lines are retained", func() {
			for i := 1; i <= 100; i++ {
				_, _ = fmt.Fprintf(n, "line %d\n", i)
			}

			So(n.Lines(), ShouldResemble, []string{"line 98", "line 99", "line 100"})
		})

		Convey("Partial writes are joined into one line", func() {
			_, _ = io.WriteString(n, "--> Print")
			So(n.Lines(), ShouldBeEmpty)

			_, _ = io.WriteString(n, "ing: Layer 1\nnext")
			So(n.Lines(), ShouldResemble, []string{"--> Printing: Layer 1"})
		})

		Convey("The stack listing and blank lines are skipped", func() {
			p := printer.New(printer.WithOutput(n))
			p.AddLayer("Solid Base")
			p.ShowProgress()

			So(n.Lines(), ShouldResemble, []string{
				"--> Printing: Layer 1: Solid Base",
				"Current Stack State (Top -> Bottom):",
			})
		})
	})
}

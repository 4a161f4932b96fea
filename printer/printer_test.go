package printer

import (
	"bytes"
	"testing"

	"github.com/printstack/printstack/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestPrinter(t *testing.T) {
	Convey("Given a printer with three layers", t, func() {
		var out bytes.Buffer
		p := New(WithOutput(&out), WithRollbackDepth(2))

		p.AddLayer("Solid Base")
		p.AddLayer("Bottom Infill")
		third := p.AddLayer("Walls Level 1")

		So(third.Number, ShouldEqual, 3)
		So(p.Count(), ShouldEqual, 3)
		So(out.String(), ShouldContainSubstring, "--> Printing: Layer 3: Walls Level 1\n")

		Convey("When a print error occurs", func() {
			rec := p.HandleError()

			Convey("Then the last two layers are removed, most recent first", func() {
				So(len(rec.Removed), ShouldEqual, 2)
				So(rec.Removed[0].Content, ShouldEqual, "Walls Level 1")
				So(rec.Removed[1].Content, ShouldEqual, "Bottom Infill")
				So(rec.Exhausted(p.Depth()), ShouldBeFalse)
			})

			Convey("Then the first layer is the stable one", func() {
				So(rec.Stable.MustGet().Content, ShouldEqual, "Solid Base")
				So(p.Top().MustGet().Number, ShouldEqual, 1)
				So(p.Count(), ShouldEqual, 1)
				So(out.String(), ShouldContainSubstring, "System stabilized. Last valid layer: Layer 1: Solid Base")
			})

			Convey("Then numbering resumes after the stable layer", func() {
				So(p.AddLayer("Structural Support (Correction)").Number, ShouldEqual, 2)
			})
		})

		Convey("When the progress is shown", func() {
			p.ShowProgress()
			So(out.String(), ShouldContainSubstring, "  | Layer 3: Walls Level 1 |\n  | Layer 2: Bottom Infill |\n  | Layer 1: Solid Base |\n")
			So(p.Progress(), ShouldContainSubstring, "Current Stack State (Top -> Bottom):")
		})

		Convey("When undoing a single layer", func() {
			removed := p.Undo()
			So(removed.MustGet().Number, ShouldEqual, 3)
			So(p.Count(), ShouldEqual, 2)
			So(len(p.Layers()), ShouldEqual, 2)
		})
	})

	Convey("Given a printer with a single layer", t, func() {
		var out bytes.Buffer
		p := New(WithOutput(&out), WithRollbackDepth(2))
		p.AddLayer("Solid Base")

		Convey("A print error restarts from scratch", func() {
			rec := p.HandleError()

			So(len(rec.Removed), ShouldEqual, 1)
			So(rec.Exhausted(p.Depth()), ShouldBeTrue)
			So(rec.Stable.IsAbsent(), ShouldBeTrue)
			So(p.Count(), ShouldEqual, 0)
			So(out.String(), ShouldContainSubstring, "No more layers to remove.\n")
			So(out.String(), ShouldContainSubstring, "System stabilized. Printing restarted from scratch.\n")
			So(p.AddLayer("Solid Base").Number, ShouldEqual, 1)
		})
	})

	Convey("Given an idle printer", t, func() {
		p := New(WithRollbackDepth(2))

		So(p.Top().IsAbsent(), ShouldBeTrue)
		So(p.Undo().IsAbsent(), ShouldBeTrue)
		So(p.HandleError().Removed, ShouldBeEmpty)
		So(p.Progress(), ShouldContainSubstring, "(Empty Stack)")
	})

	Convey("The rollback depth defaults to the configured value", t, func() {
		viper.Set(key.PrinterRollbackDepth, 4)
		defer viper.Set(key.PrinterRollbackDepth, 2)

		So(New().Depth(), ShouldEqual, 4)
		So(New(WithRollbackDepth(-3)).Depth(), ShouldEqual, 0)
	})
}

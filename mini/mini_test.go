package mini

import (
	"bytes"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// scripted answers prompts from a fixed list.
type scripted struct {
	answers []string
	asked   []string
}

func (s *scripted) next(message string) (string, error) {
	s.asked = append(s.asked, message)
	if len(s.answers) == 0 {
		return "", errInterrupt
	}

	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func (s *scripted) Select(message string, _ []string) (string, error) { return s.next(message) }
func (s *scripted) Input(message string) (string, error)              { return s.next(message) }

func TestMini(t *testing.T) {
	Convey("Given a mini session", t, func() {
		var out bytes.Buffer

		Convey("Printing three layers and failing keeps the first", func() {
			p := &scripted{answers: []string{
				optionPrint, "Solid Base",
				optionPrint, "Bottom Infill",
				optionPrint, "Walls Level 1",
				optionFail,
				optionQuit,
			}}
			m := newMini(p, &out)

			So(m.loop(), ShouldBeNil)
			So(m.printer.Top().MustGet().Content, ShouldEqual, "Solid Base")
			So(out.String(), ShouldContainSubstring, "ALERT: Print error detected")
		})

		Convey("Empty input adds nothing and returns to the menu", func() {
			p := &scripted{answers: []string{optionPrint, "", optionQuit}}
			m := newMini(p, &out)

			So(m.loop(), ShouldBeNil)
			So(m.printer.Layers(), ShouldBeEmpty)
			So(p.asked[2], ShouldContainSubstring, "0 layers")
		})

		Convey("Inspecting a layer goes back through the state history", func() {
			p := &scripted{answers: []string{
				optionPrint, "Solid Base",
				optionInspect, "Layer 1: Solid Base",
				optionBack,
				optionQuit,
			}}
			m := newMini(p, &out)

			So(m.loop(), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "#1 Solid Base")
			So(out.String(), ShouldContainSubstring, "on top")
			So(m.statesHistory.Len(), ShouldEqual, 1)
		})

		Convey("Undo on an empty printer reports it", func() {
			p := &scripted{answers: []string{optionUndo, optionInspect, optionQuit}}
			m := newMini(p, &out)

			So(m.loop(), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "Nothing to undo")
			So(out.String(), ShouldContainSubstring, "Nothing printed yet")
		})

		Convey("An interrupted prompt stops the loop", func() {
			m := newMini(&scripted{}, &out)
			So(errors.Is(m.loop(), errInterrupt), ShouldBeTrue)
		})
	})
}

package stack

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStack(t *testing.T) {
	Convey("Given an empty stack", t, func() {
		var s Stack[string]

		So(s.IsEmpty(), ShouldBeTrue)
		So(s.Len(), ShouldEqual, 0)

		Convey("Pop and Top return no value and leave it empty", func() {
			So(s.Pop().IsAbsent(), ShouldBeTrue)
			So(s.Top().IsAbsent(), ShouldBeTrue)
			So(s.Len(), ShouldEqual, 0)
		})

		Convey("When pushing A, B and C", func() {
			s.Push("A")
			s.Push("B")
			s.Push("C")

			So(s.Top().MustGet(), ShouldEqual, "C")
			So(s.Len(), ShouldEqual, 3)
			So(s.IsEmpty(), ShouldBeFalse)

			Convey("Then popping twice yields C then B and exposes A", func() {
				So(s.Pop().MustGet(), ShouldEqual, "C")
				So(s.Pop().MustGet(), ShouldEqual, "B")
				So(s.Top().MustGet(), ShouldEqual, "A")
				So(s.Len(), ShouldEqual, 1)
			})

			Convey("Then Items lists them top to bottom", func() {
				So(s.Items(), ShouldResemble, []string{"C", "B", "A"})
			})

			Convey("Then Clear empties it", func() {
				s.Clear()
				So(s.IsEmpty(), ShouldBeTrue)
				So(s.Pop().IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("Popping after a single push restores emptiness", func() {
			So(s.Pop().IsAbsent(), ShouldBeTrue)
			s.Push("X")
			So(s.Pop().MustGet(), ShouldEqual, "X")
			So(s.Pop().IsAbsent(), ShouldBeTrue)
			So(s.IsEmpty(), ShouldBeTrue)
		})
	})
}

func TestStackLaws(t *testing.T) {
	Convey("Push followed by Pop is an inverse pair", t, func() {
		s := New(1, 2, 3)
		before := s.Items()

		s.Push(42)
		So(s.Pop().MustGet(), ShouldEqual, 42)
		So(s.Items(), ShouldResemble, before)
		So(s.Len(), ShouldEqual, 3)
	})

	Convey("n pushes followed by n pops come back reversed", t, func() {
		for _, n := range []int{0, 1, 2, 17, 1000} {
			var s Stack[int]
			for i := 0; i < n; i++ {
				s.Push(i)
			}

			popped := make([]int, 0, n)
			for i := 0; i < n; i++ {
				popped = append(popped, s.Pop().MustGet())
			}

			for i := range popped {
				So(popped[i], ShouldEqual, n-1-i)
			}
			So(s.IsEmpty(), ShouldBeTrue)
		}
	})

	Convey("Top never mutates", t, func() {
		s := New("a", "b")
		for i := 0; i < 5; i++ {
			So(s.Top().MustGet(), ShouldEqual, "b")
		}
		So(s.Len(), ShouldEqual, 2)
		So(s.Pop().MustGet(), ShouldEqual, "b")
	})

	Convey("Nil values are valid elements", t, func() {
		var s Stack[*int]
		s.Push(nil)

		top := s.Pop()
		So(top.IsPresent(), ShouldBeTrue)
		So(top.MustGet(), ShouldBeNil)
		So(s.Pop().IsAbsent(), ShouldBeTrue)
	})

	Convey("New does not alias the caller's slice", t, func() {
		values := []int{1, 2}
		s := New(values...)
		s.Pop()
		s.Push(9)
		So(values, ShouldResemble, []int{1, 2})
	})
}

func TestRender(t *testing.T) {
	Convey("Render", t, func() {
		Convey("Shows an empty marker", func() {
			var s Stack[string]
			So(Render(&s), ShouldEqual,
				"\nCurrent Stack State (Top -> Bottom):\n  (Empty Stack)\n------------------------------\n")
		})

		Convey("Lists elements top first", func() {
			s := New("bottom", "top")

			var buf bytes.Buffer
			So(Fprint(&buf, s), ShouldBeNil)
			So(buf.String(), ShouldEqual,
				"\nCurrent Stack State (Top -> Bottom):\n  | top |\n  | bottom |\n------------------------------\n")
			So(s.Len(), ShouldEqual, 2)
		})
	})
}

package layer

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLayer(t *testing.T) {
	Convey("Layer", t, func() {
		l := New(3, "Walls Level 1")
		So(l.Number, ShouldEqual, 3)
		So(l.String(), ShouldEqual, "Layer 3: Walls Level 1")
	})
}

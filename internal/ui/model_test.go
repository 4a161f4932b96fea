package ui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given a notifier", t, func() {
		var m Model
		identity := func(s string) string { return s }

		So(m.View("stack", identity), ShouldEqual, "stack")

		Convey("A notification is shown until cleared", func() {
			cmd := Notify("layer 3 removed")()
			So(m.Update(cmd), ShouldNotBeNil)
			So(m.Current(), ShouldEqual, "layer 3 removed")
			So(m.View("stack", identity), ShouldEqual, "stack  layer 3 removed")

			So(m.Update(ClearNotificationMsg{}), ShouldBeNil)
			So(m.Current(), ShouldBeEmpty)
		})

		Convey("Unrelated messages are ignored", func() {
			So(m.Update(42), ShouldBeNil)
			So(m.Current(), ShouldBeEmpty)
		})
	})
}

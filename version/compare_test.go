package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Orders by major, minor then patch", func() {
			So(must(Compare("1.0.0", "0.9.9")), ShouldEqual, 1)
			So(must(Compare("0.1.0", "0.2.0")), ShouldEqual, -1)
			So(must(Compare("0.1.3", "0.1.2")), ShouldEqual, 1)
		})

		Convey("Ignores a leading v", func() {
			So(must(Compare("v0.1.0", "0.1.0")), ShouldEqual, 0)
		})

		Convey("Rejects malformed versions", func() {
			_, err := Compare("latest", "0.1.0")
			So(err, ShouldNotBeNil)

			_, err = Compare("0.1.0", "")
			So(err, ShouldNotBeNil)

			_, err = Compare("0.1.0.1", "0.1.0")
			So(err, ShouldNotBeNil)

			_, err = Compare("1.-1.0", "0.1.0")
			So(err, ShouldNotBeNil)
		})
	})
}

func must(cmp int, err error) int {
	So(err, ShouldBeNil)
	return cmp
}

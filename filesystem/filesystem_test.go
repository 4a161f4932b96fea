package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestReadWrite(t *testing.T) {
	Convey("Given an in-memory backend", t, func() {
		SetMemMapFs()

		Convey("WriteFile creates missing directories", func() {
			So(WriteFile("/scripts/nested/demo.lua", []byte("print(1)")), ShouldBeNil)

			data, err := ReadFile("/scripts/nested/demo.lua")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "print(1)")
		})

		Convey("ReadFile fails on a missing file", func() {
			_, err := ReadFile("/nope.json")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestGlob(t *testing.T) {
	Convey("Glob matches files in the active backend", t, func() {
		SetMemMapFs()
		So(WriteFile("/scripts/b.lua", nil), ShouldBeNil)
		So(WriteFile("/scripts/a.lua", nil), ShouldBeNil)
		So(WriteFile("/scripts/notes.txt", nil), ShouldBeNil)

		matches, err := Glob("/scripts/*.lua")
		So(err, ShouldBeNil)
		So(matches, ShouldResemble, []string{"/scripts/a.lua", "/scripts/b.lua"})
	})
}

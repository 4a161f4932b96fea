package log

import (
	"bytes"
	"testing"

	"github.com/printstack/printstack/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSetupWriter(t *testing.T) {
	Convey("Given a buffer as log sink", t, func() {
		var buf bytes.Buffer

		Convey("Entries at or above the level are written", func() {
			viper.Set(key.LogsLevel, "warn")
			viper.Set(key.LogsJson, false)
			So(SetupWriter(&buf), ShouldBeNil)

			Info("hidden")
			WithField("layer", 3).Warn("rolled back")

			So(buf.String(), ShouldNotContainSubstring, "hidden")
			So(buf.String(), ShouldContainSubstring, "rolled back")
			So(buf.String(), ShouldContainSubstring, "layer=3")
		})

		Convey("JSON format is honoured", func() {
			viper.Set(key.LogsLevel, "debug")
			viper.Set(key.LogsJson, true)
			So(SetupWriter(&buf), ShouldBeNil)

			Debugf("pushed %d", 1)
			So(buf.String(), ShouldContainSubstring, `"msg":"pushed 1"`)
		})

		Convey("An unknown level falls back to info", func() {
			viper.Set(key.LogsLevel, "loud")
			viper.Set(key.LogsJson, false)
			So(SetupWriter(&buf), ShouldBeNil)

			Debug("quiet")
			Info("visible")
			So(buf.String(), ShouldNotContainSubstring, "quiet")
			So(buf.String(), ShouldContainSubstring, "visible")
		})
	})
}

func TestSetupDisabled(t *testing.T) {
	Convey("When logs.write is off Setup discards everything", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)
		So(func() { Error("nobody hears this") }, ShouldNotPanic)
	})
}

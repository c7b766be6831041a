package config

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tubescribe-cli/tubescribe/filesystem"
	"github.com/tubescribe-cli/tubescribe/key"
)

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)

			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}

			So(viper.GetString(key.LanguageDefault), ShouldEqual, "en")
			So(viper.GetInt(key.BatchWorkers), ShouldEqual, 8)
		})

		Convey("Should parse retry durations", func() {
			So(Setup(), ShouldBeNil)

			So(viper.GetDuration(key.RetryInterval), ShouldEqual, time.Second)
			So(viper.GetDuration(key.RetryWindow), ShouldEqual, 10*time.Second)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("language.default")
			So(result, ShouldEqual, "language_default")
		})

		Convey("Env should carry the application prefix", func() {
			field := Default[key.RetryWindow]
			So(field.Env(), ShouldEqual, "TUBESCRIBE_RETRY_WINDOW")
		})
	})
}

package validate

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubescribe-cli/tubescribe/fault"
)

func TestVideoID(t *testing.T) {
	Convey("VideoID", t, func() {
		Convey("Should extract the identifier from every accepted URL shape", func() {
			cases := map[string]string{
				"https://www.youtube.com/watch?v=ABC123":         "ABC123",
				"https://youtube.com/watch?v=dQw4w9WgXcQ&t=42s":  "dQw4w9WgXcQ",
				"https://youtu.be/dQw4w9WgXcQ":                   "dQw4w9WgXcQ",
				"https://www.youtube.com/embed/xyz-789_0":        "xyz-789_0",
				"https://www.youtube.com/v/oldstyle1":            "oldstyle1",
				"http://youtube.com/watch?v=noscheme&list=PL123": "noscheme",
			}

			for raw, want := range cases {
				id, err := VideoID(raw)
				So(err, ShouldBeNil)
				So(id, ShouldEqual, want)
			}
		})

		Convey("Should reject anything else with InvalidURL", func() {
			for _, raw := range []string{
				"https://example.com/not-a-video",
				"https://vimeo.com/12345",
				"not a url at all",
				"",
			} {
				_, err := VideoID(raw)
				So(err, ShouldNotBeNil)
				So(fault.KindOf(err), ShouldEqual, fault.InvalidURL)
			}
		})

		Convey("Should record the originating input", func() {
			_, err := VideoID("https://example.com/not-a-video")
			var classified *fault.Error
			So(err, ShouldHaveSameTypeAs, classified)
			So(err.(*fault.Error).Input, ShouldEqual, "https://example.com/not-a-video")
		})
	})
}

func TestLanguage(t *testing.T) {
	Convey("Language", t, func() {
		Convey("Empty code means no preference", func() {
			lang, err := Language("")
			So(err, ShouldBeNil)
			So(lang.IsAbsent(), ShouldBeTrue)
		})

		Convey("Every allow-listed code passes through unchanged", func() {
			for _, code := range Languages {
				lang, err := Language(code)
				So(err, ShouldBeNil)
				So(lang.MustGet(), ShouldEqual, code)
			}
		})

		Convey("Anything else fails with UnsupportedLanguage", func() {
			for _, code := range []string{"xx", "eng", "EN", "english"} {
				_, err := Language(code)
				So(err, ShouldNotBeNil)
				So(fault.KindOf(err), ShouldEqual, fault.UnsupportedLanguage)
			}
		})
	})
}

package save

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubescribe-cli/tubescribe/constant"
	"github.com/tubescribe-cli/tubescribe/filesystem"
)

func TestTranscript(t *testing.T) {
	Convey("Transcript", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		cwd, err := os.Getwd()
		So(err, ShouldBeNil)

		Convey("Should write the slug-named file with the joined text", func() {
			path, err := Transcript("Hello, World! 2024", "Hi there")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, filepath.Join(cwd, "hello_world_2024_transcript.txt"))

			content, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(content), ShouldEqual, "Hi there")

			info, err := filesystem.API().Stat(path)
			So(err, ShouldBeNil)
			So(info.Mode().Perm(), ShouldEqual, os.FileMode(0644))
		})

		Convey("Should overwrite on identical slugs, last writer wins", func() {
			_, err := Transcript("Same Title", "first")
			So(err, ShouldBeNil)
			path, err := Transcript("Same! Title?", "second")
			So(err, ShouldBeNil)

			content, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(content), ShouldEqual, "second")
		})

		Convey("Should handle an all-punctuation title via an empty slug", func() {
			path, err := Transcript("!!!", "text")
			So(err, ShouldBeNil)
			So(filepath.Base(path), ShouldEqual, constant.TranscriptSuffix)
		})
	})
}

func TestFilename(t *testing.T) {
	Convey("Filename", t, func() {
		Convey("Should append the transcript suffix", func() {
			So(Filename("Hello World"), ShouldEqual, "hello_world"+constant.TranscriptSuffix)
		})

		Convey("Should stay within the filename budget and keep the extension", func() {
			name := Filename(strings.Repeat("a", 500))
			So(len(name), ShouldBeLessThanOrEqualTo, constant.MaxFilenameLength)
			So(strings.HasSuffix(name, ".txt"), ShouldBeTrue)
		})
	})
}

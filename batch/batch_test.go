package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/samber/mo"
	"github.com/tubescribe-cli/tubescribe/extract"
	"github.com/tubescribe-cli/tubescribe/fault"
	"github.com/tubescribe-cli/tubescribe/filesystem"
	"github.com/tubescribe-cli/tubescribe/provider"
	"github.com/tubescribe-cli/tubescribe/retry"
)

// scriptedProvider serves canned titles and transcripts keyed by video identifier.
type scriptedProvider struct {
	titles map[string]string
	errs   map[string]error
	calls  int
}

func (s *scriptedProvider) Title(ctx context.Context, videoID string) (string, error) {
	s.calls++
	if err, ok := s.errs[videoID]; ok {
		return "", err
	}
	return s.titles[videoID], nil
}

func (s *scriptedProvider) Languages(ctx context.Context, videoID string) ([]string, error) {
	return []string{"en"}, nil
}

func (s *scriptedProvider) Locate(ctx context.Context, videoID, language string) (provider.Transcript, error) {
	return &scriptedTranscript{videoID: videoID, language: language}, nil
}

type scriptedTranscript struct {
	videoID  string
	language string
}

func (s *scriptedTranscript) Language() string { return s.language }

func (s *scriptedTranscript) Fetch(ctx context.Context) ([]provider.Segment, error) {
	return []provider.Segment{
		{Text: "transcript"},
		{Text: "of"},
		{Text: s.videoID},
	}, nil
}

func testExtractor(p *scriptedProvider) *extract.Extractor {
	return extract.New(p, p, retry.Policy{
		Interval:  time.Millisecond,
		Window:    5 * time.Millisecond,
		Retryable: fault.Retryable,
	})
}

func writeBatchFile(name, content string) string {
	cwd, _ := os.Getwd()
	path := filepath.Join(cwd, name)
	_ = filesystem.API().WriteFile(path, []byte(content), 0644)
	return path
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		Convey("Should reject a source path escaping the working directory", func() {
			_, _, err := Parse("../../etc/batch.txt")
			So(fault.KindOf(err), ShouldEqual, fault.PathTraversal)
		})

		Convey("Should fail with EmptyBatch on a blank file", func() {
			path := writeBatchFile("empty.txt", "\n\n  \n")
			_, _, err := Parse(path)
			So(fault.KindOf(err), ShouldEqual, fault.EmptyBatch)
		})

		Convey("Should fail with BatchTooLarge past the cap, before any network activity", func() {
			var sb strings.Builder
			for i := 0; i < 101; i++ {
				fmt.Fprintf(&sb, "https://youtu.be/video%03d\n", i)
			}
			path := writeBatchFile("big.txt", sb.String())

			_, _, err := Parse(path)
			So(fault.KindOf(err), ShouldEqual, fault.BatchTooLarge)
		})

		Convey("Should discard malformed lines with a warning, keeping the rest", func() {
			path := writeBatchFile("mixed.txt", strings.Join([]string{
				"https://www.youtube.com/watch?v=first",
				"https://example.com/not-a-video",
				"",
				"not a url",
				"https://youtu.be/second",
				"ftp://junk",
			}, "\n"))

			urls, skipped, err := Parse(path)
			So(err, ShouldBeNil)
			So(urls, ShouldResemble, []string{
				"https://www.youtube.com/watch?v=first",
				"https://youtu.be/second",
			})
			So(skipped, ShouldEqual, 3)
		})

		Convey("Should fail with EmptyBatch when every line is discarded", func() {
			path := writeBatchFile("junk.txt", "nope\nstill nope\n")
			_, skipped, err := Parse(path)
			So(fault.KindOf(err), ShouldEqual, fault.EmptyBatch)
			So(skipped, ShouldEqual, 2)
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Run", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()
		ctx := context.Background()

		Convey("Should preserve input order and isolate per-item failures", func() {
			p := &scriptedProvider{
				titles: map[string]string{
					"alpha": "Alpha Video",
					"gamma": "Gamma Video",
				},
				errs: map[string]error{
					"beta": fault.New(fault.VideoNotAvailable, "beta is gone"),
				},
			}
			urls := []string{
				"https://youtu.be/alpha",
				"https://youtu.be/beta",
				"https://youtu.be/gamma",
			}

			outcomes := Run(ctx, testExtractor(p), urls, mo.Some("en"))
			So(len(outcomes), ShouldEqual, 3)

			So(outcomes[0].Input, ShouldEqual, urls[0])
			So(outcomes[0].Err, ShouldBeNil)
			So(outcomes[0].File, ShouldNotBeEmpty)

			So(outcomes[1].Input, ShouldEqual, urls[1])
			So(fault.KindOf(outcomes[1].Err), ShouldEqual, fault.VideoNotAvailable)
			So(outcomes[1].File, ShouldBeEmpty)

			So(outcomes[2].Input, ShouldEqual, urls[2])
			So(outcomes[2].Err, ShouldBeNil)

			Convey("and write files only for the successes", func() {
				exists, _ := filesystem.API().Exists(outcomes[0].File)
				So(exists, ShouldBeTrue)

				content, err := filesystem.API().ReadFile(outcomes[2].File)
				So(err, ShouldBeNil)
				So(string(content), ShouldEqual, "transcript of gamma")
			})
		})

		Convey("Should complete even when every item fails", func() {
			p := &scriptedProvider{
				errs: map[string]error{
					"one": fault.New(fault.NoTranscript, "none"),
					"two": fault.New(fault.VideoNotAvailable, "gone"),
				},
			}
			urls := []string{"https://youtu.be/one", "https://youtu.be/two"}

			outcomes := Run(ctx, testExtractor(p), urls, mo.None[string]())
			So(len(outcomes), ShouldEqual, 2)
			for _, outcome := range outcomes {
				So(outcome.Err, ShouldNotBeNil)
				So(outcome.File, ShouldBeEmpty)
			}
		})
	})
}

func TestSummarize(t *testing.T) {
	Convey("Summarize", t, func() {
		outcomes := []*Outcome{
			{Input: "https://youtu.be/ok", File: "/work/ok_transcript.txt"},
			{Input: "https://youtu.be/bad", Err: fault.New(fault.NoTranscript, "none")},
		}

		report := Summarize("batch.txt", outcomes, 1)
		So(report.Total, ShouldEqual, 3)
		So(report.Succeeded, ShouldEqual, 1)
		So(report.Failed, ShouldEqual, 1)
		So(report.Skipped, ShouldEqual, 1)
		So(report.Items[0].File, ShouldEqual, "/work/ok_transcript.txt")
		So(report.Items[1].Kind, ShouldEqual, "no transcript available")

		data, err := report.Json()
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, `"source": "batch.txt"`)
	})
}

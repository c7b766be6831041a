// Package extract implements the single-video retrieval engine.
//
// An Extractor drives one video through URL validation, metadata lookup,
// language resolution, transcript retrieval, and assembly. Transport-level
// failures repeat under the retry policy; classified faults propagate
// immediately.
package extract

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/tubescribe-cli/tubescribe/fault"
	"github.com/tubescribe-cli/tubescribe/key"
	"github.com/tubescribe-cli/tubescribe/log"
	"github.com/tubescribe-cli/tubescribe/provider"
	"github.com/tubescribe-cli/tubescribe/retry"
	"github.com/tubescribe-cli/tubescribe/validate"
)

// Result is a fully assembled transcript. It is created only on full success
// and never partially populated.
type Result struct {
	VideoID  string
	Title    string
	Language string
	Text     string
}

// Extractor retrieves transcripts through the provider capabilities.
type Extractor struct {
	Metadata    provider.MetadataProvider
	Transcripts provider.TranscriptProvider
	Retry       retry.Policy
}

// New returns an Extractor over the given provider capabilities.
func New(meta provider.MetadataProvider, transcripts provider.TranscriptProvider, policy retry.Policy) *Extractor {
	return &Extractor{Metadata: meta, Transcripts: transcripts, Retry: policy}
}

// Run retrieves the transcript for a raw video URL.
//
// The language selector is either absent, meaning the configured default is
// attempted, or an allow-listed code that must match exactly; there is no
// silent fallback to another language in either case.
func (e *Extractor) Run(ctx context.Context, rawURL string, lang mo.Option[string]) (*Result, error) {
	// Step 1: Validate the URL shape and extract the canonical video identifier.
	// Validation failures are terminal and never retried.
	videoID, err := validate.VideoID(rawURL)
	if err != nil {
		return nil, err
	}
	log.Debugf("processing video %s", videoID)

	// Step 2: Execute the full fetch sequence under the retry policy.
	// Every attempt restarts from the metadata lookup.
	var result *Result
	err = e.Retry.Do(ctx, func(ctx context.Context) error {
		r, err := e.fetch(ctx, videoID, lang)
		if err != nil {
			return err
		}
		result = r
		return nil
	})

	if err != nil {
		if fault.Retryable(err) {
			// The retry window expired without a classified cause.
			return nil, fault.Wrap(fault.Network, err, "network failure retrieving video %s", videoID).WithInput(rawURL)
		}
		return nil, err
	}

	return result, nil
}

// fetch performs one attempt of the metadata, language, transcript, and assembly steps.
func (e *Extractor) fetch(ctx context.Context, videoID string, lang mo.Option[string]) (*Result, error) {
	title, err := e.Metadata.Title(ctx, videoID)
	if err != nil {
		return nil, err
	}
	log.Debugf("video title: %s", title)

	requested, explicit := lang.Get()
	code := requested
	if !explicit {
		code = defaultLanguage()
	}

	transcript, err := e.Transcripts.Locate(ctx, videoID, code)
	if err != nil {
		// A track missing for the default language means the video simply has
		// no usable transcript; only an explicit request maps to the
		// language-specific failure.
		if !explicit && fault.KindOf(err) == fault.LanguageNotAvailable {
			return nil, fault.New(fault.NoTranscript, "no transcript available for video %s", videoID).WithInput(videoID)
		}
		return nil, err
	}

	segments, err := transcript.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, fault.New(fault.NoTranscript, "no transcript available for video %s", videoID).WithInput(videoID)
	}

	text := strings.Join(lo.Map(segments, func(s provider.Segment, _ int) string {
		return s.Text
	}), " ")
	log.Debugf("assembled transcript for %s (%d chars)", videoID, len(text))

	return &Result{
		VideoID:  videoID,
		Title:    title,
		Language: transcript.Language(),
		Text:     text,
	}, nil
}

func defaultLanguage() string {
	if code := viper.GetString(key.LanguageDefault); code != "" {
		return code
	}
	return "en"
}

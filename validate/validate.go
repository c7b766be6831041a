// Package validate implements input validation for video URLs and language selectors.
package validate

import (
	"regexp"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tubescribe-cli/tubescribe/fault"
)

// videoIDPatterns is the ordered set of accepted URL shapes. The first match wins
// and its capture group becomes the canonical video identifier.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([^&\n?]+)`),
	regexp.MustCompile(`youtu\.be/([^&\n?]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^&\n?]+)`),
	regexp.MustCompile(`youtube\.com/v/([^&\n?]+)`),
}

// Languages is the fixed allow-list of supported ISO 639-1 transcript language codes.
var Languages = []string{"en", "es", "fr", "de", "it", "pt", "nl", "pl", "ru", "ja", "ko", "zh"}

// VideoID extracts the canonical video identifier from a raw URL string.
// The identifier is opaque to the caller and consumed as-is by providers.
func VideoID(raw string) (string, error) {
	for _, pattern := range videoIDPatterns {
		if match := pattern.FindStringSubmatch(raw); match != nil {
			return match[1], nil
		}
	}

	return "", fault.New(
		fault.InvalidURL,
		"invalid video URL format, expected youtube.com/watch?v=VIDEO_ID or youtu.be/VIDEO_ID",
	).WithInput(raw)
}

// Language validates a requested transcript language code against the allow-list.
// An empty code is valid and means no preference was supplied.
func Language(code string) (mo.Option[string], error) {
	if code == "" {
		return mo.None[string](), nil
	}

	if !lo.Contains(Languages, code) {
		return mo.None[string](), fault.New(fault.UnsupportedLanguage, "unsupported language code: %s", code).WithInput(code)
	}

	return mo.Some(code), nil
}

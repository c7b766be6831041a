// Package youtube implements the provider capabilities against YouTube's public endpoints.
//
// Titles come from the oEmbed endpoint; transcript tracks come from the
// timedtext endpoint. Neither requires authentication.
package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"

	"github.com/samber/lo"
	"github.com/tubescribe-cli/tubescribe/fault"
	"github.com/tubescribe-cli/tubescribe/log"
	"github.com/tubescribe-cli/tubescribe/network"
	"github.com/tubescribe-cli/tubescribe/provider"
)

const (
	defaultOEmbedURL    = "https://www.youtube.com/oembed"
	defaultTimedTextURL = "https://video.google.com/timedtext"
)

// Provider implements provider.MetadataProvider and provider.TranscriptProvider.
type Provider struct {
	Client *http.Client

	// Endpoint overrides, settable in tests.
	OEmbedURL    string
	TimedTextURL string
}

// New returns a Provider backed by the shared application HTTP client.
func New() *Provider {
	return &Provider{
		Client:       network.Client,
		OEmbedURL:    defaultOEmbedURL,
		TimedTextURL: defaultTimedTextURL,
	}
}

// Title resolves the video title through the oEmbed endpoint.
func (p *Provider) Title(ctx context.Context, videoID string) (string, error) {
	query := url.Values{}
	query.Set("url", "https://www.youtube.com/watch?v="+videoID)
	query.Set("format", "json")

	resp, err := p.get(ctx, p.OEmbedURL+"?"+query.Encode())
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return "", fault.New(fault.VideoNotAvailable, "video %s is private, deleted, or geo-blocked", videoID).WithInput(videoID)
	default:
		return "", fmt.Errorf("oembed returned status %d", resp.StatusCode)
	}

	var payload struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode oembed response: %w", err)
	}

	log.Debugf("resolved title for %s: %s", videoID, payload.Title)
	return payload.Title, nil
}

// trackList mirrors the timedtext track listing document.
type trackList struct {
	Tracks []trackEntry `xml:"track"`
}

type trackEntry struct {
	LangCode string `xml:"lang_code,attr"`
}

// Languages lists the language codes of all transcript tracks published for the video.
func (p *Provider) Languages(ctx context.Context, videoID string) ([]string, error) {
	query := url.Values{}
	query.Set("type", "list")
	query.Set("v", videoID)

	resp, err := p.get(ctx, p.TimedTextURL+"?"+query.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return nil, fault.New(fault.VideoNotAvailable, "video %s is private, deleted, or geo-blocked", videoID).WithInput(videoID)
	default:
		return nil, fmt.Errorf("timedtext list returned status %d", resp.StatusCode)
	}

	var list trackList
	if err := xml.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode track list: %w", err)
	}

	codes := lo.Map(list.Tracks, func(t trackEntry, _ int) string {
		return t.LangCode
	})

	log.Debugf("video %s has transcript tracks: %v", videoID, codes)
	return codes, nil
}

// Locate finds the transcript track for the given language code.
func (p *Provider) Locate(ctx context.Context, videoID, language string) (provider.Transcript, error) {
	codes, err := p.Languages(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if len(codes) == 0 {
		return nil, fault.New(fault.NoTranscript, "transcripts are disabled or none exist for video %s", videoID).WithInput(videoID)
	}

	if !lo.Contains(codes, language) {
		return nil, fault.New(fault.LanguageNotAvailable, "no transcript available in language %q for video %s", language, videoID).WithInput(videoID)
	}

	return &track{provider: p, videoID: videoID, language: language}, nil
}

// track is a located timedtext transcript for one language of one video.
type track struct {
	provider *Provider
	videoID  string
	language string
}

func (t *track) Language() string {
	return t.language
}

// captionDoc mirrors the timedtext caption document.
type captionDoc struct {
	Texts []struct {
		Start    float64 `xml:"start,attr"`
		Duration float64 `xml:"dur,attr"`
		Body     string  `xml:",chardata"`
	} `xml:"text"`
}

// Fetch retrieves the ordered caption segments for the track.
func (t *track) Fetch(ctx context.Context) ([]provider.Segment, error) {
	query := url.Values{}
	query.Set("lang", t.language)
	query.Set("v", t.videoID)

	resp, err := t.provider.get(ctx, t.provider.TimedTextURL+"?"+query.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timedtext returned status %d", resp.StatusCode)
	}

	var doc captionDoc
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode captions: %w", err)
	}

	segments := make([]provider.Segment, len(doc.Texts))
	for i, text := range doc.Texts {
		segments[i] = provider.Segment{
			Text:     text.Body,
			Start:    text.Start,
			Duration: text.Duration,
		}
	}

	return segments, nil
}

func (p *Provider) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := network.NewRequest(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	client := p.Client
	if client == nil {
		client = network.Client
	}
	return client.Do(req)
}

// Package provider defines the narrow capability interfaces the extraction engine depends on.
//
// Alternate platforms and test doubles substitute for the real YouTube-backed
// implementation without touching orchestration logic.
package provider

import "context"

// Segment is a single caption unit of a transcript, ordered by Start.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// MetadataProvider resolves a video identifier to its title.
//
// Implementations must distinguish a "video not found/unavailable" failure
// (a classified fault) from a generic transport failure (any other error),
// since only the latter is retried.
type MetadataProvider interface {
	Title(ctx context.Context, videoID string) (string, error)
}

// Transcript is a located transcript track for one language of one video.
type Transcript interface {
	// Language returns the ISO 639-1 code of the track.
	Language() string

	// Fetch retrieves the ordered caption segments of the track.
	Fetch(ctx context.Context) ([]Segment, error)
}

// TranscriptProvider locates transcript tracks for a video.
//
// Implementations must surface "transcripts disabled/none", "video
// unavailable", and "requested language missing" as distinct classified
// faults; anything else is treated as transport-level and retried.
type TranscriptProvider interface {
	// Languages lists the language codes of all available transcript tracks.
	Languages(ctx context.Context, videoID string) ([]string, error)

	// Locate finds the transcript track for a specific language code.
	Locate(ctx context.Context, videoID, language string) (Transcript, error)
}

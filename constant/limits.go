// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Extraction limits. These are contract values, not tunables.
const (
	// MaxBatchSize caps the number of URLs a single batch run may contain.
	MaxBatchSize = 100

	// MaxFilenameLength caps the full output filename, extension included.
	MaxFilenameLength = 255

	// MaxSlugLength caps the title-derived portion of an output filename.
	MaxSlugLength = 100

	// TranscriptSuffix is appended to the title slug to form the output filename.
	TranscriptSuffix = "_transcript.txt"
)

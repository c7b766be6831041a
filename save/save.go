// Package save persists assembled transcripts as sanitized files in the working directory.
package save

import (
	"fmt"

	"github.com/tubescribe-cli/tubescribe/constant"
	"github.com/tubescribe-cli/tubescribe/filesystem"
	"github.com/tubescribe-cli/tubescribe/log"
	"github.com/tubescribe-cli/tubescribe/util"
)

// Transcript writes text to "<slug>_transcript.txt" in the working directory
// and returns the absolute path of the written file.
//
// The filename is capped at 255 characters, keeping the extension. A second
// call with a title that slugifies identically overwrites the first file;
// collisions are not detected.
func Transcript(title, text string) (string, error) {
	// The confinement check runs per file, never cached across calls.
	path, err := util.SanitizePath(Filename(title))
	if err != nil {
		return "", err
	}

	if err := filesystem.WriteRestricted(path, []byte(text)); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}

	log.Debugf("wrote %d bytes to %s", len(text), path)
	return path, nil
}

// Filename reports the output filename a title would produce, without writing.
func Filename(title string) string {
	name := util.Slugify(title) + constant.TranscriptSuffix
	if len(name) > constant.MaxFilenameLength {
		ext := ".txt"
		name = name[:constant.MaxFilenameLength-len(ext)] + ext
	}
	return name
}

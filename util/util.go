// Package util provides a collection of domain-agnostic utility functions and cross-platform helpers.
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tubescribe-cli/tubescribe/constant"
	"github.com/tubescribe-cli/tubescribe/fault"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

// slugInvalid matches every maximal run of characters outside the slug alphabet.
var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify normalizes a video title into a filesystem-safe slug.
//
// The title is lowercased, runs of characters outside [a-z0-9] collapse into a
// single underscore, edge underscores are stripped, and the result is capped at
// 100 characters. Characters with no lowercase ASCII form are dropped rather
// than transliterated, so an all-punctuation or non-Latin title yields an
// empty slug.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugInvalid.ReplaceAllString(slug, "_")
	slug = strings.Trim(slug, "_")

	if len(slug) > constant.MaxSlugLength {
		slug = slug[:constant.MaxSlugLength]
	}
	return slug
}

// SanitizePath resolves a candidate filename to an absolute path confined to the
// current working directory. Any resolution that escapes the working directory,
// such as ".." segments, is rejected. The check is performed per call and never
// cached.
func SanitizePath(name string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", name, err)
	}

	rel, err := filepath.Rel(cwd, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fault.New(fault.PathTraversal, "path %s resolves outside the working directory", name).WithInput(name)
	}

	return abs, nil
}

// Quantify returns a pluralized string representation of a count and its associated labels.
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// TerminalSize retrieves the current character dimensions of the terminal window.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// PrintErasable prints an ephemeral message to the terminal and returns a closure to clear it.
func PrintErasable(msg string) (eraser func()) {
	fmt.Fprintf(os.Stdout, "\r%s", msg)
	return func() {
		fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", len(msg)))
	}
}

// Max returns the maximum value among arguments.
func Max[T constraints.Ordered](items ...T) (max T) {
	if len(items) == 0 {
		return
	}
	max = items[0]
	for _, item := range items[1:] {
		if item > max {
			max = item
		}
	}
	return
}

// Min returns the minimum value among arguments.
func Min[T constraints.Ordered](items ...T) (min T) {
	if len(items) == 0 {
		return
	}
	min = items[0]
	for _, item := range items[1:] {
		if item < min {
			min = item
		}
	}
	return
}

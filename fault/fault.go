// Package fault defines the closed error taxonomy shared by every extraction component
// and its mapping onto process exit codes.
package fault

import (
	"errors"
	"fmt"
)

// Kind identifies one member of the closed error taxonomy.
type Kind uint8

const (
	// Unknown is the catch-all for unclassified failures. It is the only kind
	// the retry policy treats as transient.
	Unknown Kind = iota

	// Input failures.
	InvalidURL
	UnsupportedLanguage
	EmptyBatch

	// Availability failures.
	NoTranscript
	LanguageNotAvailable
	VideoNotAvailable

	// Security failures.
	PathTraversal
	BatchTooLarge

	// Network is a transport failure that survived the retry window.
	Network
)

// Class groups kinds by their propagation policy.
type Class uint8

const (
	ClassUnknown Class = iota
	ClassInput
	ClassAvailability
	ClassSecurity
	ClassTransport
)

// Class returns the propagation group the kind belongs to.
func (k Kind) Class() Class {
	switch k {
	case InvalidURL, UnsupportedLanguage, EmptyBatch:
		return ClassInput
	case NoTranscript, LanguageNotAvailable, VideoNotAvailable:
		return ClassAvailability
	case PathTraversal, BatchTooLarge:
		return ClassSecurity
	case Network:
		return ClassTransport
	default:
		return ClassUnknown
	}
}

func (k Kind) String() string {
	switch k {
	case InvalidURL:
		return "invalid URL"
	case UnsupportedLanguage:
		return "unsupported language"
	case EmptyBatch:
		return "empty batch"
	case NoTranscript:
		return "no transcript available"
	case LanguageNotAvailable:
		return "language not available"
	case VideoNotAvailable:
		return "video not available"
	case PathTraversal:
		return "path traversal"
	case BatchTooLarge:
		return "batch too large"
	case Network:
		return "network error"
	default:
		return "unknown error"
	}
}

// Error is a classified failure carrying the originating input when known.
type Error struct {
	Kind    Kind
	Input   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithInput attaches the originating input string to the error and returns it.
func (e *Error) WithInput(input string) *Error {
	e.Input = input
	return e
}

// New constructs a classified error with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error, preserving it for errors.Is/As inspection.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the taxonomy kind from an error chain, defaulting to Unknown.
func KindOf(err error) Kind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return Unknown
}

// Retryable reports whether the error is an unclassified, presumed-transient failure.
// Classified input, availability, security, and post-window network errors are terminal.
func Retryable(err error) bool {
	return err != nil && KindOf(err) == Unknown
}

// ExitCode maps an error onto the process exit code contract.
//
//	0 success, 1 unknown/security/batch-pipeline, 2 invalid URL or language,
//	3 no transcript, 4 language unavailable, 5 video unavailable, 6 network.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case InvalidURL, UnsupportedLanguage:
		return 2
	case NoTranscript:
		return 3
	case LanguageNotAvailable:
		return 4
	case VideoNotAvailable:
		return 5
	case Network:
		return 6
	default:
		return 1
	}
}

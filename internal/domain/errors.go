package domain

import "fmt"

// Sentinel errors shared across stores and services.
var (
	// ErrNotFound means the entity is absent or not owned by the
	// requesting user. Never retried.
	ErrNotFound = fmt.Errorf("not found")

	// ErrNoCandidate means a shuffle build found no video satisfying
	// the seed constraints.
	ErrNoCandidate = fmt.Errorf("no candidate video")

	// ErrUnavailable means an asset path is missing or unreadable.
	ErrUnavailable = fmt.Errorf("asset unavailable")
)

// FetchError wraps a failure to retrieve an external feed. Surfaced to
// the job infrastructure for redelivery.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch feed %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError wraps a failure to parse a retrieved feed body.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse feed %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

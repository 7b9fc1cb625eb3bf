package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned while opening and parsing configuration sources.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrConfigLoad matches every [LoadError]: the source could not be
	// opened, read or parsed.
	ErrConfigLoad = errors.New("error loading configuration")

	// ErrNilSource is returned when Load is called without a source.
	ErrNilSource = errors.New("configuration source is nil")

	// ErrNoSourceAvailable is returned by a FirstAvailable source when none
	// of its candidates could be opened.
	ErrNoSourceAvailable = errors.New("no configuration source could be opened")

	// ErrNoGlobMatch is returned by a GlobSource whose pattern matches no
	// regular file.
	ErrNoGlobMatch = errors.New("no file matches the configuration pattern")

	// ErrSourceConsumed is returned when a reader-backed source is opened a
	// second time.
	ErrSourceConsumed = errors.New("configuration reader was already consumed")

	// ErrUnknownEncoding is returned by ParseEncoding for unsupported
	// encoding names.
	ErrUnknownEncoding = errors.New("unknown properties encoding")
)

// LoadError describes a failure to load a configuration source. It carries a
// human-readable description of the source that was being loaded and the
// underlying I/O or parse error.
type LoadError struct {
	// Source is the description of the configuration source.
	Source string
	// Err is the underlying failure.
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("error loading configuration from %s: %v", e.Source, e.Err)
}

// Unwrap exposes both [ErrConfigLoad] and the underlying failure to
// errors.Is and errors.As.
func (e *LoadError) Unwrap() []error {
	return []error{ErrConfigLoad, e.Err}
}

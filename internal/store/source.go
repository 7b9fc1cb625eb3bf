package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type fileSource struct {
	path string
}

// FileSource returns a [Source] reading the file at path.
func FileSource(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Open() (io.ReadCloser, error) {
	return os.Open(s.path)
}

func (s *fileSource) Description() string {
	return "file " + s.path
}

type readerSource struct {
	r           io.Reader
	description string
	opened      bool
}

// ReaderSource returns a [Source] backed by an already opened reader. If r
// also implements io.Closer it is closed by the loader once parsing ends.
// The source can be opened only once.
func ReaderSource(r io.Reader, description string) Source {
	if description == "" {
		description = "reader"
	}
	return &readerSource{r: r, description: description}
}

func (s *readerSource) Open() (io.ReadCloser, error) {
	if s.r == nil {
		return nil, ErrNilSource
	}
	if s.opened {
		return nil, ErrSourceConsumed
	}
	s.opened = true

	if rc, ok := s.r.(io.ReadCloser); ok {
		return rc, nil
	}
	return io.NopCloser(s.r), nil
}

func (s *readerSource) Description() string {
	return s.description
}

type fsSource struct {
	fsys fs.FS
	name string
}

// FSSource returns a [Source] reading name from fsys. It is used for
// configuration files packaged with the binary (embed.FS) or served from
// any other fs.FS implementation.
func FSSource(fsys fs.FS, name string) Source {
	return &fsSource{fsys: fsys, name: name}
}

func (s *fsSource) Open() (io.ReadCloser, error) {
	if s.fsys == nil {
		return nil, ErrNilSource
	}
	return s.fsys.Open(s.name)
}

func (s *fsSource) Description() string {
	return "resource " + s.name
}

type firstAvailable struct {
	candidates []Source
	opened     Source
}

// FirstAvailable returns a [Source] that opens the first candidate which can
// be opened. Candidates are tried in order; when none can be opened the
// error joins [ErrNoSourceAvailable] with every individual failure.
func FirstAvailable(candidates ...Source) Source {
	return &firstAvailable{candidates: candidates}
}

func (s *firstAvailable) Open() (io.ReadCloser, error) {
	if len(s.candidates) == 0 {
		return nil, ErrNoSourceAvailable
	}

	errs := []error{ErrNoSourceAvailable}
	for _, candidate := range s.candidates {
		if candidate == nil {
			continue
		}
		rc, err := candidate.Open()
		if err == nil {
			s.opened = candidate
			return rc, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", candidate.Description(), err))
	}

	return nil, errors.Join(errs...)
}

func (s *firstAvailable) Description() string {
	if s.opened != nil {
		return s.opened.Description()
	}

	descriptions := make([]string, 0, len(s.candidates))
	for _, candidate := range s.candidates {
		if candidate != nil {
			descriptions = append(descriptions, candidate.Description())
		}
	}
	return "first available of [" + strings.Join(descriptions, ", ") + "]"
}

type globSource struct {
	pattern string
	matched string
}

// GlobSource returns a [Source] that opens the lexically first regular file
// matching pattern. Patterns support "**" for recursive matching.
func GlobSource(pattern string) Source {
	return &globSource{pattern: pattern}
}

func (s *globSource) Open() (io.ReadCloser, error) {
	matches, err := doublestar.FilepathGlob(s.pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("error expanding pattern %q: %w", s.pattern, err)
	}
	if len(matches) == 0 {
		return nil, ErrNoGlobMatch
	}

	sort.Strings(matches)
	f, err := os.Open(matches[0])
	if err != nil {
		return nil, err
	}
	s.matched = matches[0]
	return f, nil
}

func (s *globSource) Description() string {
	if s.matched != "" {
		return "file " + s.matched
	}
	return "files matching " + s.pattern
}

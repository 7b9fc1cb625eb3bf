package propconf

import (
	"io"
	"io/fs"

	"github.com/MKhiriev/go-prop-config/internal/resolver"
	"github.com/MKhiriev/go-prop-config/internal/store"
)

// Source is a closable configuration input. It is opened once by [Load] and
// always released, whatever the outcome.
type Source = store.Source

// Provider is a read-only source of variable bindings used by the scope
// chain for builtin synonyms and global fallbacks.
type Provider = resolver.Provider

// MapProvider binds variables from a fixed map.
type MapProvider = resolver.MapProvider

// FileSource reads the property file at path.
func FileSource(path string) Source {
	return store.FileSource(path)
}

// ReaderSource reads an already opened stream; r is closed after loading if
// it implements io.Closer.
func ReaderSource(r io.Reader, description string) Source {
	return store.ReaderSource(r, description)
}

// FSSource reads name from fsys, typically an embed.FS.
func FSSource(fsys fs.FS, name string) Source {
	return store.FSSource(fsys, name)
}

// FirstAvailable opens the first of candidates that can be opened.
func FirstAvailable(candidates ...Source) Source {
	return store.FirstAvailable(candidates...)
}

// GlobSource opens the lexically first file matching a "**"-capable glob.
func GlobSource(pattern string) Source {
	return store.GlobSource(pattern)
}

// EnvProvider binds variables from a snapshot of the process environment,
// trying the verbatim name and then prefix + upper-snake name.
func EnvProvider(prefix string) Provider {
	return resolver.EnvProvider(prefix)
}

// HostBuiltins binds user.home and user.dir from the host.
func HostBuiltins() Provider {
	return resolver.HostBuiltins()
}

// Chain consults providers in order; the first binding wins.
func Chain(providers ...Provider) Provider {
	return resolver.Chain(providers...)
}

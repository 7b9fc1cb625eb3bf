package resolver

import (
	"os"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-prop-config/models"
	"github.com/caarlos0/env/v11"
)

// Names of the builtin synonyms served by [HostBuiltins].
const (
	UserHome = "user.home"
	UserDir  = "user.dir"
)

// MapProvider binds variables from a fixed map.
type MapProvider map[string]string

// Lookup implements [Provider].
func (m MapProvider) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

type envProvider struct {
	vars   map[string]string
	prefix string
}

// EnvProvider returns a [Provider] over a snapshot of the current process
// environment. See [NewEnvProvider] for the lookup rules.
func EnvProvider(prefix string) Provider {
	return NewEnvProvider(os.Environ(), prefix)
}

// NewEnvProvider returns a [Provider] over environ, given in os.Environ form
// ("NAME=value"). A name is looked up verbatim first and, when prefix is not
// empty, then as prefix + [EnvName](name), so ${db.host} with prefix "APP_"
// also matches APP_DB_HOST. Without a prefix ${path} never binds to PATH.
func NewEnvProvider(environ []string, prefix string) Provider {
	return &envProvider{
		vars:   env.ToMap(environ),
		prefix: prefix,
	}
}

func (p *envProvider) Lookup(name string) (string, bool) {
	if v, ok := p.vars[name]; ok {
		return v, true
	}
	if p.prefix == "" {
		return "", false
	}
	v, ok := p.vars[p.prefix+EnvName(name)]
	return v, ok
}

// EnvName converts a dotted property name into environment-variable form:
// upper case with every character other than letters and digits replaced
// by an underscore ("db.pool-size" becomes "DB_POOL_SIZE").
func EnvName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToUpper(r)
		}
		return '_'
	}, name)
}

type chain []Provider

// Chain returns a [Provider] consulting providers in order; the first
// binding wins. Nil providers are skipped.
func Chain(providers ...Provider) Provider {
	c := make(chain, 0, len(providers))
	for _, p := range providers {
		if p != nil {
			c = append(c, p)
		}
	}
	return c
}

func (c chain) Lookup(name string) (string, bool) {
	for _, p := range c {
		if v, ok := p.Lookup(name); ok {
			return v, true
		}
	}
	return "", false
}

type builtins map[string]func() (string, error)

// HostBuiltins returns the builtin synonyms read from the host:
// user.home (home directory) and user.dir (working directory). Both are
// normalized as directories: forward slashes and a trailing slash.
func HostBuiltins() Provider {
	return builtins{
		UserHome: os.UserHomeDir,
		UserDir:  os.Getwd,
	}
}

func (b builtins) Lookup(name string) (string, bool) {
	get, ok := b[name]
	if !ok {
		return "", false
	}
	v, err := get()
	if err != nil || v == "" {
		return "", false
	}
	return models.NormalizePath(v, models.DirectoryPath), true
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-prop-config/internal/logger"
	"github.com/MKhiriev/go-prop-config/models"
	"github.com/magiconair/properties"
)

// Entries is an ordered collection of raw configuration entries.
//
// Keys keep the position of their first declaration; a repeated key
// replaces the stored value in place.
type Entries struct {
	keys   []string
	values map[string]string
}

// NewEntries builds [Entries] from the given raw entries, applying the same
// ordering and de-duplication rules as [Load].
func NewEntries(raw ...models.RawEntry) *Entries {
	e := &Entries{
		keys:   make([]string, 0, len(raw)),
		values: make(map[string]string, len(raw)),
	}
	for _, entry := range raw {
		e.set(entry.Key, entry.Value)
	}
	return e
}

func (e *Entries) set(key, value string) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	if _, ok := e.values[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.values[key] = strings.TrimSpace(value)
}

// Keys returns the declared keys in first-seen order.
func (e *Entries) Keys() []string {
	out := make([]string, len(e.keys))
	copy(out, e.keys)
	return out
}

// Raw returns the declared value of key and whether the key was declared.
func (e *Entries) Raw(key string) (string, bool) {
	v, ok := e.values[key]
	return v, ok
}

// Len returns the number of distinct keys.
func (e *Entries) Len() int {
	return len(e.keys)
}

// All returns every entry in declaration order.
func (e *Entries) All() []models.RawEntry {
	out := make([]models.RawEntry, 0, len(e.keys))
	for _, key := range e.keys {
		out = append(out, models.RawEntry{Key: key, Value: e.values[key]})
	}
	return out
}

// Option configures [Load].
type Option func(*loadOptions)

type loadOptions struct {
	encoding properties.Encoding
	log      *logger.Logger
}

// WithEncoding sets the character encoding of the source.
// The default is UTF-8.
func WithEncoding(enc properties.Encoding) Option {
	return func(o *loadOptions) {
		o.encoding = enc
	}
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(o *loadOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// ParseEncoding maps an encoding name ("utf-8", "iso-8859-1", "latin1", ...)
// to a properties.Encoding. An empty name selects UTF-8.
func ParseEncoding(name string) (properties.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return properties.UTF8, nil
	case "iso-8859-1", "iso8859-1", "latin1", "latin-1":
		return properties.ISO_8859_1, nil
	default:
		return properties.UTF8, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
}

// Load opens src, parses its property-file content and releases it.
//
// The grammar is the usual property-file one: lines starting with '#' or
// '!' are comments, a trailing backslash continues the value on the next
// line, '=', ':' or whitespace separate key from value and escape
// sequences are decoded. Placeholders are kept verbatim.
//
// Every failure is returned as a *[LoadError]. A failure to close the source
// is logged and never returned.
func Load(src Source, opts ...Option) (*Entries, error) {
	o := &loadOptions{
		encoding: properties.UTF8,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if src == nil {
		return nil, &LoadError{Source: "<nil>", Err: ErrNilSource}
	}

	rc, err := src.Open()
	if err != nil {
		return nil, &LoadError{Source: src.Description(), Err: err}
	}
	defer func() {
		if closeErr := rc.Close(); closeErr != nil {
			o.log.Warn().Err(closeErr).Str("source", src.Description()).Msg("error closing configuration source")
		}
	}()

	buf, err := io.ReadAll(rc)
	if err != nil {
		return nil, &LoadError{Source: src.Description(), Err: fmt.Errorf("error reading source: %w", err)}
	}

	loader := &properties.Loader{Encoding: o.encoding, DisableExpansion: true}
	props, err := loader.LoadBytes(buf)
	if err != nil {
		return nil, &LoadError{Source: src.Description(), Err: fmt.Errorf("error parsing properties: %w", err)}
	}

	entries := NewEntries()
	for _, key := range props.Keys() {
		value, _ := props.Get(key)
		entries.set(key, value)
	}

	o.log.Debug().
		Str("source", src.Description()).
		Int("entries", entries.Len()).
		Msg("configuration source loaded")

	return entries, nil
}

// LoadString parses inline property-file text. It is a shorthand for
// loading a [ReaderSource] over s.
func LoadString(s string, opts ...Option) (*Entries, error) {
	return Load(ReaderSource(strings.NewReader(s), "inline properties"), opts...)
}

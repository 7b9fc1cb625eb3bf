// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package propconf

import (
	"strings"

	"github.com/MKhiriev/go-prop-config/internal/logger"
	"github.com/MKhiriev/go-prop-config/internal/resolver"
	"github.com/MKhiriev/go-prop-config/internal/store"
	"github.com/MKhiriev/go-prop-config/internal/validators"
	"github.com/MKhiriev/go-prop-config/models"
	"github.com/magiconair/properties"
	"github.com/rs/zerolog"
)

// Config is an immutable, fully resolved configuration.
type Config struct {
	description string
	keys        []string
	declared    map[string]struct{}
	values      map[string]string

	validator validators.Validator
	log       *logger.Logger
}

// Option configures [Load] and [New].
type Option func(*options)

type options struct {
	encoding     properties.Encoding
	resolverOpts []resolver.Option
	log          *logger.Logger
}

// WithEncoding sets the character encoding of the source (UTF-8 by default).
func WithEncoding(enc properties.Encoding) Option {
	return func(o *options) {
		o.encoding = enc
	}
}

// WithBuiltins replaces the builtin synonym provider ([HostBuiltins] by
// default). Nil disables builtins.
func WithBuiltins(p Provider) Option {
	return func(o *options) {
		o.resolverOpts = append(o.resolverOpts, resolver.WithBuiltins(p))
	}
}

// WithFallback replaces the global fallback provider (EnvProvider("") by
// default). Nil disables the fallback.
func WithFallback(p Provider) Option {
	return func(o *options) {
		o.resolverOpts = append(o.resolverOpts, resolver.WithFallback(p))
	}
}

// WithLogger routes load and resolution diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = (&logger.Logger{Logger: l}).WithComponent("propconf")
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		encoding: properties.UTF8,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Load reads src, resolves every ${name} placeholder and returns the
// resulting configuration.
//
// Errors are a *LoadError (ErrConfigLoad) when the source fails and a
// *VariableError (ErrUnresolvedVariable, ErrCyclicVariable) when resolution
// fails.
func Load(src Source, opts ...Option) (*Config, error) {
	o := newOptions(opts)

	entries, err := store.Load(src, store.WithEncoding(o.encoding), store.WithLogger(o.log))
	if err != nil {
		return nil, err
	}

	return build(src.Description(), entries, o)
}

// LoadFile is Load(FileSource(path), opts...).
func LoadFile(path string, opts ...Option) (*Config, error) {
	return Load(FileSource(path), opts...)
}

// New resolves entries declared in code. description names the
// configuration in diagnostics.
func New(description string, entries []models.RawEntry, opts ...Option) (*Config, error) {
	return build(description, store.NewEntries(entries...), newOptions(opts))
}

func build(description string, entries *store.Entries, o *options) (*Config, error) {
	resolverOpts := append([]resolver.Option{resolver.WithLogger(o.log)}, o.resolverOpts...)

	values, err := resolver.New(entries, resolverOpts...).Resolve()
	if err != nil {
		o.log.Debug().Err(err).Str("source", description).Msg("configuration resolution failed")
		return nil, err
	}

	keys := entries.Keys()
	declared := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		declared[k] = struct{}{}
	}

	return &Config{
		description: description,
		keys:        keys,
		declared:    declared,
		values:      values,
		validator:   validators.NewPathValidator(),
		log:         o.log,
	}, nil
}

// Description names the configuration source.
func (c *Config) Description() string {
	return c.description
}

// Keys returns every declared key in declaration order, including keys whose
// value is blank.
func (c *Config) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of declared keys.
func (c *Config) Len() int {
	return len(c.keys)
}

// Declared reports whether key was declared, even with a blank value.
func (c *Config) Declared(key string) bool {
	_, ok := c.declared[key]
	return ok
}

// Lookup returns the resolved value of key and whether it is present.
// Blank and undeclared keys are absent.
func (c *Config) Lookup(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// All returns every declared key with its resolved value, in declaration
// order. Absent values are reported as empty strings.
func (c *Config) All() []models.RawEntry {
	out := make([]models.RawEntry, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, models.RawEntry{Key: k, Value: c.values[k]})
	}
	return out
}

// Each calls fn for every declared key in declaration order, stopping early
// when fn returns false. Absent values are passed as empty strings.
func (c *Config) Each(fn func(key, value string) bool) {
	for _, k := range c.keys {
		if !fn(k, c.values[k]) {
			return
		}
	}
}

// String renders the description followed by one tab-indented key=value
// line per declared key, in declaration order.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.description)
	for _, k := range c.keys {
		b.WriteString("\n\t")
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(c.values[k])
	}
	return b.String()
}

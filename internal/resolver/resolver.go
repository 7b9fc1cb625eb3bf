// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-prop-config/internal/logger"
	"github.com/MKhiriev/go-prop-config/models"
)

// Resolver expands the placeholders of a [RawSource]. A Resolver is meant to
// be used once, through [Resolver.Resolve].
type Resolver struct {
	raw      RawSource
	builtins Provider
	fallback Provider
	log      *logger.Logger

	values map[string]string
	stack  []string
}

// Option configures a [Resolver].
type Option func(*Resolver)

// WithBuiltins replaces the builtin synonym provider ([HostBuiltins] by
// default). A nil provider disables builtins.
func WithBuiltins(p Provider) Option {
	return func(r *Resolver) {
		r.builtins = p
	}
}

// WithFallback replaces the global fallback provider (a snapshot of the
// process environment by default). A nil provider disables the fallback.
func WithFallback(p Provider) Option {
	return func(r *Resolver) {
		r.fallback = p
	}
}

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// New returns a Resolver over raw.
func New(raw RawSource, opts ...Option) *Resolver {
	r := &Resolver{
		raw:      raw,
		builtins: HostBuiltins(),
		fallback: EnvProvider(""),
		log:      logger.Nop(),
		values:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve expands every declared key and returns the resolved mapping.
//
// Keys whose resolved value is blank are left out of the mapping: they are
// declared but absent. The first failure aborts resolution and is returned
// as a *[VariableError].
func (r *Resolver) Resolve() (map[string]string, error) {
	keys := r.raw.Keys()
	for _, key := range keys {
		if _, err := r.resolveKey(key); err != nil {
			return nil, err
		}
	}

	out := make(map[string]string, len(keys))
	for _, key := range keys {
		if v := r.values[key]; strings.TrimSpace(v) != "" {
			out[key] = v
		}
	}

	r.log.Debug().Int("declared", len(keys)).Int("present", len(out)).Msg("configuration resolved")
	return out, nil
}

// resolveKey returns the memoized value of key, resolving it on first use.
func (r *Resolver) resolveKey(key string) (string, error) {
	if v, ok := r.values[key]; ok {
		return v, nil
	}
	if i := slices.Index(r.stack, key); i >= 0 {
		return "", r.cycleError(i, key)
	}

	raw, _ := r.raw.Raw(key)

	r.stack = append(r.stack, key)
	value, err := r.expand(key, raw)
	r.stack = r.stack[:len(r.stack)-1]
	if err != nil {
		return "", err
	}

	r.values[key] = value
	return value, nil
}

func (r *Resolver) expand(key, raw string) (string, error) {
	tokens := scanPlaceholders(raw)
	if len(tokens) == 0 {
		return raw, nil
	}

	bindings := make(map[string]string, len(tokens))
	for _, t := range tokens {
		if _, done := bindings[t.name]; done {
			continue
		}
		v, err := r.lookup(key, t.name, raw)
		if err != nil {
			return "", err
		}
		bindings[t.name] = v
	}

	return substitute(raw, tokens, bindings), nil
}

// lookup walks the scope chain for name referenced from the value of key.
// A key never binds its own placeholders.
func (r *Resolver) lookup(key, name, raw string) (string, error) {
	if name != key {
		if _, declared := r.raw.Raw(name); declared {
			return r.resolveKey(name)
		}
	}

	if r.builtins != nil {
		if v, ok := r.builtins.Lookup(name); ok {
			r.log.Trace().Str("key", key).Str("variable", name).Msg("bound to builtin")
			return v, nil
		}
	}

	if r.fallback != nil {
		if v, ok := r.fallback.Lookup(name); ok {
			r.log.Trace().Str("key", key).Str("variable", name).Msg("bound to global fallback")
			return v, nil
		}
	}

	for scope := models.ParentScope(key); scope != ""; scope = models.ParentScope(scope) {
		candidate := scope + "." + name
		if candidate == key {
			continue
		}
		if _, declared := r.raw.Raw(candidate); declared {
			r.log.Trace().Str("key", key).Str("variable", name).Str("scope", scope).Msg("bound to parent scope")
			return r.resolveKey(candidate)
		}
	}

	return "", &VariableError{
		Kind:     ErrUnresolvedVariable,
		Variable: name,
		Key:      key,
		Value:    raw,
	}
}

// cycleError reports the cycle closed by re-entering the key at stack[i].
func (r *Resolver) cycleError(i int, key string) error {
	chain := append(slices.Clone(r.stack[i:]), key)
	referrer := r.stack[len(r.stack)-1]
	raw, _ := r.raw.Raw(referrer)

	return &VariableError{
		Kind:     ErrCyclicVariable,
		Variable: key,
		Key:      referrer,
		Value:    raw,
		Chain:    chain,
	}
}

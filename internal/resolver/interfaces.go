// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/provider_mock.go -package=mock

// Package resolver expands ${name} placeholders found in raw configuration
// values.
//
// Each placeholder is bound through a scope chain consulted in order:
//  1. a declared configuration key with the same name;
//  2. builtin synonyms such as user.home;
//  3. a global fallback provider (process environment, -D definitions);
//  4. the same name declared in an ancestor scope of the key being
//     resolved ("a.b.c" looks up "a.b.name", then "a.name").
//
// Keys are resolved lazily and memoized, so declaration order does not
// matter; a reference cycle fails with [ErrCyclicVariable].
package resolver

// Provider is a read-only source of variable bindings consulted by the scope
// chain. Implementations must not mutate any global state.
type Provider interface {
	// Lookup returns the value bound to name and whether a binding exists.
	Lookup(name string) (string, bool)
}

// RawSource is the raw, unresolved entry set consumed by the [Resolver].
type RawSource interface {
	// Keys returns the declared keys in declaration order.
	Keys() []string

	// Raw returns the declared value of key and whether it was declared.
	Raw(key string) (string, bool)
}

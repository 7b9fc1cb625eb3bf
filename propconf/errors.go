// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package propconf

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-prop-config/internal/resolver"
	"github.com/MKhiriev/go-prop-config/internal/store"
)

// Error kinds. Every error returned by this package matches exactly one of
// them with errors.Is.
var (
	// ErrConfigLoad: the source could not be opened, read or parsed.
	ErrConfigLoad = store.ErrConfigLoad

	// ErrUnresolvedVariable: a ${name} placeholder has no binding.
	ErrUnresolvedVariable = resolver.ErrUnresolvedVariable

	// ErrCyclicVariable: ${name} placeholders reference each other in a cycle.
	ErrCyclicVariable = resolver.ErrCyclicVariable

	// ErrMissingProperty: a required key is not present.
	ErrMissingProperty = errors.New("missing configuration property")

	// ErrMissingConfiguration: a mandatory path key is not present.
	ErrMissingConfiguration = errors.New("missing mandatory path configuration")

	// ErrInvalidFormat: a value cannot be converted to the requested type.
	ErrInvalidFormat = errors.New("invalid configuration value format")

	// ErrSubstitutionLimit: !{name} substitution did not reach a fixed point.
	ErrSubstitutionLimit = errors.New("access-time substitution does not terminate")

	// ErrPathCreation: a configured file or directory could not be created.
	ErrPathCreation = errors.New("cannot create configured path")

	// ErrPathValidation: a configured path is missing, of the wrong kind, or
	// lacks the requested permissions.
	ErrPathValidation = errors.New("invalid configured path")
)

// LoadError is returned by Load when the source fails.
type LoadError = store.LoadError

// VariableError is returned by Load and New when a placeholder cannot be
// resolved or is part of a cycle.
type VariableError = resolver.VariableError

// KeyError describes an access-time failure on a single key.
type KeyError struct {
	// Kind is the error kind, e.g. ErrMissingProperty.
	Kind error
	// Key is the configuration key that was read.
	Key string
	// Value is the offending value, empty when the key is absent.
	Value string
	// Source describes the configuration the key was looked up in.
	Source string
	// Err is an optional underlying cause.
	Err error
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	switch {
	case errors.Is(e.Kind, ErrMissingProperty):
		return fmt.Sprintf("invalid configuration in %s: property %q could not be found", e.Source, e.Key)
	case e.Err != nil:
		return fmt.Sprintf("%v: property %q, value %q: %v", e.Kind, e.Key, e.Value, e.Err)
	default:
		return fmt.Sprintf("%v: property %q, value %q", e.Kind, e.Key, e.Value)
	}
}

// Unwrap exposes the kind and the underlying cause.
func (e *KeyError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// PathError describes a path resolution failure.
type PathError struct {
	// Kind is ErrMissingConfiguration, ErrPathCreation or ErrPathValidation.
	Kind error
	// Key is the configuration key holding the path.
	Key string
	// Path is the normalized path, empty when the key is absent.
	Path string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: property %q must be set with a valid path", e.Kind, e.Key)
	}
	if e.Err == nil {
		return fmt.Sprintf("%v: path defined by property %q is: %s", e.Kind, e.Key, e.Path)
	}
	return fmt.Sprintf("%v: %v; path defined by property %q is: %s", e.Kind, e.Err, e.Key, e.Path)
}

// Unwrap exposes the kind and the underlying cause.
func (e *PathError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

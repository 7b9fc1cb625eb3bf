// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// EnvPrefix is prepended to every environment variable read into
// [StructuredConfig].
const EnvPrefix = "PROPCONF_"

// Output formats accepted by [Output.Format].
const (
	FormatProperties = "properties"
	FormatJSON       = "json"
	FormatYAML       = "yaml"
)

// StructuredConfig is the top-level settings container of the propconf CLI.
// It is populated by merging command-line flags, environment variables and
// an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//
// Every name is additionally prefixed with [EnvPrefix].
type StructuredConfig struct {
	// Source selects the property file to load.
	Source Source `envPrefix:"SOURCE_"`

	// Resolver controls the global fallback scope used for ${name}
	// placeholders that no declared key satisfies.
	Resolver Resolver `envPrefix:"RESOLVER_"`

	// Log holds diagnostic logging settings.
	Log Log `envPrefix:"LOG_"`

	// Output controls how commands render configuration data.
	Output Output `envPrefix:"OUTPUT_"`

	// JSONFilePath is the optional path to a JSON settings file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from flags and environment variables.
	// Populated via PROPCONF_CONFIG or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Source identifies the property file the CLI operates on.
type Source struct {
	// Files are candidate property files; the first one that opens wins.
	// Env: PROPCONF_SOURCE_FILES (comma separated)
	Files []string `env:"FILES" envSeparator:","`

	// Glob is a doublestar pattern tried after Files; the first matching
	// file in lexical order is used.
	// Env: PROPCONF_SOURCE_GLOB
	Glob string `env:"GLOB"`

	// Encoding is the character encoding of the file: "utf-8" (default) or
	// "iso-8859-1".
	// Env: PROPCONF_SOURCE_ENCODING
	Encoding string `env:"ENCODING"`
}

// Resolver holds the settings of the global fallback scope.
type Resolver struct {
	// Defines are name=value bindings consulted before the environment.
	// Env: PROPCONF_RESOLVER_DEFINES (e.g. "app.home:/srv,region:eu")
	Defines map[string]string `env:"DEFINES"`

	// EnvPrefix is tried in front of the upper-snake form of a placeholder
	// name when looking it up in the environment.
	// Env: PROPCONF_RESOLVER_ENV_PREFIX
	EnvPrefix string `env:"ENV_PREFIX"`

	// NoEnv removes the process environment from the fallback scope.
	// Env: PROPCONF_RESOLVER_NO_ENV
	NoEnv bool `env:"NO_ENV"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name; empty means "warn".
	// Env: PROPCONF_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Output holds rendering settings of the dump and keys commands.
type Output struct {
	// Format is one of [FormatProperties], [FormatJSON] or [FormatYAML].
	// Env: PROPCONF_OUTPUT_FORMAT
	Format string `env:"FORMAT"`

	// Filter is a glob over dotted keys ("db.**", "*.port").
	// Env: PROPCONF_OUTPUT_FILTER
	Filter string `env:"FILTER"`
}

// defaults are merged underneath every other source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Source: Source{Encoding: "utf-8"},
		Output: Output{Format: FormatProperties},
	}
}

// GetStructuredConfig loads, merges, and validates the CLI settings from all
// available sources. For every field the first non-zero value wins, in
// this order:
//  1. Command-line flags registered through [RegisterFlags]
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final settings fail validation.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		build()
}

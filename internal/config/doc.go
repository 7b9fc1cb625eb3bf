// Package config provides settings loading, merging, and validation for the
// propconf CLI.
//
// Settings are assembled from multiple sources; for every field the first
// non-zero value wins, in this order:
//  1. Command-line flags
//  2. Environment variables (PROPCONF_ prefix)
//  3. JSON settings file
//  4. Built-in defaults
//
// The main entry points are [RegisterFlags], which binds the persistent
// flags to a command's flag set, and [GetStructuredConfig].
package config

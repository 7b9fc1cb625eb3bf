// Package cli implements the propconf command line: it loads a property
// file through the configuration engine and prints values, lists, paths or
// whole dumps of the resolved configuration.
package cli

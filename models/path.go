// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// PathKind tells whether a configured path denotes a regular file or a
// directory.
type PathKind int

const (
	// FilePath denotes a regular file.
	FilePath PathKind = iota
	// DirectoryPath denotes a directory. Normalized directory paths always
	// end with a forward slash.
	DirectoryPath
)

// String returns a human-readable name of the kind, used in error messages.
func (k PathKind) String() string {
	if k == DirectoryPath {
		return "directory"
	}
	return "file"
}

// ResolvedPath is a filesystem path obtained from a configuration key after
// placeholder substitution and separator normalization.
type ResolvedPath struct {
	// Key is the configuration key the path was read from.
	Key string
	// Path is the normalized path (forward slashes only).
	Path string
	// Kind is the expected kind of filesystem entry.
	Kind PathKind
}

// NormalizePath converts every backslash in p to a forward slash and, for
// directories, guarantees a trailing slash. An empty path stays empty.
func NormalizePath(p string, kind PathKind) string {
	if p == "" {
		return ""
	}
	p = strings.ReplaceAll(p, `\`, "/")
	if kind == DirectoryPath && !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

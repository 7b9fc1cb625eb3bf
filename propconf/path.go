// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package propconf

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"

	"github.com/MKhiriev/go-prop-config/internal/validators"
	"github.com/MKhiriev/go-prop-config/models"
)

// PathOptions controls how [Config.GetPath] treats a configured path.
type PathOptions struct {
	// Directory marks the path as a directory; it then ends with a slash.
	Directory bool
	// Mandatory turns an absent key into ErrMissingConfiguration.
	Mandatory bool
	// ValidateRead requires the path to exist and be readable.
	ValidateRead bool
	// ValidateWrite requires the path to exist and be writable. It never
	// creates anything on its own.
	ValidateWrite bool
	// Create creates a missing directory tree, or a missing empty file and
	// its parent directories.
	Create bool
	// Default is returned, untouched, when the key is absent and not
	// mandatory.
	Default string
	// Substitutions replaces !{name} tokens before normalization.
	Substitutions map[string]string
}

// GetPath is GetPathContext with a background context.
func (c *Config) GetPath(key string, opts PathOptions) (string, bool, error) {
	return c.GetPathContext(context.Background(), key, opts)
}

// GetFile resolves key as a regular file path.
func (c *Config) GetFile(key string, opts PathOptions) (string, bool, error) {
	opts.Directory = false
	return c.GetPath(key, opts)
}

// GetDirectory resolves key as a directory path.
func (c *Config) GetDirectory(key string, opts PathOptions) (string, bool, error) {
	opts.Directory = true
	return c.GetPath(key, opts)
}

// GetPathContext reads key as a filesystem path.
//
// The value goes through !{name} substitution, backslashes become forward
// slashes and directories get a trailing slash. The path is then optionally
// created and validated according to opts.
//
// The boolean result is false only when the key is absent and opts.Default
// is empty. Failures are a *PathError matching ErrMissingConfiguration,
// ErrPathCreation or ErrPathValidation, or a *KeyError matching
// ErrSubstitutionLimit.
func (c *Config) GetPathContext(ctx context.Context, key string, opts PathOptions) (string, bool, error) {
	kind := models.FilePath
	if opts.Directory {
		kind = models.DirectoryPath
	}

	value, ok, err := c.LookupWith(key, opts.Substitutions)
	if err != nil {
		return "", false, err
	}
	if !ok {
		if opts.Mandatory {
			return "", false, &PathError{Kind: ErrMissingConfiguration, Key: key, Err: errors.New(kind.String() + " path undefined")}
		}
		return opts.Default, opts.Default != "", nil
	}

	p := models.ResolvedPath{Key: key, Path: models.NormalizePath(value, kind), Kind: kind}

	if opts.Create {
		created, err := createPath(p)
		if err != nil {
			return "", false, &PathError{Kind: ErrPathCreation, Key: key, Path: p.Path, Err: err}
		}
		if created {
			c.log.Debug().Str("key", key).Str("path", p.Path).Stringer("kind", kind).Msg("created configured path")
		}
	}

	if opts.ValidateRead || opts.ValidateWrite {
		fields := []string{validators.FieldExists, validators.FieldKind}
		if opts.ValidateRead {
			fields = append(fields, validators.FieldReadable)
		}
		if opts.ValidateWrite {
			fields = append(fields, validators.FieldWritable)
		}
		if err := c.validator.Validate(ctx, p, fields...); err != nil {
			return "", false, &PathError{Kind: ErrPathValidation, Key: key, Path: p.Path, Err: err}
		}
	}

	return p.Path, true, nil
}

// createPath creates p when it does not exist yet and reports whether it did.
func createPath(p models.ResolvedPath) (bool, error) {
	if _, err := os.Stat(p.Path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	if p.Kind == models.DirectoryPath {
		return true, os.MkdirAll(p.Path, 0o755)
	}

	if parent := path.Dir(p.Path); parent != "." && parent != "/" {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return false, err
		}
	}

	f, err := os.OpenFile(p.Path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return false, err
	}
	return true, f.Close()
}

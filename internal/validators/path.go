// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-prop-config/models"
)

// Field name constants used to select which checks Validate performs on a
// [models.ResolvedPath].
const (
	// FieldExists requires the path to exist.
	FieldExists = "exists"

	// FieldKind requires an existing path to match the expected kind: a
	// directory for models.DirectoryPath, anything else for models.FilePath.
	FieldKind = "kind"

	// FieldReadable requires the current process to be able to read the path.
	FieldReadable = "readable"

	// FieldWritable requires the current process to be able to write the path.
	FieldWritable = "writable"
)

// PathValidator implements the Validator interface for [models.ResolvedPath].
// It never creates or modifies anything on disk.
type PathValidator struct {
}

// NewPathValidator constructs a new PathValidator and returns it as the
// Validator interface.
func NewPathValidator() Validator {
	return &PathValidator{}
}

// Validate checks obj, which must be a models.ResolvedPath or a pointer to
// one. When no fields are given only FieldExists and FieldKind are checked.
//
// Failures wrap one of ErrPathNotExist, ErrPathKind, ErrPathNotReadable or
// ErrPathNotWritable and mention the path kind, e.g. "directory /x/ is not
// writable".
func (v *PathValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ResolvedPath:
		return v.validatePath(ctx, value, fields...)
	case *models.ResolvedPath:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validatePath(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PathValidator) validatePath(ctx context.Context, p models.ResolvedPath, fields ...string) error {
	if p.Path == "" {
		return ErrEmptyPath
	}
	if len(fields) == 0 {
		fields = []string{FieldExists, FieldKind}
	}

	info, statErr := os.Stat(p.Path)
	exists := statErr == nil

	for _, f := range fields {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch f {
		case FieldExists:
			if !exists {
				return pathError(p, ErrPathNotExist, statErr)
			}
		case FieldKind:
			if exists && info.IsDir() != (p.Kind == models.DirectoryPath) {
				return pathError(p, ErrPathKind, nil)
			}
		case FieldReadable:
			if !exists {
				return pathError(p, ErrPathNotExist, statErr)
			}
			if err := canRead(p.Path, info); err != nil {
				return pathError(p, ErrPathNotReadable, err)
			}
		case FieldWritable:
			if !exists {
				return pathError(p, ErrPathNotExist, statErr)
			}
			if err := canWrite(p.Path, info); err != nil {
				return pathError(p, ErrPathNotWritable, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func pathError(p models.ResolvedPath, kind, cause error) error {
	if cause != nil && !errors.Is(cause, fs.ErrNotExist) {
		return fmt.Errorf("%s %s %w: %w", p.Kind, p.Path, kind, cause)
	}
	return fmt.Errorf("%s %s %w", p.Kind, p.Path, kind)
}

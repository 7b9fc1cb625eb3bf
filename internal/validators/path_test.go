// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/MKhiriev/go-prop-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func dirPath(p string) models.ResolvedPath {
	return models.ResolvedPath{Key: "k", Path: models.NormalizePath(p, models.DirectoryPath), Kind: models.DirectoryPath}
}

func filePath(p string) models.ResolvedPath {
	return models.ResolvedPath{Key: "k", Path: models.NormalizePath(p, models.FilePath), Kind: models.FilePath}
}

func skipIfPrivileged(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewPathValidator(t *testing.T) {
	require.NotNil(t, NewPathValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewPathValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, "just a string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, (*models.ResolvedPath)(nil)), ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	err := NewPathValidator().Validate(context.Background(), dirPath(t.TempDir()), "executable")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidate_EmptyPath(t *testing.T) {
	err := NewPathValidator().Validate(context.Background(), models.ResolvedPath{Key: "k"})
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestValidate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewPathValidator().Validate(ctx, dirPath(t.TempDir()))
	assert.ErrorIs(t, err, context.Canceled)
}

// ---------------------------------------------------------------------------
// Checks
// ---------------------------------------------------------------------------

func TestValidate_ExistingDirectory(t *testing.T) {
	p := dirPath(t.TempDir())

	err := NewPathValidator().Validate(context.Background(), &p, FieldExists, FieldKind, FieldReadable, FieldWritable)
	assert.NoError(t, err)
}

func TestValidate_ExistingFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(f, nil, 0o600))

	err := NewPathValidator().Validate(context.Background(), filePath(f), FieldReadable, FieldWritable)
	assert.NoError(t, err)
}

func TestValidate_MissingPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	for _, field := range []string{FieldExists, FieldReadable, FieldWritable} {
		t.Run(field, func(t *testing.T) {
			err := NewPathValidator().Validate(context.Background(), dirPath(missing), field)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrPathNotExist)
			assert.Contains(t, err.Error(), "directory")
		})
	}
}

func TestValidate_KindOnlyCheckedWhenExisting(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	assert.NoError(t, NewPathValidator().Validate(context.Background(), dirPath(missing), FieldKind))
}

func TestValidate_KindMismatch(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(f, nil, 0o600))

	v := NewPathValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), filePath(dir)), ErrPathKind)

	asDir := models.ResolvedPath{Key: "k", Path: f, Kind: models.DirectoryPath}
	assert.ErrorIs(t, v.Validate(context.Background(), asDir), ErrPathKind)
}

func TestValidate_NotWritable(t *testing.T) {
	skipIfPrivileged(t)

	f := filepath.Join(t.TempDir(), "readonly.txt")
	require.NoError(t, os.WriteFile(f, nil, 0o400))

	err := NewPathValidator().Validate(context.Background(), filePath(f), FieldWritable)
	assert.ErrorIs(t, err, ErrPathNotWritable)
	assert.Contains(t, err.Error(), "file "+f+" is not writable")
}

func TestValidate_NotReadable(t *testing.T) {
	skipIfPrivileged(t)

	f := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(f, nil, 0o200))

	err := NewPathValidator().Validate(context.Background(), filePath(f), FieldReadable)
	assert.ErrorIs(t, err, ErrPathNotReadable)
}

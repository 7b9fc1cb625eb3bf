package store

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource(t *testing.T) {
	path := writeFile(t, t.TempDir(), "app.properties", "k=v\n")
	src := FileSource(path)

	assert.Equal(t, "file "+path, src.Description())

	entries, err := Load(src)
	require.NoError(t, err)
	v, _ := entries.Raw("k")
	assert.Equal(t, "v", v)
}

func TestReaderSource_OpenTwice(t *testing.T) {
	src := ReaderSource(strings.NewReader("k=v"), "")
	assert.Equal(t, "reader", src.Description())

	rc, err := src.Open()
	require.NoError(t, err)
	_, err = io.ReadAll(rc)
	require.NoError(t, err)

	_, err = src.Open()
	assert.ErrorIs(t, err, ErrSourceConsumed)
}

func TestReaderSource_NilReader(t *testing.T) {
	_, err := ReaderSource(nil, "nil").Open()
	assert.ErrorIs(t, err, ErrNilSource)
}

func TestFSSource(t *testing.T) {
	fsys := fstest.MapFS{
		"conf/app.properties": &fstest.MapFile{Data: []byte("app.name=embedded\n")},
	}

	src := FSSource(fsys, "conf/app.properties")
	assert.Equal(t, "resource conf/app.properties", src.Description())

	entries, err := Load(src)
	require.NoError(t, err)
	v, _ := entries.Raw("app.name")
	assert.Equal(t, "embedded", v)

	_, err = Load(FSSource(fsys, "conf/other.properties"))
	assert.ErrorIs(t, err, ErrConfigLoad)
}

func TestFirstAvailable_PicksFirstOpenable(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.properties")
	second := writeFile(t, dir, "second.properties", "k=second\n")
	third := writeFile(t, dir, "third.properties", "k=third\n")

	src := FirstAvailable(FileSource(missing), nil, FileSource(second), FileSource(third))
	assert.Contains(t, src.Description(), "first available of")

	entries, err := Load(src)
	require.NoError(t, err)
	v, _ := entries.Raw("k")
	assert.Equal(t, "second", v)
	assert.Equal(t, "file "+second, src.Description())
}

func TestFirstAvailable_NoneOpenable(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.properties")
	b := filepath.Join(dir, "b.properties")

	_, err := Load(FirstAvailable(FileSource(a), FileSource(b)))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSourceAvailable)
	assert.Contains(t, err.Error(), a)
	assert.Contains(t, err.Error(), b)

	_, err = Load(FirstAvailable())
	assert.ErrorIs(t, err, ErrNoSourceAvailable)
}

func TestGlobSource(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b/app.properties", "k=b\n")
	writeFile(t, dir, "a/nested/app.properties", "k=a\n")
	writeFile(t, dir, "a/app.txt", "k=txt\n")

	src := GlobSource(filepath.ToSlash(dir) + "/**/app.properties")
	entries, err := Load(src)
	require.NoError(t, err)

	v, _ := entries.Raw("k")
	assert.Equal(t, "a", v)
	assert.True(t, strings.HasSuffix(filepath.ToSlash(src.Description()), "a/nested/app.properties"))
}

func TestGlobSource_NoMatch(t *testing.T) {
	_, err := Load(GlobSource(filepath.ToSlash(t.TempDir()) + "/**/*.properties"))
	assert.ErrorIs(t, err, ErrNoGlobMatch)
	assert.ErrorIs(t, err, ErrConfigLoad)
}

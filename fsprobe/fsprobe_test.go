package fsprobe_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/aaimio/logicful-templates-example-ts/fsprobe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists_file(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pa := filepath.Join(dir, "index.yaml")
	require.NoError(t, os.WriteFile(pa, []byte("default: {}"), 0o600))

	ok, err := fsprobe.Exists(pa)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestExists_directory(t *testing.T) {
	t.Parallel()

	ok, err := fsprobe.Exists(t.TempDir())

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestExists_missing(t *testing.T) {
	t.Parallel()

	ok, err := fsprobe.Exists(
		filepath.Join(t.TempDir(), "missing.yaml"),
	)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExists_empty_path(t *testing.T) {
	t.Parallel()

	ok, err := fsprobe.Exists("")

	require.ErrorIs(t, err, fsprobe.ErrEmptyPath)
	assert.False(t, ok)
}

func TestExists_surfaces_non_not_found_errors(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("ENOTDIR semantics differ on windows")
	}

	dir := t.TempDir()
	pa := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(pa, []byte("x"), 0o600))

	// Stat through a regular file fails with ENOTDIR, which
	// is not a "does not exist" condition.
	_, err := fsprobe.Exists(filepath.Join(pa, "child"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "probing path")
}

func TestDigest_returns_sha256(t *testing.T) {
	t.Parallel()

	pa := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(pa, []byte("hello"), 0o600))

	got, err := fsprobe.Digest(pa)

	require.NoError(t, err)
	// sha256("hello")
	assert.Equal(
		t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		got,
	)
}

func TestDigest_missing_file(t *testing.T) {
	t.Parallel()

	_, err := fsprobe.Digest(filepath.Join(t.TempDir(), "nope"))

	require.ErrorIs(t, err, os.ErrNotExist)
}

func FuzzDigest(f *testing.F) {
	f.Add([]byte("<p>hi</p>"))
	f.Add([]byte(""))
	f.Add([]byte("\x00\xff"))

	f.Fuzz(func(t *testing.T, data []byte) {
		dir := t.TempDir()
		pa := filepath.Join(dir, "fuzz.html")
		require.NoError(t, os.WriteFile(pa, data, 0o600))

		dg, err := fsprobe.Digest(pa)

		require.NoError(t, err)
		assert.Len(t, dg, 64)
	})
}

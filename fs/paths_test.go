// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchAnyPattern(t *testing.T) {
	patterns := []string{"*.txt", "*.go"}

	assert.True(t, MatchAnyPattern("notes.txt", patterns))
	assert.True(t, MatchAnyPattern("main.go", patterns))
	assert.False(t, MatchAnyPattern("image.png", patterns))
	assert.False(t, MatchAnyPattern("x", nil))

	// Malformed patterns match nothing instead of failing.
	assert.False(t, MatchAnyPattern("file", []string{"[bad"}))
}

func TestMatchAnyRegexp(t *testing.T) {
	regexps := []*regexp.Regexp{
		regexp.MustCompile(`\.txt$`),
		regexp.MustCompile(`^/tmp/`),
	}

	assert.True(t, MatchAnyRegexp("notes.txt", regexps))
	assert.True(t, MatchAnyRegexp("/tmp/anything", regexps))
	assert.False(t, MatchAnyRegexp("main.go", regexps))
}

func TestIsRegular(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.True(t, IsRegular(file))
	assert.False(t, IsRegular(dir))
	assert.False(t, IsRegular(filepath.Join(dir, "missing")))

	// A broken symlink is not regular.
	broken := filepath.Join(dir, "broken")
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), broken))
	assert.False(t, IsRegular(broken))

	// A symlink to a regular file is.
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(file, link))
	assert.True(t, IsRegular(link))
}

func TestExpandPath(t *testing.T) {
	t.Setenv("FILES_STUFF_TEST_DIR", "somewhere")

	expanded, err := ExpandPath("$FILES_STUFF_TEST_DIR/file")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(expanded))
	assert.True(t, strings.HasSuffix(expanded, filepath.Join("somewhere", "file")))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	expanded, err = ExpandPath("~/file")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "file"), expanded)
}

func TestRealPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(file, link))

	real, isReal, err := RealPath(link)
	require.NoError(t, err)
	assert.False(t, isReal)
	assert.Equal(t, real, mustRealPath(t, file))

	real2, isReal, err := RealPath(real)
	require.NoError(t, err)
	assert.True(t, isReal)
	assert.Equal(t, real, real2)

	_, _, err = RealPath(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func mustRealPath(t *testing.T, path string) string {
	t.Helper()
	real, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return real
}

func TestPruneRegular(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(file, link))

	paths := []string{
		file,
		link,
		dir,
		filepath.Join(dir, "missing"),
	}

	pruned := PruneRegular(context.Background(), paths)
	expected := mustRealPath(t, file)
	assert.Equal(t, []string{expected, expected}, pruned)
}

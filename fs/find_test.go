// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTree builds root/{a,b}, root/sub/{c}, root/sub/deeper/{d}.
func makeTree(t *testing.T) (root string, all []string) {
	t.Helper()
	root = t.TempDir()

	files := []string{
		filepath.Join(root, "a"),
		filepath.Join(root, "b"),
		filepath.Join(root, "sub", "c"),
		filepath.Join(root, "sub", "deeper", "d"),
	}
	for _, path := range files {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(path), 0o644))
	}
	return root, files
}

func TestFindUnlimited(t *testing.T) {
	root, all := makeTree(t)

	found, err := Find(context.Background(), root, -1)
	assert.NoError(t, err)
	assert.ElementsMatch(t, all, found)
}

func TestFindDepth(t *testing.T) {
	root, all := makeTree(t)
	ctx := context.Background()

	// Level 0 is the level of root: only its own files.
	found, err := Find(ctx, root, 0)
	assert.NoError(t, err)
	assert.ElementsMatch(t, all[:2], found)

	found, err = Find(ctx, root, 1)
	assert.NoError(t, err)
	assert.ElementsMatch(t, all[:3], found)

	found, err = Find(ctx, root, 2)
	assert.NoError(t, err)
	assert.ElementsMatch(t, all, found)
}

func TestFindSkipsSymlinkedDirs(t *testing.T) {
	root, all := makeTree(t)
	require.NoError(t, os.Symlink(filepath.Join(root, "sub"), filepath.Join(root, "loop")))

	found, err := Find(context.Background(), root, -1)
	assert.NoError(t, err)
	assert.ElementsMatch(t, all, found, "symlinked directories are not descended")
}

func TestFindMissingRoot(t *testing.T) {
	// An unreadable root is warned about and skipped, not fatal.
	found, err := Find(context.Background(), filepath.Join(t.TempDir(), "nope"), -1)
	assert.NoError(t, err)
	assert.Empty(t, found)
}

func TestFindCancelled(t *testing.T) {
	root, _ := makeTree(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Find(ctx, root, -1)
	assert.ErrorIs(t, err, context.Canceled)
}

// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.

// Package fs provides the file-side utilities of the repository:
// depth-limited listing, path predicates and block-wise hashing. The
// quantity core in package unit never touches the filesystem; these
// helpers are its independent collaborators.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Find lists the regular files under root, descending depth levels of
// subdirectories. Level 0 is the level of root itself, so Find(ctx,
// root, 0) returns only root's own files; a negative depth descends as
// deep as possible. Directories reached through symlinks are not
// descended. Unreadable directories are reported at warn level on the
// context logger and skipped.
func Find(ctx context.Context, root string, depth int) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	var files []string
	current := []string{root}
	remaining := depth

	for len(current) > 0 {
		if err := ctx.Err(); err != nil {
			return files, err
		}

		var next []string
		for _, dir := range current {
			entries, err := os.ReadDir(dir)
			if err != nil {
				logger.Warn().Err(err).Str("path", dir).Msg("Skipping unreadable directory")
				continue
			}

			for _, entry := range entries {
				path := filepath.Join(dir, entry.Name())
				switch {
				case entry.IsDir():
					next = append(next, path)
				case entry.Type().IsRegular():
					files = append(files, path)
				}
			}
		}

		if remaining == 0 {
			break
		}
		if remaining > 0 {
			remaining--
		}
		current = next
	}

	return files, nil
}

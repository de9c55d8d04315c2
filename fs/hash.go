// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package fs

import (
	"context"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	goerrors "errors"
	"hash"
	goio "io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/crap0101/files-stuff/errors"
	"github.com/crap0101/files-stuff/io"
	"github.com/crap0101/files-stuff/unit"
)

// DefaultBlockSize is the read granularity used when callers do not
// pick one.
const DefaultBlockSize = 64 * unit.KiB

func newDigest(algo string) (hash.Hash, error) {
	switch strings.ToLower(algo) {
	case "md5":
		return md5.New(), nil
	case "sha1":
		return sha1.New(), nil
	case "sha256":
		return sha256.New(), nil
	case "sha512":
		return sha512.New(), nil
	default:
		return nil, errors.New(errors.KindConfiguration, "Unknown hash algorithm: %q", algo)
	}
}

// HashAlgorithms returns the supported digest names.
func HashAlgorithms() []string {
	return []string{"md5", "sha1", "sha256", "sha512"}
}

// HashFile returns the hex digest of the file at path, reading blocks
// of blockSize bytes at a time (DefaultBlockSize when <= 0).
func HashFile(path, algo string, blockSize int) (string, error) {
	digest, err := newDigest(algo)
	if err != nil {
		return "", err
	}
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer io.SafeCloser(f).Close()

	blocks, err := io.NewBlockReader(f, blockSize)
	if err != nil {
		return "", err
	}

	for {
		block, err := blocks.NextBlock()
		if goerrors.Is(err, goio.EOF) {
			break
		} else if err != nil {
			return "", err
		}
		digest.Write(block)
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}

// HashFiles digests many files in parallel, at most workers at a time
// (unbounded when <= 0). Successes come back as a path-to-digest map;
// per-path failures are aggregated as positional errors so the caller
// can bind them back to the inputs. A partial failure still returns
// every successful digest.
func HashFiles(ctx context.Context, paths []string, algo string, blockSize, workers int) (map[string]string, error) {
	// Fail fast on a bad algorithm instead of once per file.
	if _, err := newDigest(algo); err != nil {
		return nil, err
	}

	digests := make([]string, len(paths))
	errs := make([]error, len(paths))

	group := new(errgroup.Group)
	if workers > 0 {
		group.SetLimit(workers)
	}

	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = errors.NewPositionalError(i, err)
				return nil
			}

			digest, err := HashFile(path, algo, blockSize)
			if err != nil {
				errs[i] = errors.NewPositionalError(i, err)
				return nil
			}
			digests[i] = digest
			return nil
		})
	}

	// Worker functions stash their failures, Wait cannot fail.
	_ = group.Wait()

	out := make(map[string]string, len(paths))
	for i, path := range paths {
		if errs[i] == nil {
			out[path] = digests[i]
		}
	}
	return out, errors.NewErrors(errs...)
}

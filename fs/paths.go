// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// MatchAnyPattern reports whether path matches any of the shell
// patterns (filepath.Match syntax). Malformed patterns match nothing.
func MatchAnyPattern(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := filepath.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

// MatchAnyRegexp reports whether path matches any of the compiled
// expressions.
func MatchAnyRegexp(path string, regexps []*regexp.Regexp) bool {
	for _, re := range regexps {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// IsRegular reports whether path exists and is a regular file. Broken
// symlinks and paths the user cannot stat are not regular.
func IsRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ExpandPath expands path to its canonical absolute form: environment
// variables, a leading "~" and relative segments are all resolved.
func ExpandPath(path string) (string, error) {
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Abs(path)
}

// RealPath resolves the symlinks of path. The boolean reports whether
// path already was its own canonical form.
func RealPath(path string) (string, bool, error) {
	real, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", false, err
	}
	return real, real == path, nil
}

// PruneRegular resolves each path and keeps only those naming regular
// files, in canonical form. Unresolvable paths are reported at warn
// level on the context logger and dropped.
func PruneRegular(ctx context.Context, paths []string) []string {
	logger := zerolog.Ctx(ctx)

	var pruned []string
	for _, path := range paths {
		real, _, err := RealPath(path)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Dropping unresolvable path")
			continue
		}
		if IsRegular(real) {
			pruned = append(pruned, real)
		}
	}
	return pruned
}

// Package utils provides internal helpers shared across the statebuffer
// packages. These utilities are not part of the public API.
package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hyp3rd/ewrap"
)

// SecurePath takes a path string and returns a secure absolute path,
// confining relative paths to the system's temporary directory. It guards
// the file-facing surfaces (config loading, buffer dumps) against directory
// traversal in user-supplied paths.
//
// Checks performed:
// - Rejecting empty paths
// - Normalizing the path using filepath.Clean
// - Preventing directory traversal sequences (..)
// - Disallowing absolute paths outside the system temp directory
// - Verifying that any symlinks in the path don't escape the temp directory
func SecurePath(path string) (string, error) {
	if path == "" {
		return "", ewrap.New("path cannot be empty")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return "", ewrap.New("invalid path contains directory traversal sequence").
			WithMetadata("path", path)
	}

	tempDir := os.TempDir()

	if filepath.IsAbs(cleanPath) {
		if strings.HasPrefix(path, tempDir) {
			return path, nil
		}

		return "", ewrap.New("absolute paths are not allowed").WithMetadata("path", path)
	}

	fullPath := filepath.Join(tempDir, cleanPath)

	// Resolve symlinks and verify they don't escape the temp directory.
	resolvedPath, err := filepath.EvalSymlinks(fullPath)
	if err == nil {
		if !strings.HasPrefix(resolvedPath, tempDir) {
			return "", ewrap.New("path resolves to location outside of temp directory").
				WithMetadata("path", path)
		}
	}

	return fullPath, nil
}

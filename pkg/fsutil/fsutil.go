// Package fsutil provides the file-system primitives splice relies on:
// whole-file reads with metadata, atomic overwrites, and sidecar
// backups. Target files are rewritten wholesale, so every write goes
// through the temp-file-and-rename path.
package fsutil

import (
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates insufficient permissions.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path refers to a directory.
	ErrIsDirectory = errors.New("path is a directory")
)

// ReadFile reads the full contents of path and returns them together
// with the file's mode, which the caller passes back to WriteAtomic so
// an overwrite preserves permissions.
func ReadFile(path string) ([]byte, os.FileMode, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, 0, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if stat.IsDir() {
		return nil, 0, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, 0, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}

	return content, stat.Mode(), nil
}

// Package gitindex builds the set of files eligible for editing from
// the version-control-tracked files of a working tree. The engine
// never edits a file git does not know about.
package gitindex

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
)

// Index is a membership set over canonical absolute paths of tracked
// files.
type Index struct {
	paths map[string]struct{}
}

// Load runs `git ls-files` in workDir and canonicalizes every listed
// path. prefixes are passed to git as pathspecs, restricting the set;
// with no prefixes every tracked file is included. Tracked paths that
// no longer exist on disk are skipped.
func Load(ctx context.Context, workDir string, prefixes []string) (*Index, error) {
	args := append([]string{"ls-files"}, prefixes...)
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = workDir

	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("git ls-files: %s", bytes.TrimSpace(exitErr.Stderr))
		}
		return nil, fmt.Errorf("git ls-files: %w", err)
	}

	idx := &Index{paths: make(map[string]struct{})}
	for _, line := range bytes.Split(out, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		canonical, err := canonicalize(filepath.Join(workDir, string(line)))
		if err != nil {
			continue
		}
		idx.paths[canonical] = struct{}{}
	}

	return idx, nil
}

// Eligible reports whether the canonical path is tracked.
func (ix *Index) Eligible(canonical string) bool {
	_, ok := ix.paths[canonical]
	return ok
}

// Len returns the number of tracked files in the index.
func (ix *Index) Len() int {
	return len(ix.paths)
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

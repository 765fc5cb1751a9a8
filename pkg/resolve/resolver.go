// Package resolve maps tool-reported paths to canonical absolute file
// paths. The analysis tool reports paths either as-is or relative to
// the build directory that holds the compile database.
package resolve

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/splice/pkg/edit"
)

// ErrNonExistent is returned when a reported path denotes no existing
// file under either interpretation.
var ErrNonExistent = errors.New("edit applies to a non-existent file")

// Resolver canonicalizes raw paths against a build directory.
// Resolution is a pure function of the raw path and the build
// directory, so results (including failures) are memoized and each
// raw path is resolved at most once per run.
type Resolver struct {
	buildDir string
	cache    map[string]resolution
}

type resolution struct {
	path string
	err  error
}

// New creates a Resolver rooted at buildDir.
func New(buildDir string) *Resolver {
	return &Resolver{
		buildDir: buildDir,
		cache:    make(map[string]resolution),
	}
}

// Resolve returns the canonical absolute path for raw. If raw names an
// existing file it is canonicalized directly; otherwise the path is
// retried relative to the build directory. When neither exists,
// ErrNonExistent is returned and cached.
func (r *Resolver) Resolve(raw string) (string, error) {
	if res, ok := r.cache[raw]; ok {
		return res.path, res.err
	}

	res := r.resolve(raw)
	r.cache[raw] = res
	return res.path, res.err
}

func (r *Resolver) resolve(raw string) resolution {
	candidate := raw
	if !isFile(candidate) {
		candidate = filepath.Join(r.buildDir, raw)
	}
	if !isFile(candidate) {
		return resolution{err: fmt.Errorf("%w: %s", ErrNonExistent, raw)}
	}

	canonical, err := canonicalize(candidate)
	if err != nil {
		return resolution{err: fmt.Errorf("canonicalize %s: %w", raw, err)}
	}
	return resolution{path: canonical}
}

// Batch rewrites a raw-keyed edit batch onto canonical paths. Raw
// paths that resolve to the same file have their edits merged; the
// applier deduplicates any resulting exact duplicates. Unresolvable
// paths are logged once and all of their edits are dropped.
func (r *Resolver) Batch(edits map[string][]edit.Edit, logger *log.Logger) map[string][]edit.Edit {
	resolved := make(map[string][]edit.Edit, len(edits))
	for raw, fileEdits := range edits {
		canonical, err := r.Resolve(raw)
		if err != nil {
			logger.Warn("edit applies to a non-existent file", "path", raw)
			continue
		}
		resolved[canonical] = append(resolved[canonical], fileEdits...)
	}
	return resolved
}

// canonicalize returns the absolute, symlink-free form of path.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

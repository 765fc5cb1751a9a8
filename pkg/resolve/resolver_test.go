package resolve_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/splice/pkg/edit"
	"github.com/yaklabco/splice/pkg/resolve"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte("contents"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestResolver(t *testing.T) {
	t.Parallel()

	t.Run("absolute existing path resolves to itself", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "a.cc")

		r := resolve.New(dir)
		got, err := r.Resolve(path)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		want, _ := filepath.EvalSymlinks(path)
		if got != want {
			t.Errorf("Resolve() = %q, want %q", got, want)
		}
	})

	t.Run("relative path resolves against build dir", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "gen/out.h")

		r := resolve.New(dir)
		got, err := r.Resolve("gen/out.h")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		want, _ := filepath.EvalSymlinks(filepath.Join(dir, "gen/out.h"))
		if got != want {
			t.Errorf("Resolve() = %q, want %q", got, want)
		}
	})

	t.Run("missing file under both interpretations fails", func(t *testing.T) {
		t.Parallel()

		r := resolve.New(t.TempDir())
		_, err := r.Resolve("no/such/file.cc")
		if !errors.Is(err, resolve.ErrNonExistent) {
			t.Errorf("error = %v, want ErrNonExistent", err)
		}
	})

	t.Run("results are memoized", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "a.cc")

		r := resolve.New(dir)
		first, err := r.Resolve("a.cc")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}

		// If resolution were recomputed, the now-deleted file would fail.
		if err := os.Remove(filepath.Join(dir, "a.cc")); err != nil {
			t.Fatalf("remove: %v", err)
		}
		second, err := r.Resolve("a.cc")
		if err != nil {
			t.Fatalf("cached Resolve() error = %v", err)
		}
		if first != second {
			t.Errorf("cached result differs: %q vs %q", first, second)
		}
	})

	t.Run("batch merges raw paths with one target", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		abs := writeFile(t, dir, "a.cc")
		canonical, _ := filepath.EvalSymlinks(abs)

		raw := map[string][]edit.Edit{
			abs:    {{Kind: "r", Offset: 0, Length: 1, Replacement: "x"}},
			"a.cc": {{Kind: "r", Offset: 5, Length: 1, Replacement: "y"}},
		}

		r := resolve.New(dir)
		batch := r.Batch(raw, log.New(io.Discard))
		if len(batch) != 1 {
			t.Fatalf("batch paths = %d, want 1", len(batch))
		}
		if len(batch[canonical]) != 2 {
			t.Errorf("merged edits = %d, want 2", len(batch[canonical]))
		}
	})

	t.Run("batch drops unresolvable paths entirely", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "real.cc")

		raw := map[string][]edit.Edit{
			"real.cc":  {{Kind: "r", Offset: 0, Length: 0, Replacement: "x"}},
			"ghost.cc": {{Kind: "r", Offset: 0, Length: 0, Replacement: "y"}},
		}

		r := resolve.New(dir)
		batch := r.Batch(raw, log.New(io.Discard))
		if len(batch) != 1 {
			t.Errorf("batch paths = %d, want 1 (ghost dropped)", len(batch))
		}
	})
}

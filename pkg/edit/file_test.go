package edit_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/splice/pkg/edit"
	"github.com/yaklabco/splice/pkg/fsutil"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "target.cc")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestApplyFile(t *testing.T) {
	t.Parallel()

	t.Run("writes mutated contents back", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "hello world")
		edits := []edit.Edit{{Kind: "r", Offset: 0, Length: 5, Replacement: "goodbye"}}

		res, err := edit.ApplyFile(path, edits, edit.FileOptions{})
		if err != nil {
			t.Fatalf("ApplyFile() error = %v", err)
		}
		if !res.Written {
			t.Error("expected Written")
		}
		if res.Stats.Applied != 1 {
			t.Errorf("Applied = %d, want 1", res.Stats.Applied)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != "goodbye world" {
			t.Errorf("contents = %q, want %q", got, "goodbye world")
		}
	})

	t.Run("no-op batch leaves file untouched", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "hello world")
		// A replacement identical to the existing bytes.
		edits := []edit.Edit{{Kind: "r", Offset: 0, Length: 5, Replacement: "hello"}}

		res, err := edit.ApplyFile(path, edits, edit.FileOptions{})
		if err != nil {
			t.Fatalf("ApplyFile() error = %v", err)
		}
		if res.Written {
			t.Error("byte-identical result must not be written")
		}

		got, _ := os.ReadFile(path)
		if string(got) != "hello world" {
			t.Errorf("contents changed: %q", got)
		}
	})

	t.Run("dry run produces diff and no write", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "line one\nline two\n")
		edits := []edit.Edit{{Kind: "r", Offset: 5, Length: 3, Replacement: "1"}}

		res, err := edit.ApplyFile(path, edits, edit.FileOptions{DryRun: true})
		if err != nil {
			t.Fatalf("ApplyFile() error = %v", err)
		}
		if res.Written {
			t.Error("dry run must not write")
		}
		if !res.Diff.HasChanges() {
			t.Error("dry run should carry a diff")
		}

		got, _ := os.ReadFile(path)
		if string(got) != "line one\nline two\n" {
			t.Errorf("dry run modified the file: %q", got)
		}
	})

	t.Run("backup keeps original contents", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "original")
		edits := []edit.Edit{{Kind: "r", Offset: 0, Length: 8, Replacement: "replaced"}}

		res, err := edit.ApplyFile(path, edits, edit.FileOptions{Backup: true})
		if err != nil {
			t.Fatalf("ApplyFile() error = %v", err)
		}
		if !res.BackupCreated {
			t.Error("expected backup")
		}

		backup, err := os.ReadFile(path + fsutil.BackupSuffix)
		if err != nil {
			t.Fatalf("read backup: %v", err)
		}
		if string(backup) != "original" {
			t.Errorf("backup = %q, want %q", backup, "original")
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := edit.ApplyFile(filepath.Join(t.TempDir(), "absent"), nil, edit.FileOptions{})
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("conflicts carry the file path", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "hello world")
		edits := []edit.Edit{
			{Kind: "r", Offset: 0, Length: 5, Replacement: "a"},
			{Kind: "r", Offset: 0, Length: 5, Replacement: "b"},
		}

		res, err := edit.ApplyFile(path, edits, edit.FileOptions{})
		if err != nil {
			t.Fatalf("ApplyFile() error = %v", err)
		}
		if len(res.Stats.Conflicts) != 1 {
			t.Fatalf("conflicts = %d, want 1", len(res.Stats.Conflicts))
		}
		if res.Stats.Conflicts[0].Path != path {
			t.Errorf("conflict path = %q, want %q", res.Stats.Conflicts[0].Path, path)
		}
	})
}

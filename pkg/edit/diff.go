package edit

import (
	"fmt"
	"strings"
)

// diffContextLines is the number of unchanged lines shown around a hunk.
const diffContextLines = 3

// Diff is a unified-diff rendering of the change a dry run would make.
type Diff struct {
	// Path is the file path used in the diff header.
	Path string

	// Additions and Deletions count changed lines.
	Additions int
	Deletions int

	body string
}

// HasChanges reports whether the diff contains any changed lines.
func (d *Diff) HasChanges() bool {
	return d != nil && d.body != ""
}

// String renders the diff in unified format, including the header.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("--- a/%s\n+++ b/%s\n%s", path, path, d.body)
}

// GenerateDiff produces a unified diff between the original and mutated
// contents of a file. It returns nil when the contents are identical.
//
// The algorithm anchors on the longest common line prefix and suffix
// and emits the middle as a single hunk. Edit batches touch scattered
// byte ranges but a dry-run preview does not need minimal hunks.
func GenerateDiff(path string, original, modified []byte) *Diff {
	origLines := splitLines(original)
	modLines := splitLines(modified)

	prefix := commonPrefix(origLines, modLines)
	// Anchor the suffix against the lines not consumed by the prefix.
	suffix := commonSuffix(origLines[prefix:], modLines[prefix:])

	removed := origLines[prefix : len(origLines)-suffix]
	added := modLines[prefix : len(modLines)-suffix]
	if len(removed) == 0 && len(added) == 0 {
		return nil
	}

	ctxBefore := min(diffContextLines, prefix)
	ctxAfter := min(diffContextLines, suffix)

	var b strings.Builder
	fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n",
		prefix-ctxBefore+1, len(removed)+ctxBefore+ctxAfter,
		prefix-ctxBefore+1, len(added)+ctxBefore+ctxAfter)

	for _, line := range origLines[prefix-ctxBefore : prefix] {
		b.WriteString(" " + line + "\n")
	}
	for _, line := range removed {
		b.WriteString("-" + line + "\n")
	}
	for _, line := range added {
		b.WriteString("+" + line + "\n")
	}
	for _, line := range origLines[len(origLines)-suffix : len(origLines)-suffix+ctxAfter] {
		b.WriteString(" " + line + "\n")
	}

	return &Diff{
		Path:      path,
		Additions: len(added),
		Deletions: len(removed),
		body:      b.String(),
	}
}

// splitLines splits content into lines without the trailing newline.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func commonPrefix(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func commonSuffix(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}

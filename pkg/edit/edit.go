// Package edit provides the edit record type and the per-file
// application algorithm for batch source rewriting.
package edit

import "sort"

// Edit is a single instruction to replace the byte range
// [Offset, Offset+Length) of a file's original contents with
// Replacement. An insertion has Length 0; a pure deletion has an
// empty Replacement.
type Edit struct {
	// Kind is the transformation tag reported by the analysis tool
	// (e.g. "r" for replacement). The applier treats all kinds
	// uniformly; the tag participates only in ordering and equality.
	Kind string

	// Offset is the byte offset into the original file contents.
	Offset int

	// Length is the byte count of the original range being replaced.
	Length int

	// Replacement is the substitute byte sequence. Newline
	// placeholders are decoded before an Edit is constructed.
	Replacement string
}

// Compare orders edits lexicographically by
// (Offset, Length, Kind, Replacement). It returns -1, 0, or +1.
func (e Edit) Compare(other Edit) int {
	switch {
	case e.Offset != other.Offset:
		return cmpInt(e.Offset, other.Offset)
	case e.Length != other.Length:
		return cmpInt(e.Length, other.Length)
	case e.Kind != other.Kind:
		return cmpString(e.Kind, other.Kind)
	default:
		return cmpString(e.Replacement, other.Replacement)
	}
}

// SameRange reports whether two edits target the same byte range with
// the same kind. Two SameRange edits with different replacements are a
// conflict.
func (e Edit) SameRange(other Edit) bool {
	return e.Kind == other.Kind && e.Offset == other.Offset && e.Length == other.Length
}

// End returns the exclusive end offset of the replaced range.
func (e Edit) End() int {
	return e.Offset + e.Length
}

// IsDeletion reports whether the edit removes bytes without inserting any.
func (e Edit) IsDeletion() bool {
	return e.Replacement == "" && e.Length > 0
}

// Sort sorts edits ascending by (Offset, Length, Kind, Replacement).
// Sorting groups duplicates and conflicting edits adjacently, so the
// applier can detect both with a single previous-edit comparison.
func Sort(edits []Edit) {
	sort.Slice(edits, func(i, j int) bool {
		return edits[i].Compare(edits[j]) < 0
	})
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

package edit

// Separator characters recognized around a deleted list element.
// A comma or colon before the deletion site means the removed element
// followed another element; an opening paren or brace means it was the
// first element. Only a comma is meaningful after the site.
const (
	introducers = ",:({"
	separator   = ','
)

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// extendDeletion widens a pure deletion so that removing a list element
// does not leave an orphaned separator behind. offset is the position
// the deleted range occupied, in the buffer with the deletion already
// applied.
//
// The element's own bytes are gone at this point, so the bytes around
// offset are the element's former neighbors. If a separator or
// introducer precedes the site and a comma follows it, the trailing
// comma (plus interleaving whitespace) is now redundant and is removed.
// If only a comma or colon precedes it, the deleted element was the
// last in its list and the dangling leading separator is removed.
// Anything else, including a whitespace-only run to either end of the
// buffer, is left untouched.
func extendDeletion(buf []byte, offset int) []byte {
	var charBefore, charAfter byte

	leftTrim := 0
	for i := offset - 1; i >= 0; i-- {
		leftTrim++
		if isWhitespace(buf[i]) {
			continue
		}
		if isIntroducer(buf[i]) {
			charBefore = buf[i]
		}
		break
	}

	rightTrim := 0
	for i := offset; i < len(buf); i++ {
		rightTrim++
		if isWhitespace(buf[i]) {
			continue
		}
		if buf[i] == separator {
			charAfter = buf[i]
		}
		break
	}

	switch {
	case charBefore != 0 && charAfter != 0:
		// Element sat between two separators; drop the now-redundant
		// trailing one. The trim count includes the comma itself.
		return append(buf[:offset], buf[offset+rightTrim:]...)
	case charBefore == separator || charBefore == ':':
		// Last element of its list; drop the dangling leading separator.
		return append(buf[:offset-leftTrim], buf[offset:]...)
	default:
		return buf
	}
}

func isIntroducer(b byte) bool {
	for i := 0; i < len(introducers); i++ {
		if introducers[i] == b {
			return true
		}
	}
	return false
}

// Package line implements the line-addressed document buffer: an
// active list of text lines backing the current document content, and
// a graveyard list of lines detached by edits but kept alive so that
// stale span references continue to read stable (if stale) data
// instead of freed memory.
package line

// Line is an owned, mutable byte buffer with no line terminator and no
// embedded newline. A Line belongs to exactly one of: the active list,
// the graveyard list, or a freshly allocated, not-yet-linked state.
type Line struct {
	Text   []byte
	Number int // 1-based, assigned on load/append; advisory after edits.

	prev, next *Line
	doc        *Document
}

// NewLine allocates a detached line holding a copy of text.
func NewLine(text []byte) *Line {
	buf := make([]byte, len(text))
	copy(buf, text)
	return &Line{Text: buf}
}

// Len returns the number of bytes in the line.
func (l *Line) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Text)
}

// Prev returns the previous line in whichever list l currently belongs to.
func (l *Line) Prev() *Line { return l.prev }

// Next returns the next line in whichever list l currently belongs to.
func (l *Line) Next() *Line { return l.next }

// Clone returns a detached deep copy of l, with no list membership.
func (l *Line) Clone() *Line {
	if l == nil {
		return nil
	}
	return NewLine(l.Text)
}

func (l *Line) String() string {
	if l == nil {
		return ""
	}
	return string(l.Text)
}

// Document holds two doubly linked line lists: the active list, which
// is what Save serialises, and the graveyard, which retains lines
// logically removed by an edit until ClearGraveyard is called.
//
// The zero value is an empty Document, the same as New returns.
type Document struct {
	head, tail                 *Line
	boneyardHead, boneyardTail *Line
}

// New returns an empty, initialised Document.
func New() *Document {
	return &Document{}
}

// Valid reports whether d is a non-nil, usable Document. It mirrors
// the magic-tag validity check the original C ABI performed on every
// entry point, expressed idiomatically as a nil check.
func (d *Document) Valid() bool {
	return d != nil
}

// Head returns the first line of the active list, or nil if empty.
func (d *Document) Head() *Line { return d.head }

// Tail returns the last line of the active list, or nil if empty.
func (d *Document) Tail() *Line { return d.tail }

// IsEmpty reports whether the active list has no lines.
func (d *Document) IsEmpty() bool { return d.head == nil }

// AppendLine appends l to the tail of the active list and assigns it
// the next line number.
func (d *Document) AppendLine(l *Line) {
	l.doc = d
	l.prev = nil
	l.next = nil

	if d.tail == nil {
		d.head = l
		d.tail = l
		l.Number = 1
		return
	}

	l.prev = d.tail
	l.Number = d.tail.Number + 1
	d.tail.next = l
	d.tail = l
}

// UnlinkLine removes l from the active list in O(1) and appends it to
// the graveyard tail, retaining its full original content. The line's
// document back-reference is cleared; RelinkLine restores it.
func (d *Document) UnlinkLine(l *Line) {
	prev, next := l.prev, l.next

	if prev != nil {
		prev.next = next
	} else if d.head == l {
		d.head = next
	}

	if next != nil {
		next.prev = prev
	} else if d.tail == l {
		d.tail = prev
	}

	l.doc = nil
	l.prev = nil
	l.next = nil
	d.boneyardAppend(l)
}

// boneyardAppend appends l to the graveyard tail. O(1).
func (d *Document) boneyardAppend(l *Line) {
	l.prev = d.boneyardTail
	l.next = nil
	if d.boneyardTail != nil {
		d.boneyardTail.next = l
	} else {
		d.boneyardHead = l
	}
	d.boneyardTail = l
}

// boneyardRemove splices l out of the graveyard list, wherever it sits.
func (d *Document) boneyardRemove(l *Line) {
	prev, next := l.prev, l.next

	if prev != nil {
		prev.next = next
	} else if d.boneyardHead == l {
		d.boneyardHead = next
	}

	if next != nil {
		next.prev = prev
	} else if d.boneyardTail == l {
		d.boneyardTail = prev
	}

	l.prev = nil
	l.next = nil
}

// RelinkLine removes l from the graveyard and splices it into the
// active list immediately before `before`, or at the tail if before is
// nil. O(1).
func (d *Document) RelinkLine(l *Line, before *Line) {
	d.boneyardRemove(l)

	l.doc = d
	l.next = before

	if before == nil {
		l.prev = d.tail
		if d.tail != nil {
			d.tail.next = l
		} else {
			d.head = l
		}
		d.tail = l
		return
	}

	l.prev = before.prev
	if before.prev != nil {
		before.prev.next = l
	} else {
		d.head = l
	}
	before.prev = l
}

// ChainLines links each line to the next via Prev/Next, without
// attaching any of them to a Document. The editor uses this to build a
// candidate replacement chain that can be re-lexed for validation
// before anything is spliced into the active list.
func ChainLines(lines []*Line) {
	for i := 0; i+1 < len(lines); i++ {
		lines[i].next = lines[i+1]
		lines[i+1].prev = lines[i]
	}
}

// ClearGraveyard discards all lines in the graveyard list. Any span
// still referencing a graveyard line becomes invalid to dereference
// after this call; callers must ensure no stale spans outlive it.
func (d *Document) ClearGraveyard() {
	d.boneyardHead = nil
	d.boneyardTail = nil
}

// Validate walks the active list and reports whether line numbers are
// monotonically increasing and the prev/next links are consistent.
// Mirrors the consistency check the teacher runs over its own line
// list after construction.
func (d *Document) Validate() error {
	var prev *Line
	n := 0
	for l := d.head; l != nil; l = l.next {
		n++
		if l.prev != prev {
			return errInconsistentLink
		}
		if prev != nil && l.Number <= prev.Number {
			return errNonMonotonicLineNumber
		}
		prev = l
		if n > maxValidateSteps {
			return errValidateOverrun
		}
	}
	if prev != d.tail {
		return errInconsistentTail
	}
	return nil
}

const maxValidateSteps = 10_000_000

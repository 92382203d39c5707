package line

import "strings"

// Cursor is a position within a Document: a line reference, a byte
// offset within that line, and a completion flag set once movement has
// walked past the last byte of the last line.
//
// The zero Cursor has no line reference; consumers interpret it as
// "start from the enclosing span's beginning."
type Cursor struct {
	Line     *Line
	Pos      int
	Complete bool
}

// Valid reports whether c references a line. An empty cursor (the zero
// value) is not valid on its own; callers resolve it against a span's
// start first.
func (c Cursor) Valid() bool {
	return c.Line != nil
}

// Equal reports whether two cursors reference the same line and
// position.
func (c Cursor) Equal(other Cursor) bool {
	return c.Line == other.Line && c.Pos == other.Pos
}

// Move advances the cursor by n bytes, crossing line boundaries as
// needed; n may be negative to move backward. On overrun past the
// document's start or end, the cursor clamps at the terminal line and
// Move returns done=true; the cursor itself remains valid.
//
// Backward movement that crosses into the previous line lands at
// prev.Len()+pos — one past the last byte of the previous line, which
// stands in for the newline separator. (The C original this is
// grounded on under-advances by one on an empty previous line; this is
// the corrected formula.)
func (c *Cursor) Move(n int) (done bool) {
	if c.Line == nil {
		c.Complete = true
		return true
	}

	if n >= 0 {
		for n > 0 {
			remaining := c.Line.Len() - c.Pos
			if n <= remaining {
				c.Pos += n
				return false
			}
			n -= remaining
			if c.Line.next == nil {
				c.Pos = c.Line.Len()
				c.Complete = true
				return true
			}
			n-- // the newline separator between lines
			c.Line = c.Line.next
			c.Pos = 0
			if n < 0 {
				// The step landed inside the newline itself; treat as
				// position 0 of the next line.
				n = 0
			}
		}
		return false
	}

	n = -n
	for n > 0 {
		if n <= c.Pos {
			c.Pos -= n
			return false
		}
		n -= c.Pos
		if c.Line.prev == nil {
			c.Pos = 0
			c.Complete = true
			return true
		}
		n-- // the newline separator between lines
		c.Line = c.Line.prev
		if n < 0 {
			n = 0
		}
		c.Pos = c.Line.Len()
	}
	return false
}

// SkipWS advances past spaces and tabs; on reaching the end of a line
// it continues at the start of the next one, so line ends count as
// whitespace. When the cursor is exhausted across all remaining lines,
// it returns done=true and sets the completion flag.
func (c *Cursor) SkipWS() (done bool) {
	for {
		if c.Line == nil {
			c.Complete = true
			return true
		}
		if c.Pos >= c.Line.Len() {
			if c.Line.next == nil {
				c.Complete = true
				return true
			}
			c.Line = c.Line.next
			c.Pos = 0
			continue
		}
		b := c.Line.Text[c.Pos]
		if b != ' ' && b != '\t' {
			return false
		}
		c.Pos++
	}
}

// SkipAny advances past any byte found in chars, crossing line
// boundaries exactly as SkipWS does. When the cursor is exhausted
// across all remaining lines, it returns done=true and sets the
// completion flag.
func (c *Cursor) SkipAny(chars string) (done bool) {
	for {
		if c.Line == nil {
			c.Complete = true
			return true
		}
		if c.Pos >= c.Line.Len() {
			if c.Line.next == nil {
				c.Complete = true
				return true
			}
			c.Line = c.Line.next
			c.Pos = 0
			continue
		}
		if strings.IndexByte(chars, c.Line.Text[c.Pos]) < 0 {
			return false
		}
		c.Pos++
	}
}

// Byte returns the byte at the cursor's current position and whether
// that position is within the current line's bounds.
func (c Cursor) Byte() (b byte, ok bool) {
	if c.Line == nil || c.Pos >= c.Line.Len() {
		return 0, false
	}
	return c.Line.Text[c.Pos], true
}

// AtLineEnd reports whether the cursor sits at or past the end of its
// current line.
func (c Cursor) AtLineEnd() bool {
	return c.Line == nil || c.Pos >= c.Line.Len()
}

// Compare reports whether a and b reference the same line and offset.
func Compare(a, b Cursor) bool {
	return a.Equal(b)
}

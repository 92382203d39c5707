package line_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.tomledit.dev/tomledit/internal/line"
)

func TestFromBytesToBytesRoundTrip(t *testing.T) {
	input := "title = \"Test Document\"\nversion = 42\nenabled = true\n"
	doc := line.FromBytes([]byte(input))
	require.NoError(t, doc.Validate())
	assert.Equal(t, input, string(doc.ToBytes()))
}

func TestFromBytesNoFinalNewlineStillAppendsOne(t *testing.T) {
	input := "a = 1\nb = 2"
	doc := line.FromBytes([]byte(input))
	assert.Equal(t, "a = 1\nb = 2\n", string(doc.ToBytes()))
}

func TestFromBytesStripsCR(t *testing.T) {
	doc := line.FromBytes([]byte("a = 1\r\nb = 2\r\n"))
	assert.Equal(t, "a = 1", doc.Head().String())
	assert.Equal(t, "b = 2", doc.Tail().String())
}

func TestAppendLineAssignsSequentialNumbers(t *testing.T) {
	doc := line.New()
	doc.AppendLine(line.NewLine([]byte("one")))
	doc.AppendLine(line.NewLine([]byte("two")))
	doc.AppendLine(line.NewLine([]byte("three")))

	assert.Equal(t, 1, doc.Head().Number)
	assert.Equal(t, 3, doc.Tail().Number)
	require.NoError(t, doc.Validate())
}

func TestUnlinkLineMovesToGraveyardAndKeepsContent(t *testing.T) {
	doc := line.New()
	a := line.NewLine([]byte("a"))
	b := line.NewLine([]byte("b"))
	c := line.NewLine([]byte("c"))
	doc.AppendLine(a)
	doc.AppendLine(b)
	doc.AppendLine(c)

	doc.UnlinkLine(b)

	assert.Equal(t, "a\nc\n", string(doc.ToBytes()))
	assert.Equal(t, "b", b.String(), "unlinked line keeps its full original content")
	assert.Nil(t, b.Prev())
	assert.Nil(t, b.Next())
}

func TestRelinkLineRestoresPosition(t *testing.T) {
	doc := line.New()
	a := line.NewLine([]byte("a"))
	b := line.NewLine([]byte("b"))
	c := line.NewLine([]byte("c"))
	doc.AppendLine(a)
	doc.AppendLine(b)
	doc.AppendLine(c)

	doc.UnlinkLine(b)
	doc.RelinkLine(b, c)

	assert.Equal(t, "a\nb\nc\n", string(doc.ToBytes()))
	require.NoError(t, doc.Validate())
}

func TestRelinkLineAtTailWhenBeforeNil(t *testing.T) {
	doc := line.New()
	a := line.NewLine([]byte("a"))
	b := line.NewLine([]byte("b"))
	doc.AppendLine(a)
	doc.AppendLine(b)

	doc.UnlinkLine(b)
	doc.RelinkLine(b, nil)

	assert.Equal(t, "a\nb\n", string(doc.ToBytes()))
	assert.Same(t, b, doc.Tail())
}

func TestLineCloneIsDetachedCopy(t *testing.T) {
	orig := line.NewLine([]byte("hello"))
	clone := orig.Clone()

	assert.Equal(t, orig.String(), clone.String())
	clone.Text[0] = 'H'
	assert.Equal(t, "hello", orig.String(), "clone must not alias the original buffer")
}

func TestCursorMoveForwardAcrossLines(t *testing.T) {
	doc := line.FromBytes([]byte("ab\ncd\n"))
	cur := line.Cursor{Line: doc.Head(), Pos: 1}

	done := cur.Move(2)

	assert.False(t, done)
	assert.Same(t, doc.Tail(), cur.Line)
	assert.Equal(t, 0, cur.Pos)
}

func TestCursorMoveBackwardAcrossLines(t *testing.T) {
	doc := line.FromBytes([]byte("ab\ncd\n"))
	cur := line.Cursor{Line: doc.Tail(), Pos: 0}

	done := cur.Move(-1)

	assert.False(t, done)
	assert.Same(t, doc.Head(), cur.Line)
	assert.Equal(t, doc.Head().Len(), cur.Pos, "crossing backward lands one past the previous line's last byte")
}

func TestCursorMoveBackwardAcrossEmptyLine(t *testing.T) {
	doc := line.FromBytes([]byte("ab\n\ncd\n"))
	middle := doc.Head().Next()
	require.Equal(t, 0, middle.Len())

	cur := line.Cursor{Line: middle.Next(), Pos: 0}
	done := cur.Move(-1)

	assert.False(t, done)
	assert.Same(t, middle, cur.Line)
	assert.Equal(t, 0, cur.Pos, "landing on an empty previous line must not under-advance")
}

func TestCursorMoveClampsAtDocumentEnd(t *testing.T) {
	doc := line.FromBytes([]byte("ab\n"))
	cur := line.Cursor{Line: doc.Tail(), Pos: 0}

	done := cur.Move(100)

	assert.True(t, done)
	assert.True(t, cur.Complete)
	assert.Equal(t, doc.Tail().Len(), cur.Pos)
}

func TestCursorSkipWSStopsAtNonWhitespace(t *testing.T) {
	doc := line.FromBytes([]byte("   x\n"))
	cur := line.Cursor{Line: doc.Head(), Pos: 0}

	done := cur.SkipWS()

	assert.False(t, done)
	b, ok := cur.Byte()
	require.True(t, ok)
	assert.Equal(t, byte('x'), b)
}

func TestCursorSkipWSCrossesBlankLines(t *testing.T) {
	doc := line.FromBytes([]byte("  \n\n  x\n"))
	cur := line.Cursor{Line: doc.Head(), Pos: 0}

	done := cur.SkipWS()

	assert.False(t, done)
	assert.Same(t, doc.Tail(), cur.Line)
	b, ok := cur.Byte()
	require.True(t, ok)
	assert.Equal(t, byte('x'), b)
}

func TestCursorSkipAnyStopsAtFirstUnlistedByte(t *testing.T) {
	doc := line.FromBytes([]byte(",,,x\n"))
	cur := line.Cursor{Line: doc.Head(), Pos: 0}

	cur.SkipAny(",")

	b, ok := cur.Byte()
	require.True(t, ok)
	assert.Equal(t, byte('x'), b)
}

package tomledit

import (
	"go.tomledit.dev/tomledit/internal/line"
	"go.tomledit.dev/tomledit/internal/span"
)

// Cursor is a position within a [Document]: a line reference, a byte
// offset within that line, and a completion flag. The zero Cursor
// means "start from the enclosing span's beginning."
type Cursor = line.Cursor

// Span is a tagged, bounded region of a [Document] produced by
// [Document.DocSpan] and the navigation methods. See [Kind] for the
// shapes a Span can take.
type Span = span.Span

// Kind tags the shape of a [Span].
type Kind = span.Kind

// Kind values. NodeTable and NodeArrayTable are `[table]` and
// `[[array.table]]` headers together with their body up to (not
// including) the next header; NodeArray and NodeInlineTable are inline
// `[...]` and `{...}` containers whose elements are walked with
// FindNext; LeafKeyval and LeafComment are a `key = value` pair and a
// `#` comment; SliceKey and SliceValue are the narrowed
// sub-spans KeyvalSlice produces.
const (
	None            = span.None
	NodeTable       = span.NodeTable
	NodeArrayTable  = span.NodeArrayTable
	NodeArray       = span.NodeArray
	NodeInlineTable = span.NodeInlineTable
	LeafKeyval      = span.LeafKeyval
	LeafComment     = span.LeafComment
	SliceKey        = span.SliceKey
	SliceValue      = span.SliceValue
)

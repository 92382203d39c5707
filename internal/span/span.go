// Package span implements the span abstraction and the structural
// navigation operations (FindNext, FindByName, KeyvalSlice, IterLine,
// GetText) that traverse a document as spans.
package span

import (
	"go.tomledit.dev/tomledit/internal/line"
)

// Kind tags the shape of a Span.
type Kind int

const (
	// None is the whole-document sentinel returned by DocSpan.
	None Kind = iota
	NodeTable
	NodeArrayTable
	NodeArray
	NodeInlineTable
	LeafKeyval
	LeafComment
	SliceKey
	SliceValue
)

func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case NodeTable:
		return "NodeTable"
	case NodeArrayTable:
		return "NodeArrayTable"
	case NodeArray:
		return "NodeArray"
	case NodeInlineTable:
		return "NodeInlineTable"
	case LeafKeyval:
		return "LeafKeyval"
	case LeafComment:
		return "LeafComment"
	case SliceKey:
		return "SliceKey"
	case SliceValue:
		return "SliceValue"
	default:
		return "Unknown"
	}
}

// Span is a tagged region bounded by lexical cursors (which include
// delimiters and any containing structural header) and, optionally,
// narrower semantic cursors (the user-meaningful content only). When
// SemStart/SemEnd carry no line reference, the semantic extent equals
// the lexical extent.
type Span struct {
	Kind               Kind
	LexStart, LexEnd   line.Cursor
	SemStart, SemEnd   line.Cursor
}

// SemanticStart returns SemStart if set, else LexStart.
func (s Span) SemanticStart() line.Cursor {
	if s.SemStart.Valid() {
		return s.SemStart
	}
	return s.LexStart
}

// SemanticEnd returns SemEnd if set, else LexEnd.
func (s Span) SemanticEnd() line.Cursor {
	if s.SemEnd.Valid() {
		return s.SemEnd
	}
	return s.LexEnd
}

// Valid reports whether s has a usable lexical start. A zero Span is
// not valid.
func (s Span) Valid() bool {
	return s.LexStart.Valid()
}

// SingleLine reports whether the span's semantic extent is confined to
// one line.
func (s Span) SingleLine() bool {
	return s.SemanticStart().Line == s.SemanticEnd().Line
}

// DocSpan returns the whole-document span: kind None, lexical bounds
// covering the entire active list. If the document is empty both
// cursors carry no line reference and iteration over it yields done
// immediately.
func DocSpan(doc *line.Document) Span {
	s := Span{Kind: None}
	s.LexStart = line.Cursor{Line: doc.Head(), Pos: 0}
	if tail := doc.Tail(); tail != nil {
		s.LexEnd = line.Cursor{Line: tail, Pos: tail.Len()}
	}
	return s
}

// pastBound reports whether cr sits at or beyond bound, walking
// forward from bound's line to find cr's line. bound with no line
// reference means "no boundary" (used for the whole-document span).
func pastBound(cr, bound line.Cursor) bool {
	if bound.Line == nil {
		return false
	}
	if cr.Line == bound.Line {
		return cr.Pos >= bound.Pos
	}
	for l := bound.Line.Next(); l != nil; l = l.Next() {
		if l == cr.Line {
			return true
		}
	}
	return false
}

func validForFindNext(k Kind) bool {
	switch k {
	case LeafComment, LeafKeyval, SliceKey, SliceValue:
		return false
	default:
		return true
	}
}

func byteAt(l *line.Line, pos int) byte {
	if l != nil && pos < l.Len() {
		return l.Text[pos]
	}
	return 0
}

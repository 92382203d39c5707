package span

import (
	"go.tomledit.dev/tomledit/internal/lexer"
	"go.tomledit.dev/tomledit/internal/line"
	"go.tomledit.dev/tomledit/tomlerr"
)

// maxFindNextSteps guards against a cursor that gets stuck walking
// unknown bytes without ever reaching a structural element or the end
// of input; it is the depth bound the original fuzz harness applied to
// catch exactly this class of bug (see SPEC_FULL.md §11).
const maxFindNextSteps = 1000

// FindNext produces the next structural element inside in. cur is a
// threading handle: pass the same cursor across calls to walk every
// child of in in document order; pass nil or a zero cursor to start
// from in.LexStart.
//
// Calling FindNext on a LeafComment, LeafKeyval, SliceKey, or
// SliceValue span returns ErrInvalidArg. Calling it on a NodeArray or
// NodeInlineTable span iterates that container's elements rather than
// the generic table-body scan.
func FindNext(in Span, cur *line.Cursor) (Span, error) {
	if !in.Valid() {
		// An empty document's span has no line to start from: there is
		// nothing to iterate.
		if in.Kind == None {
			return Span{}, tomlerr.ErrDone
		}
		return Span{}, tomlerr.ErrInvalidArg
	}
	if !validForFindNext(in.Kind) {
		return Span{}, tomlerr.ErrInvalidArg
	}

	var cr line.Cursor
	if cur != nil && cur.Line != nil {
		cr = *cur
	} else {
		cr = in.LexStart
	}

	switch in.Kind {
	case NodeArray:
		return findNextArrayElement(in, cr, cur)
	case NodeInlineTable:
		return findNextInlineTableElement(in, cr, cur)
	}

	skipFirst := in.Kind != None && cr.Equal(in.LexStart)

	for steps := 0; steps < maxFindNextSteps; steps++ {
		if done := cr.SkipWS(); done {
			return Span{}, tomlerr.ErrDone
		}
		if in.LexEnd.Valid() && pastBound(cr, in.LexEnd) {
			return Span{}, tomlerr.ErrDone
		}
		if cr.Line == nil || cr.Pos >= cr.Line.Len() {
			return Span{}, tomlerr.ErrNotFound
		}

		c := cr.Line.Text[cr.Pos]
		c1 := byteAt(cr.Line, cr.Pos+1)

		var out Span

		switch {
		case c == '[':
			out.LexStart = cr
			if c1 == '[' {
				out.Kind = NodeArrayTable
				if err := lexer.Consume(&cr, lexer.ArrayTableHeader); err != nil {
					return Span{}, err
				}
				if skipFirst {
					skipFirst = false
					continue
				}
				if err := lexer.Consume(&cr, lexer.ArrayTableBody); err != nil {
					return Span{}, err
				}
			} else {
				out.Kind = NodeTable
				if err := lexer.Consume(&cr, lexer.TableHeader); err != nil {
					return Span{}, err
				}
				if skipFirst {
					skipFirst = false
					continue
				}
				if err := lexer.Consume(&cr, lexer.TableBody); err != nil {
					return Span{}, err
				}
			}
			out.LexEnd = cr
			if cur != nil {
				*cur = cr
			}
			return out, nil

		case c == '#':
			out.Kind = LeafComment
			out.LexStart = cr
			if err := lexer.Consume(&cr, lexer.Comment); err != nil {
				return Span{}, err
			}
			out.LexEnd = cr
			if skipFirst {
				skipFirst = false
				continue
			}
			if cur != nil {
				*cur = cr
			}
			return out, nil

		case lexer.IsBareKeyChar(c) || c == '"' || c == '\'':
			out.Kind = LeafKeyval
			out.LexStart = cr
			if err := lexer.Consume(&cr, lexer.Key); err != nil {
				return Span{}, err
			}
			cr.Pos++ // skip '=' itself
			if err := lexer.Consume(&cr, lexer.Value); err != nil {
				return Span{}, err
			}
			out.LexEnd = cr
			if skipFirst {
				skipFirst = false
				continue
			}
			if cur != nil {
				*cur = cr
			}
			return out, nil

		default:
			// Unknown byte: skip and retry.
			cr.Pos++
			continue
		}
	}

	return Span{}, tomlerr.New(tomlerr.KindInvalidArg, "find_next exceeded iteration depth guard")
}

// findNextArrayElement implements array-value iteration: on the first
// call it steps over the opening '[', then parses one value per call.
// The returned span's lexical end extends through a trailing comma and
// whitespace, so the element can be cleanly unlinked; Done is returned
// when the next non-whitespace byte is ']'.
func findNextArrayElement(in Span, cr line.Cursor, cur *line.Cursor) (Span, error) {
	if cr.Equal(in.LexStart) {
		if b, ok := cr.Byte(); ok && b == '[' {
			cr.Pos++
			cr.SkipWS()
		}
	}

	if cr.Line == nil || cr.Pos >= cr.Line.Len() {
		return Span{}, tomlerr.ErrNotFound
	}
	if b, _ := cr.Byte(); b == ']' {
		return Span{}, tomlerr.ErrDone
	}

	var out Span
	out.Kind = SliceValue
	out.LexStart = cr
	if err := lexer.Consume(&cr, lexer.Value); err != nil {
		return Span{}, err
	}
	out.SemStart = out.LexStart
	out.SemEnd = cr
	out.LexEnd = cr

	cr.SkipWS()
	cr.SkipAny(",")
	cr.SkipWS()
	out.LexEnd = cr

	if cur != nil {
		*cur = cr
	}
	return out, nil
}

// findNextInlineTableElement implements inline-table iteration: on the
// first call it steps over the opening '{', then parses a Key, the
// '=', and a Value per call, extending the lexical end through a
// trailing comma. Done is returned when the next non-whitespace byte
// is '}'.
func findNextInlineTableElement(in Span, cr line.Cursor, cur *line.Cursor) (Span, error) {
	if cr.Equal(in.LexStart) {
		if b, ok := cr.Byte(); ok && b == '{' {
			cr.Pos++
			cr.SkipWS()
		}
	}

	if cr.Line == nil || cr.Pos >= cr.Line.Len() {
		return Span{}, tomlerr.ErrNotFound
	}
	if b, _ := cr.Byte(); b == '}' {
		return Span{}, tomlerr.ErrDone
	}

	var out Span
	out.Kind = LeafKeyval
	out.LexStart = cr
	if err := lexer.Consume(&cr, lexer.Key); err != nil {
		return Span{}, err
	}
	cr.Pos++ // skip '='
	if err := lexer.Consume(&cr, lexer.Value); err != nil {
		return Span{}, err
	}
	out.LexEnd = cr

	cr.SkipWS()
	cr.SkipAny(",")
	cr.SkipWS()
	out.LexEnd = cr

	if cur != nil {
		*cur = cr
	}
	return out, nil
}

// spanName extracts the literal name of a NodeTable, NodeArrayTable,
// or LeafKeyval span: the bytes between the header delimiters, or the
// parsed key of a keyval. Returns ok=false if the span carries no
// extractable name.
func spanName(s Span) (text []byte, ok bool) {
	if !s.LexStart.Valid() {
		return nil, false
	}

	l := s.LexStart.Line
	start := s.LexStart.Pos
	end := l.Len()
	if l == s.LexEnd.Line {
		end = s.LexEnd.Pos
	}

	switch s.Kind {
	case NodeTable:
		if start < end && l.Text[start] == '[' {
			start++
		}
		nameEnd := start
		for nameEnd < end && l.Text[nameEnd] != ']' {
			nameEnd++
		}
		return l.Text[start:nameEnd], true

	case NodeArrayTable:
		if start+1 < end && l.Text[start] == '[' && l.Text[start+1] == '[' {
			start += 2
		}
		nameEnd := start
		for nameEnd+1 < end && !(l.Text[nameEnd] == ']' && l.Text[nameEnd+1] == ']') {
			nameEnd++
		}
		return l.Text[start:nameEnd], true

	case LeafKeyval:
		rawKey := Span{Kind: SliceKey, LexStart: s.LexStart}
		cr := s.LexStart
		if err := lexer.Consume(&cr, lexer.Key); err != nil {
			return nil, false
		}
		rawKey.LexEnd = cr
		_, text, err := parseKey(rawKey)
		if err != nil {
			return nil, false
		}
		return text, true

	default:
		return nil, false
	}
}

// FindByName iterates via FindNext and returns the first NodeTable,
// NodeArrayTable, or LeafKeyval child of in whose name matches name
// exactly (byte-for-byte, no unescaping, dotted names matched as a
// single opaque literal).
func FindByName(in Span, name string) (Span, error) {
	cur := in.LexStart
	for {
		out, err := FindNext(in, &cur)
		if err != nil {
			// find_next stopping for any reason — no more children or a
			// lex error along the way — means the name was not found.
			return Span{}, tomlerr.ErrNotFound
		}
		switch out.Kind {
		case NodeTable, NodeArrayTable, LeafKeyval:
			if n, ok := spanName(out); ok && string(n) == name {
				return out, nil
			}
		}
	}
}

// FindNextByName is the cursor-threading variant of FindByName: it
// resumes from *cur (or in.LexStart if *cur carries no line reference)
// and returns successive matches, advancing *cur past each one — used
// to iterate arrays of tables that share a name.
func FindNextByName(in Span, name string, cur *line.Cursor) (Span, error) {
	var threaded line.Cursor
	if cur != nil && cur.Line != nil {
		threaded = *cur
	} else {
		threaded = in.LexStart
	}

	for {
		out, err := FindNext(in, &threaded)
		if err != nil {
			return Span{}, tomlerr.ErrNotFound
		}
		switch out.Kind {
		case NodeTable, NodeArrayTable, LeafKeyval:
			if n, ok := spanName(out); ok && string(n) == name {
				if cur != nil {
					*cur = threaded
				}
				return out, nil
			}
		}
	}
}

// IterLine yields the intersection of span's semantic extent (falling
// back to lexical if no semantic bounds are set) with each line it
// covers. cur, initialised to the zero value, starts at the span's
// beginning; on each call it advances to the next line. Returns
// ErrDone once the span's end has been yielded.
func IterLine(s Span, cur *line.Cursor) (text []byte, err error) {
	if cur == nil {
		return nil, tomlerr.ErrInvalidArg
	}
	end := s.SemanticEnd()

	if cur.Line == nil {
		start := s.SemanticStart()
		cur.Line = start.Line
		cur.Pos = start.Pos
	}

	if cur.Line == nil || !end.Valid() {
		return nil, tomlerr.ErrInvalidArg
	}

	if cur.Line == end.Line && cur.Pos >= end.Pos {
		return nil, tomlerr.ErrDone
	}

	start := cur.Pos
	var stop int
	if cur.Line == end.Line {
		stop = end.Pos
	} else {
		stop = cur.Line.Len()
	}

	var out []byte
	if stop > start {
		out = cur.Line.Text[start:stop]
	}

	if cur.Line == end.Line {
		cur.Pos = end.Pos
	} else {
		cur.Line = cur.Line.Next()
		cur.Pos = 0
	}

	return out, nil
}

// GetText is the fast path for a span confined to one line. It returns
// ErrTypeMismatch for a multi-line span; callers must fall back to
// IterLine for those.
func GetText(s Span) ([]byte, error) {
	if !s.Valid() {
		return nil, tomlerr.ErrInvalidArg
	}
	start := s.SemanticStart()
	end := s.SemanticEnd()
	if start.Line != end.Line {
		return nil, tomlerr.ErrTypeMismatch
	}
	return start.Line.Text[start.Pos:end.Pos], nil
}

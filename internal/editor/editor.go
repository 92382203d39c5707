// Package editor implements the atomic edit pipeline: replacing a
// span's value re-lexes the candidate replacement before anything
// touches the document, and removing a span preserves enough state to
// restore it exactly.
package editor

import (
	"go.tomledit.dev/tomledit/internal/lexer"
	"go.tomledit.dev/tomledit/internal/line"
	"go.tomledit.dev/tomledit/internal/span"
	"go.tomledit.dev/tomledit/tomlerr"
)

// SetValue replaces val's content with a single line of text. It is a
// convenience wrapper around SetValueMultiline.
func SetValue(doc *line.Document, val span.Span, text string) (span.Span, error) {
	return SetValueMultiline(doc, val, []string{text})
}

// SetValueMultiline replaces val's semantic content with newLines,
// preserving the bytes before the value on its first line (typically
// "key = ") and the bytes after it on its last line (a trailing comma
// or comment). The replacement is assembled into a detached candidate
// chain and validated by re-lexing it as a Value token; only on an
// exact match is the document mutated. On any mismatch doc is left
// untouched and the returned error wraps tomlerr.ErrSyntax.
func SetValueMultiline(doc *line.Document, val span.Span, newLines []string) (span.Span, error) {
	if !doc.Valid() || !val.Valid() || len(newLines) == 0 {
		return span.Span{}, tomlerr.ErrInvalidArg
	}

	start := val.SemanticStart()
	end := val.SemanticEnd()
	oldFirst, oldLast := start.Line, end.Line
	if oldFirst == nil || oldLast == nil {
		return span.Span{}, tomlerr.ErrInvalidArg
	}

	prefix := cloneBytes(oldFirst.Text[:start.Pos])
	suffix := cloneBytes(oldLast.Text[end.Pos:])

	candidates := buildCandidates(prefix, newLines, suffix)
	line.ChainLines(candidates)

	valStart := line.Cursor{Line: candidates[0], Pos: len(prefix)}
	lastNew := candidates[len(candidates)-1]
	expectedEndPos := lastNew.Len() - len(suffix)

	// A quoted string's semantic bounds sit inside its quotes, so the
	// re-lex starts at the opening quote and ends past the closing one.
	lexStart := valStart
	if val.LexStart.Line == oldFirst && val.LexStart.Pos == start.Pos-1 {
		if q := prefix[len(prefix)-1]; q == '"' || q == '\'' {
			lexStart.Pos--
		}
	}
	lexEnd := line.Cursor{Line: lastNew, Pos: expectedEndPos + valStart.Pos - lexStart.Pos}

	test := lexStart
	if err := lexer.Consume(&test, lexer.Value); err != nil {
		return span.Span{}, tomlerr.Wrap(tomlerr.KindSyntax, "replacement value failed to re-lex", err)
	}
	if test.Line != lastNew || test.Pos != lexEnd.Pos {
		return span.Span{}, tomlerr.New(tomlerr.KindSyntax, "replacement value did not consume exactly the expected span")
	}

	reinsertPos := oldLast.Next()
	for l := oldFirst; l != nil; {
		next := l.Next()
		doc.UnlinkLine(l)
		if l == oldLast {
			break
		}
		l = next
	}
	for _, c := range candidates {
		doc.RelinkLine(c, reinsertPos)
	}

	out := val
	out.SemStart = valStart
	out.SemEnd = line.Cursor{Line: lastNew, Pos: expectedEndPos}
	out.LexStart = lexStart
	out.LexEnd = lexEnd
	return out, nil
}

func buildCandidates(prefix []byte, newLines []string, suffix []byte) []*line.Line {
	if len(newLines) == 1 {
		buf := make([]byte, 0, len(prefix)+len(newLines[0])+len(suffix))
		buf = append(buf, prefix...)
		buf = append(buf, newLines[0]...)
		buf = append(buf, suffix...)
		return []*line.Line{line.NewLine(buf)}
	}

	candidates := make([]*line.Line, 0, len(newLines))

	first := make([]byte, 0, len(prefix)+len(newLines[0]))
	first = append(first, prefix...)
	first = append(first, newLines[0]...)
	candidates = append(candidates, line.NewLine(first))

	for i := 1; i < len(newLines)-1; i++ {
		candidates = append(candidates, line.NewLine([]byte(newLines[i])))
	}

	lastText := newLines[len(newLines)-1]
	last := make([]byte, 0, len(lastText)+len(suffix))
	last = append(last, lastText...)
	last = append(last, suffix...)
	candidates = append(candidates, line.NewLine(last))

	return candidates
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// Handle captures the state UnlinkSpan needs to later restore a
// removed span via RelinkSpan.
type Handle struct {
	doc         *line.Document
	originals   []*line.Line
	prefixLine  *line.Line
	suffixLine  *line.Line
	reinsertPos *line.Line
}

// UnlinkSpan removes s's lines from doc. Bytes sharing a line with s —
// text before it on its first line, text after it on its last line —
// are preserved in synthesized prefix/suffix lines; if s occupies a
// single line and has both, they are merged into one line. The
// returned Handle restores s to its exact original position and
// content when passed to RelinkSpan.
func UnlinkSpan(doc *line.Document, s span.Span) (*Handle, error) {
	if !doc.Valid() || !s.Valid() {
		return nil, tomlerr.ErrInvalidArg
	}

	first := s.LexStart.Line
	last := s.LexEnd.Line
	if last == nil {
		last = first
	}

	prefixBytes := cloneBytes(first.Text[:s.LexStart.Pos])
	var suffixBytes []byte
	if s.LexEnd.Valid() {
		suffixBytes = cloneBytes(last.Text[s.LexEnd.Pos:])
	}

	h := &Handle{doc: doc, reinsertPos: last.Next()}

	for l := first; l != nil; {
		next := l.Next()
		h.originals = append(h.originals, l)
		if l == last {
			break
		}
		l = next
	}

	switch {
	case len(prefixBytes) > 0 && len(suffixBytes) > 0 && first == last:
		merged := make([]byte, 0, len(prefixBytes)+len(suffixBytes))
		merged = append(merged, prefixBytes...)
		merged = append(merged, suffixBytes...)
		h.prefixLine = line.NewLine(merged)
	default:
		if len(prefixBytes) > 0 {
			h.prefixLine = line.NewLine(prefixBytes)
		}
		if len(suffixBytes) > 0 {
			h.suffixLine = line.NewLine(suffixBytes)
		}
	}

	for _, l := range h.originals {
		doc.UnlinkLine(l)
	}
	if h.prefixLine != nil {
		doc.RelinkLine(h.prefixLine, h.reinsertPos)
	}
	if h.suffixLine != nil {
		doc.RelinkLine(h.suffixLine, h.reinsertPos)
	}

	return h, nil
}

// RelinkSpan undoes UnlinkSpan: any synthesized prefix/suffix lines
// are discarded and the original lines are spliced back into the
// document at their original position, in original order.
func RelinkSpan(h *Handle) error {
	if h == nil || h.doc == nil {
		return tomlerr.ErrInvalidArg
	}

	if h.prefixLine != nil {
		h.doc.UnlinkLine(h.prefixLine)
	}
	if h.suffixLine != nil {
		h.doc.UnlinkLine(h.suffixLine)
	}
	for _, l := range h.originals {
		h.doc.RelinkLine(l, h.reinsertPos)
	}
	return nil
}

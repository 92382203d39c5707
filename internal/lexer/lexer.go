// Package lexer implements the TOML token consumers: functions that
// advance a [line.Cursor] across one lexical token without allocating.
// Each consumer moves the cursor to one past the end of the matched
// token (for delimited tokens, past the closing delimiter).
package lexer

import (
	"go.tomledit.dev/tomledit/internal/line"
	"go.tomledit.dev/tomledit/tomlerr"
)

// Kind identifies a TOML lexical token consumed directly off the
// cursor/line graph.
type Kind int

const (
	TableHeader Kind = iota
	ArrayTableHeader
	TableBody
	ArrayTableBody
	Comment
	Key
	Value
	StrBasic      // "..." single line, with escapes
	StrLiteral    // '...' single line, no escapes
	StrMlBasic    // """...""" multiline, with escapes
	StrMlLiteral  // '''...''' multiline, no escapes
	Array         // [...] inline array, handles nesting
	InlineTable   // {...} inline table, handles nesting
)

func (k Kind) String() string {
	switch k {
	case TableHeader:
		return "TableHeader"
	case ArrayTableHeader:
		return "ArrayTableHeader"
	case TableBody:
		return "TableBody"
	case ArrayTableBody:
		return "ArrayTableBody"
	case Comment:
		return "Comment"
	case Key:
		return "Key"
	case Value:
		return "Value"
	case StrBasic:
		return "StrBasic"
	case StrLiteral:
		return "StrLiteral"
	case StrMlBasic:
		return "StrMlBasic"
	case StrMlLiteral:
		return "StrMlLiteral"
	case Array:
		return "Array"
	case InlineTable:
		return "InlineTable"
	default:
		return "Unknown"
	}
}

func isWS(c byte) bool { return c == ' ' || c == '\t' }

// IsBareKeyChar reports whether c is a valid unquoted bare-key
// character: [A-Za-z0-9_-].
func IsBareKeyChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') ||
		(c >= '0' && c <= '9') || c == '_' || c == '-'
}

func isBareKeyChar(c byte) bool { return IsBareKeyChar(c) }

// Consume advances cur past one token of the given kind. On success
// cur sits one past the end of the matched token. On failure cur is
// left at an unspecified position and an error (wrapping
// [tomlerr.ErrSyntax], [tomlerr.ErrNotFound], or [tomlerr.ErrInvalidArg])
// is returned; callers must not rely on cur's position after an error.
func Consume(cur *line.Cursor, kind Kind) error {
	if cur == nil || cur.Line == nil {
		return tomlerr.ErrInvalidArg
	}

	switch kind {
	case Comment:
		cur.Pos = cur.Line.Len()
		return nil

	case TableHeader:
		return consumeTableHeader(cur)

	case ArrayTableHeader:
		return consumeArrayTableHeader(cur)

	case TableBody, ArrayTableBody:
		return consumeBody(cur)

	case Key:
		return consumeKey(cur)

	case Value:
		return consumeValue(cur)

	case StrBasic:
		return consumeStrBasic(cur)

	case StrLiteral:
		return consumeStrLiteral(cur)

	case StrMlBasic:
		return consumeStrMlBasic(cur)

	case StrMlLiteral:
		return consumeStrMlLiteral(cur)

	case Array:
		return consumeArray(cur)

	case InlineTable:
		return consumeInlineTable(cur)

	default:
		return tomlerr.New(tomlerr.KindInvalidArg, "unknown token kind")
	}
}

func consumeTableHeader(cur *line.Cursor) error {
	l := cur.Line
	for cur.Pos < l.Len() {
		c := l.Text[cur.Pos]
		cur.Pos++
		if c == ']' {
			return nil
		}
	}
	return tomlerr.ErrNotFound
}

func consumeArrayTableHeader(cur *line.Cursor) error {
	l := cur.Line
	for cur.Pos < l.Len() {
		c := l.Text[cur.Pos]
		if c == ']' && cur.Pos+1 < l.Len() && l.Text[cur.Pos+1] == ']' {
			cur.Pos += 2
			return nil
		}
		cur.Pos++
	}
	return tomlerr.ErrNotFound
}

// consumeBody backs both TableBody and ArrayTableBody: it consumes
// lines until the next line whose first byte is '[', or EOF.
func consumeBody(cur *line.Cursor) error {
	for cur.Line != nil {
		if cur.Pos == 0 && cur.Line.Len() > 0 && cur.Line.Text[0] == '[' {
			return nil
		}
		if cur.Line.Next() == nil {
			cur.Pos = cur.Line.Len()
			return nil
		}
		cur.Line = cur.Line.Next()
		cur.Pos = 0
	}
	return tomlerr.ErrNotFound
}

func consumeKey(cur *line.Cursor) error {
	start := *cur
	var quote byte

	for cur.Line != nil && cur.Pos < cur.Line.Len() {
		c := cur.Line.Text[cur.Pos]

		if quote != 0 {
			if c == '\\' && quote == '"' {
				cur.Pos += 2
				continue
			}
			if c == quote {
				quote = 0
			}
			cur.Pos++
			continue
		}

		if c == '"' || c == '\'' {
			quote = c
			cur.Pos++
			continue
		}
		if c == '=' {
			if cur.Equal(start) {
				return tomlerr.ErrNotFound
			}
			return nil
		}
		if !isBareKeyChar(c) && !isWS(c) {
			return tomlerr.New(tomlerr.KindSyntax, "illegal character before '=' in key")
		}
		cur.Pos++
	}
	return tomlerr.ErrNotFound
}

func consumeValue(cur *line.Cursor) error {
	if done := cur.SkipWS(); done {
		return tomlerr.New(tomlerr.KindSyntax, "no value after '='")
	}
	if cur.Line == nil || cur.Pos >= cur.Line.Len() {
		return tomlerr.New(tomlerr.KindSyntax, "no content at value position")
	}

	l := cur.Line
	c := l.Text[cur.Pos]
	c1 := byteAt(l, cur.Pos+1)
	c2 := byteAt(l, cur.Pos+2)

	switch {
	case c == '"' && c1 == '"' && c2 == '"':
		cur.Pos += 3
		if err := Consume(cur, StrMlBasic); err != nil {
			return err
		}
		cur.Pos += 3
		return nil

	case c == '\'' && c1 == '\'' && c2 == '\'':
		cur.Pos += 3
		if err := Consume(cur, StrMlLiteral); err != nil {
			return err
		}
		cur.Pos += 3
		return nil

	case c == '"':
		cur.Pos++
		if err := Consume(cur, StrBasic); err != nil {
			return err
		}
		cur.Pos++
		return nil

	case c == '\'':
		cur.Pos++
		if err := Consume(cur, StrLiteral); err != nil {
			return err
		}
		cur.Pos++
		return nil

	case c == '[':
		return Consume(cur, Array)

	case c == '{':
		return Consume(cur, InlineTable)

	default:
		start := *cur
		for cur.Pos < cur.Line.Len() {
			c := cur.Line.Text[cur.Pos]
			if isWS(c) || c == ',' || c == ']' || c == '}' || c == '#' {
				if cur.Equal(start) {
					return tomlerr.ErrNotFound
				}
				break
			}
			cur.Pos++
		}
		return nil
	}
}

func byteAt(l *line.Line, pos int) byte {
	if pos < l.Len() {
		return l.Text[pos]
	}
	return 0
}

func consumeStrBasic(cur *line.Cursor) error {
	escaped := false
	for cur.Pos < cur.Line.Len() {
		ch := cur.Line.Text[cur.Pos]
		if escaped {
			escaped = false
			cur.Pos++
			continue
		}
		if ch == '\\' {
			escaped = true
			cur.Pos++
			continue
		}
		if ch == '"' {
			return nil
		}
		cur.Pos++
	}
	return tomlerr.ErrSyntax
}

func consumeStrLiteral(cur *line.Cursor) error {
	for cur.Pos < cur.Line.Len() {
		if cur.Line.Text[cur.Pos] == '\'' {
			return nil
		}
		cur.Pos++
	}
	return tomlerr.ErrSyntax
}

func consumeStrMlBasic(cur *line.Cursor) error {
	escaped := false
	for {
		for cur.Pos < cur.Line.Len() {
			ch := cur.Line.Text[cur.Pos]
			if escaped {
				escaped = false
				cur.Pos++
				continue
			}
			if ch == '\\' {
				escaped = true
				cur.Pos++
				continue
			}
			if ch == '"' && byteAt(cur.Line, cur.Pos+1) == '"' && byteAt(cur.Line, cur.Pos+2) == '"' {
				return nil
			}
			cur.Pos++
		}
		cur.Line = cur.Line.Next()
		if cur.Line == nil {
			return tomlerr.ErrSyntax
		}
		cur.Pos = 0
	}
}

func consumeStrMlLiteral(cur *line.Cursor) error {
	for {
		for cur.Pos < cur.Line.Len() {
			if cur.Line.Text[cur.Pos] == '\'' && byteAt(cur.Line, cur.Pos+1) == '\'' && byteAt(cur.Line, cur.Pos+2) == '\'' {
				return nil
			}
			cur.Pos++
		}
		cur.Line = cur.Line.Next()
		if cur.Line == nil {
			return tomlerr.ErrSyntax
		}
		cur.Pos = 0
	}
}

// consumeDelimited drives the shared Array/InlineTable depth-tracking
// scan: it recurses into quoted content so that brackets/braces inside
// string values never throw off the depth count.
func consumeDelimited(cur *line.Cursor, open, closeB byte, crossLines bool) error {
	if cur.Line.Text[cur.Pos] != open {
		return tomlerr.ErrSyntax
	}
	depth := 1
	cur.Pos++

	for {
		for cur.Line != nil && cur.Pos < cur.Line.Len() {
			ch := cur.Line.Text[cur.Pos]
			ch1 := byteAt(cur.Line, cur.Pos+1)
			ch2 := byteAt(cur.Line, cur.Pos+2)

			switch {
			case ch == '"' && ch1 == '"' && ch2 == '"':
				cur.Pos += 3
				if err := Consume(cur, StrMlBasic); err != nil {
					return err
				}
				cur.Pos += 3
				continue
			case ch == '\'' && ch1 == '\'' && ch2 == '\'':
				cur.Pos += 3
				if err := Consume(cur, StrMlLiteral); err != nil {
					return err
				}
				cur.Pos += 3
				continue
			case ch == '"':
				cur.Pos++
				if err := Consume(cur, StrBasic); err != nil {
					return err
				}
				cur.Pos++
				continue
			case ch == '\'':
				cur.Pos++
				if err := Consume(cur, StrLiteral); err != nil {
					return err
				}
				cur.Pos++
				continue
			}

			if ch == open {
				depth++
			}
			if ch == closeB {
				depth--
				cur.Pos++
				if depth == 0 {
					return nil
				}
				continue
			}
			cur.Pos++
		}

		if !crossLines {
			return tomlerr.ErrSyntax
		}
		cur.Line = cur.Line.Next()
		if cur.Line == nil {
			return tomlerr.ErrSyntax
		}
		cur.Pos = 0
	}
}

func consumeArray(cur *line.Cursor) error {
	return consumeDelimited(cur, '[', ']', true)
}

// consumeInlineTable requires the table to close on the same line it
// opened; TOML inline tables are not permitted to span lines.
func consumeInlineTable(cur *line.Cursor) error {
	return consumeDelimited(cur, '{', '}', false)
}

package span

import (
	"go.tomledit.dev/tomledit/internal/lexer"
	"go.tomledit.dev/tomledit/internal/line"
	"go.tomledit.dev/tomledit/tomlerr"
)

// parseKey takes a raw SliceKey span (the bytes up to but not
// including '=', as produced by lexer.Consume with lexer.Key) and
// narrows its semantic bounds to the key's content: quotes stripped
// for a quoted key, surrounding whitespace stripped for a bare key.
// raw.LexStart/LexEnd are preserved; SemStart/SemEnd are set to the
// content-only bounds.
func parseKey(raw Span) (Span, []byte, error) {
	cr := raw.LexStart
	if cr.Line == nil {
		return Span{}, nil, tomlerr.ErrInvalidArg
	}

	b, ok := cr.Byte()
	if !ok {
		return Span{}, nil, tomlerr.New(tomlerr.KindSyntax, "empty key")
	}

	out := raw
	out.Kind = SliceKey

	if b == '"' || b == '\'' {
		quote := b
		start := cr
		start.Pos++
		end := start
		for {
			c, ok := end.Byte()
			if !ok {
				return Span{}, nil, tomlerr.ErrSyntax
			}
			if quote == '"' && c == '\\' {
				end.Pos += 2
				continue
			}
			if c == quote {
				break
			}
			end.Pos++
		}
		out.SemStart = start
		out.SemEnd = end
		text := start.Line.Text[start.Pos:end.Pos]
		return out, text, nil
	}

	// Bare key: trim surrounding whitespace within the raw extent.
	start := cr
	end := raw.LexEnd
	for {
		c, ok := start.Byte()
		if !ok || (c != ' ' && c != '\t') {
			break
		}
		start.Pos++
	}
	for end.Pos > start.Pos {
		c := end.Line.Text[end.Pos-1]
		if c != ' ' && c != '\t' {
			break
		}
		end.Pos--
	}
	if end.Pos <= start.Pos {
		return Span{}, nil, tomlerr.New(tomlerr.KindSyntax, "empty key")
	}
	out.SemStart = start
	out.SemEnd = end
	return out, start.Line.Text[start.Pos:end.Pos], nil
}

// KeyvalSlice splits a LeafKeyval span into its key and value
// sub-spans. It re-lexes the key and value off the span's lexical
// start rather than trusting any cached bounds, mirroring the
// original's keyval_slice/key_parse/value_parse pipeline.
func KeyvalSlice(kv Span) (key, val Span, err error) {
	if kv.Kind != LeafKeyval || !kv.Valid() {
		return Span{}, Span{}, tomlerr.ErrInvalidArg
	}

	cr := kv.LexStart
	rawKey := Span{Kind: SliceKey, LexStart: cr}
	if err := lexer.Consume(&cr, lexer.Key); err != nil {
		return Span{}, Span{}, err
	}
	rawKey.LexEnd = cr

	key, _, err = parseKey(rawKey)
	if err != nil {
		return Span{}, Span{}, err
	}

	cr.Pos++ // skip '='
	lexStart := cr
	if err := lexer.Consume(&cr, lexer.Value); err != nil {
		return Span{}, Span{}, err
	}

	val, err = parseValue(lexStart, cr)
	if err != nil {
		return Span{}, Span{}, err
	}

	return key, val, nil
}

// parseValue narrows a raw value span (as produced by lexer.Consume
// with lexer.Value, spanning from just after '=' to one past the
// matched token) to its kind and semantic bounds, mirroring the
// original's _toml_value_parse: whitespace before the value is
// skipped, so the returned span's lexical start is the value's first
// byte, and for basic/literal strings the
// delimiting quotes are excluded from the semantic extent. Multi-line
// strings get no semantic bounds (sem falls back to lex). Array and
// inline-table values are tagged NodeArray/NodeInlineTable so they can
// be iterated via FindNext rather than treated as an opaque scalar.
func parseValue(lexStart, lexEnd line.Cursor) (Span, error) {
	start := lexStart
	start.SkipWS()

	out := Span{Kind: SliceValue, LexStart: start, LexEnd: lexEnd}

	b, ok := start.Byte()
	if !ok {
		return Span{}, tomlerr.New(tomlerr.KindSyntax, "no value after '='")
	}

	switch b {
	case '[':
		out.Kind = NodeArray
		return out, nil

	case '{':
		out.Kind = NodeInlineTable
		return out, nil

	case '"', '\'':
		// Multi-line strings open with a tripled delimiter; leave Sem
		// unset for those, matching the original's refusal to expose a
		// semantic range spanning multiple lines for a string value.
		c1 := byteAt(start.Line, start.Pos+1)
		c2 := byteAt(start.Line, start.Pos+2)
		if c1 == b && c2 == b {
			return out, nil
		}

		semStart := start
		semStart.Pos++
		semEnd := lexEnd
		semEnd.Pos--
		out.SemStart = semStart
		out.SemEnd = semEnd
		return out, nil

	default:
		out.SemStart = start
		out.SemEnd = lexEnd
		return out, nil
	}
}

package tomledit

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"go.tomledit.dev/tomledit/internal/ansi"
	"go.tomledit.dev/tomledit/internal/colors"
	"go.tomledit.dev/tomledit/internal/styletree"
	"go.tomledit.dev/tomledit/style"
)

// Printer renders TOML source lines with syntax highlighting, and
// optionally an error caret, using a [style.Styles] palette (see
// [go.tomledit.dev/tomledit/style/theme] for ready-made palettes).
//
// It is a much smaller descendant of the line-span highlighter a
// richer printer would need: rather than highlighting arbitrary
// overlapping ranges across a whole buffer, it classifies one line at
// a time into the handful of categories a TOML line can contain, which
// is all [Document.SetValue]'s syntax errors and [cmd/tomled]'s `get`/
// `list` output need.
type Printer struct {
	styles style.Styles
}

// NewPrinter creates a [Printer] using styles.
func NewPrinter(styles style.Styles) *Printer {
	return &Printer{styles: styles}
}

// token is a classified run of bytes within a source line.
type token struct {
	start, end int
	cat        style.Style
}

// classifyLine splits a single TOML source line into styled token
// runs: leading key (or table/array-table header), '=' or brackets,
// and a value classified by its leading byte, with any trailing '#'
// comment always recognized last.
func classifyLine(text []byte) []token {
	var toks []token

	n := len(text)
	i := 0

	push := func(end int, cat style.Style) {
		if end > i {
			toks = append(toks, token{start: i, end: end, cat: cat})
			i = end
		}
	}

	// Leading whitespace.
	for i < n && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	if i > 0 {
		toks = append(toks, token{start: 0, end: i, cat: style.Text})
	}

	switch {
	case i >= n:
		return toks

	case text[i] == '#':
		push(n, style.Comment)
		return toks

	case text[i] == '[':
		end := n
		if idx := strings.IndexByte(string(text[i:]), '#'); idx >= 0 {
			end = i + idx
		}
		push(end, style.NameTag)

	default:
		// key = value, possibly trailed by a comment.
		eq := indexUnquoted(text[i:], '=')
		if eq < 0 {
			push(n, style.Text)
			return toks
		}
		keyEnd := i + eq
		push(keyEnd, style.NameTag)
		push(keyEnd+1, style.PunctuationMappingValue)

		// Skip whitespace before the value.
		for i < n && (text[i] == ' ' || text[i] == '\t') {
			i++
		}
		if i > keyEnd+1 {
			toks = append(toks, token{start: keyEnd + 1, end: i, cat: style.Text})
		}

		valEnd, cmtStart := classifyValueExtent(text, i)
		if valEnd > i {
			push(valEnd, valueCategory(text[i]))
		}
		if cmtStart >= 0 {
			i = cmtStart
			push(n, style.Comment)
		}
	}

	return toks
}

// indexUnquoted returns the index of the first unquoted occurrence of
// b in text, or -1. It treats '"'/'\'' runs as opaque so a '=' inside a
// quoted key is not mistaken for the key/value separator.
func indexUnquoted(text []byte, b byte) int {
	var quote byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case quote != 0:
			if quote == '"' && c == '\\' {
				i++
				continue
			}
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == b:
			return i
		}
	}
	return -1
}

// classifyValueExtent finds where the value starting at start ends,
// and where a trailing comment (if any) begins. For bracketed/braced
// values it scans to the matching depth-0 close; a '#' found outside
// any quote or bracket nesting starts the trailing comment.
func classifyValueExtent(text []byte, start int) (valEnd, cmtStart int) {
	depth := 0
	var quote byte
	i := start
	for i < len(text) {
		c := text[i]
		switch {
		case quote != 0:
			if quote == '"' && c == '\\' {
				i += 2
				continue
			}
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '[' || c == '{':
			depth++
		case c == ']' || c == '}':
			depth--
		case c == '#' && depth == 0:
			return i, i
		}
		i++
	}
	return i, -1
}

// valueCategory classifies a value by its first byte.
func valueCategory(b byte) style.Style {
	switch {
	case b == '"':
		return style.LiteralStringDouble
	case b == '\'':
		return style.LiteralStringSingle
	case b == '[':
		return style.PunctuationSequenceStart
	case b == '{':
		return style.PunctuationMappingStart
	case b == 't' || b == 'f':
		return style.LiteralBoolean
	case b == '+' || b == '-' || (b >= '0' && b <= '9'):
		return style.LiteralNumber
	default:
		return style.Text
	}
}

// Line renders one TOML source line with syntax highlighting applied.
func (p *Printer) Line(text []byte) string {
	return p.render(text, -1, -1)
}

// LineWithCaret renders one TOML source line with syntax highlighting,
// blending in an error highlight over [col, col+width) and appending a
// caret line pointing at col — the format [Document.SetValue]'s
// [ErrSyntax] results are displayed in.
func (p *Printer) LineWithCaret(text []byte, col, width int) string {
	if width < 1 {
		width = 1
	}
	rendered := p.render(text, col, col+width)
	caret := strings.Repeat(" ", col) + strings.Repeat("^", width)
	return rendered + "\n" + p.styles.Style(style.GenericError).Render(caret)
}

func (p *Printer) render(text []byte, hiStart, hiEnd int) string {
	tree := styletree.New()
	for _, t := range classifyLine(text) {
		s := p.styles.Style(t.cat)
		tree.Insert(t.start, t.end, s)
	}

	errStyle := p.styles.Style(style.GenericError)
	if hiStart >= 0 && hiEnd > hiStart {
		tree.Insert(hiStart, hiEnd, errStyle)
	}

	var sb strings.Builder
	n := len(text)
	pos := 0
	for pos < n {
		styles := tree.Query(pos)
		end := pos + 1
		// Extend the run while the active style set at end matches.
		for end < n && sameStyles(tree.Query(end), styles) {
			end++
		}
		segment := ansi.Escape(string(text[pos:end]))
		sb.WriteString(composeStyle(styles).Render(segment))
		pos = end
	}

	return sb.String()
}

func sameStyles(a, b []*lipgloss.Style) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// composeStyle folds a list of overlapping styles (earliest inserted
// first) into one, blending each overlay onto the accumulated base —
// the same strategy the teacher uses to combine syntax highlighting
// with a search/error overlay.
func composeStyle(styles []*lipgloss.Style) lipgloss.Style {
	if len(styles) == 0 {
		return lipgloss.NewStyle()
	}
	base := styles[0]
	for _, overlay := range styles[1:] {
		base = colors.BlendStyles(base, overlay)
	}
	return *base
}

// FormatSyntaxError renders a one-line "source context with a caret"
// for a [ErrSyntax] failure at the given 0-indexed line number and
// column, in the style the teacher's error.go hunk renderer used for
// YAML — reduced here to the single line a lexer failure pinpoints,
// since there is no AST to walk for wider context.
func (p *Printer) FormatSyntaxError(lineNum int, text []byte, col, width int) string {
	header := p.styles.Style(style.Comment).Render(fmt.Sprintf("line %d:", lineNum+1))
	return header + "\n" + p.LineWithCaret(text, col, width)
}

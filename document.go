package tomledit

import (
	"context"
	"log/slog"
	"os"

	"go.tomledit.dev/tomledit/internal/editor"
	"go.tomledit.dev/tomledit/internal/line"
	"go.tomledit.dev/tomledit/internal/span"
)

// Document is an in-memory TOML document that preserves every byte of
// its source not touched by an edit: comments, blank lines, key
// ordering, and original value formatting all survive a
// load/navigate/edit/save round trip untouched.
//
// A Document is backed by a line-addressed buffer ([internal/line])
// rather than a parsed tree; navigation walks the text directly via
// [Span] and [Cursor] rather than an AST, exactly as the C library this
// package reimplements does. The zero Document is not usable; create
// one with [Open] or [OpenBytes].
type Document struct {
	doc *line.Document
	cfg config
}

// OpenBytes loads data as a TOML document, splitting it into lines on
// '\n' (a trailing '\r' is stripped from each, so CRLF input is
// accepted). It never fails: not even syntactically invalid TOML is
// rejected at load time, since Document does not parse — invalid
// syntax only surfaces when a navigation or edit operation tries to
// lex through it.
func OpenBytes(data []byte, opts ...Option) *Document {
	d := &Document{
		doc: line.FromBytes(data),
		cfg: newConfig(opts),
	}
	d.log(slog.LevelDebug, "document opened", "bytes", len(data))
	return d
}

// Open reads path and loads it with [OpenBytes].
func Open(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapIO("open", err)
	}
	return OpenBytes(data, opts...), nil
}

// Save serialises the document's active line list: each line's bytes
// followed by '\n'. A newline is written after every line, including
// the last, regardless of whether the loaded input ended with one —
// a documented divergence from strict byte-for-byte round-trip.
func (d *Document) Save() []byte {
	return d.doc.ToBytes()
}

// SaveFile serialises the document with [Save] and writes it to path.
func (d *Document) SaveFile(path string) error {
	if err := os.WriteFile(path, d.Save(), 0o644); err != nil { //nolint:gosec // config-style output file
		return wrapIO("save", err)
	}
	return nil
}

func (d *Document) log(level slog.Level, msg string, args ...any) {
	d.cfg.logger.Log(context.Background(), level, msg, args...)
}

// DocSpan returns the whole-document [Span]: kind [None], bounds
// covering the entire active line list. Every other navigation method
// on Document is reached by walking children of some span, starting
// from this one.
func (d *Document) DocSpan() Span {
	return span.DocSpan(d.doc)
}

// FindNext returns the next structural child of in. Pass the same
// cursor across calls to walk every child of in in document order;
// pass a new, zero [Cursor] to start from in's beginning.
//
// FindNext on a [LeafComment], [LeafKeyval], [SliceKey], or
// [SliceValue] span returns an error wrapping [ErrInvalidArg]. On a
// [NodeArray] or [NodeInlineTable] span it walks that container's
// elements instead of scanning for top-level table/keyval/comment
// children.
func (d *Document) FindNext(in Span, cur *Cursor) (Span, error) {
	out, err := span.FindNext(in, cur)
	return out, wrapSpan(err)
}

// FindByName returns the first [NodeTable], [NodeArrayTable], or
// [LeafKeyval] child of in whose name matches name exactly: byte for
// byte, no unescaping, no Unicode normalization. Returns an error
// wrapping [ErrNotFound] if no child matches.
func (d *Document) FindByName(in Span, name string) (Span, error) {
	out, err := span.FindByName(in, name)
	return out, wrapSpan(err)
}

// FindNextByName is the cursor-threading variant of FindByName: it
// resumes from *cur and returns successive matches, letting callers
// iterate same-named array-of-tables entries.
func (d *Document) FindNextByName(in Span, name string, cur *Cursor) (Span, error) {
	out, err := span.FindNextByName(in, name, cur)
	return out, wrapSpan(err)
}

// KeyvalSlice splits a [LeafKeyval] span into its [SliceKey] child and
// its value: a [SliceValue], or a [NodeArray] or [NodeInlineTable] for
// an array or inline-table value.
func (d *Document) KeyvalSlice(kv Span) (key, val Span, err error) {
	key, val, err = span.KeyvalSlice(kv)
	return key, val, wrapSpan(err)
}

// IterLine yields s's content one line at a time. cur, zero-valued on
// the first call, advances with each call; once the last line has been
// returned, the next call returns an error wrapping [ErrDone].
// Multi-line spans (triple-quoted strings, multi-line values after an
// edit) must be read this way; [Document.GetText] only handles
// single-line spans.
func (d *Document) IterLine(s Span, cur *Cursor) ([]byte, error) {
	out, err := span.IterLine(s, cur)
	return out, wrapSpan(err)
}

// GetText returns s's full content in one call. It returns an error
// wrapping [ErrTypeMismatch] if s spans more than one line; use
// [Document.IterLine] for those.
func (d *Document) GetText(s Span) ([]byte, error) {
	out, err := span.GetText(s)
	return out, wrapSpan(err)
}

// SetValue replaces val's content with a single line of text,
// re-lexing the replacement before committing it. On a syntax error in
// the replacement the document is left untouched and the returned
// error wraps [ErrSyntax].
func (d *Document) SetValue(val Span, text string) (Span, error) {
	out, err := editor.SetValue(d.doc, val, text)
	d.log(slog.LevelDebug, "set value", "err", err)
	return out, wrapSpan(err)
}

// SetValueMultiline replaces val's content with newLines, preserving
// the bytes before the value on its first line and after it on its
// last. As with [Document.SetValue], a failed re-lex leaves the
// document untouched.
func (d *Document) SetValueMultiline(val Span, newLines []string) (Span, error) {
	out, err := editor.SetValueMultiline(d.doc, val, newLines)
	d.log(slog.LevelDebug, "set value multiline", "lines", len(newLines), "err", err)
	return out, wrapSpan(err)
}

// Handle is an opaque token returned by [Document.UnlinkSpan] that
// restores the removed span when passed to [Document.RelinkSpan].
type Handle struct {
	h *editor.Handle
}

// UnlinkSpan removes s from the document. Any bytes sharing a line
// with s (e.g. a trailing comment after a removed keyval) are
// preserved. The returned [Handle] restores s to its exact original
// position and content when passed to [Document.RelinkSpan].
func (d *Document) UnlinkSpan(s Span) (*Handle, error) {
	h, err := editor.UnlinkSpan(d.doc, s)
	if err != nil {
		return nil, wrapSpan(err)
	}
	return &Handle{h: h}, nil
}

// RelinkSpan undoes [Document.UnlinkSpan], splicing the original lines
// back into their original position.
func (d *Document) RelinkSpan(h *Handle) error {
	if h == nil {
		return ErrInvalidArg
	}
	return wrapSpan(editor.RelinkSpan(h.h))
}

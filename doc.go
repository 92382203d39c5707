// Package tomledit is a format-preserving TOML parser and in-place
// editor. It loads a document as a line-addressed buffer rather than a
// parsed tree, and edits it by re-lexing and splicing text directly,
// so that every byte not touched by an edit — comments, blank lines,
// key ordering, the exact formatting of untouched values — survives a
// load/navigate/edit/save round trip unchanged.
//
// # Loading
//
// [Open] and [OpenBytes] load a document without parsing it into an
// AST; invalid TOML loads successfully and only surfaces as an error
// when a navigation or edit operation tries to lex through it:
//
//	doc, err := tomledit.Open("config.toml")
//	defer func() { _ = doc.SaveFile("config.toml") }()
//
// # Navigation
//
// Every navigation method starts from a [Span], and [Document.DocSpan]
// returns the whole-document span to start from. [Document.FindNext]
// walks a span's structural children in document order; pass the same
// [Cursor] across calls to continue iterating, or a fresh [Cursor] to
// start over. [Document.FindByName] and [Document.FindNextByName]
// locate a table, array-table, or keyval child by its exact literal
// name:
//
//	root := doc.DocSpan()
//	server, err := doc.FindByName(root, "server")
//	port, err := doc.FindByName(server, "port")
//	key, val, err := doc.KeyvalSlice(port)
//	text, err := doc.GetText(val)
//
// [Document.IterLine] reads a span's content one line at a time,
// required for any span spanning more than one line (e.g. a
// triple-quoted string); [Document.GetText] is the single-line fast
// path.
//
// # Editing
//
// [Document.SetValue] and [Document.SetValueMultiline] replace a
// value's content, re-lexing the replacement before committing it —
// on a syntax error in the replacement text, the document is left
// completely untouched and the error wraps [ErrSyntax]:
//
//	updated, err := doc.SetValue(val, "8443")
//
// [Document.UnlinkSpan] removes a span (preserving any bytes sharing
// its lines, such as a trailing comment) and returns a [Handle] that
// restores it exactly via [Document.RelinkSpan].
//
// # Errors
//
// Every fallible method returns an error wrapping one of the
// sentinels in this package ([ErrNotFound], [ErrSyntax],
// [ErrTypeMismatch], [ErrDone], and so on); check them with
// errors.Is. [Printer] renders a syntax error's source line with
// highlighting and a caret at the failing column, using a
// [go.tomledit.dev/tomledit/style.Styles] palette — see
// [go.tomledit.dev/tomledit/style/theme] for ready-made ones.
//
// # Logging
//
// Loading a document and editing a value are logged at Debug level
// once a logger is set with [WithLogLevel] or [WithLogger]; logging is
// off by default. Navigation methods do not log.
package tomledit

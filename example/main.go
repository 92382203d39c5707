// Package main is an example showcasing tomledit's span navigation and
// in-place editing, worked from the scenarios in the original library's
// example1.c and replace_array.c.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"charm.land/lipgloss/v2"

	"go.tomledit.dev/tomledit"
	"go.tomledit.dev/tomledit/style/theme"
)

func main() {
	exampleDir := findExampleDir()

	fmt.Println(header("tomledit Demo"))
	fmt.Println()

	demo1ParsedSpans(exampleDir)
	demo2DatabaseProperties(exampleDir)
	demo3ReplaceArrayValue(exampleDir)
	demo4SyntaxErrorFormatting(exampleDir)
}

func header(s string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7D56F4")).
		Render("=== " + s + " ===")
}

func subheader(s string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#56F4D3")).
		Render("--- " + s + " ---")
}

func findExampleDir() string {
	if _, err := os.Stat("sample1.toml"); err == nil {
		return "."
	}
	if _, err := os.Stat("example/sample1.toml"); err == nil {
		return "example"
	}
	panic("could not find example directory; run from project root or example/")
}

func mustOpen(dir, name string) *tomledit.Document {
	doc, err := tomledit.Open(filepath.Join(dir, name)) //nolint:gosec // G304: paths are hardcoded in example.
	if err != nil {
		panic(fmt.Sprintf("error reading %s: %v", name, err))
	}
	return doc
}

// prettyPrint mirrors example1.c's pretty_print: it prints the span's
// kind, then its content one line at a time via IterLine.
func prettyPrint(doc *tomledit.Document, s tomledit.Span) {
	fmt.Printf("Span Kind: %v\n", s.Kind)

	var cur tomledit.Cursor
	for {
		text, err := doc.IterLine(s, &cur)
		if err != nil {
			return
		}
		fmt.Println(string(text))
	}
}

// Demo 1: walk every top-level span in document order, mirroring
// example1.c's main loop over YATL_span_find_next.
func demo1ParsedSpans(dir string) {
	fmt.Println(subheader("Demo 1: Parsed Spans"))

	doc := mustOpen(dir, "sample1.toml")
	root := doc.DocSpan()

	fmt.Println("Parsed spans:")
	fmt.Println("-------------------------------------------")

	count := 0
	var cur tomledit.Cursor
	for {
		span, err := doc.FindNext(root, &cur)
		if err != nil {
			break
		}
		count++
		prettyPrint(doc, span)
	}

	fmt.Println("-------------------------------------------")
	fmt.Printf("Total spans: %d\n", count)
	fmt.Println()
}

// Demo 2: descend into [database] and print its "ports" array,
// mirroring example1.c's database_props.
func demo2DatabaseProperties(dir string) {
	fmt.Println(subheader("Demo 2: Database Properties"))

	doc := mustOpen(dir, "sample1.toml")
	root := doc.DocSpan()

	db, err := doc.FindByName(root, "database")
	if err != nil {
		fmt.Println("database table not found:", err)
		return
	}
	prettyPrint(doc, db)

	portsKV, err := doc.FindByName(db, "ports")
	if err != nil {
		fmt.Println("ports key not found:", err)
		return
	}
	prettyPrint(doc, portsKV)
	fmt.Println()
}

// Demo 3: replace database.ports' value, first with another
// single-line array, then with a multi-line one, mirroring
// replace_array.c.
func demo3ReplaceArrayValue(dir string) {
	fmt.Println(subheader("Demo 3: Replacing a Value"))

	doc := mustOpen(dir, "sample1.toml")
	root := doc.DocSpan()

	db, err := doc.FindByName(root, "database")
	if err != nil {
		fmt.Println("database table not found:", err)
		return
	}

	ports, err := doc.FindByName(db, "ports")
	if err != nil {
		fmt.Println("ports key not found:", err)
		return
	}

	_, val, err := doc.KeyvalSlice(ports)
	if err != nil {
		fmt.Println("failed to slice keyval:", err)
		return
	}

	text, err := doc.GetText(val)
	if err != nil {
		fmt.Println("failed to read value:", err)
		return
	}
	fmt.Printf("Ports: %s\n", text)

	val, err = doc.SetValue(val, "[ 10000, 20000 ]")
	if err != nil {
		fmt.Println("failed to set value:", err)
		return
	}
	fmt.Println("After single-line replacement:")
	prettyPrint(doc, root)

	_, err = doc.SetValueMultiline(val, []string{
		"[8000,",
		"9000,",
		"10000]",
	})
	if err != nil {
		fmt.Println("failed to set multiline value:", err)
		return
	}
	fmt.Println("After multi-line replacement:")
	prettyPrint(doc, root)
	fmt.Println()
}

// Demo 4: attempt to edit a value inside a syntactically broken file
// and render the resulting ErrSyntax with highlighted source context.
func demo4SyntaxErrorFormatting(dir string) {
	fmt.Println(subheader("Demo 4: Syntax Error Formatting"))

	doc := mustOpen(dir, "invalid.toml")
	root := doc.DocSpan()

	db, err := doc.FindByName(root, "database")
	if err != nil {
		fmt.Println("database table not found:", err)
		return
	}

	// FindByName translates any lookup failure into ErrNotFound, since
	// that is what the original's find_name does regardless of why
	// find_next stopped. FindNext surfaces the real reason: walking
	// straight into the unterminated array reports ErrSyntax.
	_, err = doc.FindByName(db, "ports")
	fmt.Println("FindByName(\"ports\") on a broken array:", err)

	// The table's first child, host, lexes cleanly; keep walking until
	// FindNext stops.
	var cur tomledit.Cursor
	_, err = doc.FindNext(db, &cur)
	for err == nil {
		_, err = doc.FindNext(db, &cur)
	}
	if !errors.Is(err, tomledit.ErrSyntax) {
		fmt.Println("expected a syntax error, got:", err)
		return
	}
	fmt.Println("FindNext on the same table:", err)

	styles, ok := theme.Styles("charm")
	if !ok {
		return
	}
	printer := tomledit.NewPrinter(styles)

	// The unterminated array starts on the "ports" line; point the
	// caret at the opening bracket.
	line := db.LexStart.Line.Next().Next()
	fmt.Println(printer.FormatSyntaxError(line.Number-1, []byte(line.String()), 8, len("[ 8000, 8001")))
	fmt.Println()
}

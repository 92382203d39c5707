// Command tomled is a CLI for reading and editing TOML files in place
// without disturbing comments, key ordering, or value formatting.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"go.tomledit.dev/tomledit"
	"go.tomledit.dev/tomledit/fangs"
	"go.tomledit.dev/tomledit/style/theme"
)

var themeName string

func main() {
	cmd := rootCmd()

	styles, ok := theme.Styles("charm")
	if !ok {
		styles, _ = theme.Styles("pygments")
	}

	err := fang.Execute(context.Background(), cmd,
		fang.WithErrorHandler(fangs.ErrorHandler),
		fang.WithColorSchemeFunc(fangs.ColorSchemeFunc(styles)),
	)
	if err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tomled",
		Short: "Read and edit TOML files without disturbing their formatting",
	}

	cmd.PersistentFlags().StringVar(&themeName, "theme", "charm", "syntax highlighting theme")

	cmd.AddCommand(getCmd(), setCmd(), listCmd())

	return cmd
}

// dottedLookup descends doc from root through each '.'-separated
// segment of path, using FindByName at each level. path segments are
// matched as literal names, exactly as Document.FindByName does —
// a segment containing a literal '.' (a quoted key) cannot be
// addressed this way.
func dottedLookup(doc *tomledit.Document, path string) (tomledit.Span, error) {
	span := doc.DocSpan()
	for _, seg := range strings.Split(path, ".") {
		var err error
		span, err = doc.FindByName(span, seg)
		if err != nil {
			return tomledit.Span{}, fmt.Errorf("%s: %w", seg, err)
		}
	}
	return span, nil
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value at a dotted key path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := tomledit.Open(args[0])
			if err != nil {
				return err
			}

			found, err := dottedLookup(doc, args[1])
			if err != nil {
				return err
			}

			target := found
			if found.Kind == tomledit.LeafKeyval {
				_, target, err = doc.KeyvalSlice(found)
				if err != nil {
					return err
				}
			}

			text, err := doc.GetText(target)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(text))
			return nil
		},
	}
}

func setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <path> <value>",
		Short: "Replace the value at a dotted key path and save the file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := tomledit.Open(args[0])
			if err != nil {
				return err
			}

			found, err := dottedLookup(doc, args[1])
			if err != nil {
				return err
			}
			if found.Kind != tomledit.LeafKeyval {
				return fmt.Errorf("%s: not a key-value pair", args[1])
			}

			_, val, err := doc.KeyvalSlice(found)
			if err != nil {
				return err
			}

			if _, err := doc.SetValue(val, args[2]); err != nil {
				return reportSyntaxError(cmd, doc, val, args[2], err)
			}

			return doc.SaveFile(args[0])
		},
	}
}

func reportSyntaxError(cmd *cobra.Command, _ *tomledit.Document, val tomledit.Span, replacement string, err error) error {
	styles, ok := theme.Styles(themeName)
	if !ok {
		return err
	}
	printer := tomledit.NewPrinter(styles)
	line := val.LexStart.Line
	fmt.Fprintln(cmd.ErrOrStderr(), printer.FormatSyntaxError(line.Number-1, []byte(replacement), 0, len(replacement)))
	return err
}

func listCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "list <file>",
		Short: "Print the top-level tables and keys of a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := tomledit.Open(args[0])
			if err != nil {
				return err
			}

			var printer *tomledit.Printer
			if !noColor {
				styles, ok := theme.Styles(themeName)
				if ok {
					printer = tomledit.NewPrinter(styles)
				}
			}

			root := doc.DocSpan()
			var cur tomledit.Cursor
			for {
				child, err := doc.FindNext(root, &cur)
				if err != nil {
					break
				}
				printLine(cmd, doc, printer, child)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable syntax highlighting")

	return cmd
}

func printLine(cmd *cobra.Command, doc *tomledit.Document, printer *tomledit.Printer, s tomledit.Span) {
	text, err := doc.GetText(s)
	if err != nil {
		// Multi-line span (a table's header plus its body): show just
		// the header line.
		var cur tomledit.Cursor
		text, err = doc.IterLine(s, &cur)
		if err != nil {
			return
		}
	}

	if printer != nil {
		fmt.Fprintln(cmd.OutOrStdout(), printer.Line(text))
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(text))
}

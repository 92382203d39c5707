package theme

import (
	"charm.land/lipgloss/v2"

	"go.tomledit.dev/tomledit/style"
)

// Pygments returns [style.Styles] for TOML source using pygments colors.
func Pygments() style.Styles {
	base := lipgloss.NewStyle()

	return style.NewStyles(base,
		style.Set(style.Comment, base.Foreground(lipgloss.Color("#408080")).Italic(true)),
		style.Set(style.NameTag, base.Foreground(lipgloss.Color("#008000")).Bold(true)),
		style.Set(style.Punctuation, base.Foreground(lipgloss.Color("#666666"))),
		style.Set(style.LiteralString, base.Foreground(lipgloss.Color("#ba2121"))),
		style.Set(style.LiteralNumber, base.Foreground(lipgloss.Color("#666666"))),
		style.Set(style.LiteralBoolean, base.Foreground(lipgloss.Color("#008000")).Bold(true)),
		style.Set(style.GenericError, base.Foreground(lipgloss.Color("#ff0000"))),
	)
}

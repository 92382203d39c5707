package theme

import (
	"charm.land/lipgloss/v2"

	"go.tomledit.dev/tomledit/style"
)

// GithubDark returns [style.Styles] for TOML source using github-dark colors.
func GithubDark() style.Styles {
	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#e6edf3")).
		Background(lipgloss.Color("#0d1117"))

	return style.NewStyles(base,
		style.Set(style.Comment, base.Foreground(lipgloss.Color("#8b949e")).Italic(true)),
		style.Set(style.NameTag, base.Foreground(lipgloss.Color("#7ee787"))),
		style.Set(style.Punctuation, base.Foreground(lipgloss.Color("#ff7b72")).Bold(true)),
		style.Set(style.LiteralString, base.Foreground(lipgloss.Color("#a5d6ff"))),
		style.Set(style.LiteralNumber, base.Foreground(lipgloss.Color("#79c0ff"))),
		style.Set(style.LiteralBoolean, base.Foreground(lipgloss.Color("#79c0ff"))),
		style.Set(style.GenericError, base.Foreground(lipgloss.Color("#ffa198"))),
	)
}

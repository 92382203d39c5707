package theme

import (
	"charm.land/lipgloss/v2"

	"go.tomledit.dev/tomledit/style"
)

// Monokai returns [style.Styles] for TOML source using monokai colors.
func Monokai() style.Styles {
	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f8f8f2")).
		Background(lipgloss.Color("#272822"))

	return style.NewStyles(base,
		style.Set(style.Comment, base.Foreground(lipgloss.Color("#75715e"))),
		style.Set(style.NameTag, base.Foreground(lipgloss.Color("#f92672"))),
		style.Set(style.Punctuation, base.Foreground(lipgloss.Color("#f8f8f2"))),
		style.Set(style.LiteralString, base.Foreground(lipgloss.Color("#e6db74"))),
		style.Set(style.LiteralNumber, base.Foreground(lipgloss.Color("#ae81ff"))),
		style.Set(style.LiteralBoolean, base.Foreground(lipgloss.Color("#ae81ff"))),
		style.Set(style.GenericError, base.Foreground(lipgloss.Color("#960050")).Background(lipgloss.Color("#1e0010"))),
	)
}

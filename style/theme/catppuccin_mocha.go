package theme

import (
	"charm.land/lipgloss/v2"

	"go.tomledit.dev/tomledit/style"
)

// CatppuccinMocha returns [style.Styles] for TOML source using catppuccin-mocha colors.
func CatppuccinMocha() style.Styles {
	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#cdd6f4")).
		Background(lipgloss.Color("#1e1e2e"))

	return style.NewStyles(base,
		style.Set(style.Comment, base.Foreground(lipgloss.Color("#6c7086")).Italic(true)),
		style.Set(style.NameTag, base.Foreground(lipgloss.Color("#cba6f7"))),
		style.Set(style.Punctuation, base.Foreground(lipgloss.Color("#89dceb")).Bold(true)),
		style.Set(style.LiteralString, base.Foreground(lipgloss.Color("#a6e3a1"))),
		style.Set(style.LiteralNumber, base.Foreground(lipgloss.Color("#fab387"))),
		style.Set(style.LiteralBoolean, base.Foreground(lipgloss.Color("#fab387"))),
		style.Set(style.GenericError, base.Foreground(lipgloss.Color("#f38ba8"))),
	)
}

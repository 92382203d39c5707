package theme

import (
	"charm.land/lipgloss/v2"

	"go.tomledit.dev/tomledit/style"
)

// Dracula returns [style.Styles] for TOML source using dracula colors.
func Dracula() style.Styles {
	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f8f8f2")).
		Background(lipgloss.Color("#282a36"))

	return style.NewStyles(base,
		style.Set(style.Comment, base.Foreground(lipgloss.Color("#6272a4"))),
		style.Set(style.NameTag, base.Foreground(lipgloss.Color("#ff79c6"))),
		style.Set(style.Punctuation, base.Foreground(lipgloss.Color("#f8f8f2"))),
		style.Set(style.LiteralString, base.Foreground(lipgloss.Color("#f1fa8c"))),
		style.Set(style.LiteralNumber, base.Foreground(lipgloss.Color("#bd93f9"))),
		style.Set(style.LiteralBoolean, base.Foreground(lipgloss.Color("#ff79c6"))),
		style.Set(style.GenericError, base.Foreground(lipgloss.Color("#ff5555"))),
	)
}

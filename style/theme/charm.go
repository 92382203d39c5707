package theme

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"

	"go.tomledit.dev/tomledit/style"
)

// Charm returns [style.Styles] for TOML source using CharmTone colors.
func Charm() style.Styles {
	base := lipgloss.NewStyle().
		Foreground(charmtone.Smoke).
		Background(charmtone.Pepper)

	return style.NewStyles(base,
		style.Set(style.Comment, base.Foreground(charmtone.Oyster)),
		style.Set(style.NameTag, base.Foreground(charmtone.Mauve)),
		style.Set(style.Punctuation, base.Foreground(charmtone.Zest)),
		style.Set(style.LiteralString, base.Foreground(charmtone.Cumin)),
		style.Set(style.LiteralNumber, base.Foreground(charmtone.Julep)),
		style.Set(style.LiteralBoolean, base.Foreground(charmtone.Malibu)),
		style.Set(style.GenericError, base.Foreground(charmtone.Butter).Background(charmtone.Sriracha)),
	)
}

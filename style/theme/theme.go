package theme

import (
	"sync"

	"go.tomledit.dev/tomledit/style"
)

// Theme represents a color theme with its name, mode, and style generator.
type Theme struct {
	Styles func() style.Styles
	Name   string
	Mode   style.Mode
}

var builtins = []Theme{
	{Charm, "charm", style.Dark},
	{Pygments, "pygments", style.Light},
	{Monokai, "monokai", style.Dark},
	{Dracula, "dracula", style.Dark},
	{Nord, "nord", style.Dark},
	{Gruvbox, "gruvbox", style.Dark},
	{GithubDark, "github-dark", style.Dark},
	{CatppuccinMocha, "catppuccin-mocha", style.Dark},
	{SolarizedLight, "solarized-light", style.Light},
}

var (
	mu     sync.RWMutex
	custom = map[string]Theme{}
)

// Register adds or replaces a custom theme under name, available
// afterward through [Styles] and [List] alongside the built-in themes.
func Register(name string, fn func() style.Styles, mode style.Mode) {
	mu.Lock()
	defer mu.Unlock()

	custom[name] = Theme{Styles: fn, Name: name, Mode: mode}
}

// List returns theme names matching the given [style.Mode].
func List(m style.Mode) []string {
	mu.RLock()
	defer mu.RUnlock()

	var names []string

	for _, t := range builtins {
		if t.Mode == m {
			names = append(names, t.Name)
		}
	}

	for _, t := range custom {
		if t.Mode == m {
			names = append(names, t.Name)
		}
	}

	return names
}

// Styles returns the [style.Styles] for the given theme name.
func Styles(name string) (style.Styles, bool) {
	mu.RLock()
	defer mu.RUnlock()

	for _, t := range builtins {
		if t.Name == name {
			return t.Styles(), true
		}
	}

	if t, ok := custom[name]; ok {
		return t.Styles(), true
	}

	return style.Styles{}, false
}

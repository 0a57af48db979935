package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/go-go-golems/catsdogs/pkg/tui/styles"
)

type Keybind struct {
	Key  string
	Desc string
}

// KeybindsFrom collects the help text of enabled bindings.
func KeybindsFrom(bindings ...key.Binding) []Keybind {
	out := make([]Keybind, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		out = append(out, Keybind{Key: h.Key, Desc: h.Desc})
	}
	return out
}

func RenderKeybinds(keybinds []Keybind, theme styles.Theme) string {
	parts := make([]string, 0, len(keybinds))
	for _, k := range keybinds {
		parts = append(parts, theme.KeybindKey.Render("["+k.Key+"]")+" "+theme.KeybindDesc.Render(k.Desc))
	}
	return strings.Join(parts, "  ")
}

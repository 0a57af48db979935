package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-go-golems/catsdogs/pkg/tui/styles"
)

const defaultFooterWidth = 80

// Footer is the bottom bar: a rule followed by the key hints.
type Footer struct {
	Keybinds []Keybind
	Width    int
	theme    styles.Theme
}

func NewFooter(keybinds []Keybind) Footer {
	return Footer{Keybinds: keybinds, theme: styles.DefaultTheme()}
}

func (f Footer) WithWidth(w int) Footer {
	f.Width = w
	return f
}

func (f Footer) Render() string {
	width := f.Width
	if width <= 0 {
		width = defaultFooterWidth
	}

	rule := lipgloss.NewStyle().Foreground(f.theme.Muted).Render(strings.Repeat("━", width))
	hints := lipgloss.PlaceHorizontal(width, lipgloss.Center, RenderKeybinds(f.Keybinds, f.theme))
	return rule + "\n" + hints
}

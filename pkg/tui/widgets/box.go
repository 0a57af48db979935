package widgets

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/go-go-golems/catsdogs/pkg/tui/styles"
)

// Box is a rounded border with a title line above its content.
type Box struct {
	Title      string
	TitleRight string
	Content    string
	Width      int
	Height     int
	theme      styles.Theme
}

func NewBox(title string) Box {
	return Box{Title: title, theme: styles.DefaultTheme()}
}

func (b Box) WithTitleRight(s string) Box {
	b.TitleRight = s
	return b
}

func (b Box) WithContent(s string) Box {
	b.Content = s
	return b
}

func (b Box) WithSize(w, h int) Box {
	b.Width, b.Height = w, h
	return b
}

// InnerSize is the area available to content for the configured size.
func (b Box) InnerSize() (int, int) {
	w, h := b.Width-4, b.Height-3
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

func (b Box) Render() string {
	theme := b.theme
	innerW, innerH := b.InnerSize()

	header := theme.Title.Render(b.Title)
	if b.TitleRight != "" {
		right := theme.TitleMuted.Render(b.TitleRight)
		gap := innerW - lipgloss.Width(header) - lipgloss.Width(right)
		if gap < 1 {
			gap = 1
		}
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, lipgloss.NewStyle().Width(gap).Render(""), right)
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
	if innerW > 0 {
		style = style.Width(innerW + 2)
	}
	body := b.Content
	if innerH > 0 {
		body = lipgloss.NewStyle().Height(innerH).MaxHeight(innerH).Render(body)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

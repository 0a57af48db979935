package styles

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color

	Title       lipgloss.Style
	TitleMuted  lipgloss.Style
	KeybindKey  lipgloss.Style
	KeybindDesc lipgloss.Style
	Segment     lipgloss.Style
	SegmentOn   lipgloss.Style
	Button      lipgloss.Style
	Score       lipgloss.Style
}

func DefaultTheme() Theme {
	t := Theme{
		Primary: lipgloss.Color("#7D56F4"),
		Muted:   lipgloss.Color("#6C6C6C"),
		Border:  lipgloss.Color("#3C3C3C"),
	}
	t.Title = lipgloss.NewStyle().Bold(true)
	t.TitleMuted = lipgloss.NewStyle().Foreground(t.Muted)
	t.KeybindKey = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	t.KeybindDesc = lipgloss.NewStyle().Foreground(t.Muted)
	t.Segment = lipgloss.NewStyle().Padding(0, 3).Foreground(t.Muted)
	t.SegmentOn = t.Segment.Foreground(lipgloss.Color("#FFFFFF")).Background(t.Primary).Bold(true)
	t.Button = lipgloss.NewStyle().
		Padding(0, 6).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#E94F8A"))
	t.Score = lipgloss.NewStyle()
	return t
}

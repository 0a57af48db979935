package widgets

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/go-go-golems/catsdogs/pkg/content"
	"github.com/go-go-golems/catsdogs/pkg/tui/styles"
)

// Segmented is a two-segment category selector. A None selection renders
// both segments unselected.
type Segmented struct {
	Selected content.Category
	theme    styles.Theme
}

func NewSegmented(selected content.Category) Segmented {
	return Segmented{Selected: selected, theme: styles.DefaultTheme()}
}

func (s Segmented) Render() string {
	segs := make([]string, 0, 2)
	for _, c := range []content.Category{content.Cats, content.Dogs} {
		label := styles.CategoryIcon(c) + " " + title(c)
		if c == s.Selected {
			segs = append(segs, s.theme.SegmentOn.Render(label))
		} else {
			segs = append(segs, s.theme.Segment.Render(label))
		}
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.theme.Primary).
		Render(lipgloss.JoinHorizontal(lipgloss.Center, segs[0], "│", segs[1]))
}

func title(c content.Category) string {
	switch c {
	case content.Cats:
		return "Cats"
	case content.Dogs:
		return "Dogs"
	}
	return ""
}

package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestFooter_RendersRuleAndEnabledHints(t *testing.T) {
	more := key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "more"))
	hidden := key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "hidden"), key.WithDisabled())

	out := NewFooter(KeybindsFrom(more, hidden)).WithWidth(40).Render()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, 40, lipgloss.Width(lines[0]))
	require.Contains(t, lines[1], "[m]")
	require.Contains(t, lines[1], "more")
	require.NotContains(t, out, "hidden")
}

package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-go-golems/catsdogs/pkg/tui"
	"github.com/go-go-golems/catsdogs/pkg/tui/styles"
	"github.com/go-go-golems/catsdogs/pkg/tui/widgets"
)

// EventLogModel shows the journal of coordinator transitions.
type EventLogModel struct {
	max     int
	entries []tui.EventLogEntry

	width  int
	height int

	searching bool
	search    textinput.Model
	filter    string

	vp viewport.Model
}

func NewEventLogModel() EventLogModel {
	search := textinput.New()
	search.Placeholder = "filter…"
	search.Prompt = "/ "
	search.CharLimit = 200

	m := EventLogModel{max: 500, search: search}
	m.vp = viewport.New(0, 0)
	return m
}

func (m EventLogModel) WithSize(width, height int) EventLogModel {
	m.width, m.height = width, height
	m.vp.Width = maxInt(0, width-4)
	m.vp.Height = maxInt(1, height-4)
	if m.searching {
		m.vp.Height = maxInt(1, m.vp.Height-1)
	}
	return m.refresh(false)
}

func (m EventLogModel) Searching() bool { return m.searching }

func (m EventLogModel) Len() int { return len(m.entries) }

func (m EventLogModel) Update(msg tea.Msg) (EventLogModel, tea.Cmd) {
	v, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		switch v.String() {
		case "esc":
			m.searching = false
			m.search.Blur()
			return m.WithSize(m.width, m.height), nil
		case "enter":
			m.filter = strings.TrimSpace(m.search.Value())
			m.searching = false
			m.search.Blur()
			m = m.WithSize(m.width, m.height)
			return m.refresh(true), nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(v)
		return m, cmd
	}

	switch v.String() {
	case "/":
		m.searching = true
		m.search.SetValue(m.filter)
		m.search.CursorEnd()
		m.search.Focus()
		return m.WithSize(m.width, m.height), textinput.Blink
	case "ctrl+l":
		m.filter = ""
		m.search.SetValue("")
		return m.refresh(true), nil
	case "x":
		m.entries = nil
		return m.refresh(true), nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(v)
	return m, cmd
}

// Append inserts e by Seq; the journal may deliver entries out of order.
func (m EventLogModel) Append(e tui.EventLogEntry) EventLogModel {
	i := sort.Search(len(m.entries), func(i int) bool { return m.entries[i].Seq > e.Seq })
	m.entries = append(m.entries, tui.EventLogEntry{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = e
	if m.max > 0 && len(m.entries) > m.max {
		m.entries = append([]tui.EventLogEntry{}, m.entries[len(m.entries)-m.max:]...)
	}
	return m.refresh(true)
}

func (m EventLogModel) View() string {
	theme := styles.DefaultTheme()

	title := "Events"
	if m.filter != "" {
		title = fmt.Sprintf("Events filter=%q", m.filter)
	}

	body := m.vp.View()
	if len(m.entries) == 0 {
		body = theme.TitleMuted.Render("(no events yet)")
	}
	if m.searching {
		body = m.search.View() + "\n" + body
	}

	return widgets.NewBox(title).
		WithTitleRight("[/] filter  [ctrl+l] clear filter  [x] clear").
		WithContent(body).
		WithSize(m.width, m.height).
		Render()
}

func (m EventLogModel) refresh(gotoBottom bool) EventLogModel {
	theme := styles.DefaultTheme()
	needle := strings.ToLower(m.filter)

	lines := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		if needle != "" && !strings.Contains(strings.ToLower(e.Text), needle) {
			continue
		}
		lines = append(lines, theme.TitleMuted.Render(e.At.Format("15:04:05.000"))+" "+e.Text)
	}
	m.vp.SetContent(strings.Join(lines, "\n"))
	if gotoBottom {
		m.vp.GotoBottom()
	}
	return m
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

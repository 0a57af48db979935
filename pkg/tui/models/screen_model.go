package models

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-go-golems/catsdogs/pkg/content"
	"github.com/go-go-golems/catsdogs/pkg/coordinator"
	"github.com/go-go-golems/catsdogs/pkg/tui"
	"github.com/go-go-golems/catsdogs/pkg/tui/styles"
	"github.com/go-go-golems/catsdogs/pkg/tui/widgets"
)

const screenTitle = "Cats and Dogs"

// ScreenModel is the root bubbletea model. It translates key presses into
// coordinator events and routes async completions back to the coordinator.
type ScreenModel struct {
	coord *coordinator.Coordinator
	keys  keyMap

	spinner    spinner.Model
	events     EventLogModel
	showEvents bool

	width  int
	height int
}

func NewScreenModel(coord *coordinator.Coordinator) ScreenModel {
	return ScreenModel{
		coord:   coord,
		keys:    defaultKeyMap(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		events:  NewEventLogModel(),
		width:   80,
		height:  24,
	}
}

func (m ScreenModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m ScreenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := v.Width, v.Height
		if w <= 0 {
			w = 80
		}
		if h <= 0 {
			h = 24
		}
		m.width, m.height = w, h
		m.events = m.events.WithSize(m.width, m.eventsHeight())
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(v)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(v)
		return m, cmd
	case tui.EventLogAppendMsg:
		m.events = m.events.Append(v.Entry)
		return m, nil
	}
	return m, m.coord.Update(msg)
}

func (m ScreenModel) handleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showEvents && m.events.Searching() {
		var cmd tea.Cmd
		m.events, cmd = m.events.Update(k)
		return m, cmd
	}

	switch {
	case key.Matches(k, m.keys.Quit):
		m.coord.Close()
		return m, tea.Quit
	case key.Matches(k, m.keys.Cats):
		return m, m.selectCategory(content.Cats)
	case key.Matches(k, m.keys.Dogs):
		return m, m.selectCategory(content.Dogs)
	case key.Matches(k, m.keys.Cycle):
		next := content.Cats
		if m.coord.Selected() == content.Cats {
			next = content.Dogs
		}
		return m, m.selectCategory(next)
	case key.Matches(k, m.keys.More):
		return m, m.coord.Update(coordinator.MoreRequestedMsg{})
	case key.Matches(k, m.keys.Reset):
		return m, m.coord.Update(coordinator.ResetRequestedMsg{})
	case key.Matches(k, m.keys.Events):
		m.showEvents = !m.showEvents
		m.events = m.events.WithSize(m.width, m.eventsHeight())
		return m, nil
	}

	if m.showEvents {
		var cmd tea.Cmd
		m.events, cmd = m.events.Update(k)
		return m, cmd
	}
	return m, nil
}

// selectCategory behaves like a segmented control: picking the segment that
// is already selected does not emit a change.
func (m ScreenModel) selectCategory(c content.Category) tea.Cmd {
	if m.coord.Selected() == c {
		return nil
	}
	return m.coord.Update(coordinator.CategoryChangedMsg{Category: c})
}

func (m ScreenModel) View() string {
	theme := styles.DefaultTheme()
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
	}

	title := center(theme.Title.Render(screenTitle))
	selector := center(widgets.NewSegmented(m.coord.Selected()).Render())

	box := widgets.NewBox("").WithSize(m.contentWidth(), m.contentHeight())
	innerW, innerH := box.InnerSize()
	contentBox := center(box.WithContent(m.coord.Display().View(innerW, innerH)).Render())

	button := theme.Button.Render("more")
	if m.coord.Loading() {
		button = theme.Button.Render(m.spinner.View() + " loading")
	}

	sections := []string{
		title,
		"",
		selector,
		"",
		contentBox,
		"",
		center(button),
		"",
		center(theme.Score.Render(m.coord.ScoreText())),
	}
	if m.showEvents {
		sections = append(sections, m.events.View())
	}
	sections = append(sections, widgets.NewFooter(widgets.KeybindsFrom(m.keys.footer()...)).WithWidth(m.width).Render())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ScreenModel) eventsHeight() int {
	if !m.showEvents {
		return 0
	}
	return maxInt(6, m.height/3)
}

func (m ScreenModel) contentWidth() int {
	return maxInt(20, m.width-4)
}

// contentHeight keeps roughly the 0.6 height/width ratio of the content
// area, taking the 2:1 shape of terminal cells into account.
func (m ScreenModel) contentHeight() int {
	const chrome = 12
	avail := m.height - chrome - m.eventsHeight()
	byRatio := m.contentWidth() * 3 / 10
	h := byRatio
	if avail < h {
		h = avail
	}
	return maxInt(5, h)
}

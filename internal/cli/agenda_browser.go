package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/cadence/internal/agenda"
	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/contract"
)

// browserKeyMap defines the agenda browser key bindings.
type browserKeyMap struct {
	PrevDay key.Binding
	NextDay key.Binding
	Quit    key.Binding
}

var browserKeys = browserKeyMap{
	PrevDay: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous day")),
	NextDay: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// browserModel is the bubbletea Model for the day-by-day agenda browser.
type browserModel struct {
	resp   *contract.AgendaResponse
	dates  []string
	byDate map[string][]agenda.Event

	dayIdx int
	vp     viewport.Model
	width  int
	ready  bool
}

func newBrowserModel(resp *contract.AgendaResponse) browserModel {
	return browserModel{
		resp:   resp,
		dates:  resp.Proposal.Dates(),
		byDate: resp.Proposal.EventsByDate(),
	}
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		headerHeight := 4
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-headerHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - headerHeight
		}
		m.vp.SetContent(m.dayContent())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, browserKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, browserKeys.PrevDay):
			if m.dayIdx > 0 {
				m.dayIdx--
				m.vp.SetContent(m.dayContent())
				m.vp.GotoTop()
			}
			return m, nil
		case key.Matches(msg, browserKeys.NextDay):
			if m.dayIdx < len(m.dates)-1 {
				m.dayIdx++
				m.vp.SetContent(m.dayContent())
				m.vp.GotoTop()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m browserModel) View() string {
	if len(m.dates) == 0 {
		return formatter.Dim("Nothing scheduled in this range. Press q to quit.") + "\n"
	}
	if !m.ready {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(formatter.Dim("←/→ day · ↑/↓ scroll · q quit"))
	return b.String()
}

func (m browserModel) headerView() string {
	events := m.byDate[m.dates[m.dayIdx]]
	title := formatter.DayHeading(events[0].Start)
	pos := ""
	if len(m.dates) > 1 {
		pos = formatter.Dim(strings.Repeat("·", m.dayIdx) + "●" + strings.Repeat("·", len(m.dates)-m.dayIdx-1))
	}
	return formatter.Header(title) + "\n" + pos
}

func (m browserModel) dayContent() string {
	var b strings.Builder
	for _, ev := range m.byDate[m.dates[m.dayIdx]] {
		b.WriteString(formatter.EventLine(ev))
	}
	return b.String()
}

// runAgendaBrowser starts the interactive day-by-day agenda view.
func runAgendaBrowser(resp *contract.AgendaResponse) error {
	p := tea.NewProgram(newBrowserModel(resp), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

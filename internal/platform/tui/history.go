package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vkotenko/tui-delver/internal/registry"
	"github.com/vkotenko/tui-delver/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show scenario list sidebar
	sidebarWidth       = 22 // Width of scenario list sidebar
	maxRuns            = 100
)

// HistoryKeyMap defines the key bindings for the run history browser.
type HistoryKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	NextScenario key.Binding
	PrevScenario key.Binding
	Back         key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextScenario, k.PrevScenario, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextScenario, k.PrevScenario},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextScenario: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next scenario"),
		),
		PrevScenario: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev scenario"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the run history browser.
type HistoryModel struct {
	scenarios      []registry.ScenarioInfo
	scenarioCursor int
	store          *storage.Store
	runs           []storage.RunRecord
	stats          storage.RunStats
	table          table.Model
	help           help.Model
	keys           HistoryKeyMap
	width          int
	height         int
	quitting       bool
	goingBack      bool // True if user pressed back (not quit)
	showSidebar    bool
}

// NewHistoryModel creates a new run history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	keys := DefaultHistoryKeyMap()
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		scenarios:   registry.List(),
		store:       store,
		keys:        keys,
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()

	if len(m.scenarios) > 0 {
		m.loadRuns(m.scenarios[0].ID)
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Turns", Width: 7},
		{Title: "Clock", Width: 8},
		{Title: "Slain", Width: 6},
		{Title: "Left", Width: 5},
		{Title: "Winner", Width: 9},
		{Title: "Date", Width: 14},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the stored runs for the given scenario ID.
func (m *HistoryModel) loadRuns(scenarioID string) {
	if m.store == nil {
		m.runs = nil
		m.stats = storage.RunStats{}
		m.updateTableRows()
		return
	}

	runs, err := m.store.RecentRuns(scenarioID, maxRuns)
	if err != nil {
		m.runs = nil
	} else {
		m.runs = runs
	}
	if stats, err := m.store.ScenarioStats(scenarioID); err == nil {
		m.stats = stats
	} else {
		m.stats = storage.RunStats{}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		winner := r.Winner
		if winner == "" {
			winner = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.Turns),
			fmt.Sprintf("%.0f", r.Clock),
			fmt.Sprintf("%d", r.Slain),
			fmt.Sprintf("%d", r.Survivors),
			winner,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextScenario):
			if len(m.scenarios) > 0 {
				m.scenarioCursor = (m.scenarioCursor + 1) % len(m.scenarios)
				m.loadRuns(m.scenarios[m.scenarioCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevScenario):
			if len(m.scenarios) > 0 {
				m.scenarioCursor--
				if m.scenarioCursor < 0 {
					m.scenarioCursor = len(m.scenarios) - 1
				}
				m.loadRuns(m.scenarios[m.scenarioCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "RUN HISTORY"
	if len(m.scenarios) > 0 {
		title = fmt.Sprintf("RUN HISTORY - %s", m.scenarios[m.scenarioCursor].Title)
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderTablePanel())
	}

	// Aggregate line
	if m.stats.Runs > 0 {
		statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		b.WriteString("\n")
		b.WriteString(statsStyle.Render(fmt.Sprintf(
			" %d runs, avg %.0f turns, avg clock %.0f, %d slain total",
			m.stats.Runs, m.stats.AvgTurns, m.stats.AvgClock, m.stats.TotalSlain,
		)))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the history with a scenario sidebar.
func (m HistoryModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Scenarios\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, sc := range m.scenarios {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.scenarioCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := sc.Title
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		" ",
		m.renderTablePanel(),
	)
}

// renderTablePanel renders the bordered runs table.
func (m HistoryModel) renderTablePanel() string {
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.runs) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Render("No runs recorded yet.")
		return tableStyle.Render(empty)
	}

	return tableStyle.Render(m.table.View())
}

// centerText pads a string to be centered within the given width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

// RunHistory starts a standalone Bubble Tea program browsing stored runs.
func RunHistory(store *storage.Store, width, height int) error {
	model := NewHistoryModel(store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

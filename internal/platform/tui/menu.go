package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vkotenko/tui-delver/internal/registry"
)

// MenuChoice is the outcome of a menu interaction.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoiceScenario
	MenuChoiceHistory
	MenuChoiceQuit
)

// MenuModel is the Bubble Tea model for the scenario picker.
type MenuModel struct {
	scenarios []registry.ScenarioInfo
	cursor    int
	keys      *KeyMapper
	width     int
	height    int

	choice   MenuChoice
	chosenID string
}

// NewMenuModel creates a menu listing all registered scenarios.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		scenarios: registry.List(),
		keys:      NewKeyMapper(),
		width:     width,
		height:    height,
	}
}

// Choice returns the pending menu outcome and the chosen scenario ID.
// The session model consumes it after each update.
func (m MenuModel) Choice() (MenuChoice, string) {
	return m.choice, m.chosenID
}

// Init initializes the menu.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles menu input.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.choice = MenuChoiceQuit

		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}

		case MenuActionDown:
			if m.cursor < len(m.scenarios)-1 {
				m.cursor++
			}

		case MenuActionSelect:
			if len(m.scenarios) > 0 {
				m.choice = MenuChoiceScenario
				m.chosenID = m.scenarios[m.cursor].ID
			}

		case MenuActionHistory:
			m.choice = MenuChoiceHistory
		}
	}

	return m, nil
}

// View renders the scenario picker.
func (m MenuModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("T U I   D E L V E R", m.width)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText("pick a scenario and watch the dungeon sort itself out", m.width)))
	b.WriteString("\n\n")

	for i, sc := range m.scenarios {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		line := fmt.Sprintf("%s%-24s %s", cursor, sc.Title, dimStyle.Render(sc.ID))
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText("enter: watch  h: history  q: quit", m.width)))

	return b.String()
}

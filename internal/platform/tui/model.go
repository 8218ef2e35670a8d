package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkotenko/tui-delver/internal/core"
	"github.com/vkotenko/tui-delver/internal/registry"
	"github.com/vkotenko/tui-delver/internal/storage"
)

// Viewer speed limits, in scheduler passes per second.
const (
	minTickRate = 1
	maxTickRate = 60
)

// Model is the Bubble Tea model for watching a scenario run.
type Model struct {
	scenario   registry.Scenario
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	simState   core.SimState
	paused     bool
	startedAt  time.Time
	runSaved   bool // Whether the run has been saved for the current settle
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given scenario.
func NewModel(scenario registry.Scenario, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		scenario:   scenario,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		startedAt:  time.Now(),
	}
}

// Init initializes the model and starts the simulation.
func (m Model) Init() tea.Cmd {
	m.scenario.Reset(m.config)
	// Note: simState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The arena has a fixed
// size, so the simulation keeps running; only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick applies buffered input and advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		// Reset seed for a fresh run
		m.config.Seed = time.Now().UnixNano()
		m.scenario.Reset(m.config)
		m.simState = m.scenario.State()
		m.paused = false
		m.runSaved = false
		m.startedAt = time.Now()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.inputFrame.Has(core.ActionPause) {
		m.paused = !m.paused
		m.scenario.SetPaused(m.paused)
	}
	if m.inputFrame.Has(core.ActionFaster) {
		m.config.TickRate = core.Min(m.config.TickRate*2, maxTickRate)
	}
	if m.inputFrame.Has(core.ActionSlower) {
		m.config.TickRate = core.Max(m.config.TickRate/2, minTickRate)
	}

	if m.paused && m.inputFrame.Has(core.ActionStep) {
		m.simState = m.scenario.StepOnce()
	} else {
		m.simState = m.scenario.Step()
	}

	// Save the run once when the fight settles
	if m.simState.Over && !m.runSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, viewer continues regardless
			m.store.SaveRun(storage.RunRecord{
				ScenarioID: m.scenario.ID(),
				Turns:      m.simState.Turn,
				Clock:      m.simState.Clock,
				Spawned:    m.simState.Spawned,
				Slain:      m.simState.Slain,
				Survivors:  m.simState.Alive,
				Winner:     m.simState.Winner,
				Duration:   int(time.Since(m.startedAt).Seconds()),
			})
		}
		m.runSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.scenario.Render(m.screen)

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(scenario registry.Scenario, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(scenario, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

package dungeon

import (
	"time"

	"github.com/vkotenko/tui-delver/internal/config"
	"github.com/vkotenko/tui-delver/internal/core"
	"github.com/vkotenko/tui-delver/internal/registry"
)

// configPath is the custom config file path applied to scenarios at
// Reset. Set from the CLI before the scenario is created.
var configPath string

// SetConfigPath sets the config file path used by all scenarios.
func SetConfigPath(path string) {
	configPath = path
}

// Scenario is a named arena setup: a level, a starting population, and a
// reinforcement budget, driven by one World per run.
type Scenario struct {
	id         string
	title      string
	levelIndex int
	mix        []SpawnGroup
	waves      int

	world *World
}

func init() {
	registry.Register("skirmish", func() registry.Scenario {
		return &Scenario{
			id:         "skirmish",
			title:      "Skirmish",
			levelIndex: 0,
			mix: []SpawnGroup{
				{Species: "goblin", Count: 6},
				{Species: "orc", Count: 4},
			},
			waves: 6,
		}
	})
	registry.Register("swarm", func() registry.Scenario {
		return &Scenario{
			id:         "swarm",
			title:      "Swarm",
			levelIndex: 1,
			mix: []SpawnGroup{
				{Species: "rat", Count: 14},
				{Species: "ogre", Count: 1},
			},
			waves: 0,
		}
	})
	registry.Register("siege", func() registry.Scenario {
		return &Scenario{
			id:         "siege",
			title:      "Siege of the Broken Halls",
			levelIndex: 2,
			mix: []SpawnGroup{
				{Species: "rat", Count: 4},
				{Species: "goblin", Count: 4},
				{Species: "orc", Count: 3},
				{Species: "ogre", Count: 2},
			},
			waves: 12,
		}
	})
}

// ID returns the scenario identifier.
func (s *Scenario) ID() string { return s.id }

// Title returns the display name.
func (s *Scenario) Title() string { return s.title }

// Reset builds a fresh world for this scenario.
func (s *Scenario) Reset(cfg core.RuntimeConfig) {
	simCfg, err := config.Load(configPath)
	if err != nil {
		simCfg = config.DefaultSimConfig()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	level := GetLevel(s.levelIndex % LevelCount())
	s.world = NewWorld(simCfg, level, seed, s.mix, s.waves)
}

// Step advances the simulation by one scheduler pass.
func (s *Scenario) Step() core.SimState {
	return s.world.Step()
}

// StepOnce advances a single pass even while paused.
func (s *Scenario) StepOnce() core.SimState {
	return s.world.StepOnce()
}

// SetPaused pauses or resumes the world's scheduler.
func (s *Scenario) SetPaused(paused bool) {
	s.world.SetPaused(paused)
}

// State returns the current simulation state.
func (s *Scenario) State() core.SimState {
	return s.world.State()
}

// Render draws the world into the screen buffer.
func (s *Scenario) Render(dst *core.Screen) {
	s.world.Render(dst, s.title)
}

var _ registry.Scenario = (*Scenario)(nil)

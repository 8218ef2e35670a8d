// Package config provides YAML-based simulation configuration loading
// for the delver platform.
package config

// SimConfig contains all tunable parameters for the dungeon simulation.
type SimConfig struct {
	Tuning  TuningConfig    `yaml:"tuning"`
	Species []SpeciesConfig `yaml:"species"`
}

// TuningConfig defines global scheduler and spawner parameters.
type TuningConfig struct {
	// BaseDelay is the wait time a speed-1 actor pays per turn; an actor
	// with speed S waits BaseDelay/S.
	BaseDelay float64 `yaml:"base_delay"`

	// SpawnEvery is the spawner's wait time between reinforcement waves.
	SpawnEvery float64 `yaml:"spawn_every"`

	// MaxPopulation caps the number of living actors; the spawner goes
	// idle while the dungeon is at capacity.
	MaxPopulation int `yaml:"max_population"`
}

// SpeciesConfig defines the stats of one creature species.
type SpeciesConfig struct {
	Name   string  `yaml:"name"`
	Glyph  string  `yaml:"glyph"` // Single character used on the map
	Color  string  `yaml:"color"`
	Speed  float64 `yaml:"speed"` // Turns per BaseDelay ticks
	HP     int     `yaml:"hp"`
	Damage int     `yaml:"damage"`
}

// SpeciesByName returns the species config with the given name, or false
// if the config does not define it.
func (c SimConfig) SpeciesByName(name string) (SpeciesConfig, bool) {
	for _, sp := range c.Species {
		if sp.Name == name {
			return sp, true
		}
	}
	return SpeciesConfig{}, false
}

package config

import (
	_ "embed"
)

//go:embed defaults/delver.yaml
var defaultSimYAML []byte

// DefaultSimConfig returns the hardcoded fallback configuration, used
// when even the embedded YAML fails to parse.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Tuning: TuningConfig{
			BaseDelay:     12,
			SpawnEvery:    36,
			MaxPopulation: 48,
		},
		Species: []SpeciesConfig{
			{Name: "rat", Glyph: "r", Color: "gray", Speed: 4, HP: 3, Damage: 1},
			{Name: "goblin", Glyph: "g", Color: "green", Speed: 3, HP: 6, Damage: 2},
			{Name: "orc", Glyph: "o", Color: "yellow", Speed: 2, HP: 10, Damage: 3},
			{Name: "ogre", Glyph: "O", Color: "red", Speed: 1, HP: 20, Damage: 5},
		},
	}
}

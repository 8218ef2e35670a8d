package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// No custom path and (almost certainly) no user config in the test
	// environment: the embedded default must parse.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Tuning.BaseDelay <= 0 {
		t.Errorf("BaseDelay = %v, expected positive", cfg.Tuning.BaseDelay)
	}
	if len(cfg.Species) == 0 {
		t.Fatal("embedded default defines no species")
	}
	for _, sp := range cfg.Species {
		if sp.Speed <= 0 {
			t.Errorf("species %q has non-positive speed %v", sp.Name, sp.Speed)
		}
		if len(sp.Glyph) != 1 {
			t.Errorf("species %q glyph = %q, expected single character", sp.Name, sp.Glyph)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	yaml := `
tuning:
  base_delay: 6
  spawn_every: 10
  max_population: 5
species:
  - name: slime
    glyph: s
    color: green
    speed: 1
    hp: 2
    damage: 1
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}

	if cfg.Tuning.BaseDelay != 6 {
		t.Errorf("BaseDelay = %v, expected 6", cfg.Tuning.BaseDelay)
	}
	sp, ok := cfg.SpeciesByName("slime")
	if !ok {
		t.Fatal("SpeciesByName(\"slime\") not found")
	}
	if sp.HP != 2 || sp.Glyph != "s" {
		t.Errorf("slime = %+v, expected hp 2 glyph s", sp)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestSpeciesByNameAbsent(t *testing.T) {
	cfg := DefaultSimConfig()
	if _, ok := cfg.SpeciesByName("dragon"); ok {
		t.Error("SpeciesByName should report false for an unknown species")
	}
}

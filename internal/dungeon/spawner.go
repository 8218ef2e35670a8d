package dungeon

import "github.com/vkotenko/tui-delver/internal/turn"

// Spawner is a non-creature scheduler entity that feeds reinforcement
// waves into the arena. Each activation spawns one random species at a
// free cell, so new actors enter the queue while other entities' turns
// are still being processed in the same pass.
type Spawner struct {
	world *World
	wait  float64
	every float64
	waves int // remaining waves; 0 means exhausted
}

// newSpawner creates a spawner with the given wave budget. The first
// wave arrives after one full interval.
func newSpawner(w *World, every float64, waves int) *Spawner {
	return &Spawner{
		world: w,
		wait:  every,
		every: every,
		waves: waves,
	}
}

// WaitTime returns the ticks remaining until the next wave.
func (s *Spawner) WaitTime() float64 { return s.wait }

// SetWaitTime overwrites the remaining wait time.
func (s *Spawner) SetWaitTime(t float64) { s.wait = t }

// Update spawns one reinforcement if the arena has room and waves remain,
// then schedules the next wave. A wave blocked by the population cap is
// consumed anyway; otherwise a full arena would keep the budget unspent
// and the fight could never settle. The world removes an exhausted
// spawner from the scheduler after the pass completes, since an entity
// cannot unschedule itself mid-activation.
func (s *Spawner) Update() {
	if s.waves > 0 {
		if s.world.Alive() < s.world.cfg.Tuning.MaxPopulation {
			if sp := s.world.randomSpecies(); sp != nil {
				if a, ok := s.world.spawnActor(sp.Name); ok {
					s.world.logf("%s crawls out of the dark", a.species)
				}
			}
		}
		s.waves--
	}
	s.wait = s.every
}

// Exhausted reports whether the wave budget is spent.
func (s *Spawner) Exhausted() bool {
	return s.waves <= 0
}

var _ turn.Entity = (*Spawner)(nil)

package dungeon

import (
	"fmt"
	"math/rand"

	"github.com/vkotenko/tui-delver/internal/config"
	"github.com/vkotenko/tui-delver/internal/core"
	"github.com/vkotenko/tui-delver/internal/turn"
)

// maxEvents caps the in-memory event trail.
const maxEvents = 64

// SpawnGroup is one slice of a scenario's starting population.
type SpawnGroup struct {
	Species string
	Count   int
}

// World owns one arena: the level, the living actors, the spawner, and
// the turn scheduler that decides who acts next. All mutation happens on
// the caller's goroutine through Step.
type World struct {
	cfg   config.SimConfig
	level *Level
	rng   *rand.Rand
	sched *turn.Scheduler

	actors   []*Actor
	occupied map[core.Point]*Actor

	spawner        *Spawner
	spawnerRetired bool

	turns   int
	spawned int
	slain   int
	nextID  int
	events  []string
}

// NewWorld builds a world on the given level, places the starting
// population, and schedules everything. waves is the spawner's
// reinforcement budget; 0 disables the spawner.
func NewWorld(cfg config.SimConfig, level *Level, seed int64, mix []SpawnGroup, waves int) *World {
	w := &World{
		cfg:      cfg,
		level:    level,
		rng:      rand.New(rand.NewSource(seed)),
		sched:    turn.NewScheduler(),
		occupied: make(map[core.Point]*Actor),
	}

	for _, g := range mix {
		for i := 0; i < g.Count; i++ {
			w.spawnActor(g.Species)
		}
	}

	if waves > 0 {
		w.spawner = newSpawner(w, cfg.Tuning.SpawnEvery, waves)
		w.sched.Add(w.spawner)
	}

	return w
}

// Step advances the simulation by one scheduler pass.
func (w *World) Step() core.SimState {
	if w.Over() {
		return w.State()
	}

	w.sched.Run()
	if !w.sched.IsPaused() {
		w.turns++
	}

	// An exhausted spawner unschedules between passes; it cannot remove
	// itself while it is the entity being activated.
	if w.spawner != nil && !w.spawnerRetired && w.spawner.Exhausted() {
		w.sched.Remove(w.spawner)
		w.spawnerRetired = true
	}

	return w.State()
}

// SetPaused pauses or resumes the underlying scheduler.
func (w *World) SetPaused(paused bool) {
	if paused {
		w.sched.Pause()
	} else {
		w.sched.Resume()
	}
}

// StepOnce forces a single scheduler pass while paused.
func (w *World) StepOnce() core.SimState {
	if !w.sched.IsPaused() {
		return w.Step()
	}
	w.sched.Resume()
	state := w.Step()
	w.sched.Pause()
	state.Paused = true
	return state
}

// Alive returns the number of living actors.
func (w *World) Alive() int {
	return len(w.actors)
}

// Factions returns the number of distinct living species.
func (w *World) Factions() int {
	seen := make(map[string]bool)
	for _, a := range w.actors {
		seen[a.species] = true
	}
	return len(seen)
}

// Over reports whether the fight is settled: at most one faction left
// and no reinforcements pending.
func (w *World) Over() bool {
	if w.spawner != nil && !w.spawner.Exhausted() {
		return false
	}
	return w.Factions() <= 1
}

// Winner returns the surviving faction once the fight is over, or "".
func (w *World) Winner() string {
	if !w.Over() || len(w.actors) == 0 {
		return ""
	}
	return w.actors[0].species
}

// State snapshots the world for the platform layer.
func (w *World) State() core.SimState {
	return core.SimState{
		Turn:    w.turns,
		Clock:   w.sched.Clock(),
		Alive:   w.Alive(),
		Spawned: w.spawned,
		Slain:   w.slain,
		Paused:  w.sched.IsPaused(),
		Over:    w.Over(),
		Winner:  w.Winner(),
	}
}

// Events returns up to n most recent event lines, oldest first.
func (w *World) Events(n int) []string {
	if n > len(w.events) {
		n = len(w.events)
	}
	return w.events[len(w.events)-n:]
}

// --- Actor bookkeeping ---

// spawnActor creates an actor of the named species at a random free cell
// and schedules it with no initial wait, so it acts in the next pass.
func (w *World) spawnActor(species string) (*Actor, bool) {
	sp, ok := w.cfg.SpeciesByName(species)
	if !ok {
		return nil, false
	}
	pos, ok := w.randomFreeCell()
	if !ok {
		return nil, false
	}

	w.nextID++
	a := newActor(w.nextID, sp, w)
	a.pos = pos
	w.actors = append(w.actors, a)
	w.occupied[pos] = a
	w.spawned++
	w.sched.Add(a)
	return a, true
}

// kill retires an actor: off the grid, out of the actor list, and out of
// the scheduler, even if it already acted in the current pass.
func (w *World) kill(victim, by *Actor) {
	delete(w.occupied, victim.pos)
	for i, a := range w.actors {
		if a == victim {
			w.actors = append(w.actors[:i], w.actors[i+1:]...)
			break
		}
	}
	w.sched.Remove(victim)
	w.slain++
	w.logf("%s slays %s", by.species, victim.species)
}

// moveActor relocates an actor to a free cell.
func (w *World) moveActor(a *Actor, to core.Point) {
	delete(w.occupied, a.pos)
	a.pos = to
	w.occupied[to] = a
}

// actorAt returns the actor on the given cell, or nil.
func (w *World) actorAt(p core.Point) *Actor {
	return w.occupied[p]
}

// isFree reports whether the cell is walkable and unoccupied.
func (w *World) isFree(p core.Point) bool {
	return !w.level.IsWall(p) && w.occupied[p] == nil
}

// nearestEnemy returns the closest actor of a different species within
// sight, or nil. Ties resolve to the earliest-spawned actor, keeping the
// simulation deterministic for a given seed.
func (w *World) nearestEnemy(of *Actor) *Actor {
	var best *Actor
	bestDist := sightRadius + 1
	for _, a := range w.actors {
		if a.species == of.species {
			continue
		}
		if d := of.pos.Chebyshev(a.pos); d < bestDist {
			best = a
			bestDist = d
		}
	}
	return best
}

// randomFreeCell picks a uniformly random walkable, unoccupied cell.
func (w *World) randomFreeCell() (core.Point, bool) {
	cells := w.level.FloorCells()
	n := 0
	for _, p := range cells {
		if w.occupied[p] == nil {
			cells[n] = p
			n++
		}
	}
	if n == 0 {
		return core.Point{}, false
	}
	return cells[w.rng.Intn(n)], true
}

// randomSpecies picks a random species from the config.
func (w *World) randomSpecies() *config.SpeciesConfig {
	if len(w.cfg.Species) == 0 {
		return nil
	}
	return &w.cfg.Species[w.rng.Intn(len(w.cfg.Species))]
}

// logf appends a line to the event trail, dropping the oldest entries
// past the cap.
func (w *World) logf(format string, args ...any) {
	w.events = append(w.events, fmt.Sprintf(format, args...))
	if len(w.events) > maxEvents {
		w.events = w.events[len(w.events)-maxEvents:]
	}
}

// --- Rendering ---

// Render draws the HUD, the arena, the actors, and the recent event
// trail into the screen buffer.
func (w *World) Render(dst *core.Screen, title string) {
	dst.Clear()

	state := w.State()
	hud := fmt.Sprintf(" %s — Turn: %d  Clock: %.0f  Alive: %d  Slain: %d",
		title, state.Turn, state.Clock, state.Alive, state.Slain)
	if state.Paused {
		hud += "  [PAUSED]"
	}
	if state.Over {
		hud += "  [SETTLED]"
		if state.Winner != "" {
			hud += " winner: " + state.Winner
		}
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	mapW, mapH := w.level.Width(), w.level.Height()
	if dst.Width() < mapW || dst.Height() < mapH+5 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to continue")
		return
	}
	offX := (dst.Width() - mapW) / 2
	offY := 2

	for y, row := range w.level.Layout {
		for x := range row {
			if row[x] == '#' {
				dst.SetCell(offX+x, offY+y, '#', core.ColorGray)
			}
		}
	}

	for _, a := range w.actors {
		dst.SetCell(offX+a.pos.X, offY+a.pos.Y, a.glyph, a.color)
	}

	// Event trail under the map, most recent at the bottom.
	trailTop := offY + mapH + 1
	lines := dst.Height() - trailTop
	if lines > 3 {
		lines = 3
	}
	if lines > 0 {
		for i, line := range w.Events(lines) {
			dst.DrawTextColored(1, trailTop+i, line, core.ColorGray)
		}
	}
}

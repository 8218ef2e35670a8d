// Package dungeon implements the simulation that the turn scheduler
// drives: creatures fighting over an arena, a spawner feeding in
// reinforcements, and the world state the platform renders.
package dungeon

import (
	"github.com/vkotenko/tui-delver/internal/config"
	"github.com/vkotenko/tui-delver/internal/core"
	"github.com/vkotenko/tui-delver/internal/turn"
)

// sightRadius is how far an actor scans for enemies before wandering.
const sightRadius = 14

// Actor is one creature in the dungeon. It implements turn.Entity: the
// scheduler decrements its wait time and calls Update when its turn
// comes; Update acts and pays for the turn by resetting the wait time
// from the actor's speed.
type Actor struct {
	id      int
	species string
	glyph   rune
	color   core.Color
	pos     core.Point
	speed   float64
	hp      int
	maxHP   int
	damage  int
	wait    float64
	world   *World
}

// newActor builds an actor from its species config. The caller places it
// and registers it with the scheduler.
func newActor(id int, sp config.SpeciesConfig, w *World) *Actor {
	glyph := '?'
	for _, r := range sp.Glyph {
		glyph = r
		break
	}
	return &Actor{
		id:      id,
		species: sp.Name,
		glyph:   glyph,
		color:   colorByName(sp.Color),
		speed:   sp.Speed,
		hp:      sp.HP,
		maxHP:   sp.HP,
		damage:  sp.Damage,
		world:   w,
	}
}

// WaitTime returns the ticks remaining until this actor's next turn.
func (a *Actor) WaitTime() float64 { return a.wait }

// SetWaitTime overwrites the remaining wait time.
func (a *Actor) SetWaitTime(t float64) { a.wait = t }

// Update performs one turn: attack an adjacent enemy if there is one,
// otherwise advance on the nearest visible enemy, otherwise wander.
// Always ends by paying the turn cost, so the wait time rises again.
func (a *Actor) Update() {
	if target := a.adjacentEnemy(); target != nil {
		a.attack(target)
	} else if enemy := a.world.nearestEnemy(a); enemy != nil {
		a.moveToward(enemy.pos)
	} else {
		a.wander()
	}

	a.wait = a.world.cfg.Tuning.BaseDelay / a.speed
}

// adjacentEnemy returns an enemy in one of the eight surrounding cells,
// or nil. Reading order keeps the choice deterministic.
func (a *Actor) adjacentEnemy() *Actor {
	for _, p := range a.pos.Neighbors() {
		if other := a.world.actorAt(p); other != nil && other.species != a.species {
			return other
		}
	}
	return nil
}

// attack deals this actor's damage to the target; the world retires the
// target mid-pass if it dies.
func (a *Actor) attack(target *Actor) {
	target.hp -= a.damage
	if target.hp <= 0 {
		a.world.kill(target, a)
		return
	}
	a.world.logf("%s bites %s (%d hp left)", a.species, target.species, target.hp)
}

// moveToward takes one step closer to the target cell, if the step is
// walkable and free.
func (a *Actor) moveToward(target core.Point) {
	step := a.pos.StepToward(target)
	if a.world.isFree(step) {
		a.world.moveActor(a, step)
		return
	}
	// Direct path blocked: slide along any free neighbor that still
	// shrinks the distance.
	for _, p := range a.pos.Neighbors() {
		if a.world.isFree(p) && p.Chebyshev(target) < a.pos.Chebyshev(target) {
			a.world.moveActor(a, p)
			return
		}
	}
}

// wander moves to a random free neighboring cell, or stands still when
// boxed in.
func (a *Actor) wander() {
	free := a.pos.Neighbors()
	n := 0
	for _, p := range free {
		if a.world.isFree(p) {
			free[n] = p
			n++
		}
	}
	if n == 0 {
		return
	}
	a.world.moveActor(a, free[a.world.rng.Intn(n)])
}

// Species returns the actor's species name.
func (a *Actor) Species() string { return a.species }

// Pos returns the actor's current cell.
func (a *Actor) Pos() core.Point { return a.pos }

// HP returns the actor's current hit points.
func (a *Actor) HP() int { return a.hp }

// colorByName maps a config color name to a core color.
// Unknown names fall back to the default color.
func colorByName(name string) core.Color {
	switch name {
	case "red":
		return core.ColorRed
	case "green":
		return core.ColorGreen
	case "yellow":
		return core.ColorYellow
	case "blue":
		return core.ColorBlue
	case "magenta":
		return core.ColorMagenta
	case "cyan":
		return core.ColorCyan
	case "white":
		return core.ColorWhite
	case "orange":
		return core.ColorOrange
	case "gray":
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}

// Actor must satisfy the scheduler's entity contract.
var _ turn.Entity = (*Actor)(nil)

package core

// RuntimeConfig contains configuration passed to scenarios at
// initialization. Scenarios use it to adapt to screen size and for
// deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Scheduler passes per second in the viewer (default 10)
	Seed     int64 // RNG seed for deterministic simulation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// SimState reports the simulation's status to the platform after each
// scheduler pass.
type SimState struct {
	Turn    int     // Completed scheduler passes
	Clock   float64 // Virtual time consumed so far
	Alive   int     // Living actors
	Spawned int     // Actors spawned since the start, initial population included
	Slain   int     // Actors slain since the start
	Paused  bool    // Whether the scheduler is paused
	Over    bool    // True once at most one faction remains and reinforcements are spent
	Winner  string  // Surviving faction once the fight is over, empty otherwise
}

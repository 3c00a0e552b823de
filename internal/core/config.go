package core

import "math"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Dt returns the fixed timestep in seconds for one simulation tick.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 0
	}
	return 1.0 / float64(c.TickRate)
}

// Ticks converts a duration in seconds to a whole number of simulation
// ticks, rounding to nearest. Timers in the simulation count ticks, not
// seconds, so expiry happens on an exact tick boundary.
func (c RuntimeConfig) Ticks(seconds float64) int {
	if seconds <= 0 {
		return 0
	}
	n := int(math.Round(seconds * float64(c.TickRate)))
	if n < 1 {
		return 1
	}
	return n
}

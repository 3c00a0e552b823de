package survivor

// RNG is the randomness source injected into simulation components.
// Tests supply fixed-sequence implementations; the game supplies
// seeded SimpleRNG streams so runs replay deterministically.
type RNG interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int
	// Float64 returns a random float64 in [0, 1).
	Float64() float64
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a simple LCG (Linear Congruential Generator) whose single
// uint64 state can be captured in snapshots.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	// LCG parameters (same as MINSTD)
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()) / float64(1<<64)
}

// State returns the current generator state for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

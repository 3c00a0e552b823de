// Package config provides YAML-based world catalog loading and validation
// for the survivor game.
package config

import "fmt"

// WorldSpec describes the difficulty table entry for a single world.
type WorldSpec struct {
	Index                int     `yaml:"index"`
	Name                 string  `yaml:"name"`
	TotalRounds          int     `yaml:"total_rounds"`
	DifficultyMultiplier float64 `yaml:"difficulty_multiplier"`
	QuotaStep            int     `yaml:"quota_step"`
	BossUnlocked         bool    `yaml:"boss_unlocked"`
	HazardsUnlocked      bool    `yaml:"hazards_unlocked"`
}

// EndlessSpec controls difficulty growth once the final world is cleared
// and the run continues in endless mode.
type EndlessSpec struct {
	// GrowthPerRound is added to the final world's multiplier for each
	// round survived beyond it ("multiplier * (1 + growth*rounds)").
	GrowthPerRound float64 `yaml:"growth_per_round"`
}

// WorldCatalog is the static per-world difficulty table. It is loaded once
// at startup and never mutated; all run-time progression reads from it.
type WorldCatalog struct {
	Version int         `yaml:"version"`
	Worlds  []WorldSpec `yaml:"worlds"`
	Endless EndlessSpec `yaml:"endless"`
}

// ValidationError contains details about catalog validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// MaxWorld returns the index of the last world in the catalog.
func (c WorldCatalog) MaxWorld() int {
	return len(c.Worlds)
}

// World returns the spec for the given 1-based world index.
func (c WorldCatalog) World(index int) (WorldSpec, bool) {
	if index < 1 || index > len(c.Worlds) {
		return WorldSpec{}, false
	}
	return c.Worlds[index-1], true
}

// FinalWorld returns the spec of the last world. The catalog must have
// passed Validate, which guarantees at least one world.
func (c WorldCatalog) FinalWorld() WorldSpec {
	return c.Worlds[len(c.Worlds)-1]
}

// Validate checks the catalog for structural problems. A catalog that
// fails validation must not be used; the caller treats this as fatal.
// Checks:
//   - at least one world is defined
//   - world indexes are contiguous starting at 1
//   - every world has positive rounds and multiplier
//   - quota steps are at least 1
//   - endless growth is not negative
func (c WorldCatalog) Validate() error {
	if len(c.Worlds) == 0 {
		return ValidationError{
			Code:    "NO_WORLDS",
			Message: "catalog defines no worlds",
		}
	}

	for i, w := range c.Worlds {
		want := i + 1
		if w.Index != want {
			return ValidationError{
				Code:    "BAD_INDEX",
				Message: fmt.Sprintf("world at position %d has index %d, expected %d", i, w.Index, want),
			}
		}
		if w.TotalRounds < 1 {
			return ValidationError{
				Code:    "BAD_ROUNDS",
				Message: fmt.Sprintf("world %d: total_rounds %d must be at least 1", w.Index, w.TotalRounds),
			}
		}
		if w.DifficultyMultiplier <= 0 {
			return ValidationError{
				Code:    "BAD_MULTIPLIER",
				Message: fmt.Sprintf("world %d: difficulty_multiplier %g must be positive", w.Index, w.DifficultyMultiplier),
			}
		}
		if w.QuotaStep < 1 {
			return ValidationError{
				Code:    "BAD_QUOTA_STEP",
				Message: fmt.Sprintf("world %d: quota_step %d must be at least 1", w.Index, w.QuotaStep),
			}
		}
	}

	if c.Endless.GrowthPerRound < 0 {
		return ValidationError{
			Code:    "BAD_ENDLESS_GROWTH",
			Message: fmt.Sprintf("endless growth_per_round %g must not be negative", c.Endless.GrowthPerRound),
		}
	}

	return nil
}

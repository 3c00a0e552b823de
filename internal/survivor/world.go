package survivor

import (
	"github.com/vkoshelev/tui-survivor/internal/config"
)

// GameMode distinguishes campaign progression from endless play.
type GameMode int

const (
	ModeCampaign GameMode = iota
	ModeEndless
)

// String returns the persisted name of the mode.
func (m GameMode) String() string {
	if m == ModeEndless {
		return "endless"
	}
	return "campaign"
}

// ParseMode maps a persisted mode name back to a GameMode.
func ParseMode(s string) (GameMode, bool) {
	switch s {
	case "campaign":
		return ModeCampaign, true
	case "endless":
		return ModeEndless, true
	default:
		return ModeCampaign, false
	}
}

// WorldState tracks the run's position in the world catalog. It holds
// no entity state; round transitions are driven by the game reacting to
// round-cleared signals.
type WorldState struct {
	catalog config.WorldCatalog

	World        int  // 1-based world index
	Round        int  // 1-based round within the world, unbounded in endless
	Endless      bool // final world cleared, rounds continue
	HighestRound int  // highest global round reached this run
}

// NewWorldState starts a fresh run at world 1, round 1.
func NewWorldState(catalog config.WorldCatalog) *WorldState {
	w := &WorldState{catalog: catalog, World: 1, Round: 1}
	w.trackHighest()
	return w
}

// Restore positions the state from a saved run.
func (w *WorldState) Restore(world, round int, endless bool, highestRound int) {
	w.World = world
	w.Round = round
	w.Endless = endless
	w.HighestRound = highestRound
	w.trackHighest()
}

// Spec returns the catalog entry for the current world.
func (w *WorldState) Spec() config.WorldSpec {
	spec, _ := w.catalog.World(w.World)
	return spec
}

// GlobalRound returns the 1-based round counted across all worlds.
func (w *WorldState) GlobalRound() int {
	total := 0
	for i := 1; i < w.World; i++ {
		spec, _ := w.catalog.World(i)
		total += spec.TotalRounds
	}
	return total + w.Round
}

// Mode returns the current play mode.
func (w *WorldState) Mode() GameMode {
	if w.Endless {
		return ModeEndless
	}
	return ModeCampaign
}

// AdvanceRound moves to the next round after a clear.
func (w *WorldState) AdvanceRound() {
	w.Round++
	w.trackHighest()
}

// IsWorldComplete reports whether the round counter has passed the
// world's final round. Endless mode never completes a world.
func (w *WorldState) IsWorldComplete() bool {
	if w.Endless {
		return false
	}
	return w.Round > w.Spec().TotalRounds
}

// AdvanceWorld moves to the next world after completion. Completing
// the final world unlocks endless mode instead: the world stays put and
// the round counter keeps climbing without bound.
func (w *WorldState) AdvanceWorld() {
	if w.World >= w.catalog.MaxWorld() {
		w.Endless = true
		return
	}
	w.World++
	w.Round = 1
	w.trackHighest()
}

// DifficultyMultiplier returns the effective multiplier for the current
// position. Campaign reads the catalog table directly; endless grows
// the final world's value per round survived beyond it.
func (w *WorldState) DifficultyMultiplier() float64 {
	spec := w.Spec()
	if !w.Endless {
		return spec.DifficultyMultiplier
	}
	beyond := w.Round - spec.TotalRounds
	if beyond < 0 {
		beyond = 0
	}
	return spec.DifficultyMultiplier * (1 + w.catalog.Endless.GrowthPerRound*float64(beyond))
}

// IsBossRound reports whether the current round hosts a boss: the world
// must have bosses unlocked in the catalog and the global round must be
// a multiple of BossEvery.
func (w *WorldState) IsBossRound() bool {
	return w.Spec().BossUnlocked && w.GlobalRound()%BossEvery == 0
}

func (w *WorldState) trackHighest() {
	if g := w.GlobalRound(); g > w.HighestRound {
		w.HighestRound = g
	}
}

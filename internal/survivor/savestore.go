package survivor

import (
	"time"

	"github.com/vkoshelev/tui-survivor/internal/config"
)

// SaveVersion is bumped when SaveRecord changes incompatibly. Records
// with another version are treated as absent.
const SaveVersion = 1

// SaveRecord is the persisted progress of a run, written at round
// boundaries only. Entity state is never saved: resuming places the
// player at the start of the recorded round with full control of the
// recorded loadout.
type SaveRecord struct {
	Version int       `json:"version"`
	SavedAt time.Time `json:"saved_at"`
	Mode    string    `json:"mode"` // "campaign" or "endless"

	World int `json:"world"`
	Round int `json:"round"`

	PlayerHP    int      `json:"player_hp"`
	PlayerMaxHP int      `json:"player_max_hp"`
	Weapons     []int    `json:"weapons"` // WeaponKind values, slot order
	ActiveSlot  int      `json:"active_slot"`
	Coins       int      `json:"coins"`
	Upgrades    Upgrades `json:"upgrades"`

	Kills           int `json:"kills"`
	TimeSurvivedSec int `json:"time_survived_sec"`
	HighestRound    int `json:"highest_round"`
}

// Valid reports whether the record can seed a run against the given
// catalog. Loaders treat invalid records as absent rather than as
// errors, so a corrupt or out-of-range save starts a fresh run.
func (r *SaveRecord) Valid(catalog config.WorldCatalog) bool {
	if r == nil || r.Version != SaveVersion {
		return false
	}
	mode, ok := ParseMode(r.Mode)
	if !ok {
		return false
	}

	spec, ok := catalog.World(r.World)
	if !ok {
		return false
	}
	if r.Round < 1 {
		return false
	}
	if mode == ModeEndless {
		// Endless runs live in the final world with unbounded rounds
		if r.World != catalog.MaxWorld() {
			return false
		}
	} else if r.Round > spec.TotalRounds {
		return false
	}

	if r.PlayerMaxHP < 1 || r.PlayerHP < 1 || r.PlayerHP > r.PlayerMaxHP {
		return false
	}
	if len(r.Weapons) > 3 {
		return false
	}
	for _, w := range r.Weapons {
		if w < int(WeaponNone) || w > int(WeaponPlasma) {
			return false
		}
	}
	if r.ActiveSlot < 0 || r.ActiveSlot > 2 {
		return false
	}
	if r.Coins < 0 || r.Kills < 0 || r.TimeSurvivedSec < 0 || r.HighestRound < 1 {
		return false
	}
	return true
}

// SaveStore persists run progress at round boundaries. Load returns
// (nil, nil) when no usable save exists; corrupt or invalid data is
// "no save", never an error.
type SaveStore interface {
	Commit(rec SaveRecord) error
	Load() (*SaveRecord, error)
}

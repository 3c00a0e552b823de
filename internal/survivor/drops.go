package survivor

import (
	"fmt"

	"github.com/vkoshelev/tui-survivor/internal/core"
)

// Rarity grades drops. Higher tiers of enemies floor the rolled rarity.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityLegendary
	rarityCount
)

// String returns the display name of the rarity.
func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityUncommon:
		return "Uncommon"
	case RarityRare:
		return "Rare"
	case RarityLegendary:
		return "Legendary"
	default:
		return "?"
	}
}

// EnemyTier is the drop quality level of an enemy.
type EnemyTier int

const (
	TierNone   EnemyTier = iota // never drops (minions)
	TierNormal                  // rolls the base table
	TierElite                   // rarity floored at Uncommon, always drops
	TierBoss                    // rarity floored at Rare, always drops
)

// Tier returns the drop tier for an enemy class.
func (c EnemyClass) Tier() EnemyTier {
	switch c {
	case ClassElite:
		return TierElite
	case ClassBoss:
		return TierBoss
	case ClassMinion:
		return TierNone
	default:
		return TierNormal
	}
}

// DropKind selects the payload variant of a Drop.
type DropKind int

const (
	DropHeal DropKind = iota
	DropCoins
	DropWeapon
	DropPowerup
)

// Drop is a reward payload carried by a drop entity until pickup.
type Drop struct {
	Kind    DropKind
	Rarity  Rarity
	Amount  int // heal points or coin count
	Weapon  WeaponKind
	Powerup PowerupKind
}

// Glyph returns the display character for the drop.
func (d Drop) Glyph() rune {
	switch d.Kind {
	case DropHeal:
		return '+'
	case DropCoins:
		return '$'
	case DropWeapon:
		return '/'
	case DropPowerup:
		return '?'
	default:
		return '?'
	}
}

// Color returns the display color for the drop.
func (d Drop) Color() core.Color {
	switch d.Kind {
	case DropHeal:
		return core.ColorBrightGreen
	case DropCoins:
		return core.ColorBrightYellow
	case DropWeapon:
		return core.ColorBrightBlue
	case DropPowerup:
		return core.ColorBrightCyan
	default:
		return core.ColorDefault
	}
}

// String returns a short pickup description for the HUD.
func (d Drop) String() string {
	switch d.Kind {
	case DropHeal:
		return fmt.Sprintf("Heal +%d", d.Amount)
	case DropCoins:
		if d.Amount == 1 {
			return "1 coin"
		}
		return fmt.Sprintf("%d coins", d.Amount)
	case DropWeapon:
		return d.Weapon.String()
	case DropPowerup:
		return d.Powerup.String()
	default:
		return "?"
	}
}

// DropTable defines rarity weights and the payload pool per rarity.
// Weights are probabilities that should sum to 1; if they sum short and
// the roll lands past the last bucket, no drop is produced.
type DropTable struct {
	Weights [rarityCount]float64
	Pools   [rarityCount][]Drop
}

// DefaultDropTable returns the standard reward table.
func DefaultDropTable() DropTable {
	return DropTable{
		Weights: [rarityCount]float64{0.60, 0.30, 0.09, 0.01},
		Pools: [rarityCount][]Drop{
			RarityCommon: {
				{Kind: DropHeal, Amount: 20},
				{Kind: DropCoins, Amount: 1},
				{Kind: DropCoins, Amount: 3},
				{Kind: DropWeapon, Weapon: WeaponPistol},
			},
			RarityUncommon: {
				{Kind: DropHeal, Amount: 40},
				{Kind: DropCoins, Amount: 5},
				{Kind: DropWeapon, Weapon: WeaponShotgun},
			},
			RarityRare: {
				{Kind: DropWeapon, Weapon: WeaponRifle},
				{Kind: DropWeapon, Weapon: WeaponPlasma},
				{Kind: DropPowerup, Powerup: PowerupSpeed},
				{Kind: DropPowerup, Powerup: PowerupDamage},
				{Kind: DropPowerup, Powerup: PowerupShield},
				{Kind: DropCoins, Amount: 10},
			},
			RarityLegendary: {
				{Kind: DropHeal, Amount: 75},
				{Kind: DropWeapon, Weapon: WeaponRifle},
				{Kind: DropWeapon, Weapon: WeaponPlasma},
				{Kind: DropPowerup, Powerup: PowerupInvincibility},
			},
		},
	}
}

// DropResolver rolls loot for killed enemies.
type DropResolver struct {
	Table DropTable
}

// NewDropResolver creates a resolver with the default table.
func NewDropResolver() *DropResolver {
	return &DropResolver{Table: DefaultDropTable()}
}

// Resolve rolls a drop for an enemy of the given tier. Returns nil when
// nothing drops: minions never drop, normal enemies miss the drop
// chance, or the table is misconfigured (a broken table degrades to
// no-drop rather than failing the kill).
//
// The roll walks the cumulative rarity weights, then the tier floors
// the result (elite at Uncommon, boss at Rare), then a payload is
// picked uniformly from the rarity's pool.
func (r *DropResolver) Resolve(tier EnemyTier, rng RNG) *Drop {
	if tier == TierNone {
		return nil
	}
	if tier == TierNormal && rng.Float64() >= DropChanceNormal {
		return nil
	}

	roll := rng.Float64()
	rarity := Rarity(-1)
	cumulative := 0.0
	for i := 0; i < int(rarityCount); i++ {
		cumulative += r.Table.Weights[i]
		if roll < cumulative {
			rarity = Rarity(i)
			break
		}
	}
	if rarity < 0 {
		return nil
	}

	switch tier {
	case TierElite:
		if rarity < RarityUncommon {
			rarity = RarityUncommon
		}
	case TierBoss:
		if rarity < RarityRare {
			rarity = RarityRare
		}
	}

	pool := r.Table.Pools[rarity]
	if len(pool) == 0 {
		return nil
	}

	drop := pool[rng.Intn(len(pool))]
	drop.Rarity = rarity
	return &drop
}

package survivor

// UpgradeKind identifies a permanent upgrade purchasable with coins
// during the break between rounds.
type UpgradeKind int

const (
	UpgradeMaxHP UpgradeKind = iota
	UpgradeSpeed
	UpgradeDamage
	UpgradeFireRate
	upgradeCount
)

// Upgrade effect per purchased level.
const (
	UpgradeMaxHPAmount  = 20   // flat max health per level
	UpgradeSpeedStep    = 0.10 // +10% movement per level
	UpgradeDamageStep   = 0.15 // +15% weapon damage per level
	UpgradeFireRateStep = 0.10 // +10% fire rate per level
)

// String returns the shop label for the upgrade.
func (u UpgradeKind) String() string {
	switch u {
	case UpgradeMaxHP:
		return "Max HP"
	case UpgradeSpeed:
		return "Speed"
	case UpgradeDamage:
		return "Damage"
	case UpgradeFireRate:
		return "Fire Rate"
	default:
		return "?"
	}
}

// Cost returns the coin price of one level. Prices are flat; every
// upgrade can be bought repeatedly.
func (u UpgradeKind) Cost() int {
	switch u {
	case UpgradeMaxHP:
		return 50
	case UpgradeSpeed:
		return 40
	case UpgradeDamage:
		return 60
	case UpgradeFireRate:
		return 50
	default:
		return 0
	}
}

// Upgrades counts purchased levels per upgrade kind. Levels persist
// across rounds and are stored in the save file.
type Upgrades struct {
	MaxHP    int `json:"max_hp"`
	Speed    int `json:"speed"`
	Damage   int `json:"damage"`
	FireRate int `json:"fire_rate"`
}

// Level returns the purchased level for a kind.
func (u *Upgrades) Level(kind UpgradeKind) int {
	switch kind {
	case UpgradeMaxHP:
		return u.MaxHP
	case UpgradeSpeed:
		return u.Speed
	case UpgradeDamage:
		return u.Damage
	case UpgradeFireRate:
		return u.FireRate
	default:
		return 0
	}
}

// Add records one purchased level.
func (u *Upgrades) Add(kind UpgradeKind) {
	switch kind {
	case UpgradeMaxHP:
		u.MaxHP++
	case UpgradeSpeed:
		u.Speed++
	case UpgradeDamage:
		u.Damage++
	case UpgradeFireRate:
		u.FireRate++
	}
}

// BonusMaxHP returns the flat max health bonus from upgrades.
func (u *Upgrades) BonusMaxHP() int {
	return u.MaxHP * UpgradeMaxHPAmount
}

// SpeedMult returns the movement multiplier from upgrades.
func (u *Upgrades) SpeedMult() float64 {
	return 1 + UpgradeSpeedStep*float64(u.Speed)
}

// DamageMult returns the weapon damage multiplier from upgrades.
func (u *Upgrades) DamageMult() float64 {
	return 1 + UpgradeDamageStep*float64(u.Damage)
}

// FireIntervalMult returns the factor applied to weapon fire intervals.
// Higher fire rate levels shorten the interval.
func (u *Upgrades) FireIntervalMult() float64 {
	return 1 / (1 + UpgradeFireRateStep*float64(u.FireRate))
}

// Reset clears all purchased levels.
func (u *Upgrades) Reset() {
	*u = Upgrades{}
}

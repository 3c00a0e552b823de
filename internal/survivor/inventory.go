package survivor

// PowerupKind represents a temporary player buff.
type PowerupKind int

const (
	PowerupShield        PowerupKind = iota // absorbs hits, charge counter
	PowerupInvincibility                    // immune to all damage
	PowerupSpeed                            // movement multiplier
	PowerupDamage                           // weapon damage multiplier
)

// String returns the display name of the powerup.
func (p PowerupKind) String() string {
	switch p {
	case PowerupShield:
		return "Shield"
	case PowerupInvincibility:
		return "Invincibility"
	case PowerupSpeed:
		return "Speed"
	case PowerupDamage:
		return "Damage"
	default:
		return "?"
	}
}

// DurationSec returns the powerup duration in seconds. Shield returns 0:
// it is a hit counter, not a timer.
func (p PowerupKind) DurationSec() float64 {
	switch p {
	case PowerupInvincibility:
		return PowerupInvincibleSec
	case PowerupSpeed:
		return PowerupSpeedSec
	case PowerupDamage:
		return PowerupDamageSec
	default:
		return 0
	}
}

// PowerupEffect is an active timed buff.
type PowerupEffect struct {
	Kind      PowerupKind
	UntilTick int // tick at which the effect expires
}

// TicksRemaining returns how many ticks until the effect expires.
func (e *PowerupEffect) TicksRemaining(currentTick int) int {
	remaining := e.UntilTick - currentTick
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Inventory holds the player's weapons, coins and active powerups.
type Inventory struct {
	Weapons    [3]WeaponKind
	Active     int // index of the selected slot
	Coins      int
	ShieldLeft int // remaining shield charges
	Effects    []*PowerupEffect
}

// NewInventory creates an empty inventory with slot 1 selected.
func NewInventory() *Inventory {
	return &Inventory{
		Effects: make([]*PowerupEffect, 0, 4),
	}
}

// AddWeapon places a weapon into the first empty slot. With all slots
// full, the new weapon replaces the active slot. Returns the slot used.
func (inv *Inventory) AddWeapon(w WeaponKind) int {
	for i, cur := range inv.Weapons {
		if cur == WeaponNone {
			inv.Weapons[i] = w
			return i
		}
	}
	inv.Weapons[inv.Active] = w
	return inv.Active
}

// SwitchTo selects a weapon slot. Switching to an empty slot is a
// no-op; the previous selection stays. Returns whether the switch
// took effect.
func (inv *Inventory) SwitchTo(slot int) bool {
	if slot < 0 || slot >= len(inv.Weapons) {
		return false
	}
	if inv.Weapons[slot] == WeaponNone {
		return false
	}
	inv.Active = slot
	return true
}

// ActiveWeapon returns the spec of the selected weapon. An empty slot
// yields the WeaponNone spec, which fires nothing.
func (inv *Inventory) ActiveWeapon() WeaponSpec {
	return SpecFor(inv.Weapons[inv.Active])
}

// AddPowerup activates a powerup. Picking up an already-active powerup
// refreshes it to full rather than stacking: shield charges reset to
// the maximum, timed buffs restart their countdown.
func (inv *Inventory) AddPowerup(kind PowerupKind, durationTicks, currentTick int) {
	if kind == PowerupShield {
		inv.ShieldLeft = ShieldCharges
		return
	}

	for _, e := range inv.Effects {
		if e.Kind == kind {
			e.UntilTick = currentTick + durationTicks
			return
		}
	}
	inv.Effects = append(inv.Effects, &PowerupEffect{
		Kind:      kind,
		UntilTick: currentTick + durationTicks,
	})
}

// Tick expires powerups whose time is up and returns the expired kinds.
// An effect with duration D added at tick T is active for exactly D
// ticks; at tick T+D its multiplier no longer applies.
func (inv *Inventory) Tick(currentTick int) []PowerupKind {
	expired := make([]PowerupKind, 0)
	active := inv.Effects[:0]

	for _, e := range inv.Effects {
		if e.UntilTick <= currentTick {
			expired = append(expired, e.Kind)
		} else {
			active = append(active, e)
		}
	}

	inv.Effects = active
	return expired
}

// Has reports whether a powerup is currently active.
func (inv *Inventory) Has(kind PowerupKind) bool {
	if kind == PowerupShield {
		return inv.ShieldLeft > 0
	}
	for _, e := range inv.Effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// SpeedMult returns the movement multiplier from active powerups.
func (inv *Inventory) SpeedMult() float64 {
	if inv.Has(PowerupSpeed) {
		return PowerupSpeedMult
	}
	return 1.0
}

// DamageMult returns the weapon damage multiplier from active powerups.
func (inv *Inventory) DamageMult() float64 {
	if inv.Has(PowerupDamage) {
		return PowerupDamageMult
	}
	return 1.0
}

// Invincible reports whether incoming damage is currently ignored.
func (inv *Inventory) Invincible() bool {
	return inv.Has(PowerupInvincibility)
}

// AbsorbHit consumes one shield charge if any remain. Returns whether
// the hit was absorbed.
func (inv *Inventory) AbsorbHit() bool {
	if inv.ShieldLeft > 0 {
		inv.ShieldLeft--
		return true
	}
	return false
}

// Reset clears the inventory back to its starting state.
func (inv *Inventory) Reset() {
	inv.Weapons = [3]WeaponKind{}
	inv.Active = 0
	inv.Coins = 0
	inv.ShieldLeft = 0
	inv.Effects = inv.Effects[:0]
}

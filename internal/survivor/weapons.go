package survivor

import (
	"math"

	"github.com/vkoshelev/tui-survivor/internal/core"
)

// WeaponKind identifies a weapon. WeaponNone marks an empty inventory slot.
type WeaponKind int

const (
	WeaponNone WeaponKind = iota
	WeaponPistol
	WeaponShotgun
	WeaponRifle
	WeaponPlasma
)

// String returns the display name of the weapon.
func (w WeaponKind) String() string {
	switch w {
	case WeaponPistol:
		return "Pistol"
	case WeaponShotgun:
		return "Shotgun"
	case WeaponRifle:
		return "Rifle"
	case WeaponPlasma:
		return "Plasma"
	default:
		return "-"
	}
}

// WeaponSpec holds the static parameters of a weapon.
type WeaponSpec struct {
	Kind            WeaponKind
	Damage          int     // per pellet, before multipliers
	FireIntervalSec float64 // minimum time between shots
	ProjectileSpeed float64 // cells per second
	Pellets         int     // projectiles per shot
	SpreadRad       float64 // total fan arc for multi-pellet shots
}

// SpecFor returns the spec for a weapon kind. WeaponNone returns a
// zero spec whose Pellets is 0, so firing it does nothing.
func SpecFor(kind WeaponKind) WeaponSpec {
	switch kind {
	case WeaponPistol:
		return WeaponSpec{Kind: kind, Damage: 10, FireIntervalSec: 0.15, ProjectileSpeed: 60, Pellets: 1}
	case WeaponShotgun:
		return WeaponSpec{Kind: kind, Damage: 8, FireIntervalSec: 0.8, ProjectileSpeed: 52, Pellets: 5, SpreadRad: 0.3}
	case WeaponRifle:
		return WeaponSpec{Kind: kind, Damage: 25, FireIntervalSec: 0.5, ProjectileSpeed: 90, Pellets: 1}
	case WeaponPlasma:
		return WeaponSpec{Kind: kind, Damage: 15, FireIntervalSec: 0.25, ProjectileSpeed: 66, Pellets: 2, SpreadRad: 0.1}
	default:
		return WeaponSpec{Kind: WeaponNone}
	}
}

// fireWeapon spawns the player projectiles for one shot. Pellets fan
// out evenly across the spread arc centered on dir; the fan layout is
// fixed so firing stays deterministic.
func fireWeapon(store *EntityStore, from core.Vec2, dir core.Vec2, spec WeaponSpec, damageMult float64, ttl int) int {
	if spec.Pellets <= 0 {
		return 0
	}

	dir = dir.Normalized()
	if dir.IsZero() {
		return 0
	}

	damage := int(math.Round(float64(spec.Damage) * damageMult))
	center := dir.Heading()

	for i := 0; i < spec.Pellets; i++ {
		angle := center
		if spec.Pellets > 1 {
			// Evenly spaced across [-spread/2, +spread/2]
			frac := float64(i)/float64(spec.Pellets-1) - 0.5
			angle = center + frac*spec.SpreadRad
		}

		store.Spawn(Entity{
			Kind:       KindProjectile,
			Pos:        from,
			Vel:        core.FromHeading(angle).Scale(spec.ProjectileSpeed),
			Radius:     ProjectileRadius,
			FromPlayer: true,
			Damage:     damage,
			TTL:        ttl,
		})
	}
	return spec.Pellets
}

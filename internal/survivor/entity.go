// Package survivor implements the arena survival simulation: a single
// player fighting escalating waves of enemies across a catalog of worlds.
// The package is deterministic for a given seed and input sequence and
// has no dependency on the terminal platform.
package survivor

import (
	"github.com/vkoshelev/tui-survivor/internal/core"
)

// EntityID uniquely identifies an entity for the lifetime of a run.
// IDs are never reused, so stale references can be detected.
type EntityID uint64

// EntityKind tags the variant of an Entity.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindProjectile
	KindDrop
	KindHazard
)

// String returns a human-readable name for the entity kind.
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindDrop:
		return "drop"
	case KindHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// EnemyClass distinguishes enemy behavior and stats.
type EnemyClass int

const (
	ClassBasic  EnemyClass = iota // Melee chaser
	ClassRanged                   // Keeps distance, fires projectiles
	ClassElite                    // Tanky chaser with better drops
	ClassBoss                     // Pattern-driven, boss rounds only
	ClassMinion                   // Summoned by the boss, no drops
)

// String returns the display name for the enemy class.
func (c EnemyClass) String() string {
	switch c {
	case ClassBasic:
		return "Basic"
	case ClassRanged:
		return "Ranged"
	case ClassElite:
		return "Elite"
	case ClassBoss:
		return "Boss"
	case ClassMinion:
		return "Minion"
	default:
		return "?"
	}
}

// BossPhase is the current step of the boss attack pattern.
type BossPhase int

const (
	BossIdle   BossPhase = iota // Chasing the player slowly
	BossSpray                   // Ring of projectiles fired on entry
	BossCharge                  // Rush along a direction frozen at entry
	BossSummon                  // Spawn minions around the boss
)

// String returns the display name for the boss phase.
func (p BossPhase) String() string {
	switch p {
	case BossIdle:
		return "Idle"
	case BossSpray:
		return "Spray"
	case BossCharge:
		return "Charge"
	case BossSummon:
		return "Summon"
	default:
		return "?"
	}
}

// Entity is a tagged variant: Kind selects which field group is live.
// A single flat struct keeps the store simple and the snapshot flat;
// code must only touch the fields matching the entity's Kind.
type Entity struct {
	ID     EntityID
	Kind   EntityKind
	Pos    core.Vec2
	Vel    core.Vec2 // cells per second
	Radius float64
	Alive  bool

	// Enemy state (KindEnemy). Hazards reuse ContactDamage and
	// ContactCooldown for their periodic damage field.
	Class           EnemyClass
	HP              int
	MaxHP           int
	Speed           float64 // base cells per second before scaling
	ContactDamage   int
	ContactCooldown int // ticks until this entity may damage the player again
	FireCooldown    int // ranged: ticks until the next shot

	// Boss pattern state (ClassBoss)
	BossStep  int // index into the pattern cycle
	BossPhase BossPhase
	PhaseLeft int       // ticks remaining in the current phase
	ChargeDir core.Vec2 // frozen when a charge begins

	// Projectile state (KindProjectile)
	FromPlayer bool
	Damage     int
	TTL        int // ticks until despawn; drops reuse this as pickup lifetime

	// Drop payload (KindDrop)
	Payload Drop
}

// Glyph returns the display character for the entity.
func (e *Entity) Glyph() rune {
	switch e.Kind {
	case KindPlayer:
		return '@'
	case KindEnemy:
		switch e.Class {
		case ClassRanged:
			return 'r'
		case ClassElite:
			return 'E'
		case ClassBoss:
			return '&'
		case ClassMinion:
			return 'm'
		default:
			return 'e'
		}
	case KindProjectile:
		if e.FromPlayer {
			return '•'
		}
		return '*'
	case KindDrop:
		return e.Payload.Glyph()
	case KindHazard:
		return '^'
	default:
		return '?'
	}
}

// Color returns the display color for the entity.
func (e *Entity) Color() core.Color {
	switch e.Kind {
	case KindPlayer:
		return core.ColorBrightCyan
	case KindEnemy:
		switch e.Class {
		case ClassRanged:
			return core.ColorMagenta
		case ClassElite:
			return core.ColorBrightRed
		case ClassBoss:
			return core.ColorBrightMagenta
		case ClassMinion:
			return core.ColorOrange
		default:
			return core.ColorRed
		}
	case KindProjectile:
		if e.FromPlayer {
			return core.ColorBrightWhite
		}
		return core.ColorOrange
	case KindDrop:
		return e.Payload.Color()
	case KindHazard:
		return core.ColorYellow
	default:
		return core.ColorDefault
	}
}

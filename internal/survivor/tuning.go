package survivor

import "math"

// Gameplay tuning. All distances are in cells, speeds in cells per
// second, durations in seconds; durations are converted to ticks once
// through core.RuntimeConfig.Ticks so timers expire on exact ticks.
const (
	// Player
	PlayerMaxHP  = 100
	PlayerSpeed  = 24.0
	PlayerRadius = 1.2

	// Combat
	ContactCooldownSec    = 1.0 // per enemy, between contact hits
	HazardCooldownSec     = 1.0 // per hazard, between damage ticks
	HazardDamage          = 12
	HazardRadius          = 1.6
	ProjectileLifetimeSec = 2.0
	ProjectileRadius      = 0.4
	EnemySpeedCap         = 30.0

	// Ranged enemies
	RangedFireIntervalSec = 2.0
	RangedShotSpeed       = 30.0
	RangedShotDamage      = 8
	RangedKeepDistance    = 12.0 // preferred distance to the player

	// Drops
	DropTTLSec       = 30.0
	DropRadius       = 0.9
	DropChanceNormal = 0.35 // elites and bosses always drop

	// Boss pattern
	BossRingProjectiles  = 12
	BossRingDamage       = 12
	BossRingSpeed        = 36.0
	BossChargeMultiplier = 3.0
	BossSummonCount      = 4
	BossIdleLongSec      = 2.0
	BossSpraySec         = 0.8
	BossIdleShortSec     = 1.5
	BossChargeSec        = 0.9
	BossSummonSec        = 0.5

	// Rounds
	BaseQuota           = 5
	SpawnIntervalSec    = 1.5
	MinSpawnIntervalSec = 0.35
	RoundBreakSec       = 3.0
	MaxLiveEnemies      = 40
	BossEvery           = 10 // boss rounds are global round multiples of this
	HazardBaseCount     = 2
	HazardPerRounds     = 4 // one extra hazard per this many rounds
	HazardMaxCount      = 6

	// Enemy class mix (percent chances, remainder is Basic)
	RangedFromWorld   = 2
	RangedBasePct     = 20
	RangedPctPerWorld = 2
	EliteFromWorld    = 4
	EliteBasePct      = 10
	ElitePctPerWorld  = 2

	// Per-round growth within a world, applied as factor^(round-1).
	// The exponent is capped at the world's round count so endless mode
	// grows via the catalog's endless multiplier instead of compounding.
	RoundHPGrowth     = 1.15
	RoundSpeedGrowth  = 1.05
	RoundDamageGrowth = 1.10

	// Powerups
	ShieldCharges        = 3
	PowerupSpeedMult     = 1.5
	PowerupDamageMult    = 2.0
	PowerupSpeedSec      = 10.0
	PowerupDamageSec     = 10.0
	PowerupInvincibleSec = 5.0
)

// enemyStats holds the unscaled base stats for an enemy class.
type enemyStats struct {
	HP            int
	Speed         float64
	Radius        float64
	ContactDamage int
}

// statsFor returns the base stats for an enemy class.
func statsFor(class EnemyClass) enemyStats {
	switch class {
	case ClassRanged:
		return enemyStats{HP: 24, Speed: 7, Radius: 1.0, ContactDamage: 8}
	case ClassElite:
		return enemyStats{HP: 90, Speed: 11, Radius: 1.4, ContactDamage: 15}
	case ClassBoss:
		return enemyStats{HP: 600, Speed: 6, Radius: 3.0, ContactDamage: 25}
	case ClassMinion:
		return enemyStats{HP: 12, Speed: 12, Radius: 0.8, ContactDamage: 5}
	default:
		return enemyStats{HP: 30, Speed: 9, Radius: 1.0, ContactDamage: 10}
	}
}

// difficultyScale is the combined world and round scaling applied to
// freshly spawned enemies.
type difficultyScale struct {
	HP     float64
	Speed  float64
	Damage float64
}

// scaleFor computes enemy scaling for a round. mult is the world's
// difficulty multiplier (already endless-adjusted), round is the 1-based
// round within the world and totalRounds caps the growth exponent.
func scaleFor(mult float64, round, totalRounds int) difficultyScale {
	r := round
	if r > totalRounds {
		r = totalRounds
	}
	exp := float64(r - 1)
	return difficultyScale{
		HP:     mult * math.Pow(RoundHPGrowth, exp),
		Speed:  mult * math.Pow(RoundSpeedGrowth, exp),
		Damage: mult * math.Pow(RoundDamageGrowth, exp),
	}
}

// apply scales base stats, clamping speed to keep late rounds playable.
func (s difficultyScale) apply(base enemyStats) enemyStats {
	speed := base.Speed * s.Speed
	if speed > EnemySpeedCap {
		speed = EnemySpeedCap
	}
	return enemyStats{
		HP:            int(math.Round(float64(base.HP) * s.HP)),
		Speed:         speed,
		Radius:        base.Radius,
		ContactDamage: int(math.Round(float64(base.ContactDamage) * s.Damage)),
	}
}

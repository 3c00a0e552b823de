package survivor

import (
	"math"

	"github.com/vkoshelev/tui-survivor/internal/core"
)

// bossPhases is the fixed attack cycle. The boss walks this table in
// order and wraps around; entry actions fire once per transition.
var bossPhases = []struct {
	Phase  BossPhase
	DurSec float64
}{
	{BossIdle, BossIdleLongSec},
	{BossSpray, BossSpraySec},
	{BossIdle, BossIdleShortSec},
	{BossCharge, BossChargeSec},
	{BossIdle, BossIdleShortSec},
	{BossSummon, BossSummonSec},
}

// initBoss primes the pattern state of a freshly spawned boss.
func initBoss(e *Entity, cfg core.RuntimeConfig) {
	e.BossStep = 0
	e.BossPhase = bossPhases[0].Phase
	e.PhaseLeft = cfg.Ticks(bossPhases[0].DurSec)
}

// updateBoss advances the pattern machine and steers the boss for one
// tick. Projectiles and minions spawn directly into the store; pattern
// transitions are reported as events.
func updateBoss(e *Entity, player *Entity, store *EntityStore, cfg core.RuntimeConfig, scale difficultyScale) []Event {
	var events []Event

	e.PhaseLeft--
	if e.PhaseLeft <= 0 {
		e.BossStep = (e.BossStep + 1) % len(bossPhases)
		next := bossPhases[e.BossStep]
		e.BossPhase = next.Phase
		e.PhaseLeft = cfg.Ticks(next.DurSec)
		events = append(events, Event{
			Kind:   EventBossPatternChanged,
			Entity: e.ID,
			Class:  e.Class,
			Phase:  next.Phase,
		})

		switch next.Phase {
		case BossSpray:
			sprayRing(e, store, cfg, scale)
		case BossCharge:
			dir := player.Pos.Sub(e.Pos).Normalized()
			if dir.IsZero() {
				dir = core.Vec2{X: 1}
			}
			e.ChargeDir = dir
		case BossSummon:
			summonMinions(e, store, scale)
		}
	}

	switch e.BossPhase {
	case BossCharge:
		e.Vel = e.ChargeDir.Scale(e.Speed * BossChargeMultiplier)
	case BossIdle:
		dir := player.Pos.Sub(e.Pos).Normalized()
		e.Vel = dir.Scale(e.Speed)
	default:
		// Spray and Summon hold position
		e.Vel = core.Vec2{}
	}

	return events
}

// sprayRing fires an even ring of projectiles around the boss, one
// every 360/N degrees.
func sprayRing(e *Entity, store *EntityStore, cfg core.RuntimeConfig, scale difficultyScale) {
	damage := int(math.Round(BossRingDamage * scale.Damage))
	ttl := cfg.Ticks(ProjectileLifetimeSec)

	for i := 0; i < BossRingProjectiles; i++ {
		angle := 2 * math.Pi * float64(i) / float64(BossRingProjectiles)
		dir := core.FromHeading(angle)
		store.Spawn(Entity{
			Kind:   KindProjectile,
			Pos:    e.Pos.Add(dir.Scale(e.Radius)),
			Vel:    dir.Scale(BossRingSpeed),
			Radius: ProjectileRadius,
			Damage: damage,
			TTL:    ttl,
		})
	}
}

// summonMinions spawns minions in a circle around the boss, staying
// under the global live-enemy cap.
func summonMinions(e *Entity, store *EntityStore, scale difficultyScale) {
	budget := MaxLiveEnemies - store.CountAlive(KindEnemy)
	count := BossSummonCount
	if count > budget {
		count = budget
	}

	base := statsFor(ClassMinion)
	stats := scale.apply(base)

	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(BossSummonCount)
		offset := core.FromHeading(angle).Scale(e.Radius + 1.5)
		store.Spawn(Entity{
			Kind:          KindEnemy,
			Class:         ClassMinion,
			Pos:           e.Pos.Add(offset),
			Radius:        stats.Radius,
			HP:            stats.HP,
			MaxHP:         stats.HP,
			Speed:         stats.Speed,
			ContactDamage: stats.ContactDamage,
		})
	}
}

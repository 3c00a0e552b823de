package survivor

import (
	"math"
	"testing"

	"github.com/vkoshelev/tui-survivor/internal/core"
)

func newBossEnv() (*EntityStore, *Entity, *Entity, core.RuntimeConfig) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
	store := NewEntityStore()

	player := store.Spawn(Entity{
		Kind:   KindPlayer,
		Pos:    core.Vec2{X: 20, Y: 12},
		Radius: PlayerRadius,
		HP:     PlayerMaxHP,
		MaxHP:  PlayerMaxHP,
	})

	stats := statsFor(ClassBoss)
	boss := store.Spawn(Entity{
		Kind:          KindEnemy,
		Class:         ClassBoss,
		Pos:           core.Vec2{X: 60, Y: 12},
		Radius:        stats.Radius,
		HP:            stats.HP,
		MaxHP:         stats.HP,
		Speed:         stats.Speed,
		ContactDamage: stats.ContactDamage,
	})
	initBoss(boss, cfg)

	return store, boss, player, cfg
}

func TestBossPatternCycle(t *testing.T) {
	store, boss, player, cfg := newBossEnv()
	scale := difficultyScale{HP: 1, Speed: 1, Damage: 1}

	if boss.BossPhase != BossIdle {
		t.Fatalf("Boss should start idle, got %v", boss.BossPhase)
	}

	want := []BossPhase{BossSpray, BossIdle, BossCharge, BossIdle, BossSummon, BossIdle}
	var got []BossPhase
	for i := 0; i < cfg.TickRate*10 && len(got) < len(want); i++ {
		for _, ev := range updateBoss(boss, player, store, cfg, scale) {
			if ev.Kind == EventBossPatternChanged {
				got = append(got, ev.Phase)
			}
		}
	}

	if len(got) != len(want) {
		t.Fatalf("Expected %d phase transitions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Transition %d should be %v, got %v", i, want[i], got[i])
		}
	}
}

func TestBossSprayRing(t *testing.T) {
	store, boss, player, cfg := newBossEnv()
	scale := difficultyScale{HP: 1, Speed: 1, Damage: 1}

	// Jump to the last idle tick before the spray
	boss.PhaseLeft = 1
	updateBoss(boss, player, store, cfg, scale)

	if boss.BossPhase != BossSpray {
		t.Fatalf("Boss should be spraying, got %v", boss.BossPhase)
	}

	shots := store.Kind(KindProjectile)
	if len(shots) != BossRingProjectiles {
		t.Fatalf("Spray should fire %d projectiles, got %d", BossRingProjectiles, len(shots))
	}

	for i, p := range shots {
		angle := 2 * math.Pi * float64(i) / BossRingProjectiles
		want := core.FromHeading(angle).Scale(BossRingSpeed)
		if math.Abs(p.Vel.X-want.X) > 1e-9 || math.Abs(p.Vel.Y-want.Y) > 1e-9 {
			t.Errorf("Projectile %d velocity should be (%v, %v), got (%v, %v)", i, want.X, want.Y, p.Vel.X, p.Vel.Y)
		}
		if p.Damage != BossRingDamage {
			t.Errorf("Projectile %d damage should be %d, got %d", i, BossRingDamage, p.Damage)
		}
		if p.FromPlayer {
			t.Errorf("Projectile %d should belong to the boss", i)
		}
	}

	// The boss holds position while spraying
	if !boss.Vel.IsZero() {
		t.Errorf("Boss should hold position during the spray, velocity %v", boss.Vel)
	}
}

func TestBossChargeLocksDirection(t *testing.T) {
	store, boss, player, cfg := newBossEnv()
	scale := difficultyScale{HP: 1, Speed: 1, Damage: 1}

	// Jump to the idle step right before the charge
	boss.BossStep = 2
	boss.BossPhase = BossIdle
	boss.PhaseLeft = 1

	updateBoss(boss, player, store, cfg, scale)

	if boss.BossPhase != BossCharge {
		t.Fatalf("Boss should be charging, got %v", boss.BossPhase)
	}

	wantDir := player.Pos.Sub(boss.Pos).Normalized()
	if math.Abs(boss.ChargeDir.X-wantDir.X) > 1e-9 || math.Abs(boss.ChargeDir.Y-wantDir.Y) > 1e-9 {
		t.Errorf("Charge direction should aim at the player, want %v got %v", wantDir, boss.ChargeDir)
	}

	wantSpeed := boss.Speed * BossChargeMultiplier
	if math.Abs(boss.Vel.Len()-wantSpeed) > 1e-9 {
		t.Errorf("Charge speed should be %v, got %v", wantSpeed, boss.Vel.Len())
	}

	// Moving the player mid-charge must not bend the charge
	player.Pos = core.Vec2{X: 70, Y: 3}
	updateBoss(boss, player, store, cfg, scale)

	if boss.ChargeDir != wantDir {
		t.Errorf("Charge direction should stay frozen at %v, got %v", wantDir, boss.ChargeDir)
	}
}

func TestBossSummonsMinions(t *testing.T) {
	store, boss, player, cfg := newBossEnv()
	scale := difficultyScale{HP: 1, Speed: 1, Damage: 1}

	boss.BossStep = 4
	boss.BossPhase = BossIdle
	boss.PhaseLeft = 1

	updateBoss(boss, player, store, cfg, scale)

	if boss.BossPhase != BossSummon {
		t.Fatalf("Boss should be summoning, got %v", boss.BossPhase)
	}

	minions := 0
	for _, e := range store.Kind(KindEnemy) {
		if e.Class == ClassMinion {
			minions++
		}
	}
	if minions != BossSummonCount {
		t.Errorf("Summon should add %d minions, got %d", BossSummonCount, minions)
	}
}

func TestBossSummonRespectsEnemyCap(t *testing.T) {
	store, boss, player, cfg := newBossEnv()
	scale := difficultyScale{HP: 1, Speed: 1, Damage: 1}

	// Fill the arena to one slot under the cap (boss already counts)
	for i := store.CountAlive(KindEnemy); i < MaxLiveEnemies-1; i++ {
		store.Spawn(Entity{Kind: KindEnemy, Class: ClassBasic, Pos: core.Vec2{X: 5, Y: 5}, Radius: 1.0, HP: 1, MaxHP: 1})
	}

	boss.BossStep = 4
	boss.BossPhase = BossIdle
	boss.PhaseLeft = 1
	updateBoss(boss, player, store, cfg, scale)

	if got := store.CountAlive(KindEnemy); got != MaxLiveEnemies {
		t.Errorf("Summon should stop at the cap of %d, got %d alive", MaxLiveEnemies, got)
	}
}

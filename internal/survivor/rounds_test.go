package survivor

import (
	"testing"

	"github.com/vkoshelev/tui-survivor/internal/config"
	"github.com/vkoshelev/tui-survivor/internal/core"
)

func roundsTestConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
}

func roundsTestWorld(index int) config.WorldSpec {
	return config.WorldSpec{
		Index:                index,
		Name:                 "Test",
		TotalRounds:          10,
		DifficultyMultiplier: 1.0,
		QuotaStep:            2,
	}
}

func TestRoundQuotaScaling(t *testing.T) {
	cfg := roundsTestConfig()
	rm := NewRoundManager(cfg, NewSimpleRNG(7))

	rm.StartRound(roundsTestWorld(1), 1, 1.0, false, 80, 22)
	if rm.Quota() != BaseQuota {
		t.Errorf("Round 1 quota should be %d, got %d", BaseQuota, rm.Quota())
	}

	rm.StartRound(roundsTestWorld(1), 4, 1.0, false, 80, 22)
	if rm.Quota() != BaseQuota+6 {
		t.Errorf("Round 4 quota should be %d, got %d", BaseQuota+6, rm.Quota())
	}
}

func TestRoundLifecycle(t *testing.T) {
	cfg := roundsTestConfig()
	rm := NewRoundManager(cfg, NewSimpleRNG(42))

	rm.StartRound(roundsTestWorld(1), 1, 1.0, false, 80, 22)
	interval := cfg.Ticks(SpawnIntervalSec)

	// Spawning: one enemy per interval until the quota is out
	alive := 0
	cleared := 0
	ticks := 0
	for rm.Phase() == PhaseSpawning {
		ticks++
		if ticks > 10000 {
			t.Fatal("Spawning never finished")
		}
		up := rm.Update(alive)
		for _, order := range up.Spawns {
			if order.Class == ClassBoss {
				t.Errorf("Normal rounds should not spawn bosses, got %v", order.Class)
			}
			alive++
		}
		if up.Cleared {
			cleared++
		}
	}
	if alive != BaseQuota {
		t.Errorf("Quota of %d should be spawned, got %d", BaseQuota, alive)
	}
	if ticks != BaseQuota*interval {
		t.Errorf("Spawning should take %d ticks, took %d", BaseQuota*interval, ticks)
	}

	// Enemies alive: the round must not clear
	for i := 0; i < 10; i++ {
		if up := rm.Update(alive); up.Cleared {
			cleared++
		}
	}
	if cleared != 0 {
		t.Fatalf("Round cleared with enemies still alive")
	}

	// Last enemy dies
	up := rm.Update(0)
	if !up.Cleared {
		t.Fatal("Round should clear once the quota is spawned and nothing is alive")
	}
	cleared++
	if !rm.InBreak() {
		t.Error("Cleared round should enter the break")
	}
	if rm.BreakLeft() != cfg.Ticks(RoundBreakSec) {
		t.Errorf("Break should start at %d ticks, got %d", cfg.Ticks(RoundBreakSec), rm.BreakLeft())
	}

	// Break runs down, signaling the end exactly once
	overs := 0
	for i := 0; i < cfg.Ticks(RoundBreakSec); i++ {
		up := rm.Update(0)
		if up.Cleared {
			cleared++
		}
		if up.BreakOver {
			overs++
		}
	}
	if cleared != 1 {
		t.Errorf("Cleared should signal exactly once, got %d", cleared)
	}
	if overs != 1 {
		t.Errorf("BreakOver should signal exactly once, got %d", overs)
	}
}

func TestBossRoundSpawnsExactlyOneBoss(t *testing.T) {
	cfg := roundsTestConfig()
	rm := NewRoundManager(cfg, NewSimpleRNG(3))

	spec := roundsTestWorld(7)
	spec.BossUnlocked = true
	rm.StartRound(spec, 10, 2.2, true, 80, 22)

	if rm.Quota() != 1 {
		t.Fatalf("Boss round quota should be 1, got %d", rm.Quota())
	}

	var spawned []SpawnOrder
	for i := 0; i < 10000 && rm.Phase() == PhaseSpawning; i++ {
		up := rm.Update(len(spawned))
		spawned = append(spawned, up.Spawns...)
	}

	if len(spawned) != 1 {
		t.Fatalf("Boss round should spawn exactly one enemy, got %d", len(spawned))
	}
	if spawned[0].Class != ClassBoss {
		t.Errorf("The single spawn should be a boss, got %v", spawned[0].Class)
	}
}

func TestSpawnCapDefersOrders(t *testing.T) {
	cfg := roundsTestConfig()
	rm := NewRoundManager(cfg, NewSimpleRNG(11))
	rm.StartRound(roundsTestWorld(1), 1, 1.0, false, 80, 22)

	rm.spawnTimer = 1
	up := rm.Update(MaxLiveEnemies)
	if len(up.Spawns) != 0 {
		t.Error("No spawn should be emitted at the live-enemy cap")
	}
	if rm.Spawned() != 0 {
		t.Errorf("Held order should not count as spawned, got %d", rm.Spawned())
	}

	up = rm.Update(MaxLiveEnemies - 1)
	if len(up.Spawns) != 1 {
		t.Error("Deferred spawn should be emitted once room frees up")
	}
}

func TestSpawnIntervalHasFloor(t *testing.T) {
	cfg := roundsTestConfig()
	rm := NewRoundManager(cfg, NewSimpleRNG(13))

	rm.StartRound(roundsTestWorld(1), 1, 100.0, false, 80, 22)
	if rm.spawnInterval != cfg.Ticks(MinSpawnIntervalSec) {
		t.Errorf("Interval should floor at %d ticks, got %d", cfg.Ticks(MinSpawnIntervalSec), rm.spawnInterval)
	}
}

func TestHazardCountPerRound(t *testing.T) {
	cfg := roundsTestConfig()
	rm := NewRoundManager(cfg, NewSimpleRNG(17))

	// Hazards locked: nothing spawns regardless of round
	if h := rm.StartRound(roundsTestWorld(1), 8, 1.0, false, 80, 22); len(h) != 0 {
		t.Errorf("Locked world should place no hazards, got %d", len(h))
	}

	spec := roundsTestWorld(5)
	spec.HazardsUnlocked = true

	cases := []struct {
		round int
		want  int
	}{
		{1, HazardBaseCount},
		{8, HazardBaseCount + 2},
		{20, HazardMaxCount},
	}
	for _, c := range cases {
		h := rm.StartRound(spec, c.round, 1.0, false, 80, 22)
		if len(h) != c.want {
			t.Errorf("Round %d should place %d hazards, got %d", c.round, c.want, len(h))
		}
		for _, pos := range h {
			if pos.X < 0 || pos.X > 80 || pos.Y < 0 || pos.Y > 22 {
				t.Errorf("Hazard at (%v, %v) is outside the arena", pos.X, pos.Y)
			}
		}
	}
}

func TestEnemyClassMixGating(t *testing.T) {
	cfg := roundsTestConfig()
	rm := NewRoundManager(cfg, NewSimpleRNG(19))

	// World 1: elites and ranged enemies are not in the mix yet
	rm.StartRound(roundsTestWorld(1), 1, 1.0, false, 80, 22)
	for i := 0; i < 200; i++ {
		if c := rm.rollClass(); c != ClassBasic {
			t.Fatalf("World 1 should only roll Basic, got %v", c)
		}
	}

	// World 6: all three classes appear
	rm.StartRound(roundsTestWorld(6), 1, 1.0, false, 80, 22)
	seen := make(map[EnemyClass]int)
	for i := 0; i < 2000; i++ {
		seen[rm.rollClass()]++
	}
	if seen[ClassBasic] == 0 || seen[ClassRanged] == 0 || seen[ClassElite] == 0 {
		t.Errorf("World 6 mix should include all classes, got %v", seen)
	}
}

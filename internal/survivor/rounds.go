package survivor

import (
	"github.com/vkoshelev/tui-survivor/internal/config"
	"github.com/vkoshelev/tui-survivor/internal/core"
)

// RoundPhase is the lifecycle stage of the current round.
type RoundPhase int

const (
	PhaseSpawning RoundPhase = iota // quota not yet fully emitted
	PhaseActive                     // quota emitted, enemies remain
	PhaseBreak                      // round cleared, shop break running
)

// String returns the display name of the round phase.
func (p RoundPhase) String() string {
	switch p {
	case PhaseSpawning:
		return "Spawning"
	case PhaseActive:
		return "Active"
	case PhaseBreak:
		return "Break"
	default:
		return "?"
	}
}

// SpawnOrder instructs the game to materialize one enemy.
type SpawnOrder struct {
	Class EnemyClass
	Pos   core.Vec2
}

// RoundUpdate is the outcome of one round-management tick.
type RoundUpdate struct {
	Spawns    []SpawnOrder
	Cleared   bool // set exactly once, on the tick the round completes
	BreakOver bool // set exactly once, when the inter-round break ends
}

// RoundManager drives enemy spawning and round completion. It never
// touches the entity store: spawns leave as orders and the game reports
// the live enemy count back in. Completion means the spawn quota is
// exhausted and no enemies remain alive.
type RoundManager struct {
	cfg core.RuntimeConfig
	rng *SimpleRNG

	phase         RoundPhase
	quota         int
	spawned       int
	spawnInterval int // ticks between spawn emissions
	spawnTimer    int
	breakLeft     int
	bossRound     bool
	world         int // current world index, drives the class mix
	arenaW        float64
	arenaH        float64
}

// NewRoundManager creates a manager using the given spawn RNG stream.
func NewRoundManager(cfg core.RuntimeConfig, rng *SimpleRNG) *RoundManager {
	return &RoundManager{cfg: cfg, rng: rng}
}

// StartRound arms the manager for a new round and returns the hazard
// positions the game should materialize. A boss round overrides the
// quota to exactly one boss; minions the boss summons still count
// toward completion through the live-enemy count.
func (rm *RoundManager) StartRound(world config.WorldSpec, round int, mult float64, bossRound bool, arenaW, arenaH float64) []core.Vec2 {
	rm.world = world.Index
	rm.arenaW = arenaW
	rm.arenaH = arenaH
	rm.bossRound = bossRound
	rm.spawned = 0
	rm.phase = PhaseSpawning

	if bossRound {
		rm.quota = 1
	} else {
		rm.quota = BaseQuota + world.QuotaStep*(round-1)
	}

	interval := SpawnIntervalSec / mult
	if interval < MinSpawnIntervalSec {
		interval = MinSpawnIntervalSec
	}
	rm.spawnInterval = rm.cfg.Ticks(interval)
	rm.spawnTimer = rm.spawnInterval

	if !world.HazardsUnlocked {
		return nil
	}
	count := HazardBaseCount + round/HazardPerRounds
	if count > HazardMaxCount {
		count = HazardMaxCount
	}
	positions := make([]core.Vec2, count)
	for i := range positions {
		positions[i] = rm.interiorPos()
	}
	return positions
}

// Update advances the round by one tick. aliveEnemies is the count
// after this tick's combat resolved.
func (rm *RoundManager) Update(aliveEnemies int) RoundUpdate {
	var up RoundUpdate

	switch rm.phase {
	case PhaseSpawning:
		rm.spawnTimer--
		if rm.spawnTimer <= 0 {
			if aliveEnemies+len(up.Spawns) < MaxLiveEnemies {
				up.Spawns = append(up.Spawns, rm.nextOrder())
				rm.spawned++
				rm.spawnTimer = rm.spawnInterval
			} else {
				// Cap reached: hold the order, retry next tick
				rm.spawnTimer = 1
			}
		}
		if rm.spawned >= rm.quota {
			rm.phase = PhaseActive
		}

	case PhaseBreak:
		rm.breakLeft--
		if rm.breakLeft <= 0 {
			up.BreakOver = true
		}
		return up
	}

	if rm.spawned >= rm.quota && aliveEnemies == 0 && len(up.Spawns) == 0 {
		rm.phase = PhaseBreak
		rm.breakLeft = rm.cfg.Ticks(RoundBreakSec)
		up.Cleared = true
	}

	return up
}

// Phase returns the current round phase.
func (rm *RoundManager) Phase() RoundPhase {
	return rm.phase
}

// InBreak reports whether the shop break is running.
func (rm *RoundManager) InBreak() bool {
	return rm.phase == PhaseBreak
}

// BreakLeft returns the remaining break ticks.
func (rm *RoundManager) BreakLeft() int {
	return rm.breakLeft
}

// Quota returns the total spawn quota of the current round.
func (rm *RoundManager) Quota() int {
	return rm.quota
}

// Spawned returns how many of the quota have been emitted.
func (rm *RoundManager) Spawned() int {
	return rm.spawned
}

// nextOrder rolls the class and edge position for one spawn.
func (rm *RoundManager) nextOrder() SpawnOrder {
	if rm.bossRound {
		return SpawnOrder{Class: ClassBoss, Pos: rm.edgePos()}
	}
	return SpawnOrder{Class: rm.rollClass(), Pos: rm.edgePos()}
}

// rollClass picks an enemy class using world-dependent percentages.
// Elites and ranged enemies phase in on later worlds; the remainder
// stays Basic.
func (rm *RoundManager) rollClass() EnemyClass {
	rangedPct := 0
	if rm.world >= RangedFromWorld {
		rangedPct = RangedBasePct + RangedPctPerWorld*(rm.world-RangedFromWorld)
	}
	elitePct := 0
	if rm.world >= EliteFromWorld {
		elitePct = EliteBasePct + ElitePctPerWorld*(rm.world-EliteFromWorld)
	}

	roll := rm.rng.Intn(100)
	switch {
	case roll < elitePct:
		return ClassElite
	case roll < elitePct+rangedPct:
		return ClassRanged
	default:
		return ClassBasic
	}
}

// edgePos picks a spawn point just inside a random arena edge.
func (rm *RoundManager) edgePos() core.Vec2 {
	const margin = 0.5
	switch rm.rng.Intn(4) {
	case 0: // top
		return core.Vec2{X: margin + rm.rng.Float64()*(rm.arenaW-2*margin), Y: margin}
	case 1: // bottom
		return core.Vec2{X: margin + rm.rng.Float64()*(rm.arenaW-2*margin), Y: rm.arenaH - margin}
	case 2: // left
		return core.Vec2{X: margin, Y: margin + rm.rng.Float64()*(rm.arenaH-2*margin)}
	default: // right
		return core.Vec2{X: rm.arenaW - margin, Y: margin + rm.rng.Float64()*(rm.arenaH-2*margin)}
	}
}

// interiorPos picks a hazard position away from the arena edges.
func (rm *RoundManager) interiorPos() core.Vec2 {
	margin := 4.0
	if rm.arenaW <= 2*margin || rm.arenaH <= 2*margin {
		margin = 1.0
	}
	return core.Vec2{
		X: margin + rm.rng.Float64()*(rm.arenaW-2*margin),
		Y: margin + rm.rng.Float64()*(rm.arenaH-2*margin),
	}
}
